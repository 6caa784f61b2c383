package item

import "time"

// Cache and search limits
const (
	DefaultCacheSize = 2048
	DefaultCacheTTL  = time.Hour
	MaxSearchResults = 25
)

// ==================== Error Messages ====================

// File operation error messages
const (
	ErrMsgReadCatalogFailed  = "failed to read item catalog file: %w"
	ErrMsgParseCatalogFailed = "failed to parse item catalog: %w"
	ErrMsgCatalogNil         = "catalog is nil"
)

// Repository error messages
const (
	ErrMsgGetItemFailed    = "failed to get item %d: %w"
	ErrMsgUpsertItemFailed = "failed to upsert item '%s': %w"
	ErrMsgSearchFailed     = "failed to search items: %w"
)

// Validation error messages
const (
	ErrMsgEmptySearch  = "search text is required"
	ErrMsgItemIdentity = "item id and name are required"
)

// ==================== Log Messages ====================

const (
	LogMsgSyncCompleted = "Item catalog sync completed"
	LogMsgUpdatedItem   = "Updated item"
	LogMsgInsertedItem  = "Inserted item"
	LogMsgCatalogLoaded = "Item catalog loaded"
)
