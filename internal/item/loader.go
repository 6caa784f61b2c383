package item

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/argguild/epgpbot/internal/domain"
	"github.com/argguild/epgpbot/internal/logger"
	"github.com/argguild/epgpbot/internal/repository"
	"github.com/argguild/epgpbot/internal/validation"
)

// CatalogSchemaName is the name the catalog schema is registered under
const CatalogSchemaName = "items.schema.json"

//go:embed items.schema.json
var catalogSchema []byte

// Sentinel errors for item loader
var (
	ErrDuplicateItemID = errors.New("duplicate item id")

	ErrInvalidConfig = errors.New("invalid configuration")
)

// Catalog represents the JSON item catalog file
type Catalog struct {
	Version     string `json:"version"`
	Description string `json:"description"`

	Items []domain.Item `json:"items" validate:"required,min=1,dive"`
}

// Loader handles loading and validating the item catalog
type Loader interface {
	Load(path string) (*Catalog, error)
	Validate(catalog *Catalog) error
	SyncToDatabase(ctx context.Context, catalog *Catalog, repo repository.Items) (*SyncResult, error)
}

// SyncResult contains the result of syncing the catalog to the database
type SyncResult struct {
	ItemsInserted int
	ItemsUpdated  int
	ItemsSkipped  int
}

type itemLoader struct {
	validate *validator.Validate
	schemas  validation.SchemaValidator
}

// NewLoader creates a new Loader instance
func NewLoader() Loader {
	schemas := validation.NewSchemaValidator()
	if err := schemas.Register(CatalogSchemaName, catalogSchema); err != nil {
		panic(fmt.Sprintf("item catalog schema: %v", err))
	}
	return &itemLoader{
		validate: validator.New(validator.WithRequiredStructEnabled()),
		schemas:  schemas,
	}
}

// Load reads a catalog JSON file, checks it against the catalog schema and parses it
func (l *itemLoader) Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadCatalogFailed, err)
	}

	var catalog Catalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf(ErrMsgParseCatalogFailed, err)
	}
	if err := l.schemas.ValidateBytes(data, CatalogSchemaName); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, path, err)
	}

	return &catalog, nil
}

// Validate checks the catalog for errors
func (l *itemLoader) Validate(catalog *Catalog) error {
	if catalog == nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgCatalogNil)
	}

	if err := l.validate.Struct(catalog); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	seen := make(map[int64]bool, len(catalog.Items))
	for _, item := range catalog.Items {
		if seen[item.ID] {
			return fmt.Errorf("%w: %d", ErrDuplicateItemID, item.ID)
		}
		seen[item.ID] = true
	}

	return nil
}

// SyncToDatabase writes new and changed catalog items. Unchanged items are skipped.
func (l *itemLoader) SyncToDatabase(ctx context.Context, catalog *Catalog, repo repository.Items) (*SyncResult, error) {
	log := logger.FromContext(ctx)
	result := &SyncResult{}

	for i := range catalog.Items {
		def := catalog.Items[i]

		existing, err := repo.GetItem(ctx, def.ID)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgGetItemFailed, def.ID, err)
		}
		if existing != nil && *existing == def {
			result.ItemsSkipped++
			continue
		}

		if err := repo.UpsertItem(ctx, &def); err != nil {
			return nil, fmt.Errorf(ErrMsgUpsertItemFailed, def.Name, err)
		}
		if existing == nil {
			result.ItemsInserted++
			log.Debug(LogMsgInsertedItem, "item_id", def.ID, "name", def.Name)
		} else {
			result.ItemsUpdated++
			log.Debug(LogMsgUpdatedItem, "item_id", def.ID, "name", def.Name)
		}
	}

	log.Info(LogMsgSyncCompleted,
		"inserted", result.ItemsInserted,
		"updated", result.ItemsUpdated,
		"skipped", result.ItemsSkipped)

	return result, nil
}
