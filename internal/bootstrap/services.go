package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/argguild/epgpbot/internal/concurrency"
	"github.com/argguild/epgpbot/internal/config"
	"github.com/argguild/epgpbot/internal/event"
	"github.com/argguild/epgpbot/internal/item"
	"github.com/argguild/epgpbot/internal/ledger"
	"github.com/argguild/epgpbot/internal/loot"
	"github.com/argguild/epgpbot/internal/raid"
	"github.com/argguild/epgpbot/internal/roster"
)

// Services holds the application services built over one store
type Services struct {
	Ledger   ledger.Service
	Roster   roster.Service
	Raids    raid.Service
	Loot     loot.Service
	Items    item.Service
	BidTiers *loot.BidTierRegistry
}

// InitializeServices builds every service. All services share one lock
// manager so bucket locks taken by loot and raids serialize with direct
// ledger writes.
func InitializeServices(cfg *config.Config, store Store, bus event.Bus) (*Services, error) {
	registry, err := loot.NewBidTierRegistry(cfg.BidReactions())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgBidTiers, err)
	}

	locks := concurrency.NewLockManager()
	ledgerSvc := ledger.NewService(store, locks, bus, store, cfg.LedgerPolicy())
	items := item.NewService(store, cfg.ItemCacheSize, cfg.ItemCacheTTL)
	raids := raid.NewService(store, store, ledgerSvc, locks, bus)

	return &Services{
		Ledger:   ledgerSvc,
		Roster:   roster.NewService(store, ledgerSvc),
		Raids:    raids,
		Loot:     loot.NewService(store, store, store, items, ledgerSvc, locks, bus, loot.NewPool(nil), registry),
		Items:    items,
		BidTiers: registry,
	}, nil
}

// SyncItems loads the item catalog file into storage. An empty path is a no-op.
func SyncItems(ctx context.Context, items item.Service, path string) error {
	if path == "" {
		return nil
	}
	slog.Info(LogMsgSyncingItems, "path", path)

	result, err := items.LoadCatalog(ctx, path)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgSyncItems, err)
	}

	slog.Info(LogMsgItemsSynced,
		"inserted", result.ItemsInserted,
		"updated", result.ItemsUpdated,
		"skipped", result.ItemsSkipped)
	return nil
}
