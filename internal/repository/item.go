package repository

import (
	"context"

	"github.com/argguild/epgpbot/internal/domain"
)

// Items defines the data access for the item catalog
type Items interface {
	UpsertItem(ctx context.Context, item *domain.Item) error
	GetItem(ctx context.Context, id int64) (*domain.Item, error)
	// SearchItems matches names case-insensitively by substring
	SearchItems(ctx context.Context, name string, limit int) ([]domain.Item, error)
}
