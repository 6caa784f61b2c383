package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/argguild/epgpbot/internal/database/generated"
	"github.com/argguild/epgpbot/internal/domain"
)

// ItemRepository implements repository.Items for PostgreSQL using sqlc
type ItemRepository struct {
	db *pgxpool.Pool
	q  *generated.Queries
}

// NewItemRepository creates a new ItemRepository
func NewItemRepository(db *pgxpool.Pool) *ItemRepository {
	return &ItemRepository{db: db, q: generated.New(db)}
}

// UpsertItem inserts or replaces a catalog item
func (r *ItemRepository) UpsertItem(ctx context.Context, item *domain.Item) error {
	err := r.q.UpsertItem(ctx, generated.UpsertItemParams{
		ItemID:            item.ID,
		Name:              item.Name,
		ItemLevel:         int32(item.ItemLevel),
		RequiredLevel:     int32(item.RequiredLevel),
		IconUrl:           item.IconURL,
		ItemClass:         int32(item.Class),
		ItemSubclassID:    int32(item.SubclassID),
		Quality:           string(item.Quality),
		InventoryType:     item.InventoryType,
		InventoryTypeName: item.InventoryTypeName,
	})
	if err != nil {
		return wrapErr(ErrMsgFailedToUpsertItem, err)
	}
	return nil
}

// GetItem retrieves an item by ID, or nil when it is not in the catalog
func (r *ItemRepository) GetItem(ctx context.Context, id int64) (*domain.Item, error) {
	row, err := r.q.GetItem(ctx, id)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, wrapErr(ErrMsgFailedToGetItem, err)
	}
	return mapItem(row), nil
}

// SearchItems matches names case-insensitively by substring
func (r *ItemRepository) SearchItems(ctx context.Context, name string, limit int) ([]domain.Item, error) {
	var rowLimit *int32
	if limit > 0 {
		l := int32(limit)
		rowLimit = &l
	}
	rows, err := r.q.SearchItems(ctx, generated.SearchItemsParams{Name: name, RowLimit: rowLimit})
	if err != nil {
		return nil, wrapErr(ErrMsgFailedToSearchItems, err)
	}
	items := make([]domain.Item, len(rows))
	for i, row := range rows {
		items[i] = *mapItem(row)
	}
	return items, nil
}

func mapItem(row generated.Item) *domain.Item {
	return &domain.Item{
		ID:                row.ItemID,
		Name:              row.Name,
		ItemLevel:         int(row.ItemLevel),
		RequiredLevel:     int(row.RequiredLevel),
		IconURL:           row.IconUrl,
		Class:             domain.ItemClass(row.ItemClass),
		SubclassID:        int(row.ItemSubclassID),
		Quality:           domain.Quality(row.Quality),
		InventoryType:     row.InventoryType,
		InventoryTypeName: row.InventoryTypeName,
	}
}
