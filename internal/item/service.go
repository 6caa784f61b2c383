package item

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/argguild/epgpbot/internal/domain"
	"github.com/argguild/epgpbot/internal/logger"
	"github.com/argguild/epgpbot/internal/repository"
)

// Service defines the item catalog operations
type Service interface {
	// Get returns an item from the cache or the store
	Get(ctx context.Context, id int64) (*domain.Item, error)
	Search(ctx context.Context, name string) ([]domain.Item, error)
	Upsert(ctx context.Context, item *domain.Item) error
	// LoadCatalog reads, validates and syncs a catalog file
	LoadCatalog(ctx context.Context, path string) (*SyncResult, error)
	// GearPoints returns the cost of an item for role
	GearPoints(ctx context.Context, id int64, role domain.Role) (int64, error)
}

type service struct {
	repo   repository.Items
	loader Loader
	cache  *itemCache
}

// NewService creates the item catalog service with an LRU of cacheSize entries
func NewService(repo repository.Items, cacheSize int, cacheTTL time.Duration) Service {
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	if cacheTTL <= 0 {
		cacheTTL = DefaultCacheTTL
	}
	return &service{
		repo:   repo,
		loader: NewLoader(),
		cache:  newItemCache(cacheSize, cacheTTL),
	}
}

func (s *service) Get(ctx context.Context, id int64) (*domain.Item, error) {
	if item, ok := s.cache.Get(id); ok {
		return item, nil
	}

	item, err := s.repo.GetItem(ctx, id)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetItemFailed, id, err)
	}
	if item == nil {
		return nil, fmt.Errorf("%w: %d", domain.ErrItemNotFound, id)
	}

	s.cache.Set(*item)
	return item, nil
}

func (s *service) Search(ctx context.Context, name string) ([]domain.Item, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidParameter, ErrMsgEmptySearch)
	}
	items, err := s.repo.SearchItems(ctx, name, MaxSearchResults)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgSearchFailed, err)
	}
	return items, nil
}

func (s *service) Upsert(ctx context.Context, item *domain.Item) error {
	if item.ID <= 0 || strings.TrimSpace(item.Name) == "" {
		return fmt.Errorf("%w: %s", domain.ErrInvalidParameter, ErrMsgItemIdentity)
	}
	if err := s.repo.UpsertItem(ctx, item); err != nil {
		return fmt.Errorf(ErrMsgUpsertItemFailed, item.Name, err)
	}
	s.cache.Invalidate(item.ID)
	return nil
}

func (s *service) LoadCatalog(ctx context.Context, path string) (*SyncResult, error) {
	catalog, err := s.loader.Load(path)
	if errors.Is(err, ErrInvalidConfig) {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidParameter, err)
	}
	if err != nil {
		return nil, err
	}
	if err := s.loader.Validate(catalog); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidParameter, err)
	}

	result, err := s.loader.SyncToDatabase(ctx, catalog, s.repo)
	if err != nil {
		return nil, err
	}
	for _, item := range catalog.Items {
		s.cache.Invalidate(item.ID)
	}
	logger.FromContext(ctx).Info(LogMsgCatalogLoaded, "path", path, "items", len(catalog.Items))
	return result, nil
}

func (s *service) GearPoints(ctx context.Context, id int64, role domain.Role) (int64, error) {
	item, err := s.Get(ctx, id)
	if err != nil {
		return 0, err
	}
	return GearPoints(*item, role), nil
}
