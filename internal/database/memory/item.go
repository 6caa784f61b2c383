package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/argguild/epgpbot/internal/domain"
)

func (s *Store) UpsertItem(ctx context.Context, item *domain.Item) error {
	return s.write(ctx, func(st *state) error {
		st.items[item.ID] = *item
		return nil
	})
}

func (s *Store) GetItem(ctx context.Context, id int64) (*domain.Item, error) {
	item, ok := s.snapshot().items[id]
	if !ok {
		return nil, nil
	}
	return &item, nil
}

func (s *Store) SearchItems(ctx context.Context, name string, limit int) ([]domain.Item, error) {
	needle := strings.ToLower(name)
	var out []domain.Item
	for _, item := range s.snapshot().items {
		if strings.Contains(strings.ToLower(item.Name), needle) {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
