package item

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/argguild/epgpbot/internal/database/memory"
	"github.com/argguild/epgpbot/internal/domain"
)

func TestService_GetCachesAndInvalidates(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := NewService(store, 16, time.Minute).(*service)
	item := &domain.Item{ID: 7, Name: "Ring of Binding", ItemLevel: 60, Quality: domain.QualityEpic}
	require.NoError(t, svc.Upsert(ctx, item))

	got, err := svc.Get(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, "Ring of Binding", got.Name)
	assert.Equal(t, 1, svc.cache.Len())

	// a direct store write is not visible until the entry is invalidated
	require.NoError(t, store.UpsertItem(ctx, &domain.Item{ID: 7, Name: "Renamed"}))
	cached, err := svc.Get(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, "Ring of Binding", cached.Name)

	require.NoError(t, svc.Upsert(ctx, &domain.Item{ID: 7, Name: "Renamed Again"}))
	fresh, err := svc.Get(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, "Renamed Again", fresh.Name)
}

func TestService_GetMissing(t *testing.T) {
	svc := NewService(memory.NewStore(), 0, 0)

	_, err := svc.Get(context.Background(), 404)

	assert.ErrorIs(t, err, domain.ErrItemNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestService_Search(t *testing.T) {
	ctx := context.Background()
	svc := NewService(memory.NewStore(), 0, 0)
	for i, name := range []string{"Band of Accuria", "Band of Forced Concentration", "Cloak of Flames"} {
		require.NoError(t, svc.Upsert(ctx, &domain.Item{ID: int64(i + 1), Name: name}))
	}

	items, err := svc.Search(ctx, "band of")
	require.NoError(t, err)
	assert.Len(t, items, 2)

	_, err = svc.Search(ctx, "  ")
	assert.ErrorIs(t, err, domain.ErrInvalidParameter)
}

func TestService_LoadCatalogAndGearPoints(t *testing.T) {
	ctx := context.Background()
	svc := NewService(memory.NewStore(), 0, 0)

	result, err := svc.LoadCatalog(ctx, createTempFile(t, testCatalog))
	require.NoError(t, err)
	assert.Equal(t, 2, result.ItemsInserted)

	gp, err := svc.GearPoints(ctx, 17076, domain.RoleMelee)
	require.NoError(t, err)
	assert.Equal(t, GearPoints(domain.Item{ItemLevel: 77, Quality: domain.QualityEpic, Class: domain.ItemClassWeapon, SubclassID: domain.WeaponSword2}, domain.RoleMelee), gp)

	_, err = svc.LoadCatalog(ctx, createTempFile(t, `{"items": []}`))
	assert.ErrorIs(t, err, domain.ErrInvalidParameter)
}
