package item

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/argguild/epgpbot/internal/database/memory"
	"github.com/argguild/epgpbot/internal/domain"
)

const testCatalog = `{
	"version": "1.0",
	"description": "Test items",
	"items": [
		{
			"id": 16922,
			"name": "Leggings of Transcendence",
			"item_level": 76,
			"required_level": 60,
			"item_class": 4,
			"item_subclass_id": 1,
			"quality": "Epic",
			"inventory_type_name": "Legs"
		},
		{
			"id": 17076,
			"name": "Bonereaver's Edge",
			"item_level": 77,
			"required_level": 60,
			"item_class": 2,
			"item_subclass_id": 8,
			"quality": "Epic"
		}
	]
}`

func createTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "items.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestItemLoader_Load(t *testing.T) {
	loader := NewLoader()

	t.Run("valid JSON file", func(t *testing.T) {
		catalog, err := loader.Load(createTempFile(t, testCatalog))

		require.NoError(t, err)
		assert.Equal(t, "1.0", catalog.Version)
		require.Len(t, catalog.Items, 2)
		assert.Equal(t, "Leggings of Transcendence", catalog.Items[0].Name)
		assert.Equal(t, domain.ItemClassWeapon, catalog.Items[1].Class)
		assert.Equal(t, domain.WeaponSword2, catalog.Items[1].SubclassID)
	})

	t.Run("file not found", func(t *testing.T) {
		_, err := loader.Load("/nonexistent/path.json")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read item catalog file")
	})

	t.Run("invalid JSON", func(t *testing.T) {
		_, err := loader.Load(createTempFile(t, `{invalid json}`))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse item catalog")
	})

	t.Run("schema violations", func(t *testing.T) {
		for name, doc := range map[string]string{
			"unknown quality": `{"items": [{"id": 1, "name": "Thunderfury", "quality": "Shiny"}]}`,
			"misspelled field": `{"items": [{"id": 1, "name": "Thunderfury", "itemlevel": 80}]}`,
			"empty catalog":    `{"items": []}`,
		} {
			_, err := loader.Load(createTempFile(t, doc))
			assert.ErrorIs(t, err, ErrInvalidConfig, name)
			assert.ErrorContains(t, err, "schema validation failed", name)
		}
	})
}

func TestItemLoader_Validate(t *testing.T) {
	loader := NewLoader()
	valid := domain.Item{ID: 1, Name: "Onyxia Tooth Pendant", ItemLevel: 74, Quality: domain.QualityEpic}

	t.Run("valid catalog", func(t *testing.T) {
		assert.NoError(t, loader.Validate(&Catalog{Items: []domain.Item{valid}}))
	})

	t.Run("nil catalog", func(t *testing.T) {
		assert.ErrorIs(t, loader.Validate(nil), ErrInvalidConfig)
	})

	t.Run("no items", func(t *testing.T) {
		assert.ErrorIs(t, loader.Validate(&Catalog{}), ErrInvalidConfig)
	})

	t.Run("missing name", func(t *testing.T) {
		bad := valid
		bad.Name = ""
		assert.ErrorIs(t, loader.Validate(&Catalog{Items: []domain.Item{bad}}), ErrInvalidConfig)
	})

	t.Run("negative item level", func(t *testing.T) {
		bad := valid
		bad.ItemLevel = -1
		assert.ErrorIs(t, loader.Validate(&Catalog{Items: []domain.Item{bad}}), ErrInvalidConfig)
	})

	t.Run("duplicate id", func(t *testing.T) {
		assert.ErrorIs(t, loader.Validate(&Catalog{Items: []domain.Item{valid, valid}}), ErrDuplicateItemID)
	})
}

func TestItemLoader_SyncToDatabase(t *testing.T) {
	ctx := context.Background()
	loader := NewLoader()
	store := memory.NewStore()
	catalog, err := loader.Load(createTempFile(t, testCatalog))
	require.NoError(t, err)

	result, err := loader.SyncToDatabase(ctx, catalog, store)
	require.NoError(t, err)
	assert.Equal(t, 2, result.ItemsInserted)

	catalog.Items[0].ItemLevel = 80
	result, err = loader.SyncToDatabase(ctx, catalog, store)
	require.NoError(t, err)
	assert.Equal(t, 1, result.ItemsUpdated)
	assert.Equal(t, 1, result.ItemsSkipped)

	stored, err := store.GetItem(ctx, 16922)
	require.NoError(t, err)
	assert.Equal(t, 80, stored.ItemLevel)
}
