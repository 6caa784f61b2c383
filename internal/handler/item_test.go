package handler

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/argguild/epgpbot/internal/domain"
	"github.com/argguild/epgpbot/internal/mocks"
)

var helmOfWrath = domain.Item{ID: 16963, Name: "Helm of Wrath", ItemLevel: 76, RequiredLevel: 60, Quality: "Epic", InventoryType: "HEAD"}

func TestHandleGetItem(t *testing.T) {
	m := mocks.NewMockItemService(t)
	m.On("Get", mock.Anything, int64(16963)).Return(&helmOfWrath, nil)
	m.On("Get", mock.Anything, int64(1)).Return(nil, fmt.Errorf("%w: 1", domain.ErrItemNotFound))
	m.On("GearPoints", mock.Anything, int64(16963), domain.RoleTank).Return(int64(164), nil)
	h := NewItemHandler(m)

	w := serve(t, http.MethodGet, "/items/{itemID}", "/items/16963", nil, h.HandleGetItem)
	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody[ItemResponse](t, w)
	assert.Equal(t, "Helm of Wrath", resp.Name)
	assert.Nil(t, resp.GearPoints)

	w = serve(t, http.MethodGet, "/items/{itemID}", "/items/16963?role=tank", nil, h.HandleGetItem)
	assert.Equal(t, http.StatusOK, w.Code)
	resp = decodeBody[ItemResponse](t, w)
	if assert.NotNil(t, resp.GearPoints) {
		assert.Equal(t, int64(164), *resp.GearPoints)
	}

	w = serve(t, http.MethodGet, "/items/{itemID}", "/items/16963?role=bard", nil, h.HandleGetItem)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = serve(t, http.MethodGet, "/items/{itemID}", "/items/1", nil, h.HandleGetItem)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleUpsertItem(t *testing.T) {
	m := mocks.NewMockItemService(t)
	m.On("Upsert", mock.Anything, mock.MatchedBy(func(it *domain.Item) bool {
		return it.ID == 16963 && it.Name == "Helm of Wrath"
	})).Return(nil)
	h := NewItemHandler(m)

	w := serve(t, http.MethodPost, "/items", "/items", helmOfWrath, h.HandleUpsertItem)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), MsgItemSaved)

	w = serve(t, http.MethodPost, "/items", "/items", domain.Item{Name: "No id"}, h.HandleUpsertItem)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"id"`)
}

func TestHandleSearchItems(t *testing.T) {
	m := mocks.NewMockItemService(t)
	m.On("Search", mock.Anything, "wrath").Return([]domain.Item{helmOfWrath}, nil)

	w := serve(t, http.MethodGet, "/items", "/items?name=wrath", nil, NewItemHandler(m).HandleSearchItems)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Helm of Wrath")
}
