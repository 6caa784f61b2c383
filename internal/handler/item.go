package handler

import (
	"net/http"

	"github.com/argguild/epgpbot/internal/domain"
	"github.com/argguild/epgpbot/internal/item"
)

// ItemHandler handles item catalog endpoints
type ItemHandler struct {
	service item.Service
}

// NewItemHandler creates a new item handler
func NewItemHandler(service item.Service) *ItemHandler {
	return &ItemHandler{service: service}
}

// ItemResponse is an item with its gear point cost for a role, when requested
type ItemResponse struct {
	domain.Item
	GearPoints *int64 `json:"gear_points,omitempty"`
}

// HandleUpsertItem creates or replaces a catalog item
// @Summary Create or replace an item
// @Tags items
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body domain.Item true "Request body"
// @Success 200 {object} DataResponse{data=domain.Item}
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 503 {object} ErrorResponse "Storage unavailable"
// @Router /api/v1/items [post]
func (h *ItemHandler) HandleUpsertItem(w http.ResponseWriter, r *http.Request) {
	var req domain.Item
	if err := DecodeAndValidateRequest(r, w, &req, "Upsert item"); err != nil {
		return
	}
	if err := h.service.Upsert(r.Context(), &req); err != nil {
		respondServiceError(w, r, "Upsert item", err)
		return
	}
	respondJSON(w, http.StatusOK, DataResponse{Message: MsgItemSaved, Data: req})
}

// HandleGetItem returns an item, with its cost when a role is given
// @Summary Get an item
// @Tags items
// @Produce json
// @Security ApiKeyAuth
// @Param itemID path int true "Item ID"
// @Param role query string false "Role to price the item for"
// @Success 200 {object} ItemResponse
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /api/v1/items/{itemID} [get]
func (h *ItemHandler) HandleGetItem(w http.ResponseWriter, r *http.Request) {
	itemID, ok := pathInt64(w, r, ParamItemID)
	if !ok {
		return
	}
	found, err := h.service.Get(r.Context(), itemID)
	if err != nil {
		respondServiceError(w, r, "Get item", err)
		return
	}
	resp := ItemResponse{Item: *found}

	if raw := r.URL.Query().Get("role"); raw != "" {
		role, err := domain.ParseRole(raw)
		if err != nil {
			respondServiceError(w, r, "Get item", err)
			return
		}
		cost, err := h.service.GearPoints(r.Context(), itemID, role)
		if err != nil {
			respondServiceError(w, r, "Get item", err)
			return
		}
		resp.GearPoints = &cost
	}
	respondJSON(w, http.StatusOK, resp)
}

// HandleSearchItems finds items by name
// @Summary Search items by name
// @Tags items
// @Produce json
// @Security ApiKeyAuth
// @Param name query string false "Name fragment"
// @Success 200 {object} DataResponse{data=[]domain.Item}
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Router /api/v1/items [get]
func (h *ItemHandler) HandleSearchItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.Search(r.Context(), r.URL.Query().Get("name"))
	if err != nil {
		respondServiceError(w, r, "Search items", err)
		return
	}
	respondJSON(w, http.StatusOK, DataResponse{Data: items})
}
