package handler

import (
	"context"
	"net/http"

	"github.com/argguild/epgpbot/internal/domain"
	"github.com/argguild/epgpbot/internal/loot"
)

// LootHandler handles item drop, bid and award endpoints
type LootHandler struct {
	service loot.Service
}

// NewLootHandler creates a new loot handler
func NewLootHandler(service loot.Service) *LootHandler {
	return &LootHandler{service: service}
}

// RecordDropRequest is the body of a drop creation
type RecordDropRequest struct {
	RaidID    int64  `json:"raid_id" validate:"required,gt=0"`
	ItemID    int64  `json:"item_id" validate:"required,gt=0"`
	CreatedBy string `json:"created_by,omitempty" validate:"max=64"`
}

// BidRequest sets or clears one tier flag of a user's bid. Set defaults to true.
type BidRequest struct {
	UserID string `json:"user_id" validate:"required,max=64"`
	Tier   string `json:"tier" validate:"required,bid_tier"`
	Set    *bool  `json:"set,omitempty"`
}

// HandleRecordDrop opens a drop for bids
// @Summary Record a drop
// @Tags loot
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body RecordDropRequest true "Request body"
// @Success 201 {object} domain.ItemDrop
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Not found"
// @Failure 409 {object} ErrorResponse "Invalid state or conflict"
// @Router /api/v1/drops [post]
func (h *LootHandler) HandleRecordDrop(w http.ResponseWriter, r *http.Request) {
	handleAction(w, r, "Record drop", http.StatusCreated,
		func(ctx context.Context, req RecordDropRequest) (*domain.ItemDrop, error) {
			return h.service.RecordDrop(ctx, req.RaidID, req.ItemID, req.CreatedBy)
		})
}

// HandleGetDrop returns one drop
// @Summary Get a drop
// @Tags loot
// @Produce json
// @Security ApiKeyAuth
// @Param dropID path int true "Drop ID"
// @Success 200 {object} domain.ItemDrop
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /api/v1/drops/{dropID} [get]
func (h *LootHandler) HandleGetDrop(w http.ResponseWriter, r *http.Request) {
	dropID, ok := pathInt64(w, r, ParamDropID)
	if !ok {
		return
	}
	drop, err := h.service.GetDrop(r.Context(), dropID)
	if err != nil {
		respondServiceError(w, r, "Get drop", err)
		return
	}
	respondJSON(w, http.StatusOK, drop)
}

// HandleListDrops lists the drops of a raid
// @Summary List raid drops
// @Tags loot
// @Produce json
// @Security ApiKeyAuth
// @Param raidID path int true "Raid ID"
// @Success 200 {object} DataResponse{data=[]domain.ItemDrop}
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /api/v1/raids/{raidID}/drops [get]
func (h *LootHandler) HandleListDrops(w http.ResponseWriter, r *http.Request) {
	raidID, ok := pathInt64(w, r, ParamRaidID)
	if !ok {
		return
	}
	drops, err := h.service.ListDrops(r.Context(), raidID)
	if err != nil {
		respondServiceError(w, r, "List drops", err)
		return
	}
	respondJSON(w, http.StatusOK, DataResponse{Data: drops})
}

// HandleSubmitBid sets or clears a bid flag
// @Summary Set or clear a bid
// @Tags loot
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param dropID path int true "Drop ID"
// @Param request body BidRequest true "Request body"
// @Success 200 {object} domain.Bid
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Not found"
// @Failure 409 {object} ErrorResponse "Invalid state or conflict"
// @Router /api/v1/drops/{dropID}/bids [post]
func (h *LootHandler) HandleSubmitBid(w http.ResponseWriter, r *http.Request) {
	dropID, ok := pathInt64(w, r, ParamDropID)
	if !ok {
		return
	}
	handleAction(w, r, "Submit bid", http.StatusOK,
		func(ctx context.Context, req BidRequest) (*domain.Bid, error) {
			tier, err := domain.ParseBidTier(req.Tier)
			if err != nil {
				return nil, err
			}
			set := req.Set == nil || *req.Set
			return h.service.SubmitBid(ctx, dropID, req.UserID, tier, set)
		})
}

// HandlePreview returns the current ranking of an open drop
// @Summary Preview the ranking
// @Tags loot
// @Produce json
// @Security ApiKeyAuth
// @Param dropID path int true "Drop ID"
// @Success 200 {object} domain.DropPreview
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /api/v1/drops/{dropID}/preview [get]
func (h *LootHandler) HandlePreview(w http.ResponseWriter, r *http.Request) {
	dropID, ok := pathInt64(w, r, ParamDropID)
	if !ok {
		return
	}
	preview, err := h.service.Preview(r.Context(), dropID)
	if err != nil {
		respondServiceError(w, r, "Preview", err)
		return
	}
	respondJSON(w, http.StatusOK, preview)
}

// HandleAward resolves the winner of a drop and charges gear points
// @Summary Award a drop
// @Description Resolves the winner in the highest tier with bids and charges gear points once
// @Tags loot
// @Produce json
// @Security ApiKeyAuth
// @Param dropID path int true "Drop ID"
// @Success 200 {object} domain.AwardResult
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Not found"
// @Failure 409 {object} ErrorResponse "Invalid state or conflict"
// @Failure 503 {object} ErrorResponse "Storage unavailable"
// @Router /api/v1/drops/{dropID}/award [post]
func (h *LootHandler) HandleAward(w http.ResponseWriter, r *http.Request) {
	dropID, ok := pathInt64(w, r, ParamDropID)
	if !ok {
		return
	}
	result, err := h.service.Award(r.Context(), dropID)
	if err != nil {
		respondServiceError(w, r, "Award", err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}
