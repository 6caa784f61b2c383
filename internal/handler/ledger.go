package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/argguild/epgpbot/internal/domain"
	"github.com/argguild/epgpbot/internal/ledger"
)

// LedgerHandler handles point bucket and ledger endpoints
type LedgerHandler struct {
	service ledger.Service
}

// NewLedgerHandler creates a new ledger handler
func NewLedgerHandler(service ledger.Service) *LedgerHandler {
	return &LedgerHandler{service: service}
}

// BucketKeyRequest identifies a bucket in request bodies
type BucketKeyRequest struct {
	UserID    string `json:"user_id" validate:"required,max=64"`
	TeamID    int64  `json:"team_id" validate:"required,gt=0"`
	Tier      int    `json:"tier" validate:"gte=0"`
	PointType string `json:"point_type" validate:"required,point_type"`
}

// Key converts the request into a bucket key
func (b BucketKeyRequest) Key() domain.BucketKey {
	pointType, _ := domain.ParsePointType(b.PointType)
	return domain.BucketKey{UserID: b.UserID, TeamID: b.TeamID, Tier: b.Tier, PointType: pointType}
}

// AmountRequest is the body of grant and penalty requests
type AmountRequest struct {
	BucketKeyRequest
	Amount      int64  `json:"amount" validate:"required"`
	RaidID      *int64 `json:"raid_id,omitempty" validate:"omitempty,gt=0"`
	ItemDropID  *int64 `json:"item_drop_id,omitempty" validate:"omitempty,gt=0"`
	CharacterID *int64 `json:"character_id,omitempty" validate:"omitempty,gt=0"`
	Reason      string `json:"reason,omitempty" validate:"max=500"`
}

func (a AmountRequest) ledgerContext() domain.LedgerContext {
	return domain.LedgerContext{RaidID: a.RaidID, ItemDropID: a.ItemDropID, CharacterID: a.CharacterID, Reason: a.Reason}
}

// ValueRequest is the body of load and edit requests
type ValueRequest struct {
	BucketKeyRequest
	Value  int64  `json:"value"`
	Reason string `json:"reason,omitempty" validate:"max=500"`
}

// DecayRequest is the body of a single bucket decay
type DecayRequest struct {
	BucketKeyRequest
	Percent int64 `json:"percent" validate:"gt=0,lt=100"`
}

// DecayAllRequest decays every bucket of a team tier, or every bucket when
// no team is given
type DecayAllRequest struct {
	TeamID  int64 `json:"team_id,omitempty" validate:"gte=0"`
	Tier    int   `json:"tier" validate:"gte=0"`
	Percent int64 `json:"percent" validate:"gt=0,lt=100"`
}

// ReverseRequest is the body of a reversal
type ReverseRequest struct {
	EntryID int64  `json:"entry_id" validate:"required,gt=0"`
	Reason  string `json:"reason,omitempty" validate:"max=500"`
}

// TruncateResponse reports a truncation that may have been a no-op
type TruncateResponse struct {
	Message string              `json:"message,omitempty"`
	Entry   *domain.LedgerEntry `json:"entry,omitempty"`
}

// HandleCreateBucket returns a bucket, creating and initializing it on first use
// @Summary Create or get a bucket
// @Tags ledger
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body BucketKeyRequest true "Request body"
// @Success 200 {object} domain.PointBucket
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Not found"
// @Failure 503 {object} ErrorResponse "Storage unavailable"
// @Router /api/v1/buckets [post]
func (h *LedgerHandler) HandleCreateBucket(w http.ResponseWriter, r *http.Request) {
	handleAction(w, r, "Create bucket", http.StatusOK,
		func(ctx context.Context, req BucketKeyRequest) (*domain.PointBucket, error) {
			return h.service.CreateOrGetBucket(ctx, req.Key())
		})
}

// HandleGetBucket returns one bucket selected by query parameters
// @Summary Get a bucket
// @Tags ledger
// @Produce json
// @Security ApiKeyAuth
// @Param user_id query string true "User ID"
// @Param team_id query int true "Team ID"
// @Param tier query int true "Tier"
// @Param point_type query string true "EP or GP"
// @Success 200 {object} domain.PointBucket
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /api/v1/buckets [get]
func (h *LedgerHandler) HandleGetBucket(w http.ResponseWriter, r *http.Request) {
	key, ok := queryBucketKey(w, r)
	if !ok {
		return
	}
	bucket, err := h.service.GetBucket(r.Context(), key)
	if err != nil {
		respondServiceError(w, r, "Get bucket", err)
		return
	}
	respondJSON(w, http.StatusOK, bucket)
}

// HandleGrant adds a signed amount to a bucket
// @Summary Grant points
// @Tags ledger
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body AmountRequest true "Request body"
// @Success 201 {object} domain.LedgerEntry
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Not found"
// @Failure 409 {object} ErrorResponse "Invalid state or conflict"
// @Failure 503 {object} ErrorResponse "Storage unavailable"
// @Router /api/v1/ledger/grant [post]
func (h *LedgerHandler) HandleGrant(w http.ResponseWriter, r *http.Request) {
	handleAction(w, r, "Grant", http.StatusCreated,
		func(ctx context.Context, req AmountRequest) (*domain.LedgerEntry, error) {
			return h.service.Grant(ctx, req.Key(), req.Amount, req.ledgerContext())
		})
}

// HandlePenalty subtracts a positive amount from a bucket
// @Summary Apply a penalty
// @Tags ledger
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body AmountRequest true "Request body"
// @Success 201 {object} domain.LedgerEntry
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Not found"
// @Failure 409 {object} ErrorResponse "Invalid state or conflict"
// @Failure 503 {object} ErrorResponse "Storage unavailable"
// @Router /api/v1/ledger/penalty [post]
func (h *LedgerHandler) HandlePenalty(w http.ResponseWriter, r *http.Request) {
	handleAction(w, r, "Penalty", http.StatusCreated,
		func(ctx context.Context, req AmountRequest) (*domain.LedgerEntry, error) {
			return h.service.Penalize(ctx, req.Key(), req.Amount, req.ledgerContext())
		})
}

// HandleLoad sets an imported balance
// @Summary Load an imported balance
// @Tags ledger
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body ValueRequest true "Request body"
// @Success 201 {object} domain.LedgerEntry
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Not found"
// @Failure 503 {object} ErrorResponse "Storage unavailable"
// @Router /api/v1/ledger/load [post]
func (h *LedgerHandler) HandleLoad(w http.ResponseWriter, r *http.Request) {
	handleAction(w, r, "Load", http.StatusCreated,
		func(ctx context.Context, req ValueRequest) (*domain.LedgerEntry, error) {
			return h.service.Load(ctx, req.Key(), req.Value)
		})
}

// HandleEdit sets a corrected balance
// @Summary Edit a balance
// @Tags ledger
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body ValueRequest true "Request body"
// @Success 201 {object} domain.LedgerEntry
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Not found"
// @Failure 503 {object} ErrorResponse "Storage unavailable"
// @Router /api/v1/ledger/edit [post]
func (h *LedgerHandler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	handleAction(w, r, "Edit", http.StatusCreated,
		func(ctx context.Context, req ValueRequest) (*domain.LedgerEntry, error) {
			return h.service.Edit(ctx, req.Key(), req.Value, req.Reason)
		})
}

// HandleDecay decays one bucket
// @Summary Decay one bucket
// @Tags ledger
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body DecayRequest true "Request body"
// @Success 201 {object} domain.LedgerEntry
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Not found"
// @Failure 503 {object} ErrorResponse "Storage unavailable"
// @Router /api/v1/ledger/decay [post]
func (h *LedgerHandler) HandleDecay(w http.ResponseWriter, r *http.Request) {
	handleAction(w, r, "Decay", http.StatusCreated,
		func(ctx context.Context, req DecayRequest) (*domain.LedgerEntry, error) {
			return h.service.Decay(ctx, req.Key(), req.Percent)
		})
}

// HandleDecayAll decays a team tier, or everything when team_id is omitted
// @Summary Decay a team tier
// @Description Decays every bucket of a team tier, or every bucket when team_id is omitted
// @Tags ledger
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body DecayAllRequest true "Request body"
// @Success 200 {object} ledger.DecaySummary
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 503 {object} ErrorResponse "Storage unavailable"
// @Router /api/v1/ledger/decay-all [post]
func (h *LedgerHandler) HandleDecayAll(w http.ResponseWriter, r *http.Request) {
	handleAction(w, r, "Decay all", http.StatusOK,
		func(ctx context.Context, req DecayAllRequest) (*ledger.DecaySummary, error) {
			if req.TeamID == 0 {
				return h.service.DecayEverything(ctx, req.Percent)
			}
			return h.service.DecayAll(ctx, req.TeamID, req.Tier, req.Percent)
		})
}

// HandleReverse undoes a reversible entry
// @Summary Reverse an entry
// @Tags ledger
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body ReverseRequest true "Request body"
// @Success 201 {object} domain.LedgerEntry
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Not found"
// @Failure 409 {object} ErrorResponse "Invalid state or conflict"
// @Failure 503 {object} ErrorResponse "Storage unavailable"
// @Router /api/v1/ledger/reverse [post]
func (h *LedgerHandler) HandleReverse(w http.ResponseWriter, r *http.Request) {
	handleAction(w, r, "Reverse", http.StatusCreated,
		func(ctx context.Context, req ReverseRequest) (*domain.LedgerEntry, error) {
			return h.service.Reverse(ctx, req.EntryID, req.Reason)
		})
}

// HandleTruncate clamps a bucket back into range
// @Summary Truncate a balance
// @Tags ledger
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body BucketKeyRequest true "Request body"
// @Success 200 {object} TruncateResponse
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Not found"
// @Failure 503 {object} ErrorResponse "Storage unavailable"
// @Router /api/v1/ledger/truncate [post]
func (h *LedgerHandler) HandleTruncate(w http.ResponseWriter, r *http.Request) {
	handleAction(w, r, "Truncate", http.StatusOK,
		func(ctx context.Context, req BucketKeyRequest) (TruncateResponse, error) {
			entry, err := h.service.Truncate(ctx, req.Key())
			if err != nil {
				return TruncateResponse{}, err
			}
			if entry == nil {
				return TruncateResponse{Message: MsgBalanceInRange}, nil
			}
			return TruncateResponse{Entry: entry}, nil
		})
}

// HandleListEntries lists ledger entries for audit
// @Summary List ledger entries
// @Tags ledger
// @Produce json
// @Security ApiKeyAuth
// @Param user_id query string false "User ID"
// @Param team_id query int false "Team ID"
// @Param tier query int false "Tier"
// @Param point_type query string false "EP or GP"
// @Param transaction_type query string false "Transaction type"
// @Param raid_id query int false "Raid ID"
// @Param item_drop_id query int false "Drop ID"
// @Param limit query int false "Maximum entries"
// @Success 200 {object} DataResponse{data=[]domain.LedgerEntry}
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Router /api/v1/ledger/entries [get]
func (h *LedgerHandler) HandleListEntries(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.LedgerFilter{UserID: q.Get("user_id")}

	var ok bool
	if filter.TeamID, ok = queryInt64(w, r, "team_id"); !ok {
		return
	}
	if filter.RaidID, ok = queryInt64(w, r, "raid_id"); !ok {
		return
	}
	if filter.ItemDropID, ok = queryInt64(w, r, "item_drop_id"); !ok {
		return
	}
	tier, ok := queryInt64(w, r, "tier")
	if !ok {
		return
	}
	if tier != nil {
		t := int(*tier)
		filter.Tier = &t
	}
	limit, ok := queryInt64(w, r, "limit")
	if !ok {
		return
	}
	if limit != nil {
		filter.Limit = int(*limit)
	}
	if raw := q.Get("point_type"); raw != "" {
		pointType, err := domain.ParsePointType(raw)
		if err != nil {
			respondServiceError(w, r, "List entries", err)
			return
		}
		filter.PointType = pointType
	}
	if raw := q.Get("transaction_type"); raw != "" {
		filter.Type = domain.TransactionType(strings.ToUpper(raw))
	}

	entries, err := h.service.Entries(r.Context(), filter)
	if err != nil {
		respondServiceError(w, r, "List entries", err)
		return
	}
	respondJSON(w, http.StatusOK, DataResponse{Data: entries})
}

// HandlePriority returns the priority snapshot of a team tier
// @Summary Priority snapshot
// @Tags ledger
// @Produce json
// @Security ApiKeyAuth
// @Param teamID path int true "Team ID"
// @Param tier query int true "Tier"
// @Success 200 {object} DataResponse{data=[]domain.Standing}
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /api/v1/teams/{teamID}/priority [get]
func (h *LedgerHandler) HandlePriority(w http.ResponseWriter, r *http.Request) {
	teamID, ok := pathInt64(w, r, ParamTeamID)
	if !ok {
		return
	}
	tier, ok := requiredQueryInt(w, r, "tier")
	if !ok {
		return
	}
	standings, err := h.service.PrioritySnapshot(r.Context(), teamID, tier)
	if err != nil {
		respondServiceError(w, r, "Priority", err)
		return
	}
	respondJSON(w, http.StatusOK, DataResponse{Data: standings})
}
