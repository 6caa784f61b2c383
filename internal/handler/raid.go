package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/argguild/epgpbot/internal/domain"
	"github.com/argguild/epgpbot/internal/raid"
)

// RaidHandler handles raid, signup and reward schedule endpoints
type RaidHandler struct {
	service raid.Service
	now     func() time.Time
}

// NewRaidHandler creates a new raid handler
func NewRaidHandler(service raid.Service) *RaidHandler {
	return &RaidHandler{service: service, now: time.Now}
}

// CreateRaidRequest is the body of a raid creation
type CreateRaidRequest struct {
	TeamID    int64     `json:"team_id" validate:"required,gt=0"`
	Zone      string    `json:"zone" validate:"required,raid_zone"`
	StartsAt  time.Time `json:"starts_at" validate:"required"`
	Notes     string    `json:"notes,omitempty" validate:"max=500"`
	CreatedBy string    `json:"created_by,omitempty" validate:"max=64"`
}

// SignupRequest is the body of a raid signup
type SignupRequest struct {
	UserID      string `json:"user_id" validate:"required,max=64"`
	CharacterID int64  `json:"character_id" validate:"required,gt=0"`
}

// SignupUserRequest names the user whose signup changes
type SignupUserRequest struct {
	UserID string `json:"user_id" validate:"required,max=64"`
}

// RaidGrantRequest is the body of a manual raid-wide grant
type RaidGrantRequest struct {
	Amount int64  `json:"amount" validate:"required"`
	Reason string `json:"reason,omitempty" validate:"max=500"`
}

// ExtendRequest lengthens a raid
type ExtendRequest struct {
	Minutes int `json:"minutes" validate:"required,gt=0,lte=1440"`
}

// RewardScheduleRequest is the body of a reward schedule upsert. Intervals
// are given in minutes.
type RewardScheduleRequest struct {
	TeamID          int64  `json:"team_id" validate:"required,gt=0"`
	Zone            string `json:"zone" validate:"required,raid_zone"`
	SigninMinutes   int    `json:"signin_minutes" validate:"gte=0"`
	StartBonus      int64  `json:"start_bonus" validate:"gte=0"`
	TickBonus       int64  `json:"tick_bonus" validate:"gte=0"`
	TickMinutes     int    `json:"tick_minutes" validate:"required,gt=0"`
	DurationMinutes int    `json:"duration_minutes" validate:"required,gt=0"`
	EndBonus        int64  `json:"end_bonus" validate:"gte=0"`
}

// HandleCreateRaid schedules a raid
// @Summary Create a raid
// @Tags raids
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body CreateRaidRequest true "Request body"
// @Success 201 {object} domain.Raid
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /api/v1/raids [post]
func (h *RaidHandler) HandleCreateRaid(w http.ResponseWriter, r *http.Request) {
	handleAction(w, r, "Create raid", http.StatusCreated,
		func(ctx context.Context, req CreateRaidRequest) (*domain.Raid, error) {
			zone, err := domain.ParseRaidZone(req.Zone)
			if err != nil {
				return nil, err
			}
			return h.service.CreateRaid(ctx, req.TeamID, zone, req.StartsAt, req.Notes, req.CreatedBy)
		})
}

// HandleGetRaid returns one raid
// @Summary Get a raid
// @Tags raids
// @Produce json
// @Security ApiKeyAuth
// @Param raidID path int true "Raid ID"
// @Success 200 {object} domain.Raid
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /api/v1/raids/{raidID} [get]
func (h *RaidHandler) HandleGetRaid(w http.ResponseWriter, r *http.Request) {
	raidID, ok := pathInt64(w, r, ParamRaidID)
	if !ok {
		return
	}
	found, err := h.service.GetRaid(r.Context(), raidID)
	if err != nil {
		respondServiceError(w, r, "Get raid", err)
		return
	}
	respondJSON(w, http.StatusOK, found)
}

// HandleSignup registers a character for a raid
// @Summary Sign up for a raid
// @Tags raids
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param raidID path int true "Raid ID"
// @Param request body SignupRequest true "Request body"
// @Success 201 {object} domain.Signup
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Not found"
// @Failure 409 {object} ErrorResponse "Invalid state or conflict"
// @Router /api/v1/raids/{raidID}/signups [post]
func (h *RaidHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	raidID, ok := pathInt64(w, r, ParamRaidID)
	if !ok {
		return
	}
	handleAction(w, r, "Signup", http.StatusCreated,
		func(ctx context.Context, req SignupRequest) (*domain.Signup, error) {
			return h.service.Signup(ctx, raidID, req.UserID, req.CharacterID)
		})
}

// HandleListSignups lists the signups of a raid
// @Summary List raid signups
// @Tags raids
// @Produce json
// @Security ApiKeyAuth
// @Param raidID path int true "Raid ID"
// @Success 200 {object} DataResponse{data=[]domain.Signup}
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /api/v1/raids/{raidID}/signups [get]
func (h *RaidHandler) HandleListSignups(w http.ResponseWriter, r *http.Request) {
	raidID, ok := pathInt64(w, r, ParamRaidID)
	if !ok {
		return
	}
	signups, err := h.service.ListSignups(r.Context(), raidID)
	if err != nil {
		respondServiceError(w, r, "List signups", err)
		return
	}
	respondJSON(w, http.StatusOK, DataResponse{Data: signups})
}

// HandleConfirmSignup confirms a user's signup
// @Summary Confirm a signup
// @Tags raids
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param raidID path int true "Raid ID"
// @Param request body SignupUserRequest true "Request body"
// @Success 200 {object} domain.Signup
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /api/v1/raids/{raidID}/signups/confirm [post]
func (h *RaidHandler) HandleConfirmSignup(w http.ResponseWriter, r *http.Request) {
	raidID, ok := pathInt64(w, r, ParamRaidID)
	if !ok {
		return
	}
	handleAction(w, r, "Confirm signup", http.StatusOK,
		func(ctx context.Context, req SignupUserRequest) (*domain.Signup, error) {
			return h.service.ConfirmSignup(ctx, raidID, req.UserID)
		})
}

// HandleEjectSignup removes a user from a raid's rewards
// @Summary Eject a signup
// @Tags raids
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param raidID path int true "Raid ID"
// @Param request body SignupUserRequest true "Request body"
// @Success 200 {object} domain.Signup
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /api/v1/raids/{raidID}/signups/eject [post]
func (h *RaidHandler) HandleEjectSignup(w http.ResponseWriter, r *http.Request) {
	raidID, ok := pathInt64(w, r, ParamRaidID)
	if !ok {
		return
	}
	handleAction(w, r, "Eject signup", http.StatusOK,
		func(ctx context.Context, req SignupUserRequest) (*domain.Signup, error) {
			return h.service.EjectSignup(ctx, raidID, req.UserID)
		})
}

// HandleGrantRaid grants effort to every active signup
// @Summary Grant effort to a raid
// @Tags raids
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param raidID path int true "Raid ID"
// @Param request body RaidGrantRequest true "Request body"
// @Success 201 {object} domain.RaidReward
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Not found"
// @Failure 503 {object} ErrorResponse "Storage unavailable"
// @Router /api/v1/raids/{raidID}/grant [post]
func (h *RaidHandler) HandleGrantRaid(w http.ResponseWriter, r *http.Request) {
	raidID, ok := pathInt64(w, r, ParamRaidID)
	if !ok {
		return
	}
	handleAction(w, r, "Grant raid", http.StatusCreated,
		func(ctx context.Context, req RaidGrantRequest) (*domain.RaidReward, error) {
			return h.service.GrantRaid(ctx, raidID, req.Amount, req.Reason)
		})
}

// HandleReward runs one reward tick now
// @Summary Run a reward tick
// @Tags raids
// @Produce json
// @Security ApiKeyAuth
// @Param raidID path int true "Raid ID"
// @Success 200 {object} domain.RaidReward
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Not found"
// @Failure 409 {object} ErrorResponse "Invalid state or conflict"
// @Failure 503 {object} ErrorResponse "Storage unavailable"
// @Router /api/v1/raids/{raidID}/reward [post]
func (h *RaidHandler) HandleReward(w http.ResponseWriter, r *http.Request) {
	raidID, ok := pathInt64(w, r, ParamRaidID)
	if !ok {
		return
	}
	reward, err := h.service.Reward(r.Context(), raidID, h.now())
	if err != nil {
		respondServiceError(w, r, "Reward", err)
		return
	}
	respondJSON(w, http.StatusOK, reward)
}

// HandleExtend lengthens a raid
// @Summary Extend a raid
// @Tags raids
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param raidID path int true "Raid ID"
// @Param request body ExtendRequest true "Request body"
// @Success 200 {object} domain.Raid
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Not found"
// @Failure 409 {object} ErrorResponse "Invalid state or conflict"
// @Router /api/v1/raids/{raidID}/extend [post]
func (h *RaidHandler) HandleExtend(w http.ResponseWriter, r *http.Request) {
	raidID, ok := pathInt64(w, r, ParamRaidID)
	if !ok {
		return
	}
	handleAction(w, r, "Extend raid", http.StatusOK,
		func(ctx context.Context, req ExtendRequest) (*domain.Raid, error) {
			return h.service.Extend(ctx, raidID, time.Duration(req.Minutes)*time.Minute)
		})
}

// HandleSetRewardSchedule creates or replaces a team's reward schedule for a zone
// @Summary Set a reward schedule
// @Tags raids
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body RewardScheduleRequest true "Request body"
// @Success 200 {object} domain.RewardSchedule
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /api/v1/reward-schedules [put]
func (h *RaidHandler) HandleSetRewardSchedule(w http.ResponseWriter, r *http.Request) {
	handleAction(w, r, "Set reward schedule", http.StatusOK,
		func(ctx context.Context, req RewardScheduleRequest) (*domain.RewardSchedule, error) {
			zone, err := domain.ParseRaidZone(req.Zone)
			if err != nil {
				return nil, err
			}
			return h.service.SetRewardSchedule(ctx, domain.RewardSchedule{
				TeamID:         req.TeamID,
				Zone:           zone,
				SigninInterval: time.Duration(req.SigninMinutes) * time.Minute,
				StartBonus:     req.StartBonus,
				TickBonus:      req.TickBonus,
				TickInterval:   time.Duration(req.TickMinutes) * time.Minute,
				Duration:       time.Duration(req.DurationMinutes) * time.Minute,
				EndBonus:       req.EndBonus,
			})
		})
}
