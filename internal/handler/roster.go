package handler

import (
	"net/http"

	"github.com/argguild/epgpbot/internal/domain"
	"github.com/argguild/epgpbot/internal/roster"
)

// RosterHandler handles team, user and character endpoints
type RosterHandler struct {
	service roster.Service
}

// NewRosterHandler creates a new roster handler
func NewRosterHandler(service roster.Service) *RosterHandler {
	return &RosterHandler{service: service}
}

// CreateTeamRequest is the body of a team creation
type CreateTeamRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description,omitempty" validate:"max=500"`
}

// RegisterUserRequest is the body of a user registration
type RegisterUserRequest struct {
	ID          string `json:"id" validate:"required,max=64"`
	GuildID     string `json:"guild_id,omitempty" validate:"max=64"`
	Name        string `json:"name" validate:"required,max=100"`
	DisplayName string `json:"display_name,omitempty" validate:"max=100"`
}

// RegisterCharacterRequest is the body of a character registration
type RegisterCharacterRequest struct {
	UserID string `json:"user_id" validate:"required,max=64"`
	Name   string `json:"name" validate:"required,max=50"`
	Guild  string `json:"guild,omitempty" validate:"max=100"`
	Class  string `json:"class" validate:"required,char_class"`
	Role   string `json:"role" validate:"required,role"`
}

// AssignRequest is the body of a roster assignment
type AssignRequest struct {
	CharacterID int64 `json:"character_id" validate:"required,gt=0"`
}

// AssignResponse reports whether the character was newly assigned
type AssignResponse struct {
	Message string `json:"message"`
	Added   bool   `json:"added"`
}

// HandleCreateTeam creates a team
// @Summary Create a team
// @Tags roster
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body CreateTeamRequest true "Request body"
// @Success 201 {object} domain.Team
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 409 {object} ErrorResponse "Invalid state or conflict"
// @Router /api/v1/teams [post]
func (h *RosterHandler) HandleCreateTeam(w http.ResponseWriter, r *http.Request) {
	var req CreateTeamRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Create team"); err != nil {
		return
	}
	team, err := h.service.CreateTeam(r.Context(), req.Name, req.Description)
	if err != nil {
		respondServiceError(w, r, "Create team", err)
		return
	}
	respondJSON(w, http.StatusCreated, team)
}

// HandleListTeams lists every team
// @Summary List teams
// @Tags roster
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} DataResponse{data=[]domain.Team}
// @Router /api/v1/teams [get]
func (h *RosterHandler) HandleListTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := h.service.ListTeams(r.Context())
	if err != nil {
		respondServiceError(w, r, "List teams", err)
		return
	}
	respondJSON(w, http.StatusOK, DataResponse{Data: teams})
}

// HandleAssign puts a character on a team
// @Summary Assign a character to a team
// @Tags roster
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param teamID path int true "Team ID"
// @Param request body AssignRequest true "Request body"
// @Success 201 {object} AssignResponse
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Not found"
// @Failure 409 {object} ErrorResponse "Invalid state or conflict"
// @Router /api/v1/teams/{teamID}/assign [post]
func (h *RosterHandler) HandleAssign(w http.ResponseWriter, r *http.Request) {
	teamID, ok := pathInt64(w, r, ParamTeamID)
	if !ok {
		return
	}
	var req AssignRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Assign"); err != nil {
		return
	}
	added, err := h.service.AssignToTeam(r.Context(), teamID, req.CharacterID)
	if err != nil {
		respondServiceError(w, r, "Assign", err)
		return
	}
	if !added {
		respondJSON(w, http.StatusOK, AssignResponse{Message: MsgAlreadyAssigned})
		return
	}
	respondJSON(w, http.StatusCreated, AssignResponse{Message: MsgAssigned, Added: true})
}

// HandleListRoster lists the characters of a team
// @Summary List a team roster
// @Tags roster
// @Produce json
// @Security ApiKeyAuth
// @Param teamID path int true "Team ID"
// @Success 200 {object} DataResponse{data=[]domain.Character}
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /api/v1/teams/{teamID}/roster [get]
func (h *RosterHandler) HandleListRoster(w http.ResponseWriter, r *http.Request) {
	teamID, ok := pathInt64(w, r, ParamTeamID)
	if !ok {
		return
	}
	members, err := h.service.ListRoster(r.Context(), teamID)
	if err != nil {
		respondServiceError(w, r, "List roster", err)
		return
	}
	respondJSON(w, http.StatusOK, DataResponse{Data: members})
}

// HandleRegisterUser creates or updates a user
// @Summary Register a user
// @Tags roster
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body RegisterUserRequest true "Request body"
// @Success 200 {object} domain.User
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Router /api/v1/users [post]
func (h *RosterHandler) HandleRegisterUser(w http.ResponseWriter, r *http.Request) {
	var req RegisterUserRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Register user"); err != nil {
		return
	}
	user, err := h.service.RegisterUser(r.Context(), domain.User{
		ID:          req.ID,
		GuildID:     req.GuildID,
		Name:        req.Name,
		DisplayName: req.DisplayName,
	})
	if err != nil {
		respondServiceError(w, r, "Register user", err)
		return
	}
	respondJSON(w, http.StatusOK, user)
}

// HandleFindUser resolves a mention, name or character name to a user
// @Summary Find a user
// @Tags roster
// @Produce json
// @Security ApiKeyAuth
// @Param q query string true "Mention, name or character name"
// @Success 200 {object} domain.User
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /api/v1/users/search [get]
func (h *RosterHandler) HandleFindUser(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	user, err := h.service.FindUser(r.Context(), query)
	if err != nil {
		respondServiceError(w, r, "Find user", err)
		return
	}
	respondJSON(w, http.StatusOK, user)
}

// HandleRegisterCharacter registers a character for a user
// @Summary Register a character
// @Tags roster
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body RegisterCharacterRequest true "Request body"
// @Success 201 {object} domain.Character
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Not found"
// @Failure 409 {object} ErrorResponse "Invalid state or conflict"
// @Router /api/v1/characters [post]
func (h *RosterHandler) HandleRegisterCharacter(w http.ResponseWriter, r *http.Request) {
	var req RegisterCharacterRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Register character"); err != nil {
		return
	}
	character, err := h.service.RegisterCharacter(r.Context(), domain.Character{
		UserID: req.UserID,
		Name:   req.Name,
		Guild:  req.Guild,
		Class:  domain.CharacterClass(req.Class),
		Role:   domain.Role(req.Role),
	})
	if err != nil {
		respondServiceError(w, r, "Register character", err)
		return
	}
	respondJSON(w, http.StatusCreated, character)
}
