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

func TestHandleCreateTeam(t *testing.T) {
	m := mocks.NewMockRosterService(t)
	m.On("CreateTeam", mock.Anything, "Main", "tuesdays").Return(&domain.Team{ID: 1, Name: "Main", Description: "tuesdays"}, nil).Once()
	m.On("CreateTeam", mock.Anything, "Main", "").Return(nil, fmt.Errorf("%w: %q", domain.ErrTeamExists, "Main")).Once()
	h := NewRosterHandler(m)

	w := serve(t, http.MethodPost, "/teams", "/teams", CreateTeamRequest{Name: "Main", Description: "tuesdays"}, h.HandleCreateTeam)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, int64(1), decodeBody[domain.Team](t, w).ID)

	w = serve(t, http.MethodPost, "/teams", "/teams", CreateTeamRequest{Name: "Main"}, h.HandleCreateTeam)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), domain.ErrMsgTeamExists)

	w = serve(t, http.MethodPost, "/teams", "/teams", CreateTeamRequest{}, h.HandleCreateTeam)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleAssign(t *testing.T) {
	tests := []struct {
		name           string
		target         string
		body           interface{}
		setupMock      func(*mocks.MockRosterService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:   "Newly assigned",
			target: "/teams/1/assign",
			body:   AssignRequest{CharacterID: 7},
			setupMock: func(m *mocks.MockRosterService) {
				m.On("AssignToTeam", mock.Anything, int64(1), int64(7)).Return(true, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   MsgAssigned,
		},
		{
			name:   "Already assigned",
			target: "/teams/1/assign",
			body:   AssignRequest{CharacterID: 7},
			setupMock: func(m *mocks.MockRosterService) {
				m.On("AssignToTeam", mock.Anything, int64(1), int64(7)).Return(false, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   MsgAlreadyAssigned,
		},
		{
			name:   "Unknown character",
			target: "/teams/1/assign",
			body:   AssignRequest{CharacterID: 99},
			setupMock: func(m *mocks.MockRosterService) {
				m.On("AssignToTeam", mock.Anything, int64(1), int64(99)).Return(false, fmt.Errorf("%w: 99", domain.ErrCharacterNotFound))
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   domain.ErrMsgCharacterNotFound,
		},
		{
			name:           "Bad team id",
			target:         "/teams/0/assign",
			body:           AssignRequest{CharacterID: 7},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ParamTeamID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := mocks.NewMockRosterService(t)
			if tt.setupMock != nil {
				tt.setupMock(m)
			}
			w := serve(t, http.MethodPost, "/teams/{teamID}/assign", tt.target, tt.body, NewRosterHandler(m).HandleAssign)
			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
		})
	}
}

func TestHandleRegisterUserAndCharacter(t *testing.T) {
	m := mocks.NewMockRosterService(t)
	m.On("RegisterUser", mock.Anything, domain.User{ID: "1001", Name: "korkd"}).
		Return(&domain.User{ID: "1001", Name: "korkd", DisplayName: "korkd"}, nil)
	m.On("RegisterCharacter", mock.Anything, domain.Character{UserID: "1001", Name: "Grom", Class: "warrior", Role: "tank"}).
		Return(&domain.Character{ID: 3, UserID: "1001", Name: "Grom", Class: domain.ClassWarrior, Role: domain.RoleTank}, nil)
	h := NewRosterHandler(m)

	w := serve(t, http.MethodPost, "/users", "/users", RegisterUserRequest{ID: "1001", Name: "korkd"}, h.HandleRegisterUser)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "korkd", decodeBody[domain.User](t, w).DisplayName)

	w = serve(t, http.MethodPost, "/characters", "/characters",
		RegisterCharacterRequest{UserID: "1001", Name: "Grom", Class: "warrior", Role: "tank"}, h.HandleRegisterCharacter)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, int64(3), decodeBody[domain.Character](t, w).ID)

	w = serve(t, http.MethodPost, "/characters", "/characters",
		RegisterCharacterRequest{UserID: "1001", Name: "Grom", Class: "monk", Role: "tank"}, h.HandleRegisterCharacter)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Unknown character class")
}

func TestHandleFindUser(t *testing.T) {
	m := mocks.NewMockRosterService(t)
	m.On("FindUser", mock.Anything, "<@1001>").Return(&domain.User{ID: "1001", Name: "korkd"}, nil)
	m.On("FindUser", mock.Anything, "nobody").Return(nil, fmt.Errorf("%w: %q", domain.ErrUserNotFound, "nobody"))
	h := NewRosterHandler(m)

	w := serve(t, http.MethodGet, "/users/search", "/users/search?q=%3C%401001%3E", nil, h.HandleFindUser)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "1001", decodeBody[domain.User](t, w).ID)

	w = serve(t, http.MethodGet, "/users/search", "/users/search?q=nobody", nil, h.HandleFindUser)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleListTeamsAndRoster(t *testing.T) {
	m := mocks.NewMockRosterService(t)
	m.On("ListTeams", mock.Anything).Return([]domain.Team{{ID: 1, Name: "Main"}}, nil)
	m.On("ListRoster", mock.Anything, int64(1)).Return([]domain.Character{{ID: 3, Name: "Grom"}}, nil)
	h := NewRosterHandler(m)

	w := serve(t, http.MethodGet, "/teams", "/teams", nil, h.HandleListTeams)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"Main"`)

	w = serve(t, http.MethodGet, "/teams/{teamID}/roster", "/teams/1/roster", nil, h.HandleListRoster)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"Grom"`)
}
