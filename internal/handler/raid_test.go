package handler

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/argguild/epgpbot/internal/domain"
	"github.com/argguild/epgpbot/internal/mocks"
)

func TestHandleCreateRaid(t *testing.T) {
	starts := time.Date(2026, 10, 20, 19, 30, 0, 0, time.UTC)
	m := mocks.NewMockRaidService(t)
	m.On("CreateRaid", mock.Anything, int64(1), domain.RaidZone("BWL"), starts, "farm", "1001").
		Return(&domain.Raid{ID: 5, TeamID: 1, Zone: "BWL", StartsAt: starts, EndsAt: starts.Add(3 * time.Hour)}, nil)
	h := NewRaidHandler(m)

	w := serve(t, http.MethodPost, "/raids", "/raids",
		CreateRaidRequest{TeamID: 1, Zone: "bwl", StartsAt: starts, Notes: "farm", CreatedBy: "1001"}, h.HandleCreateRaid)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, int64(5), decodeBody[domain.Raid](t, w).ID)

	w = serve(t, http.MethodPost, "/raids", "/raids",
		CreateRaidRequest{TeamID: 1, Zone: "Karazhan", StartsAt: starts}, h.HandleCreateRaid)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Unknown raid zone")

	w = serve(t, http.MethodPost, "/raids", "/raids", CreateRaidRequest{TeamID: 1, Zone: "BWL"}, h.HandleCreateRaid)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "starts_at")
}

func TestHandleSignupLifecycle(t *testing.T) {
	m := mocks.NewMockRaidService(t)
	m.On("Signup", mock.Anything, int64(5), "1001", int64(3)).Return(&domain.Signup{ID: 1, RaidID: 5, UserID: "1001", CharacterID: 3}, nil)
	m.On("ConfirmSignup", mock.Anything, int64(5), "1001").Return(&domain.Signup{ID: 1, RaidID: 5, UserID: "1001", Confirmed: true}, nil)
	m.On("EjectSignup", mock.Anything, int64(5), "1002").Return(nil, fmt.Errorf("%w: 1002", domain.ErrSignupNotFound))
	m.On("ListSignups", mock.Anything, int64(5)).Return([]domain.Signup{{ID: 1, UserID: "1001"}}, nil)
	h := NewRaidHandler(m)

	w := serve(t, http.MethodPost, "/raids/{raidID}/signups", "/raids/5/signups", SignupRequest{UserID: "1001", CharacterID: 3}, h.HandleSignup)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = serve(t, http.MethodPost, "/raids/{raidID}/signups/confirm", "/raids/5/signups/confirm", SignupUserRequest{UserID: "1001"}, h.HandleConfirmSignup)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decodeBody[domain.Signup](t, w).Confirmed)

	w = serve(t, http.MethodPost, "/raids/{raidID}/signups/eject", "/raids/5/signups/eject", SignupUserRequest{UserID: "1002"}, h.HandleEjectSignup)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), domain.ErrMsgSignupNotFound)

	w = serve(t, http.MethodGet, "/raids/{raidID}/signups", "/raids/5/signups", nil, h.HandleListSignups)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":"1001"`)
}

func TestHandleReward_UsesHandlerClock(t *testing.T) {
	now := time.Date(2026, 10, 20, 20, 0, 0, 0, time.UTC)
	m := mocks.NewMockRaidService(t)
	m.On("Reward", mock.Anything, int64(5), now).Return(&domain.RaidReward{RaidID: 5, Amount: 10, Started: true}, nil).Once()
	m.On("Reward", mock.Anything, int64(5), now).Return(nil, fmt.Errorf("%w: 5", domain.ErrRaidClosed)).Once()
	h := NewRaidHandler(m)
	h.now = func() time.Time { return now }

	w := serve(t, http.MethodPost, "/raids/{raidID}/reward", "/raids/5/reward", nil, h.HandleReward)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(10), decodeBody[domain.RaidReward](t, w).Amount)

	w = serve(t, http.MethodPost, "/raids/{raidID}/reward", "/raids/5/reward", nil, h.HandleReward)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), domain.ErrMsgRaidClosed)
}

func TestHandleGrantRaidAndExtend(t *testing.T) {
	m := mocks.NewMockRaidService(t)
	m.On("GrantRaid", mock.Anything, int64(5), int64(25), "world boss").
		Return(&domain.RaidReward{RaidID: 5, Amount: 25, Entries: []domain.LedgerEntry{{ID: 1}, {ID: 2}}}, nil)
	m.On("Extend", mock.Anything, int64(5), 30*time.Minute).Return(&domain.Raid{ID: 5}, nil)
	h := NewRaidHandler(m)

	w := serve(t, http.MethodPost, "/raids/{raidID}/grant", "/raids/5/grant", RaidGrantRequest{Amount: 25, Reason: "world boss"}, h.HandleGrantRaid)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Len(t, decodeBody[domain.RaidReward](t, w).Entries, 2)

	w = serve(t, http.MethodPost, "/raids/{raidID}/extend", "/raids/5/extend", ExtendRequest{Minutes: 30}, h.HandleExtend)
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(t, http.MethodPost, "/raids/{raidID}/extend", "/raids/5/extend", ExtendRequest{Minutes: 0}, h.HandleExtend)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleSetRewardSchedule(t *testing.T) {
	want := domain.RewardSchedule{
		TeamID:         1,
		Zone:           "MC",
		SigninInterval: 15 * time.Minute,
		StartBonus:     10,
		TickBonus:      5,
		TickInterval:   30 * time.Minute,
		Duration:       3 * time.Hour,
		EndBonus:       10,
	}
	m := mocks.NewMockRaidService(t)
	m.On("SetRewardSchedule", mock.Anything, want).Return(&want, nil)
	h := NewRaidHandler(m)

	w := serve(t, http.MethodPut, "/reward-schedules", "/reward-schedules", RewardScheduleRequest{
		TeamID: 1, Zone: "mc", SigninMinutes: 15, StartBonus: 10, TickBonus: 5, TickMinutes: 30, DurationMinutes: 180, EndBonus: 10,
	}, h.HandleSetRewardSchedule)
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(t, http.MethodPut, "/reward-schedules", "/reward-schedules", RewardScheduleRequest{TeamID: 1, Zone: "mc"}, h.HandleSetRewardSchedule)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "tick_minutes")
}
