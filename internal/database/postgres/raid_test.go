package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/argguild/epgpbot/internal/concurrency"
	"github.com/argguild/epgpbot/internal/domain"
	"github.com/argguild/epgpbot/internal/event"
	"github.com/argguild/epgpbot/internal/ledger"
	"github.com/argguild/epgpbot/internal/raid"
)

func TestRaidRepository_ScheduleAndSignups(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()
	team := seedTeam(t, s)
	c := seedRaider(t, s, team.ID, "a")

	schedule := &domain.RewardSchedule{
		TeamID: team.ID, Zone: domain.ZoneMC,
		SigninInterval: 20 * time.Minute, TickInterval: 30 * time.Minute, Duration: 4 * time.Hour,
		StartBonus: 10, TickBonus: 5, EndBonus: 15,
	}
	require.NoError(t, s.UpsertRewardSchedule(ctx, schedule))
	schedule.TickBonus = 7
	require.NoError(t, s.UpsertRewardSchedule(ctx, schedule))

	got, err := s.GetRewardSchedule(ctx, team.ID, domain.ZoneMC)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, *schedule, *got)

	none, err := s.GetRewardSchedule(ctx, team.ID, domain.ZoneBWL)
	require.NoError(t, err)
	assert.Nil(t, none)

	start := time.Now().UTC().Truncate(time.Second)
	r := &domain.Raid{TeamID: team.ID, Zone: domain.ZoneMC, StartsAt: start, EndsAt: start.Add(4 * time.Hour)}
	require.NoError(t, s.CreateRaid(ctx, r))

	signup := &domain.Signup{RaidID: r.ID, UserID: "a", CharacterID: c.ID, SignupAt: start}
	require.NoError(t, s.SaveSignup(ctx, signup))
	firstID := signup.ID
	confirmedAt := start.Add(time.Minute)
	signup.Confirmed, signup.ConfirmedAt = true, &confirmedAt
	require.NoError(t, s.SaveSignup(ctx, signup))
	assert.Equal(t, firstID, signup.ID, "a user has one signup per raid")

	stored, err := s.GetSignup(ctx, r.ID, "a")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.True(t, stored.Confirmed)

	err = s.SaveSignup(ctx, &domain.Signup{RaidID: r.ID, UserID: "b", CharacterID: 999, SignupAt: start})
	assert.ErrorIs(t, err, domain.ErrCharacterNotFound)

	open, err := s.ListOpenRaids(ctx)
	require.NoError(t, err)
	assert.Len(t, open, 1)
}

func TestRaidService_RewardLifecycle(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()
	team := seedTeam(t, s)

	locks := concurrency.NewLockManager()
	bus := event.NewMemoryBus()
	ledgerSvc := ledger.NewService(s, locks, bus, s, ledger.NewPolicy(1000))
	svc := raid.NewService(s, s, ledgerSvc, locks, bus)

	_, err := svc.SetRewardSchedule(ctx, domain.RewardSchedule{
		TeamID: team.ID, Zone: domain.ZoneBWL,
		SigninInterval: 30 * time.Minute, TickInterval: 15 * time.Minute, Duration: time.Hour,
		StartBonus: 10, TickBonus: 5, EndBonus: 20,
	})
	require.NoError(t, err)

	start := time.Date(2026, 3, 3, 20, 0, 0, 0, time.UTC)
	r, err := svc.CreateRaid(ctx, team.ID, domain.ZoneBWL, start, "", "officer")
	require.NoError(t, err)

	for _, u := range []string{"a", "b"} {
		c := seedRaider(t, s, team.ID, u)
		_, err := ledgerSvc.EnsureBuckets(ctx, u, team.ID)
		require.NoError(t, err)
		_, err = svc.Signup(ctx, r.ID, u, c.ID)
		require.NoError(t, err)
	}
	_, err = svc.ConfirmSignup(ctx, r.ID, "a")
	require.NoError(t, err)

	reward, err := svc.Reward(ctx, r.ID, start)
	require.NoError(t, err)
	assert.True(t, reward.Started)
	assert.Len(t, reward.Entries, 1, "only confirmed signups are rewarded")

	reward, err = svc.Reward(ctx, r.ID, start.Add(61*time.Minute))
	require.NoError(t, err)
	assert.True(t, reward.Closed)

	epKey := domain.BucketKey{UserID: "a", TeamID: team.ID, Tier: 2, PointType: domain.PointTypeEP}
	bucket, err := s.GetBucket(ctx, epKey)
	require.NoError(t, err)
	assert.Equal(t, int64(35), bucket.Balance)

	stored, err := s.GetRaid(ctx, r.ID)
	require.NoError(t, err)
	assert.True(t, stored.Closed)
	require.NotNil(t, stored.LastRewardAt)

	entries, err := s.ListLedgerEntries(ctx, domain.LedgerFilter{RaidID: &r.ID})
	require.NoError(t, err)
	assert.Len(t, entries, 3)

	_, err = svc.Reward(ctx, r.ID, start.Add(2*time.Hour))
	assert.ErrorIs(t, err, domain.ErrRaidClosed)
}
