package raid

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/argguild/epgpbot/internal/concurrency"
	"github.com/argguild/epgpbot/internal/database/memory"
	"github.com/argguild/epgpbot/internal/domain"
	"github.com/argguild/epgpbot/internal/event"
	"github.com/argguild/epgpbot/internal/ledger"
)

var testStart = time.Date(2026, 3, 3, 20, 0, 0, 0, time.UTC)

type raidFixture struct {
	store    *memory.Store
	ledger   ledger.Service
	svc      Service
	chars    map[string]int64
	rewarded atomic.Int32
}

func newRaidFixture(t *testing.T, users ...string) *raidFixture {
	t.Helper()
	ctx := context.Background()
	f := &raidFixture{store: memory.NewStore(), chars: map[string]int64{}}
	bus := event.NewMemoryBus()
	bus.Subscribe(event.RaidRewarded, func(context.Context, event.Event) error {
		f.rewarded.Add(1)
		return nil
	})
	locks := concurrency.NewLockManager()
	f.ledger = ledger.NewService(f.store, locks, bus, f.store, ledger.NewPolicy(1000))
	f.svc = NewService(f.store, f.store, f.ledger, locks, bus)

	require.NoError(t, f.store.CreateTeam(ctx, &domain.Team{Name: "Main"}))
	_, err := f.svc.SetRewardSchedule(ctx, domain.RewardSchedule{
		TeamID: 1, Zone: domain.ZoneBWL,
		SigninInterval: 30 * time.Minute,
		StartBonus:     10, TickBonus: 5, EndBonus: 20,
		TickInterval: 15 * time.Minute, Duration: time.Hour,
	})
	require.NoError(t, err)

	for _, u := range users {
		require.NoError(t, f.store.UpsertUser(ctx, &domain.User{ID: u, Name: u}))
		c := &domain.Character{UserID: u, Name: "Char" + u, Class: domain.ClassPriest, Role: domain.RoleHealer}
		require.NoError(t, f.store.CreateCharacter(ctx, c))
		f.chars[u] = c.ID
		_, err := f.ledger.EnsureBuckets(ctx, u, 1)
		require.NoError(t, err)
	}
	return f
}

func (f *raidFixture) createRaid(t *testing.T) *domain.Raid {
	t.Helper()
	raid, err := f.svc.CreateRaid(context.Background(), 1, "bwl", testStart, "", "officer")
	require.NoError(t, err)
	return raid
}

func (f *raidFixture) signup(t *testing.T, raidID int64, user string, at time.Time) {
	t.Helper()
	require.NoError(t, f.store.SaveSignup(context.Background(), &domain.Signup{
		RaidID: raidID, UserID: user, CharacterID: f.chars[user], SignupAt: at,
	}))
}

func (f *raidFixture) ep(t *testing.T, user string) int64 {
	t.Helper()
	b, err := f.ledger.GetBucket(context.Background(), domain.BucketKey{UserID: user, TeamID: 1, Tier: 2, PointType: domain.PointTypeEP})
	require.NoError(t, err)
	return b.Balance
}

func TestCreateRaid(t *testing.T) {
	ctx := context.Background()
	f := newRaidFixture(t)

	raid := f.createRaid(t)
	assert.Equal(t, domain.ZoneBWL, raid.Zone)
	assert.Equal(t, testStart.Add(time.Hour), raid.EndsAt)
	assert.False(t, raid.Started)

	_, err := f.svc.CreateRaid(ctx, 1, domain.ZoneMC, testStart, "", "")
	assert.ErrorIs(t, err, domain.ErrRewardScheduleNotFound)

	_, err = f.svc.CreateRaid(ctx, 1, "Karazhan", testStart, "", "")
	assert.ErrorIs(t, err, domain.ErrInvalidParameter)

	_, err = f.svc.GetRaid(ctx, 99)
	assert.ErrorIs(t, err, domain.ErrRaidNotFound)
}

func TestSetRewardSchedule_Validation(t *testing.T) {
	ctx := context.Background()
	f := newRaidFixture(t)

	_, err := f.svc.SetRewardSchedule(ctx, domain.RewardSchedule{TeamID: 1, Zone: domain.ZoneMC, Duration: time.Hour})
	assert.ErrorIs(t, err, domain.ErrInvalidParameter)
	_, err = f.svc.SetRewardSchedule(ctx, domain.RewardSchedule{TeamID: 1, Zone: domain.ZoneMC, TickInterval: time.Minute, Duration: time.Hour, TickBonus: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidParameter)
	_, err = f.svc.SetRewardSchedule(ctx, domain.RewardSchedule{Zone: domain.ZoneMC, TickInterval: time.Minute, Duration: time.Hour})
	assert.ErrorIs(t, err, domain.ErrInvalidParameter)
}

func TestReward_Lifecycle(t *testing.T) {
	ctx := context.Background()
	f := newRaidFixture(t, "a", "b", "c")
	raid := f.createRaid(t)
	f.signup(t, raid.ID, "a", testStart.Add(-time.Hour))
	f.signup(t, raid.ID, "b", testStart.Add(-time.Hour))
	f.signup(t, raid.ID, "c", testStart.Add(-time.Hour))
	_, err := f.svc.ConfirmSignup(ctx, raid.ID, "a")
	require.NoError(t, err)
	_, err = f.svc.ConfirmSignup(ctx, raid.ID, "b")
	require.NoError(t, err)
	_, err = f.svc.EjectSignup(ctx, raid.ID, "b")
	require.NoError(t, err)

	reward, err := f.svc.Reward(ctx, raid.ID, testStart)
	require.NoError(t, err)
	assert.True(t, reward.Started)
	assert.False(t, reward.Closed)
	assert.Equal(t, int64(10), reward.Amount)
	require.Len(t, reward.Entries, 1)
	assert.Equal(t, "a", reward.Entries[0].Key.UserID)
	require.NotNil(t, reward.Entries[0].Context.RaidID)
	assert.Equal(t, raid.ID, *reward.Entries[0].Context.RaidID)
	assert.Equal(t, ReasonStartBonus, reward.Entries[0].Context.Reason)

	_, err = f.svc.Reward(ctx, raid.ID, testStart.Add(15*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, int64(15), f.ep(t, "a"))

	reward, err = f.svc.Reward(ctx, raid.ID, testStart.Add(61*time.Minute))
	require.NoError(t, err)
	assert.True(t, reward.Closed)
	assert.Equal(t, int64(25), reward.Amount)
	assert.Len(t, reward.Entries, 2)
	assert.Equal(t, int64(40), f.ep(t, "a"))
	assert.Equal(t, int64(0), f.ep(t, "b"), "ejected signups earn nothing")
	assert.Equal(t, int64(0), f.ep(t, "c"), "unconfirmed signups earn nothing")

	_, err = f.svc.Reward(ctx, raid.ID, testStart.Add(2*time.Hour))
	assert.ErrorIs(t, err, domain.ErrRaidClosed)
	assert.Equal(t, int32(3), f.rewarded.Load())

	stored, err := f.svc.GetRaid(ctx, raid.ID)
	require.NoError(t, err)
	assert.True(t, stored.Closed)
	require.NotNil(t, stored.LastRewardAt)
	assert.Equal(t, testStart.Add(61*time.Minute), *stored.LastRewardAt)
}

func TestReward_StorageFailureRollsBack(t *testing.T) {
	ctx := context.Background()
	f := newRaidFixture(t, "a")
	raid := f.createRaid(t)
	f.signup(t, raid.ID, "a", testStart)
	_, err := f.svc.ConfirmSignup(ctx, raid.ID, "a")
	require.NoError(t, err)

	f.store.FailNext(memory.OpUpdateRaidProgress, errors.New("disk full"))
	_, err = f.svc.Reward(ctx, raid.ID, testStart)
	assert.ErrorIs(t, err, domain.ErrStorageFailure)
	assert.Equal(t, int64(0), f.ep(t, "a"))

	stored, err := f.svc.GetRaid(ctx, raid.ID)
	require.NoError(t, err)
	assert.False(t, stored.Started)

	_, err = f.svc.Reward(ctx, raid.ID, testStart)
	require.NoError(t, err)
	assert.Equal(t, int64(10), f.ep(t, "a"))
}

func TestReward_MissingBucketAbortsTick(t *testing.T) {
	ctx := context.Background()
	f := newRaidFixture(t, "a")
	raid := f.createRaid(t)
	require.NoError(t, f.store.UpsertUser(ctx, &domain.User{ID: "z", Name: "z"}))
	c := &domain.Character{UserID: "z", Name: "Zed", Class: domain.ClassMage, Role: domain.RoleCaster}
	require.NoError(t, f.store.CreateCharacter(ctx, c))
	f.chars["z"] = c.ID
	f.signup(t, raid.ID, "a", testStart)
	f.signup(t, raid.ID, "z", testStart)
	_, err := f.svc.ConfirmDueSignups(ctx, raid.ID, testStart)
	require.NoError(t, err)

	_, err = f.svc.Reward(ctx, raid.ID, testStart)
	assert.ErrorIs(t, err, domain.ErrBucketNotFound)
	assert.Equal(t, int64(0), f.ep(t, "a"))
}

func TestConfirmDueSignups(t *testing.T) {
	ctx := context.Background()
	f := newRaidFixture(t, "early", "late", "tardy")
	raid := f.createRaid(t)
	f.signup(t, raid.ID, "early", testStart.Add(-time.Hour))
	f.signup(t, raid.ID, "late", testStart.Add(10*time.Minute))
	f.signup(t, raid.ID, "tardy", testStart.Add(45*time.Minute))

	n, err := f.svc.ConfirmDueSignups(ctx, raid.ID, testStart.Add(-time.Minute))
	require.NoError(t, err)
	assert.Zero(t, n, "nothing is confirmed before the raid starts")

	n, err = f.svc.ConfirmDueSignups(ctx, raid.ID, testStart.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = f.svc.ConfirmDueSignups(ctx, raid.ID, testStart.Add(time.Hour))
	require.NoError(t, err)
	assert.Zero(t, n)

	signups, err := f.svc.ListSignups(ctx, raid.ID)
	require.NoError(t, err)
	confirmed := map[string]bool{}
	for _, s := range signups {
		confirmed[s.UserID] = s.Confirmed
	}
	assert.Equal(t, map[string]bool{"early": true, "late": true, "tardy": false}, confirmed)
}

func TestProcessDueRewards(t *testing.T) {
	ctx := context.Background()
	f := newRaidFixture(t, "a")
	raid := f.createRaid(t)
	f.signup(t, raid.ID, "a", testStart.Add(-time.Hour))

	n, err := f.svc.ProcessDueRewards(ctx, testStart.Add(-time.Minute))
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = f.svc.ProcessDueRewards(ctx, testStart)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, int64(10), f.ep(t, "a"), "due signups are confirmed before the tick")

	n, err = f.svc.ProcessDueRewards(ctx, testStart.Add(5*time.Minute))
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = f.svc.ProcessDueRewards(ctx, testStart.Add(15*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, int64(15), f.ep(t, "a"))
}

func TestExtend(t *testing.T) {
	ctx := context.Background()
	f := newRaidFixture(t)
	raid := f.createRaid(t)

	extended, err := f.svc.Extend(ctx, raid.ID, 30*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, testStart.Add(90*time.Minute), extended.EndsAt)

	_, err = f.svc.Extend(ctx, raid.ID, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidParameter)

	_, err = f.svc.Reward(ctx, raid.ID, testStart)
	require.NoError(t, err)
	_, err = f.svc.Reward(ctx, raid.ID, testStart.Add(2*time.Hour))
	require.NoError(t, err)

	_, err = f.svc.Extend(ctx, raid.ID, time.Hour)
	assert.ErrorIs(t, err, domain.ErrRaidClosed)
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestGrantRaid(t *testing.T) {
	ctx := context.Background()
	f := newRaidFixture(t, "a", "b")
	raid := f.createRaid(t)
	f.signup(t, raid.ID, "a", testStart)
	f.signup(t, raid.ID, "b", testStart)
	_, err := f.svc.ConfirmSignup(ctx, raid.ID, "a")
	require.NoError(t, err)

	reward, err := f.svc.GrantRaid(ctx, raid.ID, 50, "Ragnaros kill")
	require.NoError(t, err)
	require.Len(t, reward.Entries, 1)
	assert.Equal(t, "Ragnaros kill", reward.Entries[0].Context.Reason)
	assert.Equal(t, int64(50), f.ep(t, "a"))
	assert.Equal(t, int64(0), f.ep(t, "b"))

	stored, err := f.svc.GetRaid(ctx, raid.ID)
	require.NoError(t, err)
	assert.False(t, stored.Started, "a manual grant does not advance the raid")

	_, err = f.svc.GrantRaid(ctx, raid.ID, 0, "")
	assert.ErrorIs(t, err, domain.ErrInvalidParameter)
	_, err = f.svc.GrantRaid(ctx, 42, 10, "")
	assert.ErrorIs(t, err, domain.ErrRaidNotFound)
}

func TestSignup(t *testing.T) {
	ctx := context.Background()
	f := newRaidFixture(t, "a", "b")
	raid := f.createRaid(t)

	s, err := f.svc.Signup(ctx, raid.ID, "a", f.chars["a"])
	require.NoError(t, err)
	assert.False(t, s.Confirmed)

	_, err = f.svc.ConfirmSignup(ctx, raid.ID, "a")
	require.NoError(t, err)
	s, err = f.svc.Signup(ctx, raid.ID, "a", f.chars["a"])
	require.NoError(t, err)
	assert.True(t, s.Confirmed, "signing up again keeps the confirmation")

	_, err = f.svc.Signup(ctx, raid.ID, "a", f.chars["b"])
	assert.ErrorIs(t, err, domain.ErrCharacterNotFound)
	_, err = f.svc.Signup(ctx, 77, "a", f.chars["a"])
	assert.ErrorIs(t, err, domain.ErrRaidNotFound)
	_, err = f.svc.ConfirmSignup(ctx, raid.ID, "b")
	assert.ErrorIs(t, err, domain.ErrSignupNotFound)
}

func TestRewardJob(t *testing.T) {
	f := newRaidFixture(t, "a")
	raid := f.createRaid(t)
	f.signup(t, raid.ID, "a", testStart.Add(-time.Hour))

	job := NewRewardJob(f.svc)
	job.now = func() time.Time { return testStart }
	require.NoError(t, job.Process(context.Background()))
	assert.Equal(t, int64(10), f.ep(t, "a"))
}
