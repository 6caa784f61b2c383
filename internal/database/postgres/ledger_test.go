package postgres

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/argguild/epgpbot/internal/concurrency"
	"github.com/argguild/epgpbot/internal/domain"
	"github.com/argguild/epgpbot/internal/event"
	"github.com/argguild/epgpbot/internal/ledger"
	"github.com/argguild/epgpbot/internal/repository"
)

func TestLedgerRepository_BucketAndEntryRoundTrip(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()
	team := seedTeam(t, s)
	key := domain.BucketKey{UserID: "1001", TeamID: team.ID, Tier: 2, PointType: domain.PointTypeEP}
	now := time.Now().UTC().Truncate(time.Microsecond)

	tx, err := s.BeginLedgerTx(ctx)
	require.NoError(t, err)
	defer repository.SafeRollback(ctx, tx)

	created, err := tx.InsertBucket(ctx, &domain.PointBucket{Key: key, CreatedAt: now, UpdatedAt: now})
	require.NoError(t, err)
	assert.True(t, created)
	created, err = tx.InsertBucket(ctx, &domain.PointBucket{Key: key, CreatedAt: now, UpdatedAt: now})
	require.NoError(t, err)
	assert.False(t, created, "second insert of the same key is a no-op")

	entry := &domain.LedgerEntry{
		Key: key, CreatedAt: now, Type: domain.TransactionGrant,
		OldValue: 0, Delta: 25, NewValue: 25,
		Context: domain.LedgerContext{Reason: "attendance"},
	}
	require.NoError(t, tx.InsertLedgerEntry(ctx, entry))
	assert.NotZero(t, entry.ID)
	require.NoError(t, tx.UpdateBucketBalance(ctx, key, 25, now))

	locked, err := tx.GetBucketForUpdate(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, int64(25), locked.Balance)
	require.NoError(t, tx.Commit(ctx))

	bucket, err := s.GetBucket(ctx, key)
	require.NoError(t, err)
	require.NotNil(t, bucket)
	assert.Equal(t, int64(25), bucket.Balance)

	got, err := s.GetLedgerEntry(ctx, entry.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "attendance", got.Context.Reason)
	assert.Nil(t, got.Context.RaidID)

	missing, err := s.GetBucket(ctx, key.WithType(domain.PointTypeGP))
	require.NoError(t, err)
	assert.Nil(t, missing)

	entries, err := s.ListLedgerEntries(ctx, domain.LedgerFilter{UserID: "1001", Type: domain.TransactionGrant})
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestLedgerRepository_BucketForUnknownTeam(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	tx, err := s.BeginLedgerTx(ctx)
	require.NoError(t, err)
	defer repository.SafeRollback(ctx, tx)

	_, err = tx.InsertBucket(ctx, &domain.PointBucket{
		Key: domain.BucketKey{UserID: "1", TeamID: 404, Tier: 1, PointType: domain.PointTypeEP},
	})
	assert.ErrorIs(t, err, domain.ErrTeamNotFound)
}

func TestLedgerRepository_RejectsInconsistentEntry(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()
	team := seedTeam(t, s)
	key := domain.BucketKey{UserID: "1", TeamID: team.ID, Tier: 1, PointType: domain.PointTypeEP}

	tx, err := s.BeginLedgerTx(ctx)
	require.NoError(t, err)
	defer repository.SafeRollback(ctx, tx)
	_, err = tx.InsertBucket(ctx, &domain.PointBucket{Key: key})
	require.NoError(t, err)

	err = tx.InsertLedgerEntry(ctx, &domain.LedgerEntry{
		Key: key, Type: domain.TransactionGrant, OldValue: 0, Delta: 5, NewValue: 6,
	})
	assert.ErrorIs(t, err, domain.ErrStorageFailure)
}

func newPostgresLedger(s *Store) ledger.Service {
	return ledger.NewService(s, concurrency.NewLockManager(), event.NewMemoryBus(), s, ledger.NewPolicy(1000))
}

func TestLedgerService_ReverseOnlyOnce(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()
	team := seedTeam(t, s)
	svc := newPostgresLedger(s)
	key := domain.BucketKey{UserID: "1", TeamID: team.ID, Tier: 1, PointType: domain.PointTypeEP}

	grant, err := svc.Grant(ctx, key, 40, domain.LedgerContext{Reason: "boss kill"})
	require.NoError(t, err)

	reversal, err := svc.Reverse(ctx, grant.ID, "wrong raid")
	require.NoError(t, err)
	assert.Equal(t, int64(-40), reversal.Delta)
	require.NotNil(t, reversal.ReversesEntryID)
	assert.Equal(t, grant.ID, *reversal.ReversesEntryID)

	_, err = svc.Reverse(ctx, grant.ID, "again")
	assert.ErrorIs(t, err, domain.ErrEntryAlreadyReversed)

	bucket, err := svc.GetBucket(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, int64(0), bucket.Balance)
}

// Two services with separate in-process locks stand in for two processes;
// only the row lock keeps their grants from losing updates.
func TestLedgerService_ConcurrentGrantsAcrossProcesses(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()
	team := seedTeam(t, s)
	key := domain.BucketKey{UserID: "1", TeamID: team.ID, Tier: 3, PointType: domain.PointTypeEP}

	services := []ledger.Service{newPostgresLedger(s), newPostgresLedger(s)}
	_, err := services[0].CreateOrGetBucket(ctx, key)
	require.NoError(t, err)

	const perService = 15
	var wg sync.WaitGroup
	for _, svc := range services {
		for i := 0; i < perService; i++ {
			wg.Add(1)
			go func(svc ledger.Service) {
				defer wg.Done()
				_, err := svc.Grant(ctx, key, 2, domain.LedgerContext{})
				assert.NoError(t, err)
			}(svc)
		}
	}
	wg.Wait()

	bucket, err := s.GetBucket(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, int64(2*perService*len(services)), bucket.Balance)

	entries, err := s.ListLedgerEntries(ctx, domain.LedgerFilter{UserID: "1", Type: domain.TransactionGrant})
	require.NoError(t, err)
	assert.Len(t, entries, perService*len(services))
	for _, e := range entries {
		assert.Equal(t, e.OldValue+e.Delta, e.NewValue)
	}
}
