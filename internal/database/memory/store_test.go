package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/argguild/epgpbot/internal/domain"
)

var testKey = domain.BucketKey{UserID: "u1", TeamID: 1, Tier: 1, PointType: domain.PointTypeEP}

func TestTx_CommitPublishesStagedWrites(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	tx, err := s.BeginLedgerTx(ctx)
	require.NoError(t, err)
	inserted, err := tx.InsertBucket(ctx, &domain.PointBucket{Key: testKey, Balance: 5})
	require.NoError(t, err)
	assert.True(t, inserted)

	// uncommitted writes are invisible to readers
	b, err := s.GetBucket(ctx, testKey)
	require.NoError(t, err)
	assert.Nil(t, b)

	require.NoError(t, tx.Commit(ctx))

	b, err = s.GetBucket(ctx, testKey)
	require.NoError(t, err)
	require.NotNil(t, b)
	assert.Equal(t, int64(5), b.Balance)
	assert.ErrorIs(t, tx.Rollback(ctx), domain.ErrTxClosed)
}

func TestTx_RollbackDiscardsWrites(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	tx, err := s.BeginLedgerTx(ctx)
	require.NoError(t, err)
	_, err = tx.InsertBucket(ctx, &domain.PointBucket{Key: testKey})
	require.NoError(t, err)
	entry := &domain.LedgerEntry{Key: testKey, Type: domain.TransactionInit}
	require.NoError(t, tx.InsertLedgerEntry(ctx, entry))
	require.NoError(t, tx.Rollback(ctx))

	b, _ := s.GetBucket(ctx, testKey)
	assert.Nil(t, b)
	entries, err := s.ListLedgerEntries(ctx, domain.LedgerFilter{})
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestTx_SingleWriter(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	tx, err := s.BeginLedgerTx(ctx)
	require.NoError(t, err)

	waitCtx, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
	defer cancel()
	_, err = s.BeginLedgerTx(waitCtx)
	assert.ErrorIs(t, err, domain.ErrConflict)

	require.NoError(t, tx.Rollback(ctx))
	tx2, err := s.BeginLedgerTx(ctx)
	require.NoError(t, err)
	require.NoError(t, tx2.Rollback(ctx))
}

func TestFailNext_InjectsOneStorageFailure(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	s.FailNext(OpInsertLedgerEntry, errors.New("disk full"))

	tx, err := s.BeginLedgerTx(ctx)
	require.NoError(t, err)
	err = tx.InsertLedgerEntry(ctx, &domain.LedgerEntry{Key: testKey})
	assert.ErrorIs(t, err, domain.ErrStorageFailure)
	assert.NoError(t, tx.InsertLedgerEntry(ctx, &domain.LedgerEntry{Key: testKey}), "fault fires once")
	require.NoError(t, tx.Rollback(ctx))
}

func TestListLedgerEntries_NewestFirstWithFilter(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	raidID := int64(9)

	tx, err := s.BeginLedgerTx(ctx)
	require.NoError(t, err)
	for i, typ := range []domain.TransactionType{domain.TransactionInit, domain.TransactionGrant, domain.TransactionGrant} {
		e := &domain.LedgerEntry{Key: testKey, Type: typ, NewValue: int64(i)}
		if i == 2 {
			e.Context.RaidID = &raidID
		}
		require.NoError(t, tx.InsertLedgerEntry(ctx, e))
		assert.Equal(t, int64(i+1), e.ID)
	}
	require.NoError(t, tx.Commit(ctx))

	grants, err := s.ListLedgerEntries(ctx, domain.LedgerFilter{Type: domain.TransactionGrant})
	require.NoError(t, err)
	require.Len(t, grants, 2)
	assert.Equal(t, int64(3), grants[0].ID)

	byRaid, err := s.ListLedgerEntries(ctx, domain.LedgerFilter{RaidID: &raidID})
	require.NoError(t, err)
	require.Len(t, byRaid, 1)

	limited, err := s.ListLedgerEntries(ctx, domain.LedgerFilter{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestMarkDropAwarded_OnlyOnce(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	drop := &domain.ItemDrop{ItemID: 1, RaidID: 1}
	require.NoError(t, s.CreateDrop(ctx, drop))

	award := func() int64 {
		tx, err := s.BeginLootTx(ctx)
		require.NoError(t, err)
		n, err := tx.MarkDropAwarded(ctx, domain.DropAward{DropID: drop.ID, AwardedAt: time.Now()})
		require.NoError(t, err)
		require.NoError(t, tx.Commit(ctx))
		return n
	}

	assert.Equal(t, int64(1), award())
	assert.Equal(t, int64(0), award())

	got, err := s.GetDrop(ctx, drop.ID)
	require.NoError(t, err)
	assert.True(t, got.Awarded)
}

func TestSaveBid_KeepsSequenceOnUpdate(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	drop := &domain.ItemDrop{ItemID: 1, RaidID: 1}
	require.NoError(t, s.CreateDrop(ctx, drop))

	tx, err := s.BeginLootTx(ctx)
	require.NoError(t, err)
	first := &domain.Bid{DropID: drop.ID, UserID: "a", WantsUpgrade: true}
	second := &domain.Bid{DropID: drop.ID, UserID: "b", WantsOffspec: true}
	require.NoError(t, tx.SaveBid(ctx, first))
	require.NoError(t, tx.SaveBid(ctx, second))
	update := &domain.Bid{DropID: drop.ID, UserID: "a", WantsSidegrade: true}
	require.NoError(t, tx.SaveBid(ctx, update))
	require.NoError(t, tx.Commit(ctx))

	bids, err := s.ListBids(ctx, drop.ID)
	require.NoError(t, err)
	require.Len(t, bids, 2)
	assert.Equal(t, "a", bids[0].UserID)
	assert.Equal(t, first.Seq, bids[0].Seq)
	assert.True(t, bids[0].WantsSidegrade)
	assert.False(t, bids[0].WantsUpgrade)
}

func TestRoster_Uniqueness(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	require.NoError(t, s.CreateTeam(ctx, &domain.Team{Name: "Main"}))
	assert.ErrorIs(t, s.CreateTeam(ctx, &domain.Team{Name: "main"}), domain.ErrTeamExists)

	require.NoError(t, s.UpsertUser(ctx, &domain.User{ID: "u1", Name: "alice"}))
	c := &domain.Character{UserID: "u1", Name: "Ali", Class: domain.ClassMage, Role: domain.RoleCaster}
	require.NoError(t, s.CreateCharacter(ctx, c))
	assert.ErrorIs(t, s.CreateCharacter(ctx, &domain.Character{UserID: "u1", Name: "ali", Class: domain.ClassMage}), domain.ErrCharacterExists)

	added, err := s.AddRosterMember(ctx, 1, c.ID)
	require.NoError(t, err)
	assert.True(t, added)
	added, err = s.AddRosterMember(ctx, 1, c.ID)
	require.NoError(t, err)
	assert.False(t, added)
}
