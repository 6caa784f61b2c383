// Package memory is a transactional in-memory implementation of every
// repository interface. One write transaction runs at a time; its writes are
// staged on a copy of the committed state and become visible on Commit.
package memory

import (
	"context"
	"fmt"
	"maps"
	"sync"

	"github.com/argguild/epgpbot/internal/domain"
	"github.com/argguild/epgpbot/internal/repository"
)

// Operation names accepted by FailNext
const (
	OpBegin               = "Begin"
	OpCommit              = "Commit"
	OpGetBucketForUpdate  = "GetBucketForUpdate"
	OpInsertBucket        = "InsertBucket"
	OpUpdateBucketBalance = "UpdateBucketBalance"
	OpInsertLedgerEntry   = "InsertLedgerEntry"
	OpGetDropForUpdate    = "GetDropForUpdate"
	OpSaveBid             = "SaveBid"
	OpUpdateBidScores     = "UpdateBidScores"
	OpMarkDropAwarded     = "MarkDropAwarded"
	OpUpdateRaidProgress  = "UpdateRaidProgress"
	OpListBuckets         = "ListBuckets"
)

type scheduleKey struct {
	teamID int64
	zone   domain.RaidZone
}

type state struct {
	buckets map[domain.BucketKey]domain.PointBucket
	entries []domain.LedgerEntry

	teams      map[int64]domain.Team
	users      map[string]domain.User
	characters map[int64]domain.Character
	roster     map[int64]map[int64]struct{}

	items map[int64]domain.Item

	drops map[int64]domain.ItemDrop
	bids  map[int64]map[string]domain.Bid

	raids     map[int64]domain.Raid
	schedules map[scheduleKey]domain.RewardSchedule
	signups   map[int64]map[string]domain.Signup

	nextTeamID, nextCharacterID, nextDropID int64
	nextRaidID, nextSignupID, nextBidSeq    int64
}

func newState() *state {
	return &state{
		buckets:    make(map[domain.BucketKey]domain.PointBucket),
		teams:      make(map[int64]domain.Team),
		users:      make(map[string]domain.User),
		characters: make(map[int64]domain.Character),
		roster:     make(map[int64]map[int64]struct{}),
		items:      make(map[int64]domain.Item),
		drops:      make(map[int64]domain.ItemDrop),
		bids:       make(map[int64]map[string]domain.Bid),
		raids:      make(map[int64]domain.Raid),
		schedules:  make(map[scheduleKey]domain.RewardSchedule),
		signups:    make(map[int64]map[string]domain.Signup),
	}
}

func (s *state) clone() *state {
	c := *s
	c.buckets = maps.Clone(s.buckets)
	// Entries are append-only; capping the slice makes the first append copy it
	c.entries = s.entries[:len(s.entries):len(s.entries)]
	c.teams = maps.Clone(s.teams)
	c.users = maps.Clone(s.users)
	c.characters = maps.Clone(s.characters)
	c.roster = cloneNested(s.roster)
	c.items = maps.Clone(s.items)
	c.drops = maps.Clone(s.drops)
	c.bids = cloneNested(s.bids)
	c.raids = maps.Clone(s.raids)
	c.schedules = maps.Clone(s.schedules)
	c.signups = cloneNested(s.signups)
	return &c
}

func cloneNested[K, K2 comparable, V any](m map[K]map[K2]V) map[K]map[K2]V {
	out := make(map[K]map[K2]V, len(m))
	for k, inner := range m {
		out[k] = maps.Clone(inner)
	}
	return out
}

// Store holds the committed state
type Store struct {
	// sem is held by the open write transaction
	sem chan struct{}

	mu        sync.RWMutex
	committed *state

	faultMu sync.Mutex
	faults  map[string]error
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		sem:       make(chan struct{}, 1),
		committed: newState(),
		faults:    make(map[string]error),
	}
}

// FailNext makes the next call of op return err. Used to exercise rollback paths.
func (s *Store) FailNext(op string, err error) {
	s.faultMu.Lock()
	defer s.faultMu.Unlock()
	s.faults[op] = err
}

func (s *Store) fault(op string) error {
	s.faultMu.Lock()
	defer s.faultMu.Unlock()
	if err, ok := s.faults[op]; ok {
		delete(s.faults, op)
		return fmt.Errorf("%w: injected %s failure: %w", domain.ErrStorageFailure, op, err)
	}
	return nil
}

func (s *Store) snapshot() *state {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.committed
}

func (s *Store) publish(st *state) {
	s.mu.Lock()
	s.committed = st
	s.mu.Unlock()
}

func (s *Store) acquire(ctx context.Context) error {
	select {
	case s.sem <- struct{}{}:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("%w: %w", domain.ErrConflict, ctx.Err())
	}
}

func (s *Store) release() {
	<-s.sem
}

// write runs a single-statement write outside an explicit transaction
func (s *Store) write(ctx context.Context, fn func(st *state) error) error {
	if err := s.acquire(ctx); err != nil {
		return err
	}
	defer s.release()

	st := s.snapshot().clone()
	if err := fn(st); err != nil {
		return err
	}
	s.publish(st)
	return nil
}

// begin opens the single write transaction
func (s *Store) begin(ctx context.Context) (*tx, error) {
	if err := s.fault(OpBegin); err != nil {
		return nil, err
	}
	if err := s.acquire(ctx); err != nil {
		return nil, err
	}
	return &tx{store: s, st: s.snapshot().clone()}, nil
}

// BeginLedgerTx starts a ledger transaction
func (s *Store) BeginLedgerTx(ctx context.Context) (repository.LedgerTx, error) {
	return s.begin(ctx)
}

// BeginLootTx starts a loot transaction
func (s *Store) BeginLootTx(ctx context.Context) (repository.LootTx, error) {
	return s.begin(ctx)
}

// BeginRaidTx starts a raid transaction
func (s *Store) BeginRaidTx(ctx context.Context) (repository.RaidTx, error) {
	return s.begin(ctx)
}

// tx implements LedgerTx, LootTx and RaidTx over a staged copy of the state
type tx struct {
	store *Store
	st    *state
	done  bool
}

func (t *tx) Commit(ctx context.Context) error {
	if t.done {
		return domain.ErrTxClosed
	}
	if err := t.store.fault(OpCommit); err != nil {
		t.done = true
		t.store.release()
		return err
	}
	t.done = true
	t.store.publish(t.st)
	t.store.release()
	return nil
}

func (t *tx) Rollback(ctx context.Context) error {
	if t.done {
		return domain.ErrTxClosed
	}
	t.done = true
	t.store.release()
	return nil
}

func (t *tx) check(op string) error {
	if t.done {
		return domain.ErrTxClosed
	}
	return t.store.fault(op)
}

var (
	_ repository.Ledger = (*Store)(nil)
	_ repository.Loot   = (*Store)(nil)
	_ repository.Raids  = (*Store)(nil)
	_ repository.Roster = (*Store)(nil)
	_ repository.Items  = (*Store)(nil)
	_ repository.LootTx = (*tx)(nil)
	_ repository.RaidTx = (*tx)(nil)
)
