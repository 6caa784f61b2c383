package memory

import (
	"context"
	"sort"
	"time"

	"github.com/argguild/epgpbot/internal/domain"
)

func (t *tx) GetBucketForUpdate(ctx context.Context, key domain.BucketKey) (*domain.PointBucket, error) {
	if err := t.check(OpGetBucketForUpdate); err != nil {
		return nil, err
	}
	b, ok := t.st.buckets[key]
	if !ok {
		return nil, nil
	}
	return &b, nil
}

func (t *tx) InsertBucket(ctx context.Context, bucket *domain.PointBucket) (bool, error) {
	if err := t.check(OpInsertBucket); err != nil {
		return false, err
	}
	if _, ok := t.st.buckets[bucket.Key]; ok {
		return false, nil
	}
	t.st.buckets[bucket.Key] = *bucket
	return true, nil
}

func (t *tx) UpdateBucketBalance(ctx context.Context, key domain.BucketKey, balance int64, updatedAt time.Time) error {
	if err := t.check(OpUpdateBucketBalance); err != nil {
		return err
	}
	b, ok := t.st.buckets[key]
	if !ok {
		return domain.ErrBucketNotFound
	}
	b.Balance = balance
	b.UpdatedAt = updatedAt
	t.st.buckets[key] = b
	return nil
}

func (t *tx) InsertLedgerEntry(ctx context.Context, entry *domain.LedgerEntry) error {
	if err := t.check(OpInsertLedgerEntry); err != nil {
		return err
	}
	if entry.ReversesEntryID != nil && hasReversal(t.st, *entry.ReversesEntryID) {
		return domain.ErrEntryAlreadyReversed
	}
	entry.ID = int64(len(t.st.entries)) + 1
	t.st.entries = append(t.st.entries, *entry)
	return nil
}

func (t *tx) GetLedgerEntry(ctx context.Context, id int64) (*domain.LedgerEntry, error) {
	if err := t.check(""); err != nil {
		return nil, err
	}
	return getEntry(t.st, id), nil
}

func (t *tx) HasReversal(ctx context.Context, entryID int64) (bool, error) {
	if err := t.check(""); err != nil {
		return false, err
	}
	return hasReversal(t.st, entryID), nil
}

func (s *Store) GetBucket(ctx context.Context, key domain.BucketKey) (*domain.PointBucket, error) {
	b, ok := s.snapshot().buckets[key]
	if !ok {
		return nil, nil
	}
	return &b, nil
}

func (s *Store) GetLedgerEntry(ctx context.Context, id int64) (*domain.LedgerEntry, error) {
	return getEntry(s.snapshot(), id), nil
}

func (s *Store) ListBuckets(ctx context.Context, filter domain.BucketFilter) ([]domain.PointBucket, error) {
	if err := s.fault(OpListBuckets); err != nil {
		return nil, err
	}
	st := s.snapshot()
	var out []domain.PointBucket
	for _, b := range st.buckets {
		if matchesBucket(b.Key, filter) {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key.Less(out[j].Key) })
	return out, nil
}

func (s *Store) ListLedgerEntries(ctx context.Context, filter domain.LedgerFilter) ([]domain.LedgerEntry, error) {
	st := s.snapshot()
	var out []domain.LedgerEntry
	for i := len(st.entries) - 1; i >= 0; i-- {
		e := st.entries[i]
		if !matchesEntry(e, filter) {
			continue
		}
		out = append(out, e)
		if filter.Limit > 0 && len(out) == filter.Limit {
			break
		}
	}
	return out, nil
}

func getEntry(st *state, id int64) *domain.LedgerEntry {
	if id <= 0 || id > int64(len(st.entries)) {
		return nil
	}
	e := st.entries[id-1]
	return &e
}

func hasReversal(st *state, entryID int64) bool {
	for _, e := range st.entries {
		if e.ReversesEntryID != nil && *e.ReversesEntryID == entryID {
			return true
		}
	}
	return false
}

func matchesBucket(k domain.BucketKey, f domain.BucketFilter) bool {
	if f.UserID != "" && k.UserID != f.UserID {
		return false
	}
	if f.TeamID != nil && k.TeamID != *f.TeamID {
		return false
	}
	if f.Tier != nil && k.Tier != *f.Tier {
		return false
	}
	if f.PointType != "" && k.PointType != f.PointType {
		return false
	}
	return true
}

func matchesEntry(e domain.LedgerEntry, f domain.LedgerFilter) bool {
	if !matchesBucket(e.Key, domain.BucketFilter{UserID: f.UserID, TeamID: f.TeamID, Tier: f.Tier, PointType: f.PointType}) {
		return false
	}
	if f.Type != "" && e.Type != f.Type {
		return false
	}
	if f.RaidID != nil && (e.Context.RaidID == nil || *e.Context.RaidID != *f.RaidID) {
		return false
	}
	if f.ItemDropID != nil && (e.Context.ItemDropID == nil || *e.Context.ItemDropID != *f.ItemDropID) {
		return false
	}
	if f.ReversesEntryID != nil && (e.ReversesEntryID == nil || *e.ReversesEntryID != *f.ReversesEntryID) {
		return false
	}
	return true
}
