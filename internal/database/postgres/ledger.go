package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/argguild/epgpbot/internal/database/generated"
	"github.com/argguild/epgpbot/internal/domain"
	"github.com/argguild/epgpbot/internal/repository"
)

// LedgerRepository implements repository.Ledger for PostgreSQL using sqlc
type LedgerRepository struct {
	db *pgxpool.Pool
	q  *generated.Queries
}

// NewLedgerRepository creates a new LedgerRepository
func NewLedgerRepository(db *pgxpool.Pool) *LedgerRepository {
	return &LedgerRepository{db: db, q: generated.New(db)}
}

// BeginLedgerTx starts a transaction for ledger mutations
func (r *LedgerRepository) BeginLedgerTx(ctx context.Context) (repository.LedgerTx, error) {
	tx, err := begin(ctx, r.db, r.q)
	if err != nil {
		return nil, err
	}
	return &ledgerTx{pgTx: tx}, nil
}

// GetBucket returns the bucket or nil when it does not exist
func (r *LedgerRepository) GetBucket(ctx context.Context, key domain.BucketKey) (*domain.PointBucket, error) {
	row, err := r.q.GetBucket(ctx, generated.GetBucketParams(bucketParams(key)))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, wrapErr(ErrMsgFailedToGetBucket, err)
	}
	return mapBucket(row), nil
}

// GetLedgerEntry returns the entry or nil when it does not exist
func (r *LedgerRepository) GetLedgerEntry(ctx context.Context, id int64) (*domain.LedgerEntry, error) {
	return getLedgerEntry(ctx, r.q, id)
}

// ListBuckets returns the buckets matching filter in lock order
func (r *LedgerRepository) ListBuckets(ctx context.Context, filter domain.BucketFilter) ([]domain.PointBucket, error) {
	var tier *int32
	if filter.Tier != nil {
		t := int32(*filter.Tier)
		tier = &t
	}
	rows, err := r.q.ListBuckets(ctx, generated.ListBucketsParams{
		UserID:    optional(filter.UserID),
		TeamID:    filter.TeamID,
		Tier:      tier,
		PointType: optional(string(filter.PointType)),
	})
	if err != nil {
		return nil, wrapErr(ErrMsgFailedToListBuckets, err)
	}
	buckets := make([]domain.PointBucket, len(rows))
	for i, row := range rows {
		buckets[i] = *mapBucket(row)
	}
	return buckets, nil
}

// ListLedgerEntries returns matching entries newest first
func (r *LedgerRepository) ListLedgerEntries(ctx context.Context, filter domain.LedgerFilter) ([]domain.LedgerEntry, error) {
	var tier, limit *int32
	if filter.Tier != nil {
		t := int32(*filter.Tier)
		tier = &t
	}
	if filter.Limit > 0 {
		l := int32(filter.Limit)
		limit = &l
	}
	rows, err := r.q.ListLedgerEntries(ctx, generated.ListLedgerEntriesParams{
		UserID:          optional(filter.UserID),
		TeamID:          filter.TeamID,
		Tier:            tier,
		PointType:       optional(string(filter.PointType)),
		TransactionType: optional(string(filter.Type)),
		RaidID:          filter.RaidID,
		ItemDropID:      filter.ItemDropID,
		ReversesEntryID: filter.ReversesEntryID,
		RowLimit:        limit,
	})
	if err != nil {
		return nil, wrapErr(ErrMsgFailedToListLedgerEntries, err)
	}
	entries := make([]domain.LedgerEntry, len(rows))
	for i, row := range rows {
		entries[i] = *mapLedgerEntry(row)
	}
	return entries, nil
}

// ledgerTx implements repository.LedgerTx
type ledgerTx struct {
	*pgTx
}

func (t *ledgerTx) GetBucketForUpdate(ctx context.Context, key domain.BucketKey) (*domain.PointBucket, error) {
	row, err := t.q.GetBucketForUpdate(ctx, generated.GetBucketForUpdateParams(bucketParams(key)))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, wrapErr(ErrMsgFailedToGetBucket, err)
	}
	return mapBucket(row), nil
}

func (t *ledgerTx) InsertBucket(ctx context.Context, bucket *domain.PointBucket) (bool, error) {
	key := bucketParams(bucket.Key)
	n, err := t.q.InsertBucket(ctx, generated.InsertBucketParams{
		UserID:    key.UserID,
		TeamID:    key.TeamID,
		Tier:      key.Tier,
		PointType: key.PointType,
		Balance:   bucket.Balance,
		CreatedAt: bucket.CreatedAt,
		UpdatedAt: bucket.UpdatedAt,
	})
	if err != nil {
		if c, ok := foreignKeyViolation(err); ok && c == ConstraintBucketTeam {
			return false, fmt.Errorf("%w: %d", domain.ErrTeamNotFound, bucket.Key.TeamID)
		}
		return false, wrapErr(ErrMsgFailedToInsertBucket, err)
	}
	return n > 0, nil
}

func (t *ledgerTx) UpdateBucketBalance(ctx context.Context, key domain.BucketKey, balance int64, updatedAt time.Time) error {
	k := bucketParams(key)
	n, err := t.q.UpdateBucketBalance(ctx, generated.UpdateBucketBalanceParams{
		UserID:    k.UserID,
		TeamID:    k.TeamID,
		Tier:      k.Tier,
		PointType: k.PointType,
		Balance:   balance,
		UpdatedAt: updatedAt,
	})
	if err != nil {
		return wrapErr(ErrMsgFailedToUpdateBucket, err)
	}
	if n == 0 {
		return domain.ErrBucketNotFound
	}
	return nil
}

func (t *ledgerTx) InsertLedgerEntry(ctx context.Context, entry *domain.LedgerEntry) error {
	k := bucketParams(entry.Key)
	id, err := t.q.InsertLedgerEntry(ctx, generated.InsertLedgerEntryParams{
		UserID:          k.UserID,
		TeamID:          k.TeamID,
		Tier:            k.Tier,
		PointType:       k.PointType,
		CreatedAt:       entry.CreatedAt,
		TransactionType: string(entry.Type),
		OldValue:        entry.OldValue,
		Delta:           entry.Delta,
		NewValue:        entry.NewValue,
		RaidID:          entry.Context.RaidID,
		ItemDropID:      entry.Context.ItemDropID,
		CharacterID:     entry.Context.CharacterID,
		Reason:          entry.Context.Reason,
		ReversesEntryID: entry.ReversesEntryID,
	})
	if err != nil {
		if isUniqueViolation(err) && entry.ReversesEntryID != nil {
			return fmt.Errorf("%w: %d", domain.ErrEntryAlreadyReversed, *entry.ReversesEntryID)
		}
		return wrapErr(ErrMsgFailedToInsertLedgerEntry, err)
	}
	entry.ID = id
	return nil
}

func (t *ledgerTx) GetLedgerEntry(ctx context.Context, id int64) (*domain.LedgerEntry, error) {
	return getLedgerEntry(ctx, t.q, id)
}

func (t *ledgerTx) HasReversal(ctx context.Context, entryID int64) (bool, error) {
	exists, err := t.q.HasReversal(ctx, &entryID)
	if err != nil {
		return false, wrapErr(ErrMsgFailedToCheckReversal, err)
	}
	return exists, nil
}

func getLedgerEntry(ctx context.Context, q *generated.Queries, id int64) (*domain.LedgerEntry, error) {
	row, err := q.GetLedgerEntry(ctx, id)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, wrapErr(ErrMsgFailedToGetLedgerEntry, err)
	}
	return mapLedgerEntry(row), nil
}

// bucketKeyParams is the column form of a bucket key. The generated
// parameter structs keyed on it share its field set.
type bucketKeyParams struct {
	UserID    string
	TeamID    int64
	Tier      int32
	PointType string
}

func bucketParams(key domain.BucketKey) bucketKeyParams {
	return bucketKeyParams{
		UserID:    key.UserID,
		TeamID:    key.TeamID,
		Tier:      int32(key.Tier),
		PointType: string(key.PointType),
	}
}

func mapBucket(row generated.PointBucket) *domain.PointBucket {
	return &domain.PointBucket{
		Key: domain.BucketKey{
			UserID:    row.UserID,
			TeamID:    row.TeamID,
			Tier:      int(row.Tier),
			PointType: domain.PointType(row.PointType),
		},
		Balance:   row.Balance,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

func mapLedgerEntry(row generated.LedgerEntry) *domain.LedgerEntry {
	return &domain.LedgerEntry{
		ID: row.EntryID,
		Key: domain.BucketKey{
			UserID:    row.UserID,
			TeamID:    row.TeamID,
			Tier:      int(row.Tier),
			PointType: domain.PointType(row.PointType),
		},
		CreatedAt: row.CreatedAt,
		Type:      domain.TransactionType(row.TransactionType),
		OldValue:  row.OldValue,
		Delta:     row.Delta,
		NewValue:  row.NewValue,
		Context: domain.LedgerContext{
			RaidID:      row.RaidID,
			ItemDropID:  row.ItemDropID,
			CharacterID: row.CharacterID,
			Reason:      row.Reason,
		},
		ReversesEntryID: row.ReversesEntryID,
	}
}
