package repository

import (
	"context"
	"time"

	"github.com/argguild/epgpbot/internal/domain"
)

// LedgerTx is the transactional surface of the point ledger.
// Lookups return (nil, nil) when the row does not exist.
type LedgerTx interface {
	Tx // Commit, Rollback

	// GetBucketForUpdate reads a bucket and holds its row lock until the tx ends
	GetBucketForUpdate(ctx context.Context, key domain.BucketKey) (*domain.PointBucket, error)
	// InsertBucket creates a bucket; it reports false when the bucket already exists
	InsertBucket(ctx context.Context, bucket *domain.PointBucket) (bool, error)
	UpdateBucketBalance(ctx context.Context, key domain.BucketKey, balance int64, updatedAt time.Time) error
	// InsertLedgerEntry appends an entry and sets its ID
	InsertLedgerEntry(ctx context.Context, entry *domain.LedgerEntry) error
	GetLedgerEntry(ctx context.Context, id int64) (*domain.LedgerEntry, error)
	HasReversal(ctx context.Context, entryID int64) (bool, error)
}

// Ledger defines the data access required by the ledger service
type Ledger interface {
	BeginLedgerTx(ctx context.Context) (LedgerTx, error)

	GetBucket(ctx context.Context, key domain.BucketKey) (*domain.PointBucket, error)
	GetLedgerEntry(ctx context.Context, id int64) (*domain.LedgerEntry, error)
	ListBuckets(ctx context.Context, filter domain.BucketFilter) ([]domain.PointBucket, error)
	// ListLedgerEntries returns matching entries newest first
	ListLedgerEntries(ctx context.Context, filter domain.LedgerFilter) ([]domain.LedgerEntry, error)
}
