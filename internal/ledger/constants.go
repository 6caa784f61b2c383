package ledger

// Audit listing limits
const (
	DefaultEntriesLimit = 100
	MaxEntriesLimit     = 1000
)

// Error context strings
const (
	ErrContextBeginTx     = "failed to begin ledger transaction"
	ErrContextCommitTx    = "failed to commit ledger transaction"
	ErrContextGetEntry    = "failed to get ledger entry"
	ErrContextGetBucket   = "failed to get point bucket"
	ErrContextListBuckets = "failed to list point buckets"
	ErrContextListEntries = "failed to list ledger entries"

	ErrMsgEmptyUserID = "user id is required"
)

// Log messages
const (
	LogMsgBucketsCreated   = "Point buckets created"
	LogMsgMutationApplied  = "Ledger mutation applied"
	LogMsgEntryReversed    = "Ledger entry reversed"
	LogMsgDecayCompleted   = "Decay sweep completed"
	LogMsgDecayAborted     = "Decay sweep aborted"
	LogMsgPublishFailed    = "Failed to publish ledger event"
	LogMsgUserLookupFailed = "Failed to load display names for priority report"
)
