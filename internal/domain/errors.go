package domain

import (
	"errors"
	"fmt"
)

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Taxonomy
	ErrMsgInvalidParameter = "invalid parameter"
	ErrMsgInvalidState     = "invalid state"
	ErrMsgNotFound         = "not found"
	ErrMsgConflict         = "conflicting concurrent modification"
	ErrMsgStorageFailure   = "storage failure"

	// Ledger errors
	ErrMsgBucketNotFound       = "point bucket not found"
	ErrMsgLedgerEntryNotFound  = "ledger entry not found"
	ErrMsgInvalidPointType     = "invalid point type"
	ErrMsgInvalidDecayPercent  = "decay percent must be between 0 and 100 exclusive"
	ErrMsgInvalidTier          = "raid tier is not tracked"
	ErrMsgEntryNotReversible   = "ledger entry cannot be reversed"
	ErrMsgEntryAlreadyReversed = "ledger entry has already been reversed"
	ErrMsgNonPositiveAmount    = "amount must be positive"

	// Loot errors
	ErrMsgDropNotFound       = "item drop not found"
	ErrMsgDropAlreadyAwarded = "item drop has already been awarded"
	ErrMsgBidNotFound        = "bid not found"
	ErrMsgUnknownBidTier     = "unknown bid tier"

	// Roster errors
	ErrMsgTeamNotFound      = "team not found"
	ErrMsgTeamExists        = "team already exists"
	ErrMsgUserNotFound      = "user not found"
	ErrMsgCharacterNotFound = "character not found"
	ErrMsgCharacterExists   = "character already registered"
	ErrMsgInvalidRole       = "invalid character role"
	ErrMsgInvalidClass      = "invalid character class"

	// Raid errors
	ErrMsgRaidNotFound           = "raid not found"
	ErrMsgRaidClosed             = "raid is already closed"
	ErrMsgRewardScheduleNotFound = "reward schedule not found"
	ErrMsgSignupNotFound         = "signup not found"
	ErrMsgInvalidRaidZone        = "invalid raid zone"

	// Item errors
	ErrMsgItemNotFound = "item not found"

	// Transaction errors
	ErrMsgTxClosed = "tx is closed"
)

// Taxonomy errors. Every specific error below matches exactly one of these
// through errors.Is, so callers can branch on the class alone.
var (
	ErrInvalidParameter = errors.New(ErrMsgInvalidParameter)
	ErrInvalidState     = errors.New(ErrMsgInvalidState)
	ErrNotFound         = errors.New(ErrMsgNotFound)
	ErrConflict         = errors.New(ErrMsgConflict)
	ErrStorageFailure   = errors.New(ErrMsgStorageFailure)
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Ledger errors
	ErrBucketNotFound       = classified(ErrMsgBucketNotFound, ErrNotFound)
	ErrLedgerEntryNotFound  = classified(ErrMsgLedgerEntryNotFound, ErrNotFound)
	ErrInvalidPointType     = classified(ErrMsgInvalidPointType, ErrInvalidParameter)
	ErrUnknownPointType     = classified(ErrMsgInvalidPointType, ErrInvalidState)
	ErrInvalidDecayPercent  = classified(ErrMsgInvalidDecayPercent, ErrInvalidParameter)
	ErrInvalidTier          = classified(ErrMsgInvalidTier, ErrInvalidParameter)
	ErrEntryNotReversible   = classified(ErrMsgEntryNotReversible, ErrInvalidParameter)
	ErrEntryAlreadyReversed = classified(ErrMsgEntryAlreadyReversed, ErrConflict)
	ErrNonPositiveAmount    = classified(ErrMsgNonPositiveAmount, ErrInvalidParameter)

	// Loot errors
	ErrDropNotFound       = classified(ErrMsgDropNotFound, ErrNotFound)
	ErrDropAlreadyAwarded = classified(ErrMsgDropAlreadyAwarded, ErrInvalidState)
	ErrBidNotFound        = classified(ErrMsgBidNotFound, ErrNotFound)
	ErrUnknownBidTier     = classified(ErrMsgUnknownBidTier, ErrInvalidParameter)

	// Roster errors
	ErrTeamNotFound      = classified(ErrMsgTeamNotFound, ErrNotFound)
	ErrTeamExists        = classified(ErrMsgTeamExists, ErrConflict)
	ErrUserNotFound      = classified(ErrMsgUserNotFound, ErrNotFound)
	ErrCharacterNotFound = classified(ErrMsgCharacterNotFound, ErrNotFound)
	ErrCharacterExists   = classified(ErrMsgCharacterExists, ErrConflict)
	ErrInvalidRole       = classified(ErrMsgInvalidRole, ErrInvalidParameter)
	ErrInvalidClass      = classified(ErrMsgInvalidClass, ErrInvalidParameter)

	// Raid errors
	ErrRaidNotFound           = classified(ErrMsgRaidNotFound, ErrNotFound)
	ErrRaidClosed             = classified(ErrMsgRaidClosed, ErrInvalidState)
	ErrRewardScheduleNotFound = classified(ErrMsgRewardScheduleNotFound, ErrNotFound)
	ErrSignupNotFound         = classified(ErrMsgSignupNotFound, ErrNotFound)
	ErrInvalidRaidZone        = classified(ErrMsgInvalidRaidZone, ErrInvalidParameter)

	// Item errors
	ErrItemNotFound = classified(ErrMsgItemNotFound, ErrNotFound)

	// Transaction errors
	ErrTxClosed = errors.New(ErrMsgTxClosed)
)

// classifiedError is a specific error that also reports its taxonomy class.
type classifiedError struct {
	msg   string
	class error
}

func classified(msg string, class error) error {
	return &classifiedError{msg: msg, class: class}
}

func (e *classifiedError) Error() string { return e.msg }

// Is lets errors.Is match the taxonomy class in addition to the error itself.
func (e *classifiedError) Is(target error) bool {
	return target == e.class
}

// MutationError reports a failed balance mutation together with the bucket,
// the attempted operation and the requested delta.
type MutationError struct {
	Op    TransactionType
	Key   BucketKey
	Delta int64
	Err   error
}

func (e *MutationError) Error() string {
	return fmt.Sprintf("%s on %s (requested delta %d): %v", e.Op, e.Key, e.Delta, e.Err)
}

func (e *MutationError) Unwrap() error {
	return e.Err
}

// Class returns the taxonomy error that err belongs to, or nil when err is
// not classified.
func Class(err error) error {
	for _, class := range []error{ErrInvalidParameter, ErrInvalidState, ErrNotFound, ErrConflict, ErrStorageFailure} {
		if errors.Is(err, class) {
			return class
		}
	}
	return nil
}
