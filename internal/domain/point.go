package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// PointType distinguishes effort from gear point buckets
type PointType string

const (
	PointTypeEP PointType = "EP"
	PointTypeGP PointType = "GP"
)

// PointTypes lists every recognized point type in bucket creation order
var PointTypes = []PointType{PointTypeEP, PointTypeGP}

// Valid reports whether p is one of the recognized point types
func (p PointType) Valid() bool {
	return p == PointTypeEP || p == PointTypeGP
}

// ParsePointType parses "ep"/"gp" case-insensitively
func ParsePointType(s string) (PointType, error) {
	p := PointType(strings.ToUpper(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidPointType, s)
	}
	return p, nil
}

// TransactionType is the kind of a ledger entry
type TransactionType string

const (
	TransactionInit     TransactionType = "INIT"
	TransactionGrant    TransactionType = "GRANT"
	TransactionDecay    TransactionType = "DECAY"
	TransactionEdit     TransactionType = "EDIT"
	TransactionLoad     TransactionType = "LOAD"
	TransactionPenalty  TransactionType = "PENALTY"
	TransactionTruncate TransactionType = "TRUNCATE"
	TransactionReverse  TransactionType = "REVERSE"
)

// Reversible reports whether entries of this kind can be undone with a Reverse entry
func (t TransactionType) Reversible() bool {
	switch t {
	case TransactionGrant, TransactionPenalty, TransactionEdit:
		return true
	default:
		return false
	}
}

// BucketKey is the identity of a point bucket
type BucketKey struct {
	UserID    string    `json:"user_id"`
	TeamID    int64     `json:"team_id"`
	Tier      int       `json:"tier"`
	PointType PointType `json:"point_type"`
}

// String renders the key in a form usable as a lock name
func (k BucketKey) String() string {
	return fmt.Sprintf("bucket:%s:%d:%d:%s", k.UserID, k.TeamID, k.Tier, k.PointType)
}

// WithType returns the sibling key of the same user, team and tier
func (k BucketKey) WithType(p PointType) BucketKey {
	k.PointType = p
	return k
}

// Less orders keys so multi-bucket operations lock in a stable order
func (k BucketKey) Less(o BucketKey) bool {
	if k.TeamID != o.TeamID {
		return k.TeamID < o.TeamID
	}
	if k.Tier != o.Tier {
		return k.Tier < o.Tier
	}
	if k.UserID != o.UserID {
		return k.UserID < o.UserID
	}
	return k.PointType < o.PointType
}

// PointBucket holds the cached balance of one bucket. Ledger entries are the
// source of truth for its history.
type PointBucket struct {
	Key       BucketKey `json:"key"`
	Balance   int64     `json:"balance"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LedgerContext carries optional audit references for a mutation
type LedgerContext struct {
	RaidID      *int64 `json:"raid_id,omitempty"`
	ItemDropID  *int64 `json:"item_drop_id,omitempty"`
	CharacterID *int64 `json:"character_id,omitempty"`
	Reason      string `json:"reason,omitempty"`
}

// LedgerEntry is the immutable record of a single balance mutation
type LedgerEntry struct {
	ID              int64           `json:"id"`
	Key             BucketKey       `json:"key"`
	CreatedAt       time.Time       `json:"created_at"`
	Type            TransactionType `json:"transaction_type"`
	OldValue        int64           `json:"old_value"`
	Delta           int64           `json:"delta"`
	NewValue        int64           `json:"new_value"`
	Context         LedgerContext   `json:"context"`
	ReversesEntryID *int64          `json:"reverses_entry_id,omitempty"`
}

// BucketFilter selects buckets by scope. Zero values match everything.
type BucketFilter struct {
	UserID    string
	TeamID    *int64
	Tier      *int
	PointType PointType
}

// LedgerFilter selects ledger entries for audit listings. Zero values match everything.
type LedgerFilter struct {
	UserID          string
	TeamID          *int64
	Tier            *int
	PointType       PointType
	Type            TransactionType
	RaidID          *int64
	ItemDropID      *int64
	ReversesEntryID *int64
	Limit           int
}

// Standing is one user's EP, GP and priority ratio in a team tier
type Standing struct {
	UserID      string          `json:"user_id"`
	DisplayName string          `json:"display_name,omitempty"`
	EP          int64           `json:"ep"`
	GP          int64           `json:"gp"`
	PR          decimal.Decimal `json:"pr"`
}

// PriorityRatio returns EP / GP rounded half away from zero to PriorityScale places.
// A non-positive GP yields zero; gear buckets are floored above zero so this
// only happens for corrupt or missing data.
func PriorityRatio(ep, gp int64) decimal.Decimal {
	if gp <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(ep).DivRound(decimal.NewFromInt(gp), PriorityScale)
}

// TierTracked reports whether tier is one of the tracked raid tiers
func TierTracked(tier int) bool {
	return tier >= MinTier && tier <= MaxTier
}

// TrackedTiers returns every tracked raid tier in ascending order
func TrackedTiers() []int {
	tiers := make([]int, 0, MaxTier-MinTier+1)
	for t := MinTier; t <= MaxTier; t++ {
		tiers = append(tiers, t)
	}
	return tiers
}
