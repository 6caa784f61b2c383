package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// BidTier is the claimed value of a drop to the bidder
type BidTier string

const (
	BidTierUpgrade   BidTier = "upgrade"
	BidTierSidegrade BidTier = "sidegrade"
	BidTierOffspec   BidTier = "offspec"
)

// BidTierPrecedence lists bid tiers from highest to lowest award precedence
var BidTierPrecedence = []BidTier{BidTierUpgrade, BidTierSidegrade, BidTierOffspec}

// Valid reports whether t is a known bid tier
func (t BidTier) Valid() bool {
	switch t {
	case BidTierUpgrade, BidTierSidegrade, BidTierOffspec:
		return true
	default:
		return false
	}
}

// RankedByPriority reports whether the tier is ranked by EP/GP rather than by roll
func (t BidTier) RankedByPriority() bool {
	return t == BidTierUpgrade || t == BidTierSidegrade
}

// ParseBidTier parses a tier name case-insensitively
func ParseBidTier(s string) (BidTier, error) {
	t := BidTier(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownBidTier, s)
	}
	return t, nil
}

// Bid is one user's claim on an item drop. Flags are independent and may be combined.
type Bid struct {
	DropID         int64            `json:"drop_id"`
	UserID         string           `json:"user_id"`
	CharacterID    *int64           `json:"character_id,omitempty"`
	WantsUpgrade   bool             `json:"wants_upgrade"`
	WantsSidegrade bool             `json:"wants_sidegrade"`
	WantsOffspec   bool             `json:"wants_offspec"`
	Priority       *decimal.Decimal `json:"priority,omitempty"`
	Roll           *int             `json:"roll,omitempty"`
	Seq            int64            `json:"seq"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

// Wants reports whether the bid carries the flag for tier
func (b Bid) Wants(tier BidTier) bool {
	switch tier {
	case BidTierUpgrade:
		return b.WantsUpgrade
	case BidTierSidegrade:
		return b.WantsSidegrade
	case BidTierOffspec:
		return b.WantsOffspec
	default:
		return false
	}
}

// Set sets or clears the flag for tier
func (b *Bid) Set(tier BidTier, on bool) {
	switch tier {
	case BidTierUpgrade:
		b.WantsUpgrade = on
	case BidTierSidegrade:
		b.WantsSidegrade = on
	case BidTierOffspec:
		b.WantsOffspec = on
	}
}

// HasAny reports whether any flag is set
func (b Bid) HasAny() bool {
	return b.WantsUpgrade || b.WantsSidegrade || b.WantsOffspec
}

// DropState is the award state of an item drop
type DropState string

const (
	DropStateOpen    DropState = "open"
	DropStateAwarded DropState = "awarded"
)

// ItemDrop is a single item that dropped during a raid and is open for bids
// until it is awarded exactly once.
type ItemDrop struct {
	ID                int64            `json:"id"`
	ItemID            int64            `json:"item_id"`
	RaidID            int64            `json:"raid_id"`
	CreatedBy         string           `json:"created_by,omitempty"`
	DroppedAt         time.Time        `json:"dropped_at"`
	MessageChannelID  string           `json:"message_channel_id,omitempty"`
	MessageID         string           `json:"message_id,omitempty"`
	Awarded           bool             `json:"awarded"`
	AwardedAt         *time.Time       `json:"awarded_at,omitempty"`
	WinnerUserID      *string          `json:"winner_user_id,omitempty"`
	WinnerCharacterID *int64           `json:"winner_character_id,omitempty"`
	WinnerPriority    *decimal.Decimal `json:"winner_priority,omitempty"`
	WinnerCost        *int64           `json:"winner_cost,omitempty"`
	WinningTier       *BidTier         `json:"winning_tier,omitempty"`
}

// State returns the award state of the drop
func (d ItemDrop) State() DropState {
	if d.Awarded {
		return DropStateAwarded
	}
	return DropStateOpen
}

// DropAward is the outcome written to a drop when it transitions to awarded.
// Winner fields are nil when there were no bids.
type DropAward struct {
	DropID            int64
	AwardedAt         time.Time
	WinnerUserID      *string
	WinnerCharacterID *int64
	WinnerPriority    *decimal.Decimal
	WinnerCost        *int64
	WinningTier       *BidTier
}

// RankedBid is a bid with the score it was ranked by
type RankedBid struct {
	Bid   Bid             `json:"bid"`
	Score decimal.Decimal `json:"score"`
	EP    int64           `json:"ep,omitempty"`
	GP    int64           `json:"gp,omitempty"`
}

// AwardResult describes a completed award
type AwardResult struct {
	DropID   int64            `json:"drop_id"`
	Tier     *BidTier         `json:"tier,omitempty"`
	Winner   *RankedBid       `json:"winner,omitempty"`
	Priority *decimal.Decimal `json:"priority,omitempty"`
	Cost     *int64           `json:"cost,omitempty"`
	Ranking  []RankedBid      `json:"ranking,omitempty"`
	Entry    *LedgerEntry     `json:"entry,omitempty"`
}

// DropPreview is the current ranking of every tier of a still open drop
type DropPreview struct {
	Drop     ItemDrop                `json:"drop"`
	Tier     *BidTier                `json:"tier,omitempty"`
	Rankings map[BidTier][]RankedBid `json:"rankings"`
}
