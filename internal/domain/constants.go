package domain

// Point policy defaults. BaseGP and DecayPercent are overridable through config.
const (
	DefaultBaseGP       int64 = 1000
	DefaultDecayPercent int64 = 10

	// SidegradeCostPercent is the share of an item's GP value charged for a sidegrade win
	SidegradeCostPercent int64 = 25

	// PriorityScale is the number of decimal places a priority ratio is rounded to
	PriorityScale int32 = 2
)

// Raid tier range. Buckets exist for every tier in [MinTier, MaxTier].
const (
	MinTier = 0
	MaxTier = 4
)

// Offspec rolls are uniform integers in [0, RollMax]
const RollMax = 100

// Event types follow the pattern: <entity>.<action>
const (
	// EventTypePointsChanged is published after a ledger mutation commits
	EventTypePointsChanged = "ledger.points_changed"

	// EventTypeDecayCompleted is published after a decay sweep over a scope finishes
	EventTypeDecayCompleted = "ledger.decay_completed"

	// EventTypeDropAwarded is published after an award transaction commits
	EventTypeDropAwarded = "loot.drop_awarded"

	// EventTypeRaidRewarded is published after a raid reward tick commits
	EventTypeRaidRewarded = "raid.rewarded"
)
