package domain

// PointsChangedPayload is the event payload for ledger.points_changed events
type PointsChangedPayload struct {
	EntryID   int64           `json:"entry_id"`
	Key       BucketKey       `json:"key"`
	Type      TransactionType `json:"transaction_type"`
	OldValue  int64           `json:"old_value"`
	Delta     int64           `json:"delta"`
	NewValue  int64           `json:"new_value"`
	Timestamp int64           `json:"timestamp"`
}

// DecayCompletedPayload is the event payload for ledger.decay_completed events
type DecayCompletedPayload struct {
	TeamID    int64 `json:"team_id"`
	Tier      int   `json:"tier"`
	Percent   int64 `json:"percent"`
	Buckets   int   `json:"buckets"`
	Timestamp int64 `json:"timestamp"`
}

// DropAwardedPayload is the event payload for loot.drop_awarded events
type DropAwardedPayload struct {
	DropID            int64    `json:"drop_id"`
	ItemID            int64    `json:"item_id"`
	RaidID            int64    `json:"raid_id"`
	Tier              *BidTier `json:"tier,omitempty"`
	WinnerUserID      *string  `json:"winner_user_id,omitempty"`
	WinnerCharacterID *int64   `json:"winner_character_id,omitempty"`
	Priority          string   `json:"priority,omitempty"`
	Cost              int64    `json:"cost"`
	MessageChannelID  string   `json:"message_channel_id,omitempty"`
	Timestamp         int64    `json:"timestamp"`
}

// RaidRewardedPayload is the event payload for raid.rewarded events
type RaidRewardedPayload struct {
	RaidID     int64 `json:"raid_id"`
	Amount     int64 `json:"amount"`
	Recipients int   `json:"recipients"`
	Closed     bool  `json:"closed"`
	Timestamp  int64 `json:"timestamp"`
}
