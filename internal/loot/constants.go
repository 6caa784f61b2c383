package loot

// ReasonFmtAward is the ledger reason written for a gear point charge
const ReasonFmtAward = "loot: %s (%s)"

// Error context strings
const (
	ErrContextBeginTx      = "failed to begin loot transaction"
	ErrContextCommitTx     = "failed to commit loot transaction"
	ErrContextCreateDrop   = "failed to create item drop"
	ErrContextGetDrop      = "failed to get item drop"
	ErrContextUpdateDrop   = "failed to update item drop"
	ErrContextListDrops    = "failed to list item drops"
	ErrContextGetBid       = "failed to get bid"
	ErrContextSaveBid      = "failed to save bid"
	ErrContextListBids     = "failed to list bids"
	ErrContextGetBucket    = "failed to read bidder points"
	ErrContextGetRaid      = "failed to get raid"
	ErrContextGetSignup    = "failed to get raid signup"
	ErrContextGetCharacter = "failed to get winning character"

	ErrMsgMessageRefRequired = "channel and message id are required"
	ErrMsgUserRequired       = "user id is required"
	ErrMsgEmptyReaction      = "empty reaction for tier"
	ErrMsgDuplicateReaction  = "reaction registered for two tiers"
)

// Log messages
const (
	LogMsgDropRecorded      = "Item drop recorded"
	LogMsgBidUpdated        = "Bid updated"
	LogMsgDropAwarded       = "Item drop awarded"
	LogMsgDropAwardedNoBids = "Item drop closed without bids"
	LogMsgStandingMissing   = "Bidder has no standing in the raid tier"
	LogMsgPublishFailed     = "Failed to publish loot event"
)
