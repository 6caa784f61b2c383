package raid

// Ledger reasons for raid effort
const (
	ReasonStartBonus  = "raid start bonus"
	ReasonTickBonus   = "raid attendance"
	ReasonEndBonus    = "raid end bonus"
	ReasonManualGrant = "raid grant"
)

// Error context strings
const (
	ErrContextCreateRaid   = "failed to create raid"
	ErrContextGetRaid      = "failed to get raid"
	ErrContextListRaids    = "failed to list open raids"
	ErrContextUpdateRaid   = "failed to update raid"
	ErrContextGetSchedule  = "failed to get reward schedule"
	ErrContextSaveSchedule = "failed to save reward schedule"
	ErrContextGetCharacter = "failed to get character"
	ErrContextGetSignup    = "failed to get signup"
	ErrContextSaveSignup   = "failed to save signup"
	ErrContextListSignups  = "failed to list signups"
	ErrContextBeginTx      = "failed to begin transaction"
	ErrContextCommitTx     = "failed to commit transaction"

	ErrMsgStartRequired     = "raid start time is required"
	ErrMsgTeamRequired      = "team is required"
	ErrMsgScheduleIntervals = "tick interval and duration must be positive"
	ErrMsgScheduleBonuses   = "bonuses must not be negative"
	ErrMsgExtendPositive    = "extension must be positive"
	ErrMsgAmountRequired    = "amount must not be zero"
)

// Log messages
const (
	LogMsgRaidCreated      = "Raid created"
	LogMsgRaidExtended     = "Raid extended"
	LogMsgRaidRewarded     = "Raid effort rewarded"
	LogMsgRewardFailed     = "Raid reward tick failed"
	LogMsgSignupsConfirmed = "Raid signups confirmed"
	LogMsgSignupEjected    = "Raid signup ejected"
	LogMsgPublishFailed    = "Failed to publish raid event"
	LogMsgTickProcessed    = "Raid reward sweep finished"
)
