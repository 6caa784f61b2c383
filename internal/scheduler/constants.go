package scheduler

// Job names
const (
	JobNameRaidRewards = "raid_rewards"
	JobNameDecay       = "ledger_decay"
)

const (
	LogMsgJobFailed    = "Scheduled job failed"
	LogMsgJobCompleted = "Scheduled job completed"
)

const (
	ErrMsgCreateScheduler = "failed to create scheduler"
	ErrMsgScheduleJob     = "failed to schedule job"
	ErrMsgShutdown        = "failed to shut down scheduler"
)
