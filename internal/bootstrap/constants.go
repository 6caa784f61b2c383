package bootstrap

// Log messages for startup
const (
	LogMsgStarting            = "Starting EPGP bot"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgConfigWarning       = "Configuration warning"
	LogMsgStoreOpened         = "Storage opened"
	LogMsgMigrationsApplied   = "Database migrations applied"
	LogMsgEventSystemReady    = "Event system initialized"
	LogMsgMetricsRegistered   = "Metrics collector registered"
	LogMsgNotifierRegistered  = "Chat notifier registered"
	LogMsgNotifierDisabled    = "No notification channel configured, announcements disabled"
	LogMsgSyncingItems        = "Syncing items from catalog file..."
	LogMsgItemsSynced         = "Items synced"
	LogMsgJobScheduled        = "Job scheduled"
)

// Log messages for shutdown
const (
	LogMsgShuttingDown         = "Shutting down..."
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgSchedulerStopFailed  = "Scheduler shutdown failed"
	LogMsgBotStopFailed        = "Bot shutdown failed"
	LogMsgStopped              = "Shutdown complete"
)

// Error messages
const (
	ErrMsgOpenDatabase   = "failed to open database"
	ErrMsgMigrate        = "failed to migrate database"
	ErrMsgSyncItems      = "failed to sync items"
	ErrMsgBidTiers       = "invalid bid reactions"
	ErrMsgScheduleJob    = "failed to schedule job"
	ErrMsgCreateSchedule = "failed to create scheduler"
)

// Scheduled job names
const (
	JobNameRaidRewards = "raid_rewards"
	JobNameDecay       = "ledger_decay"
)
