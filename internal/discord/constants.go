package discord

// Command names
const (
	CommandPing     = "ping"
	CommandStanding = "standing"
	CommandPriority = "priority"
	CommandDrop     = "drop"
	CommandAward    = "award"
)

// Command option names
const (
	OptionTeam = "team"
	OptionTier = "tier"
	OptionUser = "user"
	OptionRaid = "raid"
	OptionItem = "item"
	OptionDrop = "drop"
)

// maxPriorityRows bounds the priority listing to keep messages under the chat size limit
const maxPriorityRows = 25

// Log messages
const (
	LogMsgBotReady            = "Discord bot is ready"
	LogMsgBotRunning          = "Discord bot is now running"
	LogMsgCheckingCommands    = "Checking Discord commands..."
	LogMsgCommandsUnchanged   = "Commands unchanged, skipping registration"
	LogMsgCommandsUpdated     = "Commands updated successfully"
	LogMsgRespondFailed       = "Failed to respond to interaction"
	LogMsgCommandFailed       = "Command failed"
	LogMsgReactionIgnored     = "Reaction is not a bid"
	LogMsgReactionFailed      = "Failed to apply bid reaction"
	LogMsgReactionApplied     = "Bid reaction applied"
	LogMsgNotificationDropped = "Notification dropped, worker queue is full"
	LogMsgNotificationFailed  = "Failed to build notification"
	LogMsgAddReactionFailed   = "Failed to add bid reaction to drop message"
)

// Error messages
const (
	ErrMsgCreateSession    = "error creating Discord session"
	ErrMsgOpenConnection   = "error opening connection"
	ErrMsgFetchCommands    = "failed to fetch existing commands"
	ErrMsgOverwriteCommand = "failed to update commands"
	ErrMsgPostDropMessage  = "failed to post drop message"
)
