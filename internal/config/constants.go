package config

// Storage drivers
const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

// Environments
const (
	EnvironmentDev        = "dev"
	EnvironmentProduction = "prod"
)

// Example values shipped in .env.example
const (
	InsecureExamplePassword = "change_this_secure_password"
	InsecureExampleAPIKey   = "generate_with_openssl_rand_hex_32"
)

// Error messages
const (
	ErrMsgParseEnv      = "failed to parse environment"
	ErrMsgInvalidConfig = "invalid configuration"
)

// Warning messages
const (
	WarnMsgExamplePassword    = "DB_PASSWORD appears to be using the example value - please use a secure password"
	WarnMsgExampleAPIKey      = "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32"
	WarnMsgNoNotifyChannel    = "DISCORD_NOTIFY_CHANNEL_ID is not set - award notifications will not be posted"
	WarnMsgMemoryInProduction = "STORAGE_DRIVER=memory loses all points on restart"
	WarnMsgNoAppID            = "DISCORD_APP_ID is not set - slash commands will not be registered"
)
