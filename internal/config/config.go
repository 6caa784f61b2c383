package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/argguild/epgpbot/internal/domain"
	"github.com/argguild/epgpbot/internal/ledger"
)

// Config holds the application configuration
type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"dev"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn warning error"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"text" validate:"oneof=text json"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"epgp-bot"`
	Version     string `env:"APP_VERSION" envDefault:"dev"`
	Port        int    `env:"PORT" envDefault:"8080" validate:"gte=0,lte=65535"`
	APIKey      string `env:"API_KEY" validate:"required"`

	TrustedProxies    []string      `env:"TRUSTED_PROXIES" envSeparator:","`
	RateLimitRequests int           `env:"RATE_LIMIT_REQUESTS" envDefault:"1000" validate:"gt=0"`
	RateLimitWindow   time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"5m" validate:"gt=0"`

	StorageDriver     string        `env:"STORAGE_DRIVER" envDefault:"postgres" validate:"oneof=postgres memory"`
	DBUser            string        `env:"DB_USER" envDefault:"postgres"`
	DBPassword        string        `env:"DB_PASSWORD" envDefault:"postgres"`
	DBHost            string        `env:"DB_HOST" envDefault:"localhost"`
	DBPort            string        `env:"DB_PORT" envDefault:"5432"`
	DBName            string        `env:"DB_NAME" envDefault:"epgpbot"`
	DBMaxConns        int           `env:"DB_MAX_CONNS" envDefault:"10" validate:"gt=0"`
	DBMaxConnIdleTime time.Duration `env:"DB_MAX_CONN_IDLE_TIME" envDefault:"5m"`
	DBMaxConnLifetime time.Duration `env:"DB_MAX_CONN_LIFETIME" envDefault:"1h"`

	BaseGP             int64         `env:"BASE_GP" envDefault:"1000" validate:"gt=0"`
	DecayPercent       int64         `env:"DECAY_PERCENT" envDefault:"10" validate:"gt=0,lt=100"`
	DecayEnabled       bool          `env:"DECAY_ENABLED" envDefault:"false"`
	DecayInterval      time.Duration `env:"DECAY_INTERVAL" envDefault:"168h" validate:"gt=0"`
	RewardTickInterval time.Duration `env:"REWARD_TICK_INTERVAL" envDefault:"1m" validate:"gt=0"`

	WorkerCount     int `env:"WORKER_COUNT" envDefault:"4" validate:"gt=0"`
	WorkerQueueSize int `env:"WORKER_QUEUE_SIZE" envDefault:"100" validate:"gt=0"`

	ItemCacheSize   int           `env:"ITEM_CACHE_SIZE" envDefault:"512" validate:"gt=0"`
	ItemCacheTTL    time.Duration `env:"ITEM_CACHE_TTL" envDefault:"30m" validate:"gt=0"`
	ItemCatalogPath string        `env:"ITEM_CATALOG_PATH"`

	DiscordToken           string `env:"DISCORD_TOKEN"`
	DiscordAppID           string `env:"DISCORD_APP_ID"`
	DiscordGuildID         string `env:"DISCORD_GUILD_ID"`
	DiscordNotifyChannelID string `env:"DISCORD_NOTIFY_CHANNEL_ID"`
	DiscordForceUpdate     bool   `env:"DISCORD_FORCE_COMMAND_UPDATE" envDefault:"false"`
	BidEmojiUpgrade        string `env:"BID_EMOJI_UPGRADE" envDefault:"bid_100"`
	BidEmojiSidegrade      string `env:"BID_EMOJI_SIDEGRADE" envDefault:"bid_25"`
	BidEmojiOffspec        string `env:"BID_EMOJI_OFFSPEC" envDefault:"bid_0"`

	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgParseEnv, err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}

// DiscordEnabled reports whether the chat adapter should be started
func (c *Config) DiscordEnabled() bool {
	return c.DiscordToken != ""
}

// UsesMemoryStorage reports whether the in-memory store was selected
func (c *Config) UsesMemoryStorage() bool {
	return c.StorageDriver == StorageDriverMemory
}

// LedgerPolicy returns the bucket rules derived from the configured base gear points
func (c *Config) LedgerPolicy() ledger.Policy {
	return ledger.NewPolicy(c.BaseGP)
}

// BidReactions maps each bid tier to its configured reaction emoji
func (c *Config) BidReactions() map[domain.BidTier]string {
	return map[domain.BidTier]string{
		domain.BidTierUpgrade:   c.BidEmojiUpgrade,
		domain.BidTierSidegrade: c.BidEmojiSidegrade,
		domain.BidTierOffspec:   c.BidEmojiOffspec,
	}
}
