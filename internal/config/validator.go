package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validate checks value ranges declared in the struct tags
func Validate(cfg *Config) error {
	err := validator.New().Struct(cfg)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("%s: %w", ErrMsgInvalidConfig, err)
	}

	fields := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		fields = append(fields, fmt.Sprintf("%s (%s %s)", envName(fe.StructField()), fe.Tag(), fe.Param()))
	}
	return fmt.Errorf("%s: %s", ErrMsgInvalidConfig, strings.Join(fields, ", "))
}

// Warnings returns non-fatal configuration issues worth logging at startup
func (c *Config) Warnings() []string {
	var warnings []string

	if c.DBPassword == InsecureExamplePassword {
		warnings = append(warnings, WarnMsgExamplePassword)
	}
	if c.APIKey == InsecureExampleAPIKey {
		warnings = append(warnings, WarnMsgExampleAPIKey)
	}
	if c.DiscordToken != "" && c.DiscordNotifyChannelID == "" {
		warnings = append(warnings, WarnMsgNoNotifyChannel)
	}
	if c.DiscordToken != "" && c.DiscordAppID == "" {
		warnings = append(warnings, WarnMsgNoAppID)
	}
	if c.UsesMemoryStorage() && c.Environment == EnvironmentProduction {
		warnings = append(warnings, WarnMsgMemoryInProduction)
	}

	return warnings
}

// envName maps a struct field back to its environment variable for error messages
func envName(field string) string {
	if name, ok := fieldEnvNames[field]; ok {
		return name
	}
	return field
}

var fieldEnvNames = map[string]string{
	"LogLevel":           "LOG_LEVEL",
	"LogFormat":          "LOG_FORMAT",
	"Port":               "PORT",
	"APIKey":             "API_KEY",
	"StorageDriver":      "STORAGE_DRIVER",
	"DBMaxConns":         "DB_MAX_CONNS",
	"BaseGP":             "BASE_GP",
	"DecayPercent":       "DECAY_PERCENT",
	"DecayInterval":      "DECAY_INTERVAL",
	"RewardTickInterval": "REWARD_TICK_INTERVAL",
	"WorkerCount":        "WORKER_COUNT",
	"WorkerQueueSize":    "WORKER_QUEUE_SIZE",
	"ItemCacheSize":      "ITEM_CACHE_SIZE",
	"ItemCacheTTL":       "ITEM_CACHE_TTL",
	"RateLimitRequests":  "RATE_LIMIT_REQUESTS",
	"RateLimitWindow":    "RATE_LIMIT_WINDOW",
}
