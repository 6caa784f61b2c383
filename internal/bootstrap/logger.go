package bootstrap

import (
	"log/slog"

	"github.com/argguild/epgpbot/internal/config"
	"github.com/argguild/epgpbot/internal/logger"
)

// SetupLogger installs the default logger from the app configuration and
// logs the startup banner and any configuration warnings
func SetupLogger(cfg *config.Config) {
	// source locations only in dev
	addSource := cfg.Environment == config.EnvironmentDev

	logger.InitLogger(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		addSource,
	))

	slog.Info(LogMsgStarting,
		"environment", cfg.Environment,
		"log_level", cfg.LogLevel,
		"storage", cfg.StorageDriver,
		"version", cfg.Version)

	slog.Debug(LogMsgConfigurationLoaded,
		"db_host", cfg.DBHost,
		"db_port", cfg.DBPort,
		"db_name", cfg.DBName,
		"port", cfg.Port)

	for _, w := range cfg.Warnings() {
		slog.Warn(LogMsgConfigWarning, "warning", w)
	}
}
