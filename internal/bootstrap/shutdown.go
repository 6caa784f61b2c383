package bootstrap

import (
	"context"
	"log/slog"

	"github.com/argguild/epgpbot/internal/database"
	"github.com/argguild/epgpbot/internal/discord"
	"github.com/argguild/epgpbot/internal/scheduler"
	"github.com/argguild/epgpbot/internal/server"
	"github.com/argguild/epgpbot/internal/worker"
)

// ShutdownComponents holds everything that needs graceful shutdown. Nil
// fields are skipped.
type ShutdownComponents struct {
	Server    *server.Server
	Scheduler *scheduler.Scheduler
	Bot       *discord.Bot
	Pool      *worker.Pool
	DB        database.Pool
}

// GracefulShutdown stops the components in dependency order:
//  1. HTTP server and chat gateway (stop taking new work)
//  2. scheduler (wait for a running tick)
//  3. worker pool (drain queued sends)
//  4. database pool
//
// Errors are logged and do not stop the sequence.
func GracefulShutdown(ctx context.Context, c ShutdownComponents) {
	slog.Info(LogMsgShuttingDown)

	if c.Server != nil {
		if err := c.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}
	if c.Bot != nil {
		if err := c.Bot.Stop(); err != nil {
			slog.Error(LogMsgBotStopFailed, "error", err)
		}
	}
	if c.Scheduler != nil {
		if err := c.Scheduler.Stop(); err != nil {
			slog.Error(LogMsgSchedulerStopFailed, "error", err)
		}
	}
	if c.Pool != nil {
		c.Pool.Stop()
	}
	if c.DB != nil {
		c.DB.Close()
	}

	slog.Info(LogMsgStopped)
}
