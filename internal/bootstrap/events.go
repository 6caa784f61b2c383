package bootstrap

import (
	"log/slog"

	"github.com/argguild/epgpbot/internal/config"
	"github.com/argguild/epgpbot/internal/discord"
	"github.com/argguild/epgpbot/internal/event"
	"github.com/argguild/epgpbot/internal/metrics"
	"github.com/argguild/epgpbot/internal/worker"
)

// InitializeEventSystem creates the event bus and starts the worker pool that
// runs slow subscriber work such as chat sends
func InitializeEventSystem(cfg *config.Config) (*event.MemoryBus, *worker.Pool) {
	bus := event.NewMemoryBus()
	pool := worker.NewPool(cfg.WorkerCount, cfg.WorkerQueueSize)
	pool.Start()

	slog.Info(LogMsgEventSystemReady,
		"workers", cfg.WorkerCount,
		"queue_size", cfg.WorkerQueueSize)
	return bus, pool
}

// EventHandlerDependencies holds what the event subscribers need
type EventHandlerDependencies struct {
	Bus       event.Bus
	Pool      *worker.Pool
	Items     discord.ItemNamer
	Sender    discord.MessageSender // nil when the chat adapter is disabled
	ChannelID string
}

// RegisterEventHandlers subscribes the metrics collector and, when a chat
// session is available, the announcement notifier
func RegisterEventHandlers(deps EventHandlerDependencies) {
	metrics.NewEventMetricsCollector().Register(deps.Bus)
	slog.Info(LogMsgMetricsRegistered)

	if deps.Sender == nil {
		return
	}
	if deps.ChannelID == "" {
		slog.Warn(LogMsgNotifierDisabled)
	}
	discord.NewNotifier(deps.Sender, deps.ChannelID, deps.Pool, deps.Items).Subscribe(deps.Bus)
	slog.Info(LogMsgNotifierRegistered, "channel_id", deps.ChannelID)
}
