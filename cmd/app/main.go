package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/argguild/epgpbot/internal/bootstrap"
	"github.com/argguild/epgpbot/internal/config"
	"github.com/argguild/epgpbot/internal/discord"
	"github.com/argguild/epgpbot/internal/handler"
	"github.com/argguild/epgpbot/internal/server"
)

// @title EPGP Bot API
// @version 1.0
// @description Effort and gear point ledger, raid rewards and loot awards.
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	bootstrap.SetupLogger(cfg)

	if err := run(cfg); err != nil {
		slog.Error("Application failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, pool, err := bootstrap.OpenStore(ctx, cfg)
	if err != nil {
		return err
	}
	shutdown := bootstrap.ShutdownComponents{}
	var db handler.Pinger
	if pool != nil {
		db = pool
		shutdown.DB = pool
	}

	bus, workers := bootstrap.InitializeEventSystem(cfg)
	shutdown.Pool = workers

	svc, err := bootstrap.InitializeServices(cfg, store, bus)
	if err != nil {
		bootstrap.GracefulShutdown(ctx, shutdown)
		return err
	}
	if err := bootstrap.SyncItems(ctx, svc.Items, cfg.ItemCatalogPath); err != nil {
		bootstrap.GracefulShutdown(ctx, shutdown)
		return err
	}

	deps := bootstrap.EventHandlerDependencies{Bus: bus, Pool: workers, Items: svc.Items, ChannelID: cfg.DiscordNotifyChannelID}
	if cfg.DiscordEnabled() {
		bot, err := discord.New(discord.Config{
			Token:   cfg.DiscordToken,
			AppID:   cfg.DiscordAppID,
			GuildID: cfg.DiscordGuildID,
		}, discord.Services{
			Ledger: svc.Ledger,
			Loot:   svc.Loot,
			Roster: svc.Roster,
			Items:  svc.Items,
		}, svc.BidTiers)
		if err != nil {
			bootstrap.GracefulShutdown(ctx, shutdown)
			return err
		}
		if err := bot.Start(); err != nil {
			bootstrap.GracefulShutdown(ctx, shutdown)
			return err
		}
		shutdown.Bot = bot
		deps.Sender = bot.Session

		// the bot keeps working with commands registered by an earlier run
		if err := bot.RegisterCommands(cfg.DiscordForceUpdate); err != nil {
			slog.Error("Failed to register commands", "error", err)
		}
	}
	bootstrap.RegisterEventHandlers(deps)

	sched, err := bootstrap.ScheduleJobs(ctx, cfg, svc)
	if err != nil {
		bootstrap.GracefulShutdown(ctx, shutdown)
		return err
	}
	sched.Start()
	shutdown.Scheduler = sched

	srv := server.NewServer(server.Config{
		Port:              cfg.Port,
		APIKey:            cfg.APIKey,
		TrustedProxies:    cfg.TrustedProxies,
		RateLimitRequests: cfg.RateLimitRequests,
		RateLimitWindow:   cfg.RateLimitWindow,
	}, server.Services{
		Ledger: svc.Ledger,
		Roster: svc.Roster,
		Raids:  svc.Raids,
		Loot:   svc.Loot,
		Items:  svc.Items,
		DB:     db,
	})
	shutdown.Server = srv

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
		err = nil
	case err = <-serverErr:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, shutdown)
	return err
}
