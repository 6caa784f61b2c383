// Command import loads EP and GP balances for one team and tier from a
// Name,EP,GP spreadsheet export.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/argguild/epgpbot/internal/bootstrap"
	"github.com/argguild/epgpbot/internal/config"
	"github.com/argguild/epgpbot/internal/importer"
)

func main() {
	teamName := flag.String("team", "", "team name")
	tier := flag.Int("tier", 0, "tier to load")
	file := flag.String("file", "", "path to the csv export")
	flag.Parse()

	if *teamName == "" || *file == "" || *tier == 0 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	bootstrap.SetupLogger(cfg)

	if err := run(context.Background(), cfg, *teamName, *tier, *file); err != nil {
		slog.Error("Import failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, teamName string, tier int, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	store, pool, err := bootstrap.OpenStore(ctx, cfg)
	if err != nil {
		return err
	}
	if pool != nil {
		defer pool.Close()
	}

	bus, workers := bootstrap.InitializeEventSystem(cfg)
	defer workers.Stop()
	bootstrap.RegisterEventHandlers(bootstrap.EventHandlerDependencies{Bus: bus, Pool: workers})

	svc, err := bootstrap.InitializeServices(cfg, store, bus)
	if err != nil {
		return err
	}

	team, err := svc.Roster.GetTeamByName(ctx, teamName)
	if err != nil {
		return err
	}

	result, err := importer.New(svc.Roster, svc.Ledger).Import(ctx, f, team.ID, tier)
	if err != nil {
		return err
	}

	fmt.Printf("Loaded %d, skipped %d\n", len(result.Loaded), len(result.Skipped))
	for _, name := range result.Skipped {
		fmt.Printf("  not found: %s\n", name)
	}
	return nil
}
