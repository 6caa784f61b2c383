// Command setup creates the configured database when it does not exist and
// applies the schema migrations. With -reset it drops the database first.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"

	"github.com/argguild/epgpbot/internal/database"
	"github.com/argguild/epgpbot/internal/logger"
)

func main() {
	reset := flag.Bool("reset", false, "drop and recreate the database")
	flag.Parse()

	_ = godotenv.Load()
	logger.InitLogger(logger.DefaultConfig())

	if err := run(context.Background(), *reset); err != nil {
		slog.Error("Setup failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, reset bool) error {
	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	dbname := os.Getenv("DB_NAME")

	// the maintenance database is used to create or drop the target
	conn, err := pgx.Connect(ctx, fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable", user, password, host, port))
	if err != nil {
		return fmt.Errorf("connect to postgres database: %w", err)
	}
	defer conn.Close(ctx)

	ident := pgx.Identifier{dbname}.Sanitize()
	if reset {
		_, err = conn.Exec(ctx, `SELECT pg_terminate_backend(pid) FROM pg_stat_activity
			WHERE datname = $1 AND pid <> pg_backend_pid()`, dbname)
		if err != nil {
			slog.Warn("Failed to terminate connections", "error", err)
		}
		if _, err := conn.Exec(ctx, "DROP DATABASE IF EXISTS "+ident); err != nil {
			return fmt.Errorf("drop database: %w", err)
		}
		slog.Info("Database dropped", "database", dbname)
	}

	var exists bool
	if err := conn.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", dbname).Scan(&exists); err != nil {
		return fmt.Errorf("check database: %w", err)
	}
	if !exists {
		if _, err := conn.Exec(ctx, "CREATE DATABASE "+ident); err != nil {
			return fmt.Errorf("create database: %w", err)
		}
		slog.Info("Database created", "database", dbname)
	} else {
		slog.Info("Database already exists", "database", dbname)
	}

	pool, err := database.NewPool(ctx, database.PoolConfig{
		ConnString:      fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, password, host, port, dbname),
		MaxConns:        2,
		MaxConnIdleTime: time.Minute,
		MaxConnLifetime: time.Hour,
	})
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool); err != nil {
		return err
	}
	slog.Info("Migrations applied", "database", dbname)
	return nil
}
