package database

import "time"

// Connection pool settings
const (
	// DefaultMinConnections is the number of idle connections kept open, capped by the pool size
	DefaultMinConnections = 2
	PingTimeout           = 5 * time.Second
	// MigrationsDir is the embedded directory holding the goose migrations
	MigrationsDir         = "migrations"
)

// Error Messages - Database Operations
const (
	ErrMsgFailedToParseConnString = "failed to parse connection string"
	ErrMsgFailedToCreatePool      = "failed to create connection pool"
	ErrMsgFailedToPingDatabase    = "failed to ping database"
	ErrMsgFailedToLoadMigrations  = "failed to load migrations"
	ErrMsgFailedToMigrate         = "failed to run migrations"
)

// Log Messages
const (
	LogMsgConnected        = "Connected to database"
	LogMsgMigrationApplied = "Applied database migration"
)
