package postgres

import (
	"context"
	"flag"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/argguild/epgpbot/internal/database"
	"github.com/argguild/epgpbot/internal/domain"
	"github.com/argguild/epgpbot/internal/testing/pgtest"
)

var testPool *pgxpool.Pool

func TestMain(m *testing.M) {
	flag.Parse()

	terminate := func() {}
	if !testing.Short() {
		var connString string
		connString, terminate = pgtest.Start(context.Background())
		if connString != "" {
			testPool = connect(connString)
		}
	}

	code := m.Run()
	if testPool != nil {
		testPool.Close()
	}
	terminate()
	os.Exit(code)
}

func connect(connString string) *pgxpool.Pool {
	ctx := context.Background()
	pool, err := database.NewPool(ctx, database.PoolConfig{
		ConnString:      connString,
		MaxConns:        25,
		MaxConnIdleTime: 30 * time.Minute,
		MaxConnLifetime: time.Hour,
	})
	if err != nil {
		fmt.Printf("WARNING: Failed to connect to test database: %v\n", err)
		return nil
	}
	if err := database.Migrate(ctx, pool); err != nil {
		fmt.Printf("WARNING: Failed to migrate test database: %v\n", err)
		pool.Close()
		return nil
	}
	return pool
}

// setupStore empties every table and returns a store over the shared pool
func setupStore(t *testing.T) *Store {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	if testPool == nil {
		t.Skip("Skipping integration test: database not available")
	}
	_, err := testPool.Exec(context.Background(),
		"TRUNCATE teams, users, items, ledger_entries RESTART IDENTITY CASCADE")
	require.NoError(t, err)
	return NewStore(testPool)
}

// seedRaider creates a team member with a character and returns the character
func seedRaider(t *testing.T, s *Store, teamID int64, userID string) *domain.Character {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, s.UpsertUser(ctx, &domain.User{ID: userID, Name: userID, DisplayName: userID}))
	c := &domain.Character{UserID: userID, Name: "Char" + userID, Class: domain.ClassWarrior, Role: domain.RoleMelee}
	require.NoError(t, s.CreateCharacter(ctx, c))
	_, err := s.AddRosterMember(ctx, teamID, c.ID)
	require.NoError(t, err)
	return c
}

func seedTeam(t *testing.T, s *Store) *domain.Team {
	t.Helper()
	team := &domain.Team{Name: "Main"}
	require.NoError(t, s.CreateTeam(context.Background(), team))
	return team
}
