package postgres

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store bundles every repository over one pool so a single value satisfies
// each repository interface
type Store struct {
	*LedgerRepository
	*RosterRepository
	*ItemRepository
	*RaidRepository
	*LootRepository
}

// NewStore creates the repositories over pool
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{
		LedgerRepository: NewLedgerRepository(pool),
		RosterRepository: NewRosterRepository(pool),
		ItemRepository:   NewItemRepository(pool),
		RaidRepository:   NewRaidRepository(pool),
		LootRepository:   NewLootRepository(pool),
	}
}
