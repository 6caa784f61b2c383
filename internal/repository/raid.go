package repository

import (
	"context"

	"github.com/argguild/epgpbot/internal/domain"
)

// RaidTx extends LedgerTx so a reward tick grants effort and advances the
// raid in one transaction
type RaidTx interface {
	LedgerTx

	GetRaidForUpdate(ctx context.Context, id int64) (*domain.Raid, error)
	// UpdateRaidProgress persists Started, Closed, LastRewardAt and EndsAt
	UpdateRaidProgress(ctx context.Context, raid *domain.Raid) error
	ListSignups(ctx context.Context, raidID int64) ([]domain.Signup, error)
}

// Raids defines the data access required by the raid service
type Raids interface {
	BeginRaidTx(ctx context.Context) (RaidTx, error)

	CreateRaid(ctx context.Context, raid *domain.Raid) error
	GetRaid(ctx context.Context, id int64) (*domain.Raid, error)
	ListOpenRaids(ctx context.Context) ([]domain.Raid, error)

	UpsertRewardSchedule(ctx context.Context, schedule *domain.RewardSchedule) error
	GetRewardSchedule(ctx context.Context, teamID int64, zone domain.RaidZone) (*domain.RewardSchedule, error)

	// SaveSignup inserts or replaces the signup of a user for a raid and sets its ID
	SaveSignup(ctx context.Context, signup *domain.Signup) error
	GetSignup(ctx context.Context, raidID int64, userID string) (*domain.Signup, error)
	ListSignups(ctx context.Context, raidID int64) ([]domain.Signup, error)
}
