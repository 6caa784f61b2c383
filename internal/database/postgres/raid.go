package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/argguild/epgpbot/internal/database/generated"
	"github.com/argguild/epgpbot/internal/domain"
	"github.com/argguild/epgpbot/internal/repository"
)

// RaidRepository implements repository.Raids for PostgreSQL using sqlc
type RaidRepository struct {
	db *pgxpool.Pool
	q  *generated.Queries
}

// NewRaidRepository creates a new RaidRepository
func NewRaidRepository(db *pgxpool.Pool) *RaidRepository {
	return &RaidRepository{db: db, q: generated.New(db)}
}

// BeginRaidTx starts a transaction covering a raid and the ledger
func (r *RaidRepository) BeginRaidTx(ctx context.Context) (repository.RaidTx, error) {
	tx, err := begin(ctx, r.db, r.q)
	if err != nil {
		return nil, err
	}
	return &raidTx{ledgerTx: &ledgerTx{pgTx: tx}}, nil
}

func (r *RaidRepository) CreateRaid(ctx context.Context, raid *domain.Raid) error {
	row, err := r.q.CreateRaid(ctx, generated.CreateRaidParams{
		TeamID:    raid.TeamID,
		Zone:      string(raid.Zone),
		StartsAt:  raid.StartsAt,
		EndsAt:    raid.EndsAt,
		Notes:     raid.Notes,
		CreatedBy: raid.CreatedBy,
	})
	if err != nil {
		if _, ok := foreignKeyViolation(err); ok {
			return fmt.Errorf("%w: %d", domain.ErrTeamNotFound, raid.TeamID)
		}
		return wrapErr(ErrMsgFailedToCreateRaid, err)
	}
	raid.ID = row.RaidID
	raid.CreatedAt = row.CreatedAt
	return nil
}

func (r *RaidRepository) GetRaid(ctx context.Context, id int64) (*domain.Raid, error) {
	row, err := r.q.GetRaid(ctx, id)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, wrapErr(ErrMsgFailedToGetRaid, err)
	}
	return mapRaid(row), nil
}

func (r *RaidRepository) ListOpenRaids(ctx context.Context) ([]domain.Raid, error) {
	rows, err := r.q.ListOpenRaids(ctx)
	if err != nil {
		return nil, wrapErr(ErrMsgFailedToListRaids, err)
	}
	raids := make([]domain.Raid, len(rows))
	for i, row := range rows {
		raids[i] = *mapRaid(row)
	}
	return raids, nil
}

func (r *RaidRepository) UpsertRewardSchedule(ctx context.Context, schedule *domain.RewardSchedule) error {
	err := r.q.UpsertRewardSchedule(ctx, generated.UpsertRewardScheduleParams{
		TeamID:                schedule.TeamID,
		Zone:                  string(schedule.Zone),
		SigninIntervalSeconds: int64(schedule.SigninInterval / time.Second),
		StartBonus:            schedule.StartBonus,
		TickBonus:             schedule.TickBonus,
		TickIntervalSeconds:   int64(schedule.TickInterval / time.Second),
		DurationSeconds:       int64(schedule.Duration / time.Second),
		EndBonus:              schedule.EndBonus,
	})
	if err != nil {
		if _, ok := foreignKeyViolation(err); ok {
			return fmt.Errorf("%w: %d", domain.ErrTeamNotFound, schedule.TeamID)
		}
		return wrapErr(ErrMsgFailedToUpsertSchedule, err)
	}
	return nil
}

func (r *RaidRepository) GetRewardSchedule(ctx context.Context, teamID int64, zone domain.RaidZone) (*domain.RewardSchedule, error) {
	row, err := r.q.GetRewardSchedule(ctx, generated.GetRewardScheduleParams{TeamID: teamID, Zone: string(zone)})
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, wrapErr(ErrMsgFailedToGetSchedule, err)
	}
	return &domain.RewardSchedule{
		TeamID:         row.TeamID,
		Zone:           domain.RaidZone(row.Zone),
		SigninInterval: time.Duration(row.SigninIntervalSeconds) * time.Second,
		StartBonus:     row.StartBonus,
		TickBonus:      row.TickBonus,
		TickInterval:   time.Duration(row.TickIntervalSeconds) * time.Second,
		Duration:       time.Duration(row.DurationSeconds) * time.Second,
		EndBonus:       row.EndBonus,
	}, nil
}

// SaveSignup inserts or replaces the signup of a user for a raid and sets its ID
func (r *RaidRepository) SaveSignup(ctx context.Context, signup *domain.Signup) error {
	id, err := r.q.SaveSignup(ctx, generated.SaveSignupParams{
		RaidID:      signup.RaidID,
		UserID:      signup.UserID,
		CharacterID: signup.CharacterID,
		SignupAt:    signup.SignupAt,
		Confirmed:   signup.Confirmed,
		ConfirmedAt: signup.ConfirmedAt,
		Ejected:     signup.Ejected,
		EjectedAt:   signup.EjectedAt,
	})
	if err != nil {
		if c, ok := foreignKeyViolation(err); ok {
			if c == ConstraintSignupCharacter {
				return fmt.Errorf("%w: %d", domain.ErrCharacterNotFound, signup.CharacterID)
			}
			return fmt.Errorf("%w: %d", domain.ErrRaidNotFound, signup.RaidID)
		}
		return wrapErr(ErrMsgFailedToSaveSignup, err)
	}
	signup.ID = id
	return nil
}

func (r *RaidRepository) GetSignup(ctx context.Context, raidID int64, userID string) (*domain.Signup, error) {
	row, err := r.q.GetSignup(ctx, generated.GetSignupParams{RaidID: raidID, UserID: userID})
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, wrapErr(ErrMsgFailedToGetSignup, err)
	}
	return mapSignup(row), nil
}

func (r *RaidRepository) ListSignups(ctx context.Context, raidID int64) ([]domain.Signup, error) {
	return listSignups(ctx, r.q, raidID)
}

// raidTx implements repository.RaidTx
type raidTx struct {
	*ledgerTx
}

func (t *raidTx) GetRaidForUpdate(ctx context.Context, id int64) (*domain.Raid, error) {
	row, err := t.q.GetRaidForUpdate(ctx, id)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, wrapErr(ErrMsgFailedToGetRaid, err)
	}
	return mapRaid(row), nil
}

func (t *raidTx) UpdateRaidProgress(ctx context.Context, raid *domain.Raid) error {
	n, err := t.q.UpdateRaidProgress(ctx, generated.UpdateRaidProgressParams{
		RaidID:       raid.ID,
		Started:      raid.Started,
		Closed:       raid.Closed,
		LastRewardAt: raid.LastRewardAt,
		EndsAt:       raid.EndsAt,
	})
	if err != nil {
		return wrapErr(ErrMsgFailedToUpdateRaid, err)
	}
	if n == 0 {
		return domain.ErrRaidNotFound
	}
	return nil
}

func (t *raidTx) ListSignups(ctx context.Context, raidID int64) ([]domain.Signup, error) {
	return listSignups(ctx, t.q, raidID)
}

func listSignups(ctx context.Context, q *generated.Queries, raidID int64) ([]domain.Signup, error) {
	rows, err := q.ListSignups(ctx, raidID)
	if err != nil {
		return nil, wrapErr(ErrMsgFailedToListSignups, err)
	}
	signups := make([]domain.Signup, len(rows))
	for i, row := range rows {
		signups[i] = *mapSignup(row)
	}
	return signups, nil
}

func mapRaid(row generated.Raid) *domain.Raid {
	return &domain.Raid{
		ID:           row.RaidID,
		TeamID:       row.TeamID,
		Zone:         domain.RaidZone(row.Zone),
		StartsAt:     row.StartsAt,
		EndsAt:       row.EndsAt,
		Notes:        row.Notes,
		CreatedBy:    row.CreatedBy,
		Started:      row.Started,
		Closed:       row.Closed,
		LastRewardAt: row.LastRewardAt,
		CreatedAt:    row.CreatedAt,
	}
}

func mapSignup(row generated.Signup) *domain.Signup {
	return &domain.Signup{
		ID:          row.SignupID,
		RaidID:      row.RaidID,
		UserID:      row.UserID,
		CharacterID: row.CharacterID,
		SignupAt:    row.SignupAt,
		Confirmed:   row.Confirmed,
		ConfirmedAt: row.ConfirmedAt,
		Ejected:     row.Ejected,
		EjectedAt:   row.EjectedAt,
	}
}
