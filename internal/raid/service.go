package raid

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/argguild/epgpbot/internal/concurrency"
	"github.com/argguild/epgpbot/internal/domain"
	"github.com/argguild/epgpbot/internal/event"
	"github.com/argguild/epgpbot/internal/ledger"
	"github.com/argguild/epgpbot/internal/logger"
	"github.com/argguild/epgpbot/internal/repository"
)

// Service defines raid scheduling, signup and effort reward operations
type Service interface {
	// CreateRaid schedules a raid; its end time comes from the team's reward schedule for the zone
	CreateRaid(ctx context.Context, teamID int64, zone domain.RaidZone, startsAt time.Time, notes, createdBy string) (*domain.Raid, error)
	GetRaid(ctx context.Context, id int64) (*domain.Raid, error)
	SetRewardSchedule(ctx context.Context, schedule domain.RewardSchedule) (*domain.RewardSchedule, error)

	Signup(ctx context.Context, raidID int64, userID string, characterID int64) (*domain.Signup, error)
	ConfirmSignup(ctx context.Context, raidID int64, userID string) (*domain.Signup, error)
	// ConfirmDueSignups confirms every signup made before the sign-in window closed
	ConfirmDueSignups(ctx context.Context, raidID int64, now time.Time) (int, error)
	EjectSignup(ctx context.Context, raidID int64, userID string) (*domain.Signup, error)
	ListSignups(ctx context.Context, raidID int64) ([]domain.Signup, error)

	Extend(ctx context.Context, raidID int64, d time.Duration) (*domain.Raid, error)
	// Reward runs one reward tick
	Reward(ctx context.Context, raidID int64, now time.Time) (*domain.RaidReward, error)
	// GrantRaid grants amount effort to every active signup without advancing the raid
	GrantRaid(ctx context.Context, raidID int64, amount int64, reason string) (*domain.RaidReward, error)
	// ProcessDueRewards runs the tick of every open raid that is due and returns how many ran
	ProcessDueRewards(ctx context.Context, now time.Time) (int, error)
}

// CharacterReader resolves signup characters
type CharacterReader interface {
	GetCharacter(ctx context.Context, id int64) (*domain.Character, error)
}

type service struct {
	repo       repository.Raids
	characters CharacterReader
	ledger     ledger.Service
	locks      *concurrency.LockManager
	bus        event.Bus
	now        func() time.Time
}

// NewService creates a new raid service
func NewService(repo repository.Raids, characters CharacterReader, ledgerSvc ledger.Service, locks *concurrency.LockManager, bus event.Bus) Service {
	return &service{
		repo:       repo,
		characters: characters,
		ledger:     ledgerSvc,
		locks:      locks,
		bus:        bus,
		now:        time.Now,
	}
}

func raidLockKey(id int64) string {
	return "raid:" + strconv.FormatInt(id, 10)
}

func (s *service) CreateRaid(ctx context.Context, teamID int64, zone domain.RaidZone, startsAt time.Time, notes, createdBy string) (*domain.Raid, error) {
	zone, err := domain.ParseRaidZone(string(zone))
	if err != nil {
		return nil, err
	}
	if startsAt.IsZero() {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidParameter, ErrMsgStartRequired)
	}
	schedule, err := s.schedule(ctx, teamID, zone)
	if err != nil {
		return nil, err
	}

	raid := &domain.Raid{
		TeamID:    teamID,
		Zone:      zone,
		StartsAt:  startsAt,
		EndsAt:    startsAt.Add(schedule.Duration),
		Notes:     notes,
		CreatedBy: createdBy,
	}
	if err := s.repo.CreateRaid(ctx, raid); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%s: %w", ErrContextCreateRaid, err)
	}

	logger.FromContext(ctx).Info(LogMsgRaidCreated, "raid_id", raid.ID, "team_id", teamID, "zone", zone, "starts_at", startsAt)
	return raid, nil
}

func (s *service) GetRaid(ctx context.Context, id int64) (*domain.Raid, error) {
	raid, err := s.repo.GetRaid(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextGetRaid, err)
	}
	if raid == nil {
		return nil, fmt.Errorf("%w: %d", domain.ErrRaidNotFound, id)
	}
	return raid, nil
}

func (s *service) SetRewardSchedule(ctx context.Context, schedule domain.RewardSchedule) (*domain.RewardSchedule, error) {
	zone, err := domain.ParseRaidZone(string(schedule.Zone))
	if err != nil {
		return nil, err
	}
	schedule.Zone = zone
	switch {
	case schedule.TeamID <= 0:
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidParameter, ErrMsgTeamRequired)
	case schedule.TickInterval <= 0 || schedule.Duration <= 0 || schedule.SigninInterval < 0:
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidParameter, ErrMsgScheduleIntervals)
	case schedule.StartBonus < 0 || schedule.TickBonus < 0 || schedule.EndBonus < 0:
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidParameter, ErrMsgScheduleBonuses)
	}

	if err := s.repo.UpsertRewardSchedule(ctx, &schedule); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextSaveSchedule, err)
	}
	return &schedule, nil
}

func (s *service) schedule(ctx context.Context, teamID int64, zone domain.RaidZone) (*domain.RewardSchedule, error) {
	schedule, err := s.repo.GetRewardSchedule(ctx, teamID, zone)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextGetSchedule, err)
	}
	if schedule == nil {
		return nil, fmt.Errorf("%w: team %d zone %s", domain.ErrRewardScheduleNotFound, teamID, zone)
	}
	return schedule, nil
}

func (s *service) Signup(ctx context.Context, raidID int64, userID string, characterID int64) (*domain.Signup, error) {
	raid, err := s.GetRaid(ctx, raidID)
	if err != nil {
		return nil, err
	}
	if raid.Closed {
		return nil, fmt.Errorf("%w: %d", domain.ErrRaidClosed, raidID)
	}
	character, err := s.characters.GetCharacter(ctx, characterID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextGetCharacter, err)
	}
	if character == nil || character.UserID != userID {
		return nil, fmt.Errorf("%w: %d for user %s", domain.ErrCharacterNotFound, characterID, userID)
	}

	signup, err := s.repo.GetSignup(ctx, raidID, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextGetSignup, err)
	}
	if signup == nil {
		signup = &domain.Signup{RaidID: raidID, UserID: userID, SignupAt: s.now()}
	}
	signup.CharacterID = characterID

	if err := s.repo.SaveSignup(ctx, signup); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextSaveSignup, err)
	}
	return signup, nil
}

func (s *service) ConfirmSignup(ctx context.Context, raidID int64, userID string) (*domain.Signup, error) {
	return s.updateSignup(ctx, raidID, userID, func(signup *domain.Signup, now time.Time) {
		if !signup.Confirmed {
			signup.Confirmed = true
			signup.ConfirmedAt = &now
		}
	})
}

func (s *service) EjectSignup(ctx context.Context, raidID int64, userID string) (*domain.Signup, error) {
	signup, err := s.updateSignup(ctx, raidID, userID, func(signup *domain.Signup, now time.Time) {
		if !signup.Ejected {
			signup.Ejected = true
			signup.EjectedAt = &now
		}
	})
	if err == nil {
		logger.FromContext(ctx).Info(LogMsgSignupEjected, "raid_id", raidID, "user_id", userID)
	}
	return signup, err
}

func (s *service) updateSignup(ctx context.Context, raidID int64, userID string, mutate func(*domain.Signup, time.Time)) (*domain.Signup, error) {
	signup, err := s.repo.GetSignup(ctx, raidID, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextGetSignup, err)
	}
	if signup == nil {
		return nil, fmt.Errorf("%w: raid %d user %s", domain.ErrSignupNotFound, raidID, userID)
	}
	mutate(signup, s.now())
	if err := s.repo.SaveSignup(ctx, signup); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextSaveSignup, err)
	}
	return signup, nil
}

func (s *service) ConfirmDueSignups(ctx context.Context, raidID int64, now time.Time) (int, error) {
	raid, err := s.GetRaid(ctx, raidID)
	if err != nil {
		return 0, err
	}
	if now.Before(raid.StartsAt) {
		return 0, nil
	}
	schedule, err := s.schedule(ctx, raid.TeamID, raid.Zone)
	if err != nil {
		return 0, err
	}
	closesAt := raid.StartsAt.Add(schedule.SigninInterval)

	signups, err := s.ListSignups(ctx, raidID)
	if err != nil {
		return 0, err
	}
	confirmed := 0
	for i := range signups {
		signup := signups[i]
		if signup.Confirmed || signup.Ejected || signup.SignupAt.After(closesAt) {
			continue
		}
		signup.Confirmed = true
		signup.ConfirmedAt = &now
		if err := s.repo.SaveSignup(ctx, &signup); err != nil {
			return confirmed, fmt.Errorf("%s: %w", ErrContextSaveSignup, err)
		}
		confirmed++
	}
	if confirmed > 0 {
		logger.FromContext(ctx).Info(LogMsgSignupsConfirmed, "raid_id", raidID, "count", confirmed)
	}
	return confirmed, nil
}

func (s *service) ListSignups(ctx context.Context, raidID int64) ([]domain.Signup, error) {
	signups, err := s.repo.ListSignups(ctx, raidID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextListSignups, err)
	}
	return signups, nil
}

func (s *service) Extend(ctx context.Context, raidID int64, d time.Duration) (*domain.Raid, error) {
	if d <= 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidParameter, ErrMsgExtendPositive)
	}
	ctx = context.WithoutCancel(ctx)
	unlock := s.locks.Lock(raidLockKey(raidID))
	defer unlock()

	tx, err := s.repo.BeginRaidTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextBeginTx, err)
	}
	defer repository.SafeRollback(ctx, tx)

	raid, err := s.lockOpenRaid(ctx, tx, raidID)
	if err != nil {
		return nil, err
	}
	raid.EndsAt = raid.EndsAt.Add(d)
	if err := tx.UpdateRaidProgress(ctx, raid); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextUpdateRaid, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextCommitTx, err)
	}

	logger.FromContext(ctx).Info(LogMsgRaidExtended, "raid_id", raidID, "ends_at", raid.EndsAt)
	return raid, nil
}

func (s *service) lockOpenRaid(ctx context.Context, tx repository.RaidTx, raidID int64) (*domain.Raid, error) {
	raid, err := tx.GetRaidForUpdate(ctx, raidID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextGetRaid, err)
	}
	if raid == nil {
		return nil, fmt.Errorf("%w: %d", domain.ErrRaidNotFound, raidID)
	}
	if raid.Closed {
		return nil, fmt.Errorf("%w: %d", domain.ErrRaidClosed, raidID)
	}
	return raid, nil
}

// Reward grants the start bonus on the first tick and the tick bonus after
// that. The first tick past the raid's end also grants the end bonus and
// closes the raid.
func (s *service) Reward(ctx context.Context, raidID int64, now time.Time) (*domain.RaidReward, error) {
	raid, err := s.GetRaid(ctx, raidID)
	if err != nil {
		return nil, err
	}
	schedule, err := s.schedule(ctx, raid.TeamID, raid.Zone)
	if err != nil {
		return nil, err
	}

	return s.grant(ctx, raidID, true, func(raid *domain.Raid) ([]grantStep, bool) {
		if !raid.Started {
			raid.Started = true
			return []grantStep{{schedule.StartBonus, ReasonStartBonus}}, true
		}
		steps := []grantStep{{schedule.TickBonus, ReasonTickBonus}}
		if now.After(raid.EndsAt) {
			raid.Closed = true
			steps = append(steps, grantStep{schedule.EndBonus, ReasonEndBonus})
		}
		return steps, true
	}, now)
}

func (s *service) GrantRaid(ctx context.Context, raidID int64, amount int64, reason string) (*domain.RaidReward, error) {
	if amount == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidParameter, ErrMsgAmountRequired)
	}
	if reason == "" {
		reason = ReasonManualGrant
	}
	return s.grant(ctx, raidID, false, func(*domain.Raid) ([]grantStep, bool) {
		return []grantStep{{amount, reason}}, false
	}, s.now())
}

type grantStep struct {
	amount int64
	reason string
}

// grant applies the steps plan returns to every active signup of the raid in
// one transaction. When plan reports progress the raid's state is saved with
// the grants.
func (s *service) grant(ctx context.Context, raidID int64, requireOpen bool, plan func(*domain.Raid) ([]grantStep, bool), now time.Time) (*domain.RaidReward, error) {
	ctx = context.WithoutCancel(ctx)
	log := logger.FromContext(ctx)

	unlock := s.locks.Lock(raidLockKey(raidID))
	defer unlock()

	tx, err := s.repo.BeginRaidTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextBeginTx, err)
	}
	defer repository.SafeRollback(ctx, tx)

	raid, err := tx.GetRaidForUpdate(ctx, raidID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextGetRaid, err)
	}
	if raid == nil {
		return nil, fmt.Errorf("%w: %d", domain.ErrRaidNotFound, raidID)
	}
	if requireOpen && raid.Closed {
		return nil, fmt.Errorf("%w: %d", domain.ErrRaidClosed, raidID)
	}
	steps, progress := plan(raid)

	signups, err := tx.ListSignups(ctx, raidID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextListSignups, err)
	}

	reward := &domain.RaidReward{RaidID: raidID}
	for _, signup := range signups {
		if !signup.Active() {
			continue
		}
		key := domain.BucketKey{UserID: signup.UserID, TeamID: raid.TeamID, Tier: raid.Tier(), PointType: domain.PointTypeEP}
		characterID := signup.CharacterID
		for _, step := range steps {
			if step.amount == 0 {
				continue
			}
			entry, err := s.ledger.ApplyInTx(ctx, tx, key, ledger.GrantOp{Delta: step.amount}, domain.LedgerContext{
				RaidID:      &raidID,
				CharacterID: &characterID,
				Reason:      step.reason,
			})
			if err != nil {
				return nil, err
			}
			if entry != nil {
				reward.Entries = append(reward.Entries, *entry)
			}
		}
	}
	for _, step := range steps {
		reward.Amount += step.amount
	}

	if progress {
		raid.LastRewardAt = &now
		if err := tx.UpdateRaidProgress(ctx, raid); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrContextUpdateRaid, err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextCommitTx, err)
	}
	reward.Started = raid.Started
	reward.Closed = raid.Closed

	log.Info(LogMsgRaidRewarded, "raid_id", raidID, "amount", reward.Amount, "entries", len(reward.Entries), "closed", reward.Closed)
	ledger.PublishEntries(ctx, s.bus, reward.Entries)
	if err := s.bus.Publish(ctx, event.NewRaidRewardedEvent(*reward)); err != nil {
		log.Warn(LogMsgPublishFailed, "raid_id", raidID, "error", err)
	}
	return reward, nil
}

func (s *service) ProcessDueRewards(ctx context.Context, now time.Time) (int, error) {
	raids, err := s.repo.ListOpenRaids(ctx)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrContextListRaids, err)
	}

	processed := 0
	var errs []error
	for _, raid := range raids {
		schedule, err := s.schedule(ctx, raid.TeamID, raid.Zone)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if !raid.RewardDue(*schedule, now) {
			continue
		}
		if _, err := s.ConfirmDueSignups(ctx, raid.ID, now); err != nil {
			errs = append(errs, fmt.Errorf("raid %d: %w", raid.ID, err))
			continue
		}
		if _, err := s.Reward(ctx, raid.ID, now); err != nil {
			logger.FromContext(ctx).Error(LogMsgRewardFailed, "raid_id", raid.ID, "error", err)
			errs = append(errs, fmt.Errorf("raid %d: %w", raid.ID, err))
			continue
		}
		processed++
	}
	return processed, errors.Join(errs...)
}
