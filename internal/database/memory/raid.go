package memory

import (
	"context"
	"sort"
	"time"

	"github.com/argguild/epgpbot/internal/domain"
)

func (t *tx) GetRaidForUpdate(ctx context.Context, id int64) (*domain.Raid, error) {
	if err := t.check(""); err != nil {
		return nil, err
	}
	r, ok := t.st.raids[id]
	if !ok {
		return nil, nil
	}
	return &r, nil
}

func (t *tx) UpdateRaidProgress(ctx context.Context, raid *domain.Raid) error {
	if err := t.check(OpUpdateRaidProgress); err != nil {
		return err
	}
	r, ok := t.st.raids[raid.ID]
	if !ok {
		return domain.ErrRaidNotFound
	}
	r.Started = raid.Started
	r.Closed = raid.Closed
	r.LastRewardAt = raid.LastRewardAt
	r.EndsAt = raid.EndsAt
	t.st.raids[raid.ID] = r
	return nil
}

func (t *tx) ListSignups(ctx context.Context, raidID int64) ([]domain.Signup, error) {
	if err := t.check(""); err != nil {
		return nil, err
	}
	return sortedSignups(t.st, raidID), nil
}

func (s *Store) CreateRaid(ctx context.Context, raid *domain.Raid) error {
	return s.write(ctx, func(st *state) error {
		if _, ok := st.teams[raid.TeamID]; !ok {
			return domain.ErrTeamNotFound
		}
		st.nextRaidID++
		raid.ID = st.nextRaidID
		if raid.CreatedAt.IsZero() {
			raid.CreatedAt = time.Now()
		}
		st.raids[raid.ID] = *raid
		return nil
	})
}

func (s *Store) GetRaid(ctx context.Context, id int64) (*domain.Raid, error) {
	r, ok := s.snapshot().raids[id]
	if !ok {
		return nil, nil
	}
	return &r, nil
}

func (s *Store) ListOpenRaids(ctx context.Context) ([]domain.Raid, error) {
	var out []domain.Raid
	for _, r := range s.snapshot().raids {
		if !r.Closed {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) UpsertRewardSchedule(ctx context.Context, schedule *domain.RewardSchedule) error {
	return s.write(ctx, func(st *state) error {
		st.schedules[scheduleKey{schedule.TeamID, schedule.Zone}] = *schedule
		return nil
	})
}

func (s *Store) GetRewardSchedule(ctx context.Context, teamID int64, zone domain.RaidZone) (*domain.RewardSchedule, error) {
	sched, ok := s.snapshot().schedules[scheduleKey{teamID, zone}]
	if !ok {
		return nil, nil
	}
	return &sched, nil
}

func (s *Store) SaveSignup(ctx context.Context, signup *domain.Signup) error {
	return s.write(ctx, func(st *state) error {
		if _, ok := st.raids[signup.RaidID]; !ok {
			return domain.ErrRaidNotFound
		}
		signups, ok := st.signups[signup.RaidID]
		if !ok {
			signups = make(map[string]domain.Signup)
			st.signups[signup.RaidID] = signups
		}
		if existing, ok := signups[signup.UserID]; ok {
			signup.ID = existing.ID
		} else {
			st.nextSignupID++
			signup.ID = st.nextSignupID
		}
		signups[signup.UserID] = *signup
		return nil
	})
}

func (s *Store) GetSignup(ctx context.Context, raidID int64, userID string) (*domain.Signup, error) {
	su, ok := s.snapshot().signups[raidID][userID]
	if !ok {
		return nil, nil
	}
	return &su, nil
}

func (s *Store) ListSignups(ctx context.Context, raidID int64) ([]domain.Signup, error) {
	return sortedSignups(s.snapshot(), raidID), nil
}

func sortedSignups(st *state, raidID int64) []domain.Signup {
	out := make([]domain.Signup, 0, len(st.signups[raidID]))
	for _, su := range st.signups[raidID] {
		out = append(out, su)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
