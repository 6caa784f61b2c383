package memory

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/argguild/epgpbot/internal/domain"
)

func (s *Store) CreateTeam(ctx context.Context, team *domain.Team) error {
	return s.write(ctx, func(st *state) error {
		for _, t := range st.teams {
			if strings.EqualFold(t.Name, team.Name) {
				return domain.ErrTeamExists
			}
		}
		st.nextTeamID++
		team.ID = st.nextTeamID
		if team.CreatedAt.IsZero() {
			team.CreatedAt = time.Now()
		}
		st.teams[team.ID] = *team
		return nil
	})
}

func (s *Store) GetTeam(ctx context.Context, id int64) (*domain.Team, error) {
	t, ok := s.snapshot().teams[id]
	if !ok {
		return nil, nil
	}
	return &t, nil
}

func (s *Store) ListTeams(ctx context.Context) ([]domain.Team, error) {
	st := s.snapshot()
	out := make([]domain.Team, 0, len(st.teams))
	for _, t := range st.teams {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) UpsertUser(ctx context.Context, user *domain.User) error {
	return s.write(ctx, func(st *state) error {
		if existing, ok := st.users[user.ID]; ok {
			user.CreatedAt = existing.CreatedAt
		} else if user.CreatedAt.IsZero() {
			user.CreatedAt = time.Now()
		}
		st.users[user.ID] = *user
		return nil
	})
}

func (s *Store) GetUser(ctx context.Context, id string) (*domain.User, error) {
	u, ok := s.snapshot().users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (s *Store) ListUsers(ctx context.Context) ([]domain.User, error) {
	st := s.snapshot()
	out := make([]domain.User, 0, len(st.users))
	for _, u := range st.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) CreateCharacter(ctx context.Context, character *domain.Character) error {
	return s.write(ctx, func(st *state) error {
		if _, ok := st.users[character.UserID]; !ok {
			return domain.ErrUserNotFound
		}
		for _, c := range st.characters {
			if c.UserID == character.UserID && c.Class == character.Class && strings.EqualFold(c.Name, character.Name) {
				return domain.ErrCharacterExists
			}
		}
		st.nextCharacterID++
		character.ID = st.nextCharacterID
		if character.CreatedAt.IsZero() {
			character.CreatedAt = time.Now()
		}
		st.characters[character.ID] = *character
		return nil
	})
}

func (s *Store) GetCharacter(ctx context.Context, id int64) (*domain.Character, error) {
	c, ok := s.snapshot().characters[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (s *Store) ListCharacters(ctx context.Context, userID string) ([]domain.Character, error) {
	var out []domain.Character
	for _, c := range s.snapshot().characters {
		if userID == "" || c.UserID == userID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) AddRosterMember(ctx context.Context, teamID, characterID int64) (bool, error) {
	added := false
	err := s.write(ctx, func(st *state) error {
		if _, ok := st.teams[teamID]; !ok {
			return domain.ErrTeamNotFound
		}
		if _, ok := st.characters[characterID]; !ok {
			return domain.ErrCharacterNotFound
		}
		members, ok := st.roster[teamID]
		if !ok {
			members = make(map[int64]struct{})
			st.roster[teamID] = members
		}
		if _, ok := members[characterID]; ok {
			return nil
		}
		members[characterID] = struct{}{}
		added = true
		return nil
	})
	return added, err
}

func (s *Store) ListRoster(ctx context.Context, teamID int64) ([]domain.Character, error) {
	st := s.snapshot()
	out := make([]domain.Character, 0, len(st.roster[teamID]))
	for id := range st.roster[teamID] {
		out = append(out, st.characters[id])
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
