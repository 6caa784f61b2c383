package roster

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/cases"

	"github.com/argguild/epgpbot/internal/domain"
	"github.com/argguild/epgpbot/internal/logger"
	"github.com/argguild/epgpbot/internal/repository"
)

// mentionPattern matches chat user mentions such as <@123> and <@!123>
var mentionPattern = regexp.MustCompile(`^<@!?(\d+)>$`)

// Service defines the interface for team, user and character operations
type Service interface {
	CreateTeam(ctx context.Context, name, description string) (*domain.Team, error)
	GetTeam(ctx context.Context, id int64) (*domain.Team, error)
	// GetTeamByName matches names case-insensitively
	GetTeamByName(ctx context.Context, name string) (*domain.Team, error)
	ListTeams(ctx context.Context) ([]domain.Team, error)

	RegisterUser(ctx context.Context, user domain.User) (*domain.User, error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
	// FindUser resolves a mention, an @name, a display name prefix or a character name prefix
	FindUser(ctx context.Context, query string) (*domain.User, error)

	RegisterCharacter(ctx context.Context, character domain.Character) (*domain.Character, error)
	ListCharacters(ctx context.Context, userID string) ([]domain.Character, error)

	// AssignToTeam puts a character on a team and creates its user's point
	// buckets there. It reports false when the character was already assigned.
	AssignToTeam(ctx context.Context, teamID, characterID int64) (bool, error)
	ListRoster(ctx context.Context, teamID int64) ([]domain.Character, error)
}

// BucketEnsurer creates the point buckets of a team member
type BucketEnsurer interface {
	EnsureBuckets(ctx context.Context, userID string, teamID int64) ([]domain.PointBucket, error)
}

type service struct {
	repo    repository.Roster
	buckets BucketEnsurer
}

// NewService creates a new roster service
func NewService(repo repository.Roster, buckets BucketEnsurer) Service {
	return &service{repo: repo, buckets: buckets}
}

func fold(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

func (s *service) CreateTeam(ctx context.Context, name, description string) (*domain.Team, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidParameter, ErrMsgTeamNameRequired)
	}
	team := &domain.Team{Name: name, Description: description}
	if err := s.repo.CreateTeam(ctx, team); err != nil {
		if errors.Is(err, domain.ErrTeamExists) {
			return nil, fmt.Errorf("%w: %q", domain.ErrTeamExists, name)
		}
		return nil, fmt.Errorf("%s: %w", ErrContextCreateTeam, err)
	}
	logger.FromContext(ctx).Info(LogMsgTeamCreated, "team_id", team.ID, "name", name)
	return team, nil
}

func (s *service) GetTeam(ctx context.Context, id int64) (*domain.Team, error) {
	team, err := s.repo.GetTeam(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextGetTeam, err)
	}
	if team == nil {
		return nil, fmt.Errorf("%w: %d", domain.ErrTeamNotFound, id)
	}
	return team, nil
}

func (s *service) GetTeamByName(ctx context.Context, name string) (*domain.Team, error) {
	teams, err := s.ListTeams(ctx)
	if err != nil {
		return nil, err
	}
	want := fold(name)
	for i := range teams {
		if fold(teams[i].Name) == want {
			return &teams[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %q", domain.ErrTeamNotFound, name)
}

func (s *service) ListTeams(ctx context.Context) ([]domain.Team, error) {
	teams, err := s.repo.ListTeams(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextListTeams, err)
	}
	return teams, nil
}

func (s *service) RegisterUser(ctx context.Context, user domain.User) (*domain.User, error) {
	if strings.TrimSpace(user.ID) == "" || strings.TrimSpace(user.Name) == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidParameter, ErrMsgUserIdentity)
	}
	if user.DisplayName == "" {
		user.DisplayName = user.Name
	}
	if err := s.repo.UpsertUser(ctx, &user); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextSaveUser, err)
	}
	return &user, nil
}

func (s *service) GetUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.repo.GetUser(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextGetUser, err)
	}
	if user == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrUserNotFound, id)
	}
	return user, nil
}

func (s *service) FindUser(ctx context.Context, query string) (*domain.User, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidParameter, ErrMsgEmptyQuery)
	}
	if m := mentionPattern.FindStringSubmatch(query); m != nil {
		return s.GetUser(ctx, m[1])
	}

	users, err := s.repo.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextListUsers, err)
	}

	if name, ok := strings.CutPrefix(query, "@"); ok {
		want := fold(name)
		for i := range users {
			if fold(users[i].Name) == want {
				return &users[i], nil
			}
		}
		return nil, fmt.Errorf("%w: %q", domain.ErrUserNotFound, query)
	}

	prefix := fold(query)
	for i := range users {
		if strings.HasPrefix(fold(users[i].DisplayName), prefix) {
			return &users[i], nil
		}
	}

	characters, err := s.repo.ListCharacters(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextListCharacters, err)
	}
	for _, c := range characters {
		if strings.HasPrefix(fold(c.Name), prefix) {
			return s.GetUser(ctx, c.UserID)
		}
	}
	return nil, fmt.Errorf("%w: %q", domain.ErrUserNotFound, query)
}

func (s *service) RegisterCharacter(ctx context.Context, character domain.Character) (*domain.Character, error) {
	character.Name = strings.TrimSpace(character.Name)
	if character.Name == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidParameter, ErrMsgCharacterNameRequired)
	}
	class, err := domain.ParseCharacterClass(string(character.Class))
	if err != nil {
		return nil, err
	}
	role, err := domain.ParseRole(string(character.Role))
	if err != nil {
		return nil, err
	}
	character.Class, character.Role = class, role

	if _, err := s.GetUser(ctx, character.UserID); err != nil {
		return nil, err
	}
	if err := s.repo.CreateCharacter(ctx, &character); err != nil {
		if errors.Is(err, domain.ErrCharacterExists) {
			return nil, fmt.Errorf("%w: %s the %s", domain.ErrCharacterExists, character.Name, character.Class)
		}
		return nil, fmt.Errorf("%s: %w", ErrContextCreateCharacter, err)
	}
	logger.FromContext(ctx).Info(LogMsgCharacterRegistered, "character_id", character.ID, "user_id", character.UserID)
	return &character, nil
}

func (s *service) ListCharacters(ctx context.Context, userID string) ([]domain.Character, error) {
	characters, err := s.repo.ListCharacters(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextListCharacters, err)
	}
	return characters, nil
}

func (s *service) AssignToTeam(ctx context.Context, teamID, characterID int64) (bool, error) {
	if _, err := s.GetTeam(ctx, teamID); err != nil {
		return false, err
	}
	character, err := s.repo.GetCharacter(ctx, characterID)
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrContextGetCharacter, err)
	}
	if character == nil {
		return false, fmt.Errorf("%w: %d", domain.ErrCharacterNotFound, characterID)
	}

	added, err := s.repo.AddRosterMember(ctx, teamID, characterID)
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrContextAssign, err)
	}

	// bucket creation is idempotent, so a repeated assignment also repairs
	// buckets a failed earlier assignment did not create
	if _, err := s.buckets.EnsureBuckets(ctx, character.UserID, teamID); err != nil {
		return added, err
	}

	log := logger.FromContext(ctx)
	if added {
		log.Info(LogMsgAssigned, "team_id", teamID, "character_id", characterID, "user_id", character.UserID)
	} else {
		log.Warn(LogMsgAlreadyAssigned, "team_id", teamID, "character_id", characterID)
	}
	return added, nil
}

func (s *service) ListRoster(ctx context.Context, teamID int64) ([]domain.Character, error) {
	if _, err := s.GetTeam(ctx, teamID); err != nil {
		return nil, err
	}
	members, err := s.repo.ListRoster(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextListRoster, err)
	}
	return members, nil
}
