package repository

import (
	"context"

	"github.com/argguild/epgpbot/internal/domain"
)

// Roster defines the data access for teams, users and characters
type Roster interface {
	// CreateTeam returns domain.ErrTeamExists when the name is taken
	CreateTeam(ctx context.Context, team *domain.Team) error
	GetTeam(ctx context.Context, id int64) (*domain.Team, error)
	ListTeams(ctx context.Context) ([]domain.Team, error)

	UpsertUser(ctx context.Context, user *domain.User) error
	GetUser(ctx context.Context, id string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)

	// CreateCharacter returns domain.ErrCharacterExists for a duplicate (user, name, class)
	CreateCharacter(ctx context.Context, character *domain.Character) error
	GetCharacter(ctx context.Context, id int64) (*domain.Character, error)
	// ListCharacters lists a user's characters, or every character when userID is empty
	ListCharacters(ctx context.Context, userID string) ([]domain.Character, error)

	// AddRosterMember reports false when the character is already on the team
	AddRosterMember(ctx context.Context, teamID, characterID int64) (bool, error)
	ListRoster(ctx context.Context, teamID int64) ([]domain.Character, error)
}
