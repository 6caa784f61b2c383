package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/argguild/epgpbot/internal/database/generated"
	"github.com/argguild/epgpbot/internal/domain"
)

// RosterRepository implements repository.Roster for PostgreSQL using sqlc
type RosterRepository struct {
	db *pgxpool.Pool
	q  *generated.Queries
}

// NewRosterRepository creates a new RosterRepository
func NewRosterRepository(db *pgxpool.Pool) *RosterRepository {
	return &RosterRepository{db: db, q: generated.New(db)}
}

// CreateTeam inserts a team; names are unique ignoring case
func (r *RosterRepository) CreateTeam(ctx context.Context, team *domain.Team) error {
	row, err := r.q.CreateTeam(ctx, generated.CreateTeamParams{
		Name:        team.Name,
		Description: team.Description,
	})
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrTeamExists
		}
		return wrapErr(ErrMsgFailedToCreateTeam, err)
	}
	team.ID = row.TeamID
	team.CreatedAt = row.CreatedAt
	return nil
}

func (r *RosterRepository) GetTeam(ctx context.Context, id int64) (*domain.Team, error) {
	row, err := r.q.GetTeam(ctx, id)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, wrapErr(ErrMsgFailedToGetTeam, err)
	}
	return mapTeam(row), nil
}

func (r *RosterRepository) ListTeams(ctx context.Context) ([]domain.Team, error) {
	rows, err := r.q.ListTeams(ctx)
	if err != nil {
		return nil, wrapErr(ErrMsgFailedToListTeams, err)
	}
	teams := make([]domain.Team, len(rows))
	for i, row := range rows {
		teams[i] = *mapTeam(row)
	}
	return teams, nil
}

// UpsertUser inserts a user or updates the names of an existing one
func (r *RosterRepository) UpsertUser(ctx context.Context, user *domain.User) error {
	createdAt, err := r.q.UpsertUser(ctx, generated.UpsertUserParams{
		UserID:      user.ID,
		GuildID:     user.GuildID,
		Name:        user.Name,
		DisplayName: user.DisplayName,
	})
	if err != nil {
		return wrapErr(ErrMsgFailedToUpsertUser, err)
	}
	user.CreatedAt = createdAt
	return nil
}

func (r *RosterRepository) GetUser(ctx context.Context, id string) (*domain.User, error) {
	row, err := r.q.GetUser(ctx, id)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, wrapErr(ErrMsgFailedToGetUser, err)
	}
	return mapUser(row), nil
}

func (r *RosterRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	rows, err := r.q.ListUsers(ctx)
	if err != nil {
		return nil, wrapErr(ErrMsgFailedToListUsers, err)
	}
	users := make([]domain.User, len(rows))
	for i, row := range rows {
		users[i] = *mapUser(row)
	}
	return users, nil
}

func (r *RosterRepository) CreateCharacter(ctx context.Context, character *domain.Character) error {
	row, err := r.q.CreateCharacter(ctx, generated.CreateCharacterParams{
		UserID: character.UserID,
		Name:   character.Name,
		Guild:  character.Guild,
		Class:  string(character.Class),
		Role:   string(character.Role),
	})
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrCharacterExists
		}
		if _, ok := foreignKeyViolation(err); ok {
			return fmt.Errorf("%w: %s", domain.ErrUserNotFound, character.UserID)
		}
		return wrapErr(ErrMsgFailedToCreateCharacter, err)
	}
	character.ID = row.CharacterID
	character.CreatedAt = row.CreatedAt
	return nil
}

func (r *RosterRepository) GetCharacter(ctx context.Context, id int64) (*domain.Character, error) {
	row, err := r.q.GetCharacter(ctx, id)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, wrapErr(ErrMsgFailedToGetCharacter, err)
	}
	return mapCharacter(row), nil
}

func (r *RosterRepository) ListCharacters(ctx context.Context, userID string) ([]domain.Character, error) {
	rows, err := r.q.ListCharacters(ctx, optional(userID))
	if err != nil {
		return nil, wrapErr(ErrMsgFailedToListCharacters, err)
	}
	return mapCharacters(rows), nil
}

// AddRosterMember reports false when the character is already on the team
func (r *RosterRepository) AddRosterMember(ctx context.Context, teamID, characterID int64) (bool, error) {
	n, err := r.q.AddRosterMember(ctx, generated.AddRosterMemberParams{
		TeamID:      teamID,
		CharacterID: characterID,
	})
	if err != nil {
		if c, ok := foreignKeyViolation(err); ok {
			if c == ConstraintRosterTeam {
				return false, fmt.Errorf("%w: %d", domain.ErrTeamNotFound, teamID)
			}
			return false, fmt.Errorf("%w: %d", domain.ErrCharacterNotFound, characterID)
		}
		return false, wrapErr(ErrMsgFailedToAddRosterMember, err)
	}
	return n > 0, nil
}

func (r *RosterRepository) ListRoster(ctx context.Context, teamID int64) ([]domain.Character, error) {
	rows, err := r.q.ListRoster(ctx, teamID)
	if err != nil {
		return nil, wrapErr(ErrMsgFailedToListRoster, err)
	}
	return mapCharacters(rows), nil
}

func mapTeam(row generated.Team) *domain.Team {
	return &domain.Team{
		ID:          row.TeamID,
		Name:        row.Name,
		Description: row.Description,
		CreatedAt:   row.CreatedAt,
	}
}

func mapUser(row generated.User) *domain.User {
	return &domain.User{
		ID:          row.UserID,
		GuildID:     row.GuildID,
		Name:        row.Name,
		DisplayName: row.DisplayName,
		CreatedAt:   row.CreatedAt,
	}
}

func mapCharacter(row generated.Character) *domain.Character {
	return &domain.Character{
		ID:        row.CharacterID,
		UserID:    row.UserID,
		Name:      row.Name,
		Guild:     row.Guild,
		Class:     domain.CharacterClass(row.Class),
		Role:      domain.Role(row.Role),
		CreatedAt: row.CreatedAt,
	}
}

func mapCharacters(rows []generated.Character) []domain.Character {
	characters := make([]domain.Character, len(rows))
	for i, row := range rows {
		characters[i] = *mapCharacter(row)
	}
	return characters
}
