package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/argguild/epgpbot/internal/domain"
)

func TestRosterRepository_Uniqueness(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()
	team := seedTeam(t, s)

	err := s.CreateTeam(ctx, &domain.Team{Name: "MAIN"})
	assert.ErrorIs(t, err, domain.ErrTeamExists)

	c := seedRaider(t, s, team.ID, "a")
	err = s.CreateCharacter(ctx, &domain.Character{UserID: "a", Name: "chara", Class: domain.ClassWarrior, Role: domain.RoleTank})
	assert.ErrorIs(t, err, domain.ErrCharacterExists)

	added, err := s.AddRosterMember(ctx, team.ID, c.ID)
	require.NoError(t, err)
	assert.False(t, added, "already on the roster")

	_, err = s.AddRosterMember(ctx, 999, c.ID)
	assert.ErrorIs(t, err, domain.ErrTeamNotFound)

	members, err := s.ListRoster(ctx, team.ID)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, c.ID, members[0].ID)

	user, err := s.GetUser(ctx, "nobody")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestItemRepository_Search(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()
	require.NoError(t, s.UpsertItem(ctx, &testHelm))
	renamed := testHelm
	renamed.ItemLevel = 80
	require.NoError(t, s.UpsertItem(ctx, &renamed))

	items, err := s.SearchItems(ctx, "wrath", 10)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 80, items[0].ItemLevel)

	missing, err := s.GetItem(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, missing)
}
