package domain

import (
	"fmt"
	"strings"
	"time"
)

// Role is the combat role a character plays
type Role string

const (
	RoleTank   Role = "Tank"
	RoleHealer Role = "Healer"
	RoleMelee  Role = "Melee"
	RoleRanged Role = "Ranged"
	RoleCaster Role = "Caster"
)

var roles = []Role{RoleTank, RoleHealer, RoleMelee, RoleRanged, RoleCaster}

// ParseRole parses a role name case-insensitively
func ParseRole(s string) (Role, error) {
	for _, r := range roles {
		if strings.EqualFold(string(r), strings.TrimSpace(s)) {
			return r, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidRole, s)
}

// CharacterClass is a playable class
type CharacterClass string

const (
	ClassWarrior CharacterClass = "Warrior"
	ClassPaladin CharacterClass = "Paladin"
	ClassHunter  CharacterClass = "Hunter"
	ClassRogue   CharacterClass = "Rogue"
	ClassPriest  CharacterClass = "Priest"
	ClassShaman  CharacterClass = "Shaman"
	ClassMage    CharacterClass = "Mage"
	ClassWarlock CharacterClass = "Warlock"
	ClassDruid   CharacterClass = "Druid"
)

var classes = []CharacterClass{
	ClassWarrior, ClassPaladin, ClassHunter, ClassRogue, ClassPriest,
	ClassShaman, ClassMage, ClassWarlock, ClassDruid,
}

// ParseCharacterClass parses a class name case-insensitively
func ParseCharacterClass(s string) (CharacterClass, error) {
	for _, c := range classes {
		if strings.EqualFold(string(c), strings.TrimSpace(s)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidClass, s)
}

// Team is a raid team. Point buckets are scoped per team.
type Team struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// User is a guild member, keyed by their chat account id
type User struct {
	ID          string    `json:"id"`
	GuildID     string    `json:"guild_id,omitempty"`
	Name        string    `json:"name"`
	DisplayName string    `json:"display_name"`
	CreatedAt   time.Time `json:"created_at"`
}

// Character is an in-game character owned by a user
type Character struct {
	ID        int64          `json:"id"`
	UserID    string         `json:"user_id"`
	Name      string         `json:"name"`
	Guild     string         `json:"guild,omitempty"`
	Class     CharacterClass `json:"class"`
	Role      Role           `json:"role"`
	CreatedAt time.Time      `json:"created_at"`
}

// RosterMember is a character assigned to a team
type RosterMember struct {
	TeamID    int64     `json:"team_id"`
	Character Character `json:"character"`
}
