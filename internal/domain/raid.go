package domain

import (
	"fmt"
	"strings"
	"time"
)

// RaidZone is the instance a raid runs in
type RaidZone string

const (
	ZoneWorld RaidZone = "WORLD"
	ZoneMC    RaidZone = "MC"
	ZoneONY   RaidZone = "ONY"
	ZoneBWL   RaidZone = "BWL"
	ZoneZG    RaidZone = "ZG"
	ZoneAQ40  RaidZone = "AQ40"
	ZoneAQ20  RaidZone = "AQ20"
	ZoneNAXX  RaidZone = "NAXX"
)

var zoneTiers = map[RaidZone]int{
	ZoneWorld: 0,
	ZoneZG:    0,
	ZoneMC:    1,
	ZoneONY:   1,
	ZoneBWL:   2,
	ZoneAQ40:  3,
	ZoneAQ20:  3,
	ZoneNAXX:  4,
}

// Tier returns the raid tier the zone's points accrue to, or -1 for an unknown zone
func (z RaidZone) Tier() int {
	if t, ok := zoneTiers[z]; ok {
		return t
	}
	return -1
}

// ParseRaidZone parses a zone name case-insensitively
func ParseRaidZone(s string) (RaidZone, error) {
	z := RaidZone(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := zoneTiers[z]; !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidRaidZone, s)
	}
	return z, nil
}

// RewardSchedule defines how effort is earned during a team's raids in a zone
type RewardSchedule struct {
	TeamID         int64         `json:"team_id"`
	Zone           RaidZone      `json:"zone"`
	SigninInterval time.Duration `json:"signin_interval"`
	StartBonus     int64         `json:"start_bonus"`
	TickBonus      int64         `json:"tick_bonus"`
	TickInterval   time.Duration `json:"tick_interval"`
	Duration       time.Duration `json:"duration"`
	EndBonus       int64         `json:"end_bonus"`
}

// Raid is a scheduled run of a team into a zone
type Raid struct {
	ID           int64      `json:"id"`
	TeamID       int64      `json:"team_id"`
	Zone         RaidZone   `json:"zone"`
	StartsAt     time.Time  `json:"starts_at"`
	EndsAt       time.Time  `json:"ends_at"`
	Notes        string     `json:"notes,omitempty"`
	CreatedBy    string     `json:"created_by,omitempty"`
	Started      bool       `json:"started"`
	Closed       bool       `json:"closed"`
	LastRewardAt *time.Time `json:"last_reward_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// Tier returns the raid tier of the raid's zone
func (r Raid) Tier() int {
	return r.Zone.Tier()
}

// RewardDue reports whether a reward tick should run at now given the schedule.
// The first tick is due once the raid has started; later ticks every TickInterval.
func (r Raid) RewardDue(schedule RewardSchedule, now time.Time) bool {
	if r.Closed {
		return false
	}
	if !r.Started {
		return !now.Before(r.StartsAt)
	}
	if r.LastRewardAt == nil {
		return true
	}
	return !now.Before(r.LastRewardAt.Add(schedule.TickInterval))
}

// Signup is a user's registration of a character for a raid
type Signup struct {
	ID          int64      `json:"id"`
	RaidID      int64      `json:"raid_id"`
	UserID      string     `json:"user_id"`
	CharacterID int64      `json:"character_id"`
	SignupAt    time.Time  `json:"signup_at"`
	Confirmed   bool       `json:"confirmed"`
	ConfirmedAt *time.Time `json:"confirmed_at,omitempty"`
	Ejected     bool       `json:"ejected"`
	EjectedAt   *time.Time `json:"ejected_at,omitempty"`
}

// Active reports whether the signup earns effort
func (s Signup) Active() bool {
	return s.Confirmed && !s.Ejected
}

// RaidReward summarizes one reward tick
type RaidReward struct {
	RaidID  int64         `json:"raid_id"`
	Amount  int64         `json:"amount"`
	Entries []LedgerEntry `json:"entries"`
	Started bool          `json:"started"`
	Closed  bool          `json:"closed"`
}
