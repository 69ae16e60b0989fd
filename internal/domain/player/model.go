package player

import (
	"fmt"
	"strings"
)

// Role represents the cricket role categories used in fantasy rules.
type Role string

const (
	RoleBatsman      Role = "batsman"
	RoleBowler       Role = "bowler"
	RoleAllRounder   Role = "all-rounder"
	RoleWicketKeeper Role = "wicket-keeper"
)

var AllRoles = map[Role]struct{}{
	RoleBatsman:      {},
	RoleBowler:       {},
	RoleAllRounder:   {},
	RoleWicketKeeper: {},
}

// DefaultBasePoints is used when a source record carries no points value.
const DefaultBasePoints = 100

// RolePolicy is an ordered list of substring rules tried first-match-wins.
// The order encodes upstream text conventions ("wicket-keeper batsman" must
// classify as wicket-keeper), so it is kept as data rather than code.
type RolePolicy []RoleRule

type RoleRule struct {
	Substring string
	Role      Role
}

func DefaultRolePolicy() RolePolicy {
	return RolePolicy{
		{Substring: "wicket-keeper", Role: RoleWicketKeeper},
		{Substring: "all-rounder", Role: RoleAllRounder},
		{Substring: "bowler", Role: RoleBowler},
	}
}

// ClassifyRole maps a free-text speciality description to a canonical role
// using the default policy. Total: unmatched input falls back to batsman.
func ClassifyRole(speciality string) Role {
	return ClassifyRoleWith(DefaultRolePolicy(), speciality)
}

func ClassifyRoleWith(policy RolePolicy, speciality string) Role {
	lowered := strings.ToLower(speciality)
	for _, rule := range policy {
		if strings.Contains(lowered, rule.Substring) {
			return rule.Role
		}
	}
	return RoleBatsman
}

// Player is a selectable athlete in a match roster. Role is derived from the
// speciality text on load and never stored authoritatively.
type Player struct {
	ID             int64
	Name           string
	Age            int
	DateOfBirth    string
	Nationality    string
	Speciality     string
	Handedness     string
	TeamName       string
	Role           Role
	Points         int64
	ComputedPoints int64
	BasePrice      int64
	AuctionPrice   int64
	IsCapped       bool
	IsCaptain      bool
}

func (p Player) Validate() error {
	if p.ID <= 0 {
		return fmt.Errorf("player id must be greater than zero")
	}
	if p.Name == "" {
		return fmt.Errorf("player name is required")
	}
	if p.TeamName == "" {
		return fmt.Errorf("player team name is required")
	}
	if _, ok := AllRoles[p.Role]; !ok {
		return fmt.Errorf("invalid player role: %s", p.Role)
	}
	return nil
}

// Normalize derives the role from the speciality text and applies the default
// base points. Called by every repository on the way out.
func (p Player) Normalize() Player {
	p.Role = ClassifyRole(p.Speciality)
	if p.Points <= 0 {
		p.Points = DefaultBasePoints
	}
	return p
}
