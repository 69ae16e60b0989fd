package match

import (
	"fmt"
	"strings"
	"time"
)

// Status is the derived lifecycle state of a match. It is recomputed on every
// read and never stored.
type Status string

const (
	StatusUpcoming  Status = "upcoming"
	StatusLive      Status = "live"
	StatusCompleted Status = "completed"
)

// Schedule times are interpreted in India Standard Time.
var IST = time.FixedZone("IST", 5*3600+30*60)

const (
	liveWindowBefore = time.Hour
	liveWindowAfter  = 6 * time.Hour
)

// Match represents one scheduled cricket match between two source teams.
type Match struct {
	ID            int64
	Team1         string
	Team2         string
	StartsAt      time.Time
	Venue         string
	City          string
	RawStatus     string
	Result        string
	Winner        string
	ManOfTheMatch string
}

func (m Match) Validate() error {
	if m.ID <= 0 {
		return fmt.Errorf("match id must be greater than zero")
	}
	if m.Team1 == "" || m.Team2 == "" {
		return fmt.Errorf("both team names are required")
	}
	if m.StartsAt.IsZero() {
		return fmt.Errorf("match start time is required")
	}
	return nil
}

// HasTeam reports whether teamName is one of the match's two source teams.
func (m Match) HasTeam(teamName string) bool {
	return teamName == m.Team1 || teamName == m.Team2
}

// StatusAt derives the lifecycle state from the record and the given clock.
//
// Precedence: an authoritative result wins over everything, then an explicit
// in-progress marker, then clock bands relative to the scheduled start. The
// bounded live band is checked before the stale-completed fallback so that a
// match exactly six hours in is still live.
func (m Match) StatusAt(now time.Time) Status {
	if strings.TrimSpace(m.Winner) != "" || strings.TrimSpace(m.Result) != "" {
		return StatusCompleted
	}
	if strings.Contains(strings.ToLower(m.RawStatus), "progress") {
		return StatusLive
	}

	delta := now.Sub(m.StartsAt)
	switch {
	case delta >= -liveWindowBefore && delta <= liveWindowAfter:
		return StatusLive
	case delta > liveWindowAfter:
		return StatusCompleted
	case delta < -liveWindowBefore:
		return StatusUpcoming
	default:
		return StatusCompleted
	}
}
