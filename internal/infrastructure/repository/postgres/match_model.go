package postgres

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/dreamsquad/fantasy-cricket/internal/domain/match"
)

type matchTableModel struct {
	ID            int64          `db:"id"`
	Team1         string         `db:"team_1"`
	Team2         string         `db:"team_2"`
	MatchDate     string         `db:"match_date"`
	MatchTime     string         `db:"match_time"`
	Venue         sql.NullString `db:"venue"`
	City          sql.NullString `db:"city"`
	Status        sql.NullString `db:"status"`
	Result        sql.NullString `db:"result"`
	Winner        sql.NullString `db:"winner"`
	ManOfTheMatch sql.NullString `db:"man_of_the_match"`
}

var matchColumns = []string{
	"id", "team_1", "team_2", "match_date", "match_time", "venue", "city",
	"status", "result", "winner", "man_of_the_match",
}

func (m matchTableModel) toDomain() (match.Match, error) {
	startsAt, err := parseMatchStart(m.MatchDate, m.MatchTime)
	if err != nil {
		return match.Match{}, fmt.Errorf("match %d: %w", m.ID, err)
	}

	return match.Match{
		ID:            m.ID,
		Team1:         m.Team1,
		Team2:         m.Team2,
		StartsAt:      startsAt,
		Venue:         m.Venue.String,
		City:          m.City.String,
		RawStatus:     m.Status.String,
		Result:        m.Result.String,
		Winner:        m.Winner.String,
		ManOfTheMatch: m.ManOfTheMatch.String,
	}, nil
}

// parseMatchStart combines the stored date and time columns into one
// instant. Times are local to the tournament and interpreted in IST; a
// missing time means the start of day.
func parseMatchStart(matchDate, matchTime string) (time.Time, error) {
	matchDate = strings.TrimSpace(matchDate)
	matchTime = strings.TrimSpace(matchTime)
	if matchDate == "" {
		return time.Time{}, fmt.Errorf("match date is empty")
	}
	if matchTime == "" {
		matchTime = "00:00:00"
	}
	if len(matchTime) == len("15:04") {
		matchTime += ":00"
	}

	startsAt, err := time.ParseInLocation("2006-01-02 15:04:05", matchDate+" "+matchTime, match.IST)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse match start %q %q: %w", matchDate, matchTime, err)
	}

	return startsAt, nil
}
