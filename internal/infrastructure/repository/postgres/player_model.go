package postgres

import (
	"database/sql"

	"github.com/dreamsquad/fantasy-cricket/internal/domain/player"
)

type playerTableModel struct {
	ID           int64          `db:"id"`
	Name         string         `db:"name"`
	Age          sql.NullInt64  `db:"age"`
	DateOfBirth  sql.NullString `db:"date_of_birth"`
	Nationality  sql.NullString `db:"nationality"`
	Speciality   sql.NullString `db:"speciality"`
	Handedness   sql.NullString `db:"handedness"`
	TeamName     string         `db:"team_name"`
	Points       sql.NullInt64  `db:"points"`
	BasePrice    sql.NullInt64  `db:"base_price"`
	AuctionPrice sql.NullInt64  `db:"auction_price"`
	IsCapped     bool           `db:"is_capped"`
	IsCaptain    bool           `db:"is_captain"`
}

var playerColumns = []string{
	"id", "name", "age", "date_of_birth", "nationality", "speciality",
	"handedness", "team_name", "points", "base_price", "auction_price",
	"is_capped", "is_captain",
}

func (m playerTableModel) toDomain() player.Player {
	p := player.Player{
		ID:           m.ID,
		Name:         m.Name,
		Age:          int(m.Age.Int64),
		DateOfBirth:  m.DateOfBirth.String,
		Nationality:  m.Nationality.String,
		Speciality:   m.Speciality.String,
		Handedness:   m.Handedness.String,
		TeamName:     m.TeamName,
		Points:       m.Points.Int64,
		BasePrice:    m.BasePrice.Int64,
		AuctionPrice: m.AuctionPrice.Int64,
		IsCapped:     m.IsCapped,
		IsCaptain:    m.IsCaptain,
	}
	return p.Normalize()
}
