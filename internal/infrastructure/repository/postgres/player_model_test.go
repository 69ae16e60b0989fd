package postgres

import (
	"database/sql"
	"testing"

	"github.com/dreamsquad/fantasy-cricket/internal/domain/player"
)

func TestPlayerToDomainNormalizes(t *testing.T) {
	m := playerTableModel{
		ID:         7,
		Name:       "MS Dhoni",
		Speciality: sql.NullString{String: "Wicket-Keeper", Valid: true},
		TeamName:   "Chennai Super Kings",
	}

	p := m.toDomain()
	if p.Role != player.RoleWicketKeeper {
		t.Fatalf("role = %q, want %q", p.Role, player.RoleWicketKeeper)
	}
	if p.Points != player.DefaultBasePoints {
		t.Fatalf("points = %d, want default %d", p.Points, player.DefaultBasePoints)
	}
}

func TestPlayerToDomainKeepsStoredPoints(t *testing.T) {
	m := playerTableModel{
		ID:         8,
		Name:       "Jasprit Bumrah",
		Speciality: sql.NullString{String: "Bowler", Valid: true},
		TeamName:   "Mumbai Indians",
		Points:     sql.NullInt64{Int64: 140, Valid: true},
	}

	p := m.toDomain()
	if p.Role != player.RoleBowler {
		t.Fatalf("role = %q, want %q", p.Role, player.RoleBowler)
	}
	if p.Points != 140 {
		t.Fatalf("points = %d, want 140", p.Points)
	}
}
