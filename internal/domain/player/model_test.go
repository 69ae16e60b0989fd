package player

import "testing"

func TestClassifyRole(t *testing.T) {
	tests := []struct {
		speciality string
		want       Role
	}{
		{"Right-arm fast bowler", RoleBowler},
		{"Wicket-Keeper Batsman", RoleWicketKeeper},
		{"Batting All-Rounder", RoleAllRounder},
		{"Opening batsman", RoleBatsman},
		{"Left-arm orthodox spin bowler", RoleBowler},
		{"", RoleBatsman},
		{"WICKET-KEEPER", RoleWicketKeeper},
		{"bowling all-rounder", RoleAllRounder},
	}

	for _, tt := range tests {
		if got := ClassifyRole(tt.speciality); got != tt.want {
			t.Errorf("ClassifyRole(%q) = %s, want %s", tt.speciality, got, tt.want)
		}
	}
}

func TestClassifyRoleWith_PolicyOrder(t *testing.T) {
	// Reversing the policy must flip ambiguous inputs: the order is policy,
	// not a logical necessity.
	reversed := RolePolicy{
		{Substring: "bowler", Role: RoleBowler},
		{Substring: "all-rounder", Role: RoleAllRounder},
		{Substring: "wicket-keeper", Role: RoleWicketKeeper},
	}

	if got := ClassifyRoleWith(reversed, "wicket-keeper and part-time bowler"); got != RoleBowler {
		t.Fatalf("reversed policy: got %s, want %s", got, RoleBowler)
	}
	if got := ClassifyRole("wicket-keeper and part-time bowler"); got != RoleWicketKeeper {
		t.Fatalf("default policy: got %s, want %s", got, RoleWicketKeeper)
	}
}

func TestNormalize(t *testing.T) {
	p := Player{ID: 1, Name: "A", TeamName: "T", Speciality: "Right-arm fast bowler"}
	normalized := p.Normalize()

	if normalized.Role != RoleBowler {
		t.Fatalf("expected derived role bowler, got %s", normalized.Role)
	}
	if normalized.Points != DefaultBasePoints {
		t.Fatalf("expected default base points %d, got %d", DefaultBasePoints, normalized.Points)
	}

	p.Points = 120
	if got := p.Normalize().Points; got != 120 {
		t.Fatalf("expected existing points kept, got %d", got)
	}
}
