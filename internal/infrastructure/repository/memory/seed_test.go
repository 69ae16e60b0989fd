package memory

import (
	"testing"

	"github.com/dreamsquad/fantasy-cricket/internal/domain/player"
)

func TestSeedPlayersAreNormalized(t *testing.T) {
	players := SeedPlayers()
	if len(players) == 0 {
		t.Fatal("empty seed")
	}

	for _, p := range players {
		if p.Role == "" {
			t.Fatalf("player %s: empty role (speciality=%q)", p.Name, p.Speciality)
		}
		if _, ok := player.AllRoles[p.Role]; !ok {
			t.Fatalf("player %s: unknown role %q", p.Name, p.Role)
		}
		if p.Points < player.DefaultBasePoints {
			t.Fatalf("player %s: base points %d, want >= %d", p.Name, p.Points, player.DefaultBasePoints)
		}
	}
}

func TestSeedPlayersCoverEveryRole(t *testing.T) {
	counts := make(map[player.Role]int)
	for _, p := range SeedPlayers() {
		counts[p.Role]++
	}

	for role := range player.AllRoles {
		if counts[role] == 0 {
			t.Fatalf("no seed player classified as %s", role)
		}
	}
}
