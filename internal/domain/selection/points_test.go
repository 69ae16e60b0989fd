package selection

import (
	"reflect"
	"testing"

	"github.com/dreamsquad/fantasy-cricket/internal/domain/player"
)

func TestMultiplier(t *testing.T) {
	want := []int64{11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1}
	for i, expected := range want {
		if got := Multiplier(i); got != expected {
			t.Fatalf("Multiplier(%d) = %d, want %d", i, got, expected)
		}
	}
	if got := Multiplier(11); got != 1 {
		t.Fatalf("position past the eleventh should scale by 1, got %d", got)
	}
	if got := Multiplier(-1); got != 1 {
		t.Fatalf("negative position should scale by 1, got %d", got)
	}
}

func TestAssignPoints(t *testing.T) {
	players := legalEleven()
	assigned := AssignPoints(players)

	if len(assigned) != len(players) {
		t.Fatalf("length changed: %d", len(assigned))
	}
	for i, p := range assigned {
		want := p.Points * int64(11-i)
		if p.ComputedPoints != want {
			t.Fatalf("position %d: computed %d, want %d", i, p.ComputedPoints, want)
		}
	}

	// Non-destructive: the input must be untouched.
	for i, p := range players {
		if p.ComputedPoints != 0 {
			t.Fatalf("input mutated at position %d", i)
		}
	}
}

func TestAssignPoints_Idempotent(t *testing.T) {
	once := AssignPoints(legalEleven())
	twice := AssignPoints(once)

	if !reflect.DeepEqual(once, twice) {
		t.Fatal("repeated application with unchanged order must be stable")
	}
}

func TestAssignPoints_ReorderChangesOutput(t *testing.T) {
	players := legalEleven()
	original := AssignPoints(players)

	swapped := append([]player.Player(nil), players...)
	swapped[0], swapped[10] = swapped[10], swapped[0]
	reordered := AssignPoints(swapped)

	if reordered[0].ComputedPoints != reordered[0].Points*11 {
		t.Fatal("front position must carry the 11x multiplier after reorder")
	}
	if original[0].ID == reordered[0].ID {
		t.Fatal("swap did not take effect")
	}
}

func TestAssignPoints_DefensiveBeyondEleven(t *testing.T) {
	players := append(legalEleven(), buildPlayer(12, player.RoleBowler, "Mumbai Indians"))
	assigned := AssignPoints(players)

	if assigned[11].ComputedPoints != assigned[11].Points {
		t.Fatalf("twelfth position should keep base points, got %d", assigned[11].ComputedPoints)
	}
}
