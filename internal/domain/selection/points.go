package selection

import "github.com/dreamsquad/fantasy-cricket/internal/domain/player"

// slotCount is the number of positions carrying a descending multiplier.
const slotCount = 11

// Multiplier returns the point-scaling factor for the 0-based position in the
// selection order. Positions past the eleventh should not occur under the
// size cap but scale by 1 if they do.
func Multiplier(position int) int64 {
	if position < 0 || position >= slotCount {
		return 1
	}
	return int64(slotCount - position)
}

// AssignPoints computes position-weighted points for an ordered selection.
// Non-destructive: the input slice is left untouched and a new slice is
// returned. Calling it again on an unchanged order yields identical output.
func AssignPoints(players []player.Player) []player.Player {
	out := make([]player.Player, len(players))
	for i, p := range players {
		p.ComputedPoints = p.Points * Multiplier(i)
		out[i] = p
	}
	return out
}
