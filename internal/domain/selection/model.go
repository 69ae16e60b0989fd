package selection

import (
	"fmt"
	"time"

	"github.com/dreamsquad/fantasy-cricket/internal/domain/player"
)

// Selection is one user's ordered fantasy roster for one match. Order is
// semantically meaningful: it determines each player's point multiplier.
type Selection struct {
	UserEmail string
	MatchID   int64
	PlayerIDs []int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (s Selection) ValidateBasic() error {
	if s.UserEmail == "" {
		return fmt.Errorf("user email is required")
	}
	if s.MatchID <= 0 {
		return fmt.Errorf("match id must be greater than zero")
	}
	if len(s.PlayerIDs) == 0 {
		return fmt.Errorf("selection players are required")
	}
	seen := make(map[int64]struct{}, len(s.PlayerIDs))
	for _, id := range s.PlayerIDs {
		if id <= 0 {
			return fmt.Errorf("player id must be greater than zero")
		}
		if _, ok := seen[id]; ok {
			return fmt.Errorf("duplicate player id %d in selection", id)
		}
		seen[id] = struct{}{}
	}
	return nil
}

// FromPlayers builds a Selection preserving the players' order.
func FromPlayers(userEmail string, matchID int64, players []player.Player) Selection {
	ids := make([]int64, len(players))
	for i, p := range players {
		ids[i] = p.ID
	}
	return Selection{UserEmail: userEmail, MatchID: matchID, PlayerIDs: ids}
}
