package memory

import (
	"context"
	"sync"

	"github.com/dreamsquad/fantasy-cricket/internal/domain/player"
	"github.com/dreamsquad/fantasy-cricket/internal/domain/team"
)

type PlayerRepository struct {
	mu     sync.RWMutex
	items  map[int64]player.Player
	orders []int64
}

func NewPlayerRepository(players []player.Player) *PlayerRepository {
	items := make(map[int64]player.Player, len(players))
	orders := make([]int64, 0, len(players))

	for _, p := range players {
		items[p.ID] = p
		orders = append(orders, p.ID)
	}

	return &PlayerRepository{
		items:  items,
		orders: orders,
	}
}

func (r *PlayerRepository) ListByTeam(_ context.Context, teamName string) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	want := team.NormalizeName(teamName)
	out := make([]player.Player, 0)
	for _, id := range r.orders {
		p := r.items[id]
		if team.NormalizeName(p.TeamName) == want {
			out = append(out, p)
		}
	}

	return out, nil
}

func (r *PlayerRepository) GetByIDs(_ context.Context, playerIDs []int64) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, 0, len(playerIDs))
	for _, id := range playerIDs {
		if p, ok := r.items[id]; ok {
			out = append(out, p)
		}
	}

	return out, nil
}
