package memory

import (
	"context"
	"sync"

	"github.com/dreamsquad/fantasy-cricket/internal/domain/match"
)

type MatchRepository struct {
	mu     sync.RWMutex
	items  map[int64]match.Match
	orders []int64
}

func NewMatchRepository(matches []match.Match) *MatchRepository {
	items := make(map[int64]match.Match, len(matches))
	orders := make([]int64, 0, len(matches))

	for _, m := range matches {
		items[m.ID] = m
		orders = append(orders, m.ID)
	}

	return &MatchRepository{
		items:  items,
		orders: orders,
	}
}

func (r *MatchRepository) List(_ context.Context) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Match, 0, len(r.orders))
	for _, id := range r.orders {
		out = append(out, r.items[id])
	}

	return out, nil
}

func (r *MatchRepository) GetByID(_ context.Context, matchID int64) (match.Match, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.items[matchID]
	if !ok {
		return match.Match{}, false, nil
	}

	return m, true, nil
}

func (r *MatchRepository) Ping(_ context.Context) error {
	return nil
}
