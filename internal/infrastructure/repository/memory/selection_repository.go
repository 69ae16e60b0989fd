package memory

import (
	"context"
	"sync"

	"github.com/dreamsquad/fantasy-cricket/internal/domain/selection"
)

type selectionKey struct {
	userEmail string
	matchID   int64
}

type SelectionRepository struct {
	mu     sync.RWMutex
	items  map[selectionKey]selection.Selection
	orders []selectionKey
}

func NewSelectionRepository() *SelectionRepository {
	return &SelectionRepository{
		items: make(map[selectionKey]selection.Selection),
	}
}

func (r *SelectionRepository) GetByUserAndMatch(_ context.Context, userEmail string, matchID int64) (selection.Selection, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sel, ok := r.items[selectionKey{userEmail: userEmail, matchID: matchID}]
	if !ok {
		return selection.Selection{}, false, nil
	}

	return cloneSelection(sel), true, nil
}

func (r *SelectionRepository) ListByMatch(_ context.Context, matchID int64) ([]selection.Selection, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]selection.Selection, 0)
	for _, key := range r.orders {
		if key.matchID != matchID {
			continue
		}
		out = append(out, cloneSelection(r.items[key]))
	}

	return out, nil
}

func (r *SelectionRepository) CountByMatch(_ context.Context, matchID int64) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, key := range r.orders {
		if key.matchID == matchID {
			count++
		}
	}

	return count, nil
}

func (r *SelectionRepository) Upsert(_ context.Context, sel selection.Selection) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := selectionKey{userEmail: sel.UserEmail, matchID: sel.MatchID}
	if _, ok := r.items[key]; !ok {
		r.orders = append(r.orders, key)
	}
	r.items[key] = cloneSelection(sel)

	return nil
}

func cloneSelection(sel selection.Selection) selection.Selection {
	out := sel
	out.PlayerIDs = append([]int64(nil), sel.PlayerIDs...)
	return out
}
