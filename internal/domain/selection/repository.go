package selection

import "context"

// Repository describes selection persistence needs from use cases. One row
// per (user, match); Upsert overwrites, never versions.
type Repository interface {
	GetByUserAndMatch(ctx context.Context, userEmail string, matchID int64) (Selection, bool, error)
	ListByMatch(ctx context.Context, matchID int64) ([]Selection, error)
	CountByMatch(ctx context.Context, matchID int64) (int, error)
	Upsert(ctx context.Context, sel Selection) error
}
