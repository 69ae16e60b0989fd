package match

import "context"

// Repository exposes match schedule read operations.
type Repository interface {
	List(ctx context.Context) ([]Match, error)
	GetByID(ctx context.Context, matchID int64) (Match, bool, error)
	Ping(ctx context.Context) error
}
