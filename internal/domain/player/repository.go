package player

import "context"

// Repository describes player persistence needs from use cases.
type Repository interface {
	ListByTeam(ctx context.Context, teamName string) ([]Player, error)
	GetByIDs(ctx context.Context, playerIDs []int64) ([]Player, error)
}
