package player

import "context"

// Repository describes player persistence needs from use cases.
type Repository interface {
	GetProfile(ctx context.Context, playerID int64) (Profile, bool, error)
	GetStats(ctx context.Context, playerID int64) (Stats, bool, error)
	ListIDs(ctx context.Context) ([]int64, error)
}
