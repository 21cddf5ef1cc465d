package score

import "context"

// Repository describes score persistence needs from use cases.
type Repository interface {
	ListByPlayer(ctx context.Context, playerID int64) ([]Score, error)
	Insert(ctx context.Context, item Score) error
}
