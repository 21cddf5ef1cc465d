package board

import "context"

// Repository lists the available board presets.
type Repository interface {
	List(ctx context.Context) ([]Board, error)
}
