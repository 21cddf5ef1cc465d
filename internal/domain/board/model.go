package board

import (
	"fmt"

	"github.com/riskibarqy/scoreboard/internal/domain/geometry"
)

// Board is a play surface preset. Its field is any geometry.Shape; the area
// exposed to clients comes from the capability, never from the concrete type.
type Board struct {
	ID    string
	Name  string
	Field geometry.Shape
}

func (b Board) Validate() error {
	if b.ID == "" {
		return fmt.Errorf("board id is required")
	}
	if b.Name == "" {
		return fmt.Errorf("board name is required")
	}
	if b.Field == nil {
		return fmt.Errorf("board field shape is required")
	}
	if b.Field.Area() < 0 {
		return fmt.Errorf("board field area must not be negative")
	}

	return nil
}
