package score

import (
	"fmt"
	"time"
)

// Score is a single scoring event for one player.
type Score struct {
	ID         string
	PlayerID   int64
	Points     int
	RecordedAt time.Time
}

func (s Score) Validate() error {
	if s.PlayerID <= 0 {
		return fmt.Errorf("score player id must be greater than zero")
	}
	if s.Points < 0 {
		return fmt.Errorf("score points must not be negative")
	}

	return nil
}
