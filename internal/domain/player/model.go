package player

import "fmt"

// Profile is a player's identity record.
type Profile struct {
	ID       int64
	Nickname string
}

func (p Profile) Validate() error {
	if p.ID <= 0 {
		return fmt.Errorf("profile id must be greater than zero")
	}
	if p.Nickname == "" {
		return fmt.Errorf("profile nickname is required")
	}

	return nil
}

// Stats is a player's aggregate play history.
type Stats struct {
	PlayerID    int64
	GamesPlayed int
	Wins        int
}

func (s Stats) Validate() error {
	if s.PlayerID <= 0 {
		return fmt.Errorf("stats player id must be greater than zero")
	}
	if s.GamesPlayed < 0 {
		return fmt.Errorf("stats games played must not be negative")
	}
	if s.Wins < 0 {
		return fmt.Errorf("stats wins must not be negative")
	}
	if s.Wins > s.GamesPlayed {
		return fmt.Errorf("stats wins cannot exceed games played")
	}

	return nil
}
