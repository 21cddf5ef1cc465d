package memory

import (
	"time"

	"github.com/riskibarqy/scoreboard/internal/domain/board"
	"github.com/riskibarqy/scoreboard/internal/domain/geometry"
	"github.com/riskibarqy/scoreboard/internal/domain/player"
	"github.com/riskibarqy/scoreboard/internal/domain/score"
)

const PlayerIDDemo int64 = 42

func SeedProfiles() []player.Profile {
	return []player.Profile{
		{ID: PlayerIDDemo, Nickname: "arcade-ace"},
		{ID: 7, Nickname: "pixel-punisher"},
		{ID: 13, Nickname: "combo-queen"},
	}
}

func SeedStats() []player.Stats {
	return []player.Stats{
		{PlayerID: PlayerIDDemo, GamesPlayed: 14, Wins: 9},
		{PlayerID: 7, GamesPlayed: 21, Wins: 6},
		{PlayerID: 13, GamesPlayed: 8, Wins: 8},
	}
}

func SeedScores() []score.Score {
	return []score.Score{
		{ID: "seed-0001", PlayerID: PlayerIDDemo, Points: 120, RecordedAt: time.Date(2026, 3, 2, 18, 30, 0, 0, time.UTC)},
		{ID: "seed-0002", PlayerID: PlayerIDDemo, Points: 95, RecordedAt: time.Date(2026, 3, 3, 20, 15, 0, 0, time.UTC)},
		{ID: "seed-0003", PlayerID: 7, Points: 64, RecordedAt: time.Date(2026, 3, 2, 21, 0, 0, 0, time.UTC)},
		{ID: "seed-0004", PlayerID: 7, Points: 101, RecordedAt: time.Date(2026, 3, 4, 17, 45, 0, 0, time.UTC)},
		{ID: "seed-0005", PlayerID: 13, Points: 88, RecordedAt: time.Date(2026, 3, 5, 19, 10, 0, 0, time.UTC)},
	}
}

func SeedBoards() []board.Board {
	return []board.Board{
		{ID: "board-classic", Name: "Classic Arena", Field: geometry.Rectangle{Width: 16, Height: 9}},
		{ID: "board-blitz", Name: "Blitz Square", Field: geometry.Square{Side: 12}},
		{ID: "board-orbit", Name: "Orbit Ring", Field: geometry.Circle{Radius: 6}},
	}
}
