package main

import (
	"context"
	"fmt"
	"os"

	"github.com/riskibarqy/scoreboard/internal/domain/player"
	"github.com/riskibarqy/scoreboard/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/scoreboard/internal/interfaces/console"
	idgen "github.com/riskibarqy/scoreboard/internal/platform/id"
	"github.com/riskibarqy/scoreboard/internal/usecase"
)

// Prints the seeded score sheet for the demo player, then shows the
// capability views a renderer can rely on.
func main() {
	ctx := context.Background()

	scoreRepo := memory.NewScoreRepository(memory.SeedScores())
	presenter := console.NewPresenter(os.Stdout)
	scoreSvc := usecase.NewScoreService(scoreRepo, presenter, idgen.NewRandomGenerator())

	if err := scoreSvc.PrintScores(ctx, memory.PlayerIDDemo); err != nil {
		fmt.Fprintf(os.Stderr, "print scores: %v\n", err)
		os.Exit(1)
	}

	member := player.Member{
		Profile:   player.Profile{ID: memory.PlayerIDDemo, Nickname: "arcade-ace"},
		BestScore: 120,
	}
	guest := player.Guest{BestScore: 64}

	console.ShowScore(os.Stdout, member)
	console.ShowNickname(os.Stdout, member)
	console.ShowScore(os.Stdout, guest)
}
