package usecase

import (
	"context"
	"fmt"

	"github.com/sourcegraph/conc/pool"

	"github.com/riskibarqy/scoreboard/internal/domain/player"
	"github.com/riskibarqy/scoreboard/internal/domain/score"
)

type PlayerService struct {
	playerRepo player.Repository
	scoreRepo  score.Repository
}

func NewPlayerService(playerRepo player.Repository, scoreRepo score.Repository) *PlayerService {
	return &PlayerService{
		playerRepo: playerRepo,
		scoreRepo:  scoreRepo,
	}
}

type PlayerSummary struct {
	Profile     player.Profile
	Stats       player.Stats
	TotalPoints int
	BestScore   int
	ScoreCount  int
}

// Summary aggregates profile, stats and scoring totals for one player. The
// three reads are independent, so they run concurrently.
func (s *PlayerService) Summary(ctx context.Context, playerID int64) (PlayerSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Summary")
	defer span.End()

	if playerID <= 0 {
		return PlayerSummary{}, fmt.Errorf("%w: player id must be greater than zero", ErrInvalidInput)
	}

	var (
		profile       player.Profile
		profileExists bool
		stats         player.Stats
		scores        []score.Score
	)

	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		item, exists, err := s.playerRepo.GetProfile(ctx, playerID)
		if err != nil {
			return fmt.Errorf("get profile: %w", err)
		}
		profile = item
		profileExists = exists
		return nil
	})
	p.Go(func(ctx context.Context) error {
		item, exists, err := s.playerRepo.GetStats(ctx, playerID)
		if err != nil {
			return fmt.Errorf("get stats: %w", err)
		}
		if exists {
			stats = item
		} else {
			stats = player.Stats{PlayerID: playerID}
		}
		return nil
	})
	p.Go(func(ctx context.Context) error {
		items, err := s.scoreRepo.ListByPlayer(ctx, playerID)
		if err != nil {
			return fmt.Errorf("list scores: %w", err)
		}
		scores = items
		return nil
	})

	if err := p.Wait(); err != nil {
		return PlayerSummary{}, err
	}

	if !profileExists {
		return PlayerSummary{}, fmt.Errorf("%w: player=%d", ErrNotFound, playerID)
	}

	summary := PlayerSummary{
		Profile:    profile,
		Stats:      stats,
		ScoreCount: len(scores),
	}
	for _, item := range scores {
		summary.TotalPoints += item.Points
		if item.Points > summary.BestScore {
			summary.BestScore = item.Points
		}
	}

	return summary, nil
}
