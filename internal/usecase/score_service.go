package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/riskibarqy/scoreboard/internal/domain/score"
	idgen "github.com/riskibarqy/scoreboard/internal/platform/id"
)

// ScorePresenter is the output port for PrintScores. The service never knows
// which sink it is talking to.
type ScorePresenter interface {
	PresentScores(scores []score.Score)
}

type ScoreService struct {
	scoreRepo score.Repository
	presenter ScorePresenter
	idGen     idgen.Generator
	now       func() time.Time
}

func NewScoreService(scoreRepo score.Repository, presenter ScorePresenter, idGen idgen.Generator) *ScoreService {
	return &ScoreService{
		scoreRepo: scoreRepo,
		presenter: presenter,
		idGen:     idGen,
		now:       time.Now,
	}
}

// ListByPlayer returns the player's scores in storage order.
func (s *ScoreService) ListByPlayer(ctx context.Context, playerID int64) ([]score.Score, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoreService.ListByPlayer")
	defer span.End()

	if playerID <= 0 {
		return nil, fmt.Errorf("%w: player id must be greater than zero", ErrInvalidInput)
	}

	items, err := s.scoreRepo.ListByPlayer(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("list scores by player: %w", err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: no scores for player=%d", ErrNotFound, playerID)
	}

	return items, nil
}

type RecordScoreInput struct {
	PlayerID   int64
	Points     int
	RecordedAt time.Time
}

func (s *ScoreService) RecordScore(ctx context.Context, input RecordScoreInput) (score.Score, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoreService.RecordScore")
	defer span.End()

	recordedAt := input.RecordedAt
	if recordedAt.IsZero() {
		recordedAt = s.now()
	}

	id, err := s.idGen.NewID()
	if err != nil {
		return score.Score{}, fmt.Errorf("generate score id: %w", err)
	}

	item := score.Score{
		ID:         id,
		PlayerID:   input.PlayerID,
		Points:     input.Points,
		RecordedAt: recordedAt.UTC(),
	}
	if err := item.Validate(); err != nil {
		return score.Score{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.scoreRepo.Insert(ctx, item); err != nil {
		return score.Score{}, fmt.Errorf("insert score: %w", err)
	}

	return item, nil
}

// PrintScores fetches the player's scores and forwards them to the injected
// presenter. It sequences the two calls and nothing else.
func (s *ScoreService) PrintScores(ctx context.Context, playerID int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoreService.PrintScores")
	defer span.End()

	items, err := s.ListByPlayer(ctx, playerID)
	if err != nil {
		return err
	}

	s.presenter.PresentScores(items)

	return nil
}
