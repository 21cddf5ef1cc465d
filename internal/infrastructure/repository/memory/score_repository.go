package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/scoreboard/internal/domain/score"
)

type ScoreRepository struct {
	mu       sync.RWMutex
	byPlayer map[int64][]score.Score
}

func NewScoreRepository(seed []score.Score) *ScoreRepository {
	byPlayer := make(map[int64][]score.Score)
	for _, s := range seed {
		byPlayer[s.PlayerID] = append(byPlayer[s.PlayerID], s)
	}

	return &ScoreRepository{byPlayer: byPlayer}
}

func (r *ScoreRepository) ListByPlayer(_ context.Context, playerID int64) ([]score.Score, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	scores := r.byPlayer[playerID]
	out := make([]score.Score, 0, len(scores))
	out = append(out, scores...)

	return out, nil
}

func (r *ScoreRepository) Insert(_ context.Context, s score.Score) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byPlayer[s.PlayerID] = append(r.byPlayer[s.PlayerID], s)

	return nil
}
