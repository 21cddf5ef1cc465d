package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/scoreboard/internal/domain/player"
	"github.com/riskibarqy/scoreboard/internal/domain/score"
)

func TestPlayerService_Summary_AggregatesScores(t *testing.T) {
	t.Parallel()

	playerRepo := &stubPlayerRepository{
		profiles: map[int64]player.Profile{
			42: {ID: 42, Nickname: "arcade-ace"},
		},
		stats: map[int64]player.Stats{
			42: {PlayerID: 42, GamesPlayed: 10, Wins: 4},
		},
	}
	scoreRepo := &stubScoreRepository{
		byPlayer: map[int64][]score.Score{
			42: {
				{ID: "s1", PlayerID: 42, Points: 120},
				{ID: "s2", PlayerID: 42, Points: 95},
			},
		},
	}
	service := NewPlayerService(playerRepo, scoreRepo)

	got, err := service.Summary(context.Background(), 42)
	if err != nil {
		t.Fatalf("Summary error: %v", err)
	}

	if got.Profile.Nickname != "arcade-ace" {
		t.Fatalf("unexpected profile: %+v", got.Profile)
	}
	if got.Stats.Wins != 4 || got.Stats.GamesPlayed != 10 {
		t.Fatalf("unexpected stats: %+v", got.Stats)
	}
	if got.TotalPoints != 215 || got.BestScore != 120 || got.ScoreCount != 2 {
		t.Fatalf("unexpected totals: %+v", got)
	}
}

func TestPlayerService_Summary_NotFoundWithoutProfile(t *testing.T) {
	t.Parallel()

	service := NewPlayerService(&stubPlayerRepository{}, &stubScoreRepository{})

	if _, err := service.Summary(context.Background(), 99); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPlayerService_Summary_DefaultsStatsWhenMissing(t *testing.T) {
	t.Parallel()

	playerRepo := &stubPlayerRepository{
		profiles: map[int64]player.Profile{
			7: {ID: 7, Nickname: "drifter"},
		},
	}
	service := NewPlayerService(playerRepo, &stubScoreRepository{})

	got, err := service.Summary(context.Background(), 7)
	if err != nil {
		t.Fatalf("Summary error: %v", err)
	}
	if got.Stats.GamesPlayed != 0 || got.Stats.Wins != 0 {
		t.Fatalf("expected zero stats, got %+v", got.Stats)
	}
	if got.ScoreCount != 0 {
		t.Fatalf("expected zero scores, got %d", got.ScoreCount)
	}
}

func TestPlayerService_Summary_RejectsNonPositiveID(t *testing.T) {
	t.Parallel()

	service := NewPlayerService(&stubPlayerRepository{}, &stubScoreRepository{})

	if _, err := service.Summary(context.Background(), 0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

type stubPlayerRepository struct {
	profiles map[int64]player.Profile
	stats    map[int64]player.Stats
}

func (s *stubPlayerRepository) GetProfile(_ context.Context, playerID int64) (player.Profile, bool, error) {
	item, ok := s.profiles[playerID]
	return item, ok, nil
}

func (s *stubPlayerRepository) GetStats(_ context.Context, playerID int64) (player.Stats, bool, error) {
	item, ok := s.stats[playerID]
	return item, ok, nil
}

func (s *stubPlayerRepository) ListIDs(_ context.Context) ([]int64, error) {
	out := make([]int64, 0, len(s.profiles))
	for id := range s.profiles {
		out = append(out, id)
	}
	return out, nil
}
