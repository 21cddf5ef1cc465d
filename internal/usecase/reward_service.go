package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/scoreboard/internal/domain/reward"
	"github.com/riskibarqy/scoreboard/internal/domain/score"
)

const (
	TierStandard = "standard"
	TierVIP      = "vip"
)

type RewardService struct {
	scoreRepo score.Repository
}

func NewRewardService(scoreRepo score.Repository) *RewardService {
	return &RewardService{scoreRepo: scoreRepo}
}

// Preview computes the reward for an arbitrary score under the named tier.
func (s *RewardService) Preview(ctx context.Context, points int, tier string) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RewardService.Preview")
	defer span.End()

	if points < 0 {
		return 0, fmt.Errorf("%w: score must not be negative", ErrInvalidInput)
	}

	strategy, err := strategyForTier(tier)
	if err != nil {
		return 0, err
	}

	return reward.Apply(points, strategy), nil
}

type PlayerReward struct {
	PlayerID  int64
	Tier      string
	BestScore int
	Reward    int
}

// ForPlayer computes the reward the player's best score earns under the
// named tier.
func (s *RewardService) ForPlayer(ctx context.Context, playerID int64, tier string) (PlayerReward, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RewardService.ForPlayer")
	defer span.End()

	if playerID <= 0 {
		return PlayerReward{}, fmt.Errorf("%w: player id must be greater than zero", ErrInvalidInput)
	}

	strategy, err := strategyForTier(tier)
	if err != nil {
		return PlayerReward{}, err
	}

	items, err := s.scoreRepo.ListByPlayer(ctx, playerID)
	if err != nil {
		return PlayerReward{}, fmt.Errorf("list scores by player: %w", err)
	}
	if len(items) == 0 {
		return PlayerReward{}, fmt.Errorf("%w: no scores for player=%d", ErrNotFound, playerID)
	}

	best := 0
	for _, item := range items {
		if item.Points > best {
			best = item.Points
		}
	}

	return PlayerReward{
		PlayerID:  playerID,
		Tier:      normalizeTier(tier),
		BestScore: best,
		Reward:    reward.Apply(best, strategy),
	}, nil
}

func strategyForTier(tier string) (reward.Strategy, error) {
	switch normalizeTier(tier) {
	case TierStandard, "":
		return reward.Standard{}, nil
	case TierVIP:
		return reward.VIP{}, nil
	default:
		return nil, fmt.Errorf("%w: unknown reward tier %q", ErrInvalidInput, tier)
	}
}

func normalizeTier(tier string) string {
	normalized := strings.ToLower(strings.TrimSpace(tier))
	if normalized == "" {
		return TierStandard
	}
	return normalized
}
