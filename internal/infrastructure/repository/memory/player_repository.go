package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/scoreboard/internal/domain/player"
)

type PlayerRepository struct {
	mu       sync.RWMutex
	profiles map[int64]player.Profile
	stats    map[int64]player.Stats
}

func NewPlayerRepository(profiles []player.Profile, stats []player.Stats) *PlayerRepository {
	profileIndex := make(map[int64]player.Profile, len(profiles))
	for _, p := range profiles {
		profileIndex[p.ID] = p
	}

	statsIndex := make(map[int64]player.Stats, len(stats))
	for _, s := range stats {
		statsIndex[s.PlayerID] = s
	}

	return &PlayerRepository{
		profiles: profileIndex,
		stats:    statsIndex,
	}
}

func (r *PlayerRepository) GetProfile(_ context.Context, playerID int64) (player.Profile, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	profile, ok := r.profiles[playerID]

	return profile, ok, nil
}

func (r *PlayerRepository) GetStats(_ context.Context, playerID int64) (player.Stats, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats, ok := r.stats[playerID]

	return stats, ok, nil
}

func (r *PlayerRepository) ListIDs(_ context.Context) ([]int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]int64, 0, len(r.profiles))
	for id := range r.profiles {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out, nil
}
