package cache

import (
	"context"
	"strconv"

	"github.com/riskibarqy/scoreboard/internal/domain/board"
	"github.com/riskibarqy/scoreboard/internal/domain/player"
	"github.com/riskibarqy/scoreboard/internal/domain/score"
	basecache "github.com/riskibarqy/scoreboard/internal/platform/cache"
)

type ScoreRepository struct {
	next  score.Repository
	cache *basecache.Store
}

func NewScoreRepository(next score.Repository, cache *basecache.Store) *ScoreRepository {
	return &ScoreRepository{next: next, cache: cache}
}

func (r *ScoreRepository) ListByPlayer(ctx context.Context, playerID int64) ([]score.Score, error) {
	key := scoreListKey(playerID)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListByPlayer(ctx, playerID)
		if err != nil {
			return nil, err
		}
		return append([]score.Score(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]score.Score)
	return append([]score.Score(nil), items...), nil
}

func (r *ScoreRepository) Insert(ctx context.Context, s score.Score) error {
	if err := r.next.Insert(ctx, s); err != nil {
		return err
	}
	r.cache.Delete(ctx, scoreListKey(s.PlayerID))
	return nil
}

func scoreListKey(playerID int64) string {
	return "score:list:player:" + strconv.FormatInt(playerID, 10)
}

type PlayerRepository struct {
	next  player.Repository
	cache *basecache.Store
}

func NewPlayerRepository(next player.Repository, cache *basecache.Store) *PlayerRepository {
	return &PlayerRepository{next: next, cache: cache}
}

func (r *PlayerRepository) GetProfile(ctx context.Context, playerID int64) (player.Profile, bool, error) {
	key := "player:profile:" + strconv.FormatInt(playerID, 10)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetProfile(ctx, playerID)
		if err != nil {
			return nil, err
		}
		return cachedProfile{value: item, exists: exists}, nil
	})
	if err != nil {
		return player.Profile{}, false, err
	}

	cached, _ := v.(cachedProfile)
	return cached.value, cached.exists, nil
}

func (r *PlayerRepository) GetStats(ctx context.Context, playerID int64) (player.Stats, bool, error) {
	key := "player:stats:" + strconv.FormatInt(playerID, 10)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetStats(ctx, playerID)
		if err != nil {
			return nil, err
		}
		return cachedStats{value: item, exists: exists}, nil
	})
	if err != nil {
		return player.Stats{}, false, err
	}

	cached, _ := v.(cachedStats)
	return cached.value, cached.exists, nil
}

func (r *PlayerRepository) ListIDs(ctx context.Context) ([]int64, error) {
	v, err := r.cache.GetOrLoad(ctx, "player:ids", func(ctx context.Context) (any, error) {
		ids, err := r.next.ListIDs(ctx)
		if err != nil {
			return nil, err
		}
		return append([]int64(nil), ids...), nil
	})
	if err != nil {
		return nil, err
	}

	ids, _ := v.([]int64)
	return append([]int64(nil), ids...), nil
}

type cachedProfile struct {
	value  player.Profile
	exists bool
}

type cachedStats struct {
	value  player.Stats
	exists bool
}

type BoardRepository struct {
	next  board.Repository
	cache *basecache.Store
}

func NewBoardRepository(next board.Repository, cache *basecache.Store) *BoardRepository {
	return &BoardRepository{next: next, cache: cache}
}

func (r *BoardRepository) List(ctx context.Context) ([]board.Board, error) {
	v, err := r.cache.GetOrLoad(ctx, "board:list", func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]board.Board(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]board.Board)
	return append([]board.Board(nil), items...), nil
}
