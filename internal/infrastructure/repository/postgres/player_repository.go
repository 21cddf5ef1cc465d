package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/scoreboard/internal/domain/player"
	qb "github.com/riskibarqy/scoreboard/internal/platform/querybuilder"
)

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) GetProfile(ctx context.Context, playerID int64) (player.Profile, bool, error) {
	query, args, err := qb.Select("id", "nickname", "created_at", "updated_at", "deleted_at").
		From("players").
		Where(
			qb.Eq("id", playerID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return player.Profile{}, false, fmt.Errorf("build get player profile query: %w", err)
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Profile{}, false, nil
		}
		return player.Profile{}, false, fmt.Errorf("get player profile: %w", err)
	}

	return player.Profile{ID: row.ID, Nickname: row.Nickname}, true, nil
}

func (r *PlayerRepository) GetStats(ctx context.Context, playerID int64) (player.Stats, bool, error) {
	query, args, err := qb.Select("id", "player_id", "games_played", "wins", "created_at", "updated_at", "deleted_at").
		From("player_stats").
		Where(
			qb.Eq("player_id", playerID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return player.Stats{}, false, fmt.Errorf("build get player stats query: %w", err)
	}

	var row playerStatsTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Stats{}, false, nil
		}
		return player.Stats{}, false, fmt.Errorf("get player stats: %w", err)
	}

	return player.Stats{
		PlayerID:    row.PlayerID,
		GamesPlayed: row.GamesPlayed,
		Wins:        row.Wins,
	}, true, nil
}

func (r *PlayerRepository) ListIDs(ctx context.Context) ([]int64, error) {
	query, args, err := qb.Select("id").From("players").
		Where(qb.IsNull("deleted_at")).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list player ids query: %w", err)
	}

	var ids []int64
	if err := r.db.SelectContext(ctx, &ids, query, args...); err != nil {
		return nil, fmt.Errorf("list player ids: %w", err)
	}

	return ids, nil
}
