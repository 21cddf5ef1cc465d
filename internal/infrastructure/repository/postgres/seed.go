package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/scoreboard/internal/infrastructure/repository/memory"
)

const seedPlayerInsert = `
INSERT INTO players (id, nickname)
VALUES (:id, :nickname)
ON CONFLICT (id) DO NOTHING`

// The unique index on player_stats.player_id is partial (deleted_at IS NULL),
// and conflict inference only matches it when the predicate is spelled out.
const seedPlayerStatsInsert = `
INSERT INTO player_stats (player_id, games_played, wins)
VALUES (:player_id, :games_played, :wins)
ON CONFLICT (player_id) WHERE deleted_at IS NULL DO NOTHING`

const seedScoreInsert = `
INSERT INTO scores (public_id, player_id, points, recorded_at)
VALUES (:public_id, :player_id, :points, :recorded_at)
ON CONFLICT (public_id) DO NOTHING`

// BootstrapSeed fills an empty database with the demo roster so a fresh
// deployment answers something useful before the first feed sync.
func BootstrapSeed(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM players WHERE deleted_at IS NULL`); err != nil {
		return fmt.Errorf("count players for bootstrap seed: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, p := range memory.SeedProfiles() {
		sqlQuery, args, err := sqlx.Named(seedPlayerInsert, map[string]any{
			"id":       p.ID,
			"nickname": p.Nickname,
		})
		if err != nil {
			return fmt.Errorf("bind seed player %d query: %w", p.ID, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed player %d: %w", p.ID, err)
		}
	}

	for _, s := range memory.SeedStats() {
		sqlQuery, args, err := sqlx.Named(seedPlayerStatsInsert, map[string]any{
			"player_id":    s.PlayerID,
			"games_played": s.GamesPlayed,
			"wins":         s.Wins,
		})
		if err != nil {
			return fmt.Errorf("bind seed stats for player %d query: %w", s.PlayerID, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed stats for player %d: %w", s.PlayerID, err)
		}
	}

	for _, s := range memory.SeedScores() {
		sqlQuery, args, err := sqlx.Named(seedScoreInsert, map[string]any{
			"public_id":   s.ID,
			"player_id":   s.PlayerID,
			"points":      s.Points,
			"recorded_at": s.RecordedAt,
		})
		if err != nil {
			return fmt.Errorf("bind seed score %s query: %w", s.ID, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed score %s: %w", s.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}

	return nil
}
