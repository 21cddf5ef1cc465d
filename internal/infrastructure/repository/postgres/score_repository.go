package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/scoreboard/internal/domain/score"
	qb "github.com/riskibarqy/scoreboard/internal/platform/querybuilder"
)

type ScoreRepository struct {
	db *sqlx.DB
}

var scoreSelectColumns = []string{
	"id",
	"public_id",
	"player_id",
	"points",
	"recorded_at",
	"created_at",
	"updated_at",
	"deleted_at",
}

func NewScoreRepository(db *sqlx.DB) *ScoreRepository {
	return &ScoreRepository{db: db}
}

func (r *ScoreRepository) ListByPlayer(ctx context.Context, playerID int64) ([]score.Score, error) {
	query, args, err := qb.Select(scoreSelectColumns...).From("scores").
		Where(
			qb.Eq("player_id", playerID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("recorded_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select scores by player query: %w", err)
	}

	var rows []scoreTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		if isBindParameterMismatch(err) || isUnnamedPreparedStatementMissing(err) {
			return r.listByPlayerLiteral(ctx, playerID)
		}
		return nil, fmt.Errorf("select scores by player: %w", err)
	}

	return scoresFromRows(rows), nil
}

// listByPlayerLiteral avoids the extended protocol entirely for poolers that
// drop the unnamed prepared statement between bind and execute.
func (r *ScoreRepository) listByPlayerLiteral(ctx context.Context, playerID int64) ([]score.Score, error) {
	query, args, err := qb.Select(scoreSelectColumns...).From("scores").
		Where(
			qb.EqLiteral("player_id", fmt.Sprintf("%d", playerID)),
			qb.IsNull("deleted_at"),
		).
		OrderBy("recorded_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select scores literal fallback query: %w", err)
	}

	var rows []scoreTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select scores literal fallback: %w", err)
	}

	return scoresFromRows(rows), nil
}

func (r *ScoreRepository) Insert(ctx context.Context, s score.Score) error {
	insertModel := scoreInsertModel{
		PublicID:   s.ID,
		PlayerID:   s.PlayerID,
		Points:     s.Points,
		RecordedAt: s.RecordedAt,
	}

	query, args, err := qb.InsertModel("scores", insertModel, `ON CONFLICT (public_id) DO NOTHING`)
	if err != nil {
		return fmt.Errorf("build insert score query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert score: %w", err)
	}

	return nil
}

func scoresFromRows(rows []scoreTableModel) []score.Score {
	out := make([]score.Score, 0, len(rows))
	for _, row := range rows {
		out = append(out, score.Score{
			ID:         row.PublicID,
			PlayerID:   row.PlayerID,
			Points:     row.Points,
			RecordedAt: row.RecordedAt,
		})
	}
	return out
}
