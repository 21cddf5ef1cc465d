package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"

	"github.com/riskibarqy/scoreboard/internal/domain/score"
	"github.com/riskibarqy/scoreboard/internal/usecase"
)

func (h *Handler) ListPlayerScores(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayerScores")
	defer span.End()

	playerID, err := parsePlayerID(r.PathValue("playerID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.scoreService.ListByPlayer(ctx, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "list scores failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]scoreDTO, 0, len(items))
	for _, item := range items {
		out = append(out, scoreToDTO(ctx, item))
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) RecordPlayerScore(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecordPlayerScore")
	defer span.End()

	playerID, err := parsePlayerID(r.PathValue("playerID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req recordScoreRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	var recordedAt time.Time
	if strings.TrimSpace(req.RecordedAt) != "" {
		recordedAt, err = time.Parse(time.RFC3339, req.RecordedAt)
		if err != nil {
			writeError(ctx, w, fmt.Errorf("%w: recorded_at must be RFC3339: %v", usecase.ErrInvalidInput, err))
			return
		}
	}

	item, err := h.scoreService.RecordScore(ctx, usecase.RecordScoreInput{
		PlayerID:   playerID,
		Points:     req.Points,
		RecordedAt: recordedAt,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "record score failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, scoreToDTO(ctx, item))
}

func parsePlayerID(raw string) (int64, error) {
	playerID, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: player id must be an integer", usecase.ErrInvalidInput)
	}
	if playerID <= 0 {
		return 0, fmt.Errorf("%w: player id must be greater than zero", usecase.ErrInvalidInput)
	}

	return playerID, nil
}

type recordScoreRequest struct {
	Points     int    `json:"points" validate:"gte=0"`
	RecordedAt string `json:"recorded_at"`
}

type scoreDTO struct {
	ID         string `json:"id"`
	PlayerID   int64  `json:"playerId"`
	Points     int    `json:"points"`
	RecordedAt string `json:"recordedAt"`
}

func scoreToDTO(ctx context.Context, v score.Score) scoreDTO {
	ctx, span := startSpan(ctx, "httpapi.scoreToDTO")
	defer span.End()

	recordedAt := ""
	if !v.RecordedAt.IsZero() {
		recordedAt = v.RecordedAt.UTC().Format(time.RFC3339)
	}

	return scoreDTO{
		ID:         v.ID,
		PlayerID:   v.PlayerID,
		Points:     v.Points,
		RecordedAt: recordedAt,
	}
}
