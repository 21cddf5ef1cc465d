package httpapi

import (
	"fmt"
	"net/http"

	"github.com/riskibarqy/scoreboard/internal/usecase"
)

func (h *Handler) RunFeedSyncJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunFeedSyncJob")
	defer span.End()

	if h.feedSyncService == nil {
		writeError(ctx, w, fmt.Errorf("%w: score feed sync is disabled", usecase.ErrDependencyUnavailable))
		return
	}

	report, err := h.feedSyncService.Run(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "feed sync failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	players := make([]feedSyncPlayerDTO, 0, len(report.Players))
	for _, row := range report.Players {
		players = append(players, feedSyncPlayerDTO{
			PlayerID:   row.PlayerID,
			Imported:   row.Imported,
			Skipped:    row.Skipped,
			Error:      row.Err,
			DurationMs: row.DurationMs,
		})
	}

	writeSuccess(ctx, w, http.StatusOK, feedSyncReportDTO{
		ImportedCount: report.ImportedCount,
		SkippedCount:  report.SkippedCount,
		FailedCount:   report.FailedCount,
		Players:       players,
	})
}

type feedSyncReportDTO struct {
	ImportedCount int                 `json:"importedCount"`
	SkippedCount  int                 `json:"skippedCount"`
	FailedCount   int                 `json:"failedCount"`
	Players       []feedSyncPlayerDTO `json:"players"`
}

type feedSyncPlayerDTO struct {
	PlayerID   int64  `json:"playerId"`
	Imported   int    `json:"imported"`
	Skipped    int    `json:"skipped"`
	Error      string `json:"error,omitempty"`
	DurationMs int64  `json:"durationMs"`
}
