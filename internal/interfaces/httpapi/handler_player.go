package httpapi

import (
	"net/http"
)

func (h *Handler) GetPlayerSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerSummary")
	defer span.End()

	playerID, err := parsePlayerID(r.PathValue("playerID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	summary, err := h.playerService.Summary(ctx, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "player summary failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerSummaryDTO{
		PlayerID:    summary.Profile.ID,
		Nickname:    summary.Profile.Nickname,
		GamesPlayed: summary.Stats.GamesPlayed,
		Wins:        summary.Stats.Wins,
		TotalPoints: summary.TotalPoints,
		BestScore:   summary.BestScore,
		ScoreCount:  summary.ScoreCount,
	})
}

type playerSummaryDTO struct {
	PlayerID    int64  `json:"playerId"`
	Nickname    string `json:"nickname"`
	GamesPlayed int    `json:"gamesPlayed"`
	Wins        int    `json:"wins"`
	TotalPoints int    `json:"totalPoints"`
	BestScore   int    `json:"bestScore"`
	ScoreCount  int    `json:"scoreCount"`
}
