package httpapi

import (
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"

	"github.com/riskibarqy/scoreboard/internal/usecase"
)

func (h *Handler) GetPlayerReward(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerReward")
	defer span.End()

	playerID, err := parsePlayerID(r.PathValue("playerID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	tier := r.URL.Query().Get("tier")
	item, err := h.rewardService.ForPlayer(ctx, playerID, tier)
	if err != nil {
		h.logger.WarnContext(ctx, "player reward failed", "player_id", playerID, "tier", tier, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerRewardDTO{
		PlayerID:  item.PlayerID,
		Tier:      item.Tier,
		BestScore: item.BestScore,
		Reward:    item.Reward,
	})
}

func (h *Handler) PreviewReward(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.PreviewReward")
	defer span.End()

	var req previewRewardRequest
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

	amount, err := h.rewardService.Preview(ctx, req.Score, req.Tier)
	if err != nil {
		h.logger.WarnContext(ctx, "reward preview failed", "tier", req.Tier, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, rewardPreviewDTO{
		Score:  req.Score,
		Tier:   req.Tier,
		Reward: amount,
	})
}

type previewRewardRequest struct {
	Score int    `json:"score" validate:"gte=0"`
	Tier  string `json:"tier"`
}

type rewardPreviewDTO struct {
	Score  int    `json:"score"`
	Tier   string `json:"tier,omitempty"`
	Reward int    `json:"reward"`
}

type playerRewardDTO struct {
	PlayerID  int64  `json:"playerId"`
	Tier      string `json:"tier"`
	BestScore int    `json:"bestScore"`
	Reward    int    `json:"reward"`
}
