package httpapi

import (
	"context"
	"net/http"

	"github.com/riskibarqy/scoreboard/internal/domain/board"
	"github.com/riskibarqy/scoreboard/internal/domain/geometry"
)

func (h *Handler) ListBoards(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListBoards")
	defer span.End()

	items, err := h.boardService.ListBoards(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list boards failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]boardDTO, 0, len(items))
	for _, item := range items {
		out = append(out, boardToDTO(ctx, item))
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

type boardDTO struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	Kind string  `json:"kind"`
	Area float64 `json:"area"`
}

func boardToDTO(ctx context.Context, v board.Board) boardDTO {
	ctx, span := startSpan(ctx, "httpapi.boardToDTO")
	defer span.End()

	return boardDTO{
		ID:   v.ID,
		Name: v.Name,
		Kind: shapeKind(v.Field),
		// Area comes from the capability; the concrete variant is opaque here.
		Area: v.Field.Area(),
	}
}

func shapeKind(shape geometry.Shape) string {
	switch shape.(type) {
	case geometry.Rectangle:
		return "rectangle"
	case geometry.Square:
		return "square"
	case geometry.Circle:
		return "circle"
	default:
		return "custom"
	}
}
