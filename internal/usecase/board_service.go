package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/scoreboard/internal/domain/board"
)

type BoardService struct {
	boardRepo board.Repository
}

func NewBoardService(boardRepo board.Repository) *BoardService {
	return &BoardService{boardRepo: boardRepo}
}

func (s *BoardService) ListBoards(ctx context.Context) ([]board.Board, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BoardService.ListBoards")
	defer span.End()

	items, err := s.boardRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list boards: %w", err)
	}

	return items, nil
}
