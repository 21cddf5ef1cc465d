package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/scoreboard/internal/domain/board"
)

type BoardRepository struct {
	mu     sync.RWMutex
	boards []board.Board
}

func NewBoardRepository(seed []board.Board) *BoardRepository {
	boards := make([]board.Board, 0, len(seed))
	boards = append(boards, seed...)

	return &BoardRepository{boards: boards}
}

func (r *BoardRepository) List(_ context.Context) ([]board.Board, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]board.Board, 0, len(r.boards))
	out = append(out, r.boards...)

	return out, nil
}
