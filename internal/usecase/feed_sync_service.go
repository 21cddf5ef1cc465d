package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/riskibarqy/scoreboard/internal/domain/player"
	"github.com/riskibarqy/scoreboard/internal/domain/score"
	idgen "github.com/riskibarqy/scoreboard/internal/platform/id"
	"github.com/riskibarqy/scoreboard/internal/platform/logging"
)

const defaultSyncWorkers = 4

// ExternalScore is one scoring event as reported by the upstream feed.
type ExternalScore struct {
	PlayerID   int64
	Points     int
	RecordedAt time.Time
}

// FeedClient pulls recorded scores from the upstream arcade feed.
type FeedClient interface {
	FetchPlayerScores(ctx context.Context, playerID int64) ([]ExternalScore, error)
}

// syncTaskPool is the slice of the ants pool Run relies on.
type syncTaskPool interface {
	Submit(task func()) error
	Release()
}

type FeedSyncService struct {
	playerRepo player.Repository
	scoreRepo  score.Repository
	feed       FeedClient
	idGen      idgen.Generator
	workers    int
	logger     *logging.Logger
	newPool    func(size int) (syncTaskPool, error)
}

func NewFeedSyncService(
	playerRepo player.Repository,
	scoreRepo score.Repository,
	feed FeedClient,
	idGen idgen.Generator,
	workers int,
	logger *logging.Logger,
) *FeedSyncService {
	if workers < 1 {
		workers = defaultSyncWorkers
	}
	if logger == nil {
		logger = logging.Default()
	}

	return &FeedSyncService{
		playerRepo: playerRepo,
		scoreRepo:  scoreRepo,
		feed:       feed,
		idGen:      idGen,
		workers:    workers,
		logger:     logger,
		newPool: func(size int) (syncTaskPool, error) {
			return ants.NewPool(size)
		},
	}
}

type FeedSyncPlayerResult struct {
	PlayerID   int64
	Imported   int
	Skipped    int
	Err        string
	DurationMs int64
}

type FeedSyncReport struct {
	Players       []FeedSyncPlayerResult
	ImportedCount int
	SkippedCount  int
	FailedCount   int
}

// Run imports feed scores for every known player. Feed entries that fail
// domain validation are skipped, not fatal.
func (s *FeedSyncService) Run(ctx context.Context) (FeedSyncReport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FeedSyncService.Run")
	defer span.End()

	if s.feed == nil {
		return FeedSyncReport{}, fmt.Errorf("%w: feed client is not configured", ErrDependencyUnavailable)
	}

	playerIDs, err := s.playerRepo.ListIDs(ctx)
	if err != nil {
		return FeedSyncReport{}, fmt.Errorf("list player ids: %w", err)
	}
	if len(playerIDs) == 0 {
		return FeedSyncReport{}, nil
	}

	results := make(chan FeedSyncPlayerResult, len(playerIDs))

	var importedCount atomic.Int32
	var skippedCount atomic.Int32
	var failedCount atomic.Int32

	pool, err := s.newPool(s.workers)
	if err != nil {
		return FeedSyncReport{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var submitErr error
	var workers sync.WaitGroup
	for _, playerID := range playerIDs {
		playerID := playerID
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			start := time.Now()
			row := s.syncPlayer(ctx, playerID)
			row.DurationMs = time.Since(start).Milliseconds()

			importedCount.Add(int32(row.Imported))
			skippedCount.Add(int32(row.Skipped))
			if row.Err != "" {
				failedCount.Add(1)
			}

			results <- row
		}); err != nil {
			workers.Done()
			submitErr = fmt.Errorf("submit task to worker pool: %w", err)
			break
		}
	}

	// Submitted tasks keep inserting scores; wait them out before handing
	// control back, even when a later submit failed.
	workers.Wait()
	close(results)
	if submitErr != nil {
		return FeedSyncReport{}, submitErr
	}

	report := FeedSyncReport{Players: make([]FeedSyncPlayerResult, 0, len(playerIDs))}
	for row := range results {
		report.Players = append(report.Players, row)
	}
	sort.SliceStable(report.Players, func(i, j int) bool {
		return report.Players[i].PlayerID < report.Players[j].PlayerID
	})

	report.ImportedCount = int(importedCount.Load())
	report.SkippedCount = int(skippedCount.Load())
	report.FailedCount = int(failedCount.Load())

	return report, nil
}

func (s *FeedSyncService) syncPlayer(ctx context.Context, playerID int64) FeedSyncPlayerResult {
	row := FeedSyncPlayerResult{PlayerID: playerID}

	items, err := s.feed.FetchPlayerScores(ctx, playerID)
	if err != nil {
		s.logger.WarnContext(ctx, "feed fetch failed", "player_id", playerID, "error", err)
		row.Err = err.Error()
		return row
	}

	for _, item := range items {
		id, err := s.idGen.NewID()
		if err != nil {
			row.Err = fmt.Sprintf("generate score id: %v", err)
			return row
		}

		candidate := score.Score{
			ID:         id,
			PlayerID:   playerID,
			Points:     item.Points,
			RecordedAt: item.RecordedAt.UTC(),
		}
		if err := candidate.Validate(); err != nil {
			s.logger.WarnContext(ctx, "feed entry rejected", "player_id", playerID, "error", err)
			row.Skipped++
			continue
		}

		if err := s.scoreRepo.Insert(ctx, candidate); err != nil {
			row.Err = fmt.Sprintf("insert score: %v", err)
			return row
		}
		row.Imported++
	}

	return row
}
