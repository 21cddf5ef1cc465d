package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/riskibarqy/scoreboard/internal/domain/player"
	"github.com/riskibarqy/scoreboard/internal/platform/logging"
)

func TestFeedSyncService_Run_ImportsValidEntries(t *testing.T) {
	t.Parallel()

	playerRepo := &stubPlayerRepository{
		profiles: map[int64]player.Profile{
			42: {ID: 42, Nickname: "arcade-ace"},
			7:  {ID: 7, Nickname: "drifter"},
		},
	}
	scoreRepo := &stubScoreRepository{}
	feed := &stubFeedClient{
		byPlayer: map[int64][]ExternalScore{
			42: {
				{PlayerID: 42, Points: 120, RecordedAt: time.Now()},
				{PlayerID: 42, Points: -3, RecordedAt: time.Now()},
			},
			7: {
				{PlayerID: 7, Points: 55, RecordedAt: time.Now()},
			},
		},
	}

	service := NewFeedSyncService(playerRepo, scoreRepo, feed, &sequenceIDGen{}, 2, logging.NewNop())

	report, err := service.Run(context.Background())
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}

	if report.ImportedCount != 2 {
		t.Fatalf("imported = %d, want 2", report.ImportedCount)
	}
	if report.SkippedCount != 1 {
		t.Fatalf("skipped = %d, want 1", report.SkippedCount)
	}
	if report.FailedCount != 0 {
		t.Fatalf("failed = %d, want 0", report.FailedCount)
	}
	if len(report.Players) != 2 {
		t.Fatalf("expected per-player rows for 2 players, got %d", len(report.Players))
	}
	if report.Players[0].PlayerID != 7 || report.Players[1].PlayerID != 42 {
		t.Fatalf("expected rows sorted by player id, got %+v", report.Players)
	}
	if len(scoreRepo.inserted) != 2 {
		t.Fatalf("expected 2 inserts, got %d", len(scoreRepo.inserted))
	}
}

func TestFeedSyncService_Run_CountsFetchFailures(t *testing.T) {
	t.Parallel()

	playerRepo := &stubPlayerRepository{
		profiles: map[int64]player.Profile{
			42: {ID: 42, Nickname: "arcade-ace"},
		},
	}
	feed := &stubFeedClient{failAll: true}

	service := NewFeedSyncService(playerRepo, &stubScoreRepository{}, feed, &sequenceIDGen{}, 1, logging.NewNop())

	report, err := service.Run(context.Background())
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if report.FailedCount != 1 {
		t.Fatalf("failed = %d, want 1", report.FailedCount)
	}
	if report.Players[0].Err == "" {
		t.Fatalf("expected per-player error message")
	}
}

func TestFeedSyncService_Run_NoPlayersIsNoop(t *testing.T) {
	t.Parallel()

	service := NewFeedSyncService(&stubPlayerRepository{}, &stubScoreRepository{}, &stubFeedClient{}, &sequenceIDGen{}, 1, logging.NewNop())

	report, err := service.Run(context.Background())
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if len(report.Players) != 0 || report.ImportedCount != 0 {
		t.Fatalf("expected empty report, got %+v", report)
	}
}

func TestFeedSyncService_Run_DrainsInFlightWorkOnSubmitFailure(t *testing.T) {
	t.Parallel()

	playerRepo := &stubPlayerRepository{
		profiles: map[int64]player.Profile{
			42: {ID: 42, Nickname: "arcade-ace"},
			7:  {ID: 7, Nickname: "drifter"},
		},
	}
	scoreRepo := &stubScoreRepository{}
	release := make(chan struct{})
	feed := &gatedFeedClient{release: release}

	service := NewFeedSyncService(playerRepo, scoreRepo, feed, &sequenceIDGen{}, 1, logging.NewNop())
	service.newPool = func(int) (syncTaskPool, error) {
		return &failSecondSubmitPool{}, nil
	}

	done := make(chan error, 1)
	go func() {
		_, err := service.Run(context.Background())
		done <- err
	}()

	// The first task is still mid-fetch; Run must not return yet.
	select {
	case err := <-done:
		t.Fatalf("Run returned before submitted work finished: %v", err)
	case <-time.After(50 * time.Millisecond):
	}

	close(release)

	err := <-done
	if err == nil {
		t.Fatalf("expected error from failed submit")
	}
	if len(scoreRepo.inserted) != 1 {
		t.Fatalf("expected the in-flight import to land before Run returned, got %d inserts", len(scoreRepo.inserted))
	}
}

// gatedFeedClient blocks every fetch until release closes, then reports one
// valid score for the requested player.
type gatedFeedClient struct {
	release chan struct{}
}

func (g *gatedFeedClient) FetchPlayerScores(ctx context.Context, playerID int64) ([]ExternalScore, error) {
	select {
	case <-g.release:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	return []ExternalScore{{PlayerID: playerID, Points: 10, RecordedAt: time.Now()}}, nil
}

// failSecondSubmitPool accepts the first task and refuses the rest.
type failSecondSubmitPool struct {
	submits int
}

func (p *failSecondSubmitPool) Submit(task func()) error {
	p.submits++
	if p.submits > 1 {
		return ants.ErrPoolOverload
	}
	go task()
	return nil
}

func (p *failSecondSubmitPool) Release() {}

type stubFeedClient struct {
	byPlayer map[int64][]ExternalScore
	failAll  bool
}

func (s *stubFeedClient) FetchPlayerScores(_ context.Context, playerID int64) ([]ExternalScore, error) {
	if s.failAll {
		return nil, context.DeadlineExceeded
	}
	items := s.byPlayer[playerID]
	out := make([]ExternalScore, len(items))
	copy(out, items)
	return out, nil
}
