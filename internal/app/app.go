package app

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/jmoiron/sqlx"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	_ "github.com/lib/pq"

	"github.com/riskibarqy/scoreboard/external/scorefeed"
	"github.com/riskibarqy/scoreboard/internal/config"
	"github.com/riskibarqy/scoreboard/internal/domain/board"
	"github.com/riskibarqy/scoreboard/internal/domain/player"
	"github.com/riskibarqy/scoreboard/internal/domain/score"
	cacherepo "github.com/riskibarqy/scoreboard/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/scoreboard/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/scoreboard/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/scoreboard/internal/interfaces/console"
	"github.com/riskibarqy/scoreboard/internal/interfaces/httpapi"
	basecache "github.com/riskibarqy/scoreboard/internal/platform/cache"
	idgen "github.com/riskibarqy/scoreboard/internal/platform/id"
	"github.com/riskibarqy/scoreboard/internal/platform/logging"
	"github.com/riskibarqy/scoreboard/internal/platform/resilience"
	"github.com/riskibarqy/scoreboard/internal/usecase"
)

// NewHTTPServer wires repositories, services, and the HTTP router. The
// returned cleanup closes the database pool when one was opened.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}

	scoreRepo, playerRepo, boardRepo, cleanup, err := buildRepositories(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	presenter := console.NewPresenter(os.Stdout)
	idGenerator := idgen.NewRandomGenerator()

	scoreSvc := usecase.NewScoreService(scoreRepo, presenter, idGenerator)
	rewardSvc := usecase.NewRewardService(scoreRepo)
	playerSvc := usecase.NewPlayerService(playerRepo, scoreRepo)
	boardSvc := usecase.NewBoardService(boardRepo)

	// The sync-feed route stays registered when the feed is disabled; the
	// handler answers UNAVAILABLE for a nil service.
	var feedSyncSvc *usecase.FeedSyncService
	if cfg.FeedEnabled {
		feedClient := scorefeed.NewClient(scorefeed.ClientConfig{
			BaseURL:    cfg.FeedBaseURL,
			Token:      cfg.FeedToken,
			Timeout:    cfg.FeedTimeout,
			MaxRetries: cfg.FeedMaxRetries,
			Logger:     logger,
			CircuitBreaker: resilience.CircuitBreakerConfig{
				Enabled:          cfg.FeedCircuitEnabled,
				FailureThreshold: cfg.FeedCircuitFailureCount,
				OpenTimeout:      cfg.FeedCircuitOpenTimeout,
				HalfOpenMaxReq:   cfg.FeedCircuitHalfOpenMaxReq,
			},
		})
		feedSyncSvc = usecase.NewFeedSyncService(playerRepo, scoreRepo, feedClient, idGenerator, cfg.FeedSyncWorkers, logger)
	}

	handler := httpapi.NewHandler(scoreSvc, rewardSvc, playerSvc, boardSvc, feedSyncSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins, cfg.InternalJobToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		cleanup()
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, func() error { cleanup(); return nil }, nil
}

func buildRepositories(ctx context.Context, cfg config.Config, logger *logging.Logger) (score.Repository, player.Repository, board.Repository, func(), error) {
	var scoreRepo score.Repository
	var playerRepo player.Repository
	cleanup := func() {}

	if cfg.DBURL != "" {
		db, err := openDB(cfg)
		if err != nil {
			return nil, nil, nil, nil, err
		}
		if err := postgres.BootstrapSeed(ctx, db); err != nil {
			_ = db.Close()
			return nil, nil, nil, nil, fmt.Errorf("bootstrap seed: %w", err)
		}
		logger.Info("storage ready", "backend", "postgres", "database", dbNameFromURL(cfg.DBURL))
		scoreRepo = postgres.NewScoreRepository(db)
		playerRepo = postgres.NewPlayerRepository(db)
		cleanup = func() { _ = db.Close() }
	} else {
		logger.Info("storage ready", "backend", "memory")
		scoreRepo = memory.NewScoreRepository(memory.SeedScores())
		playerRepo = memory.NewPlayerRepository(memory.SeedProfiles(), memory.SeedStats())
	}

	// Board presets are static; they always live in memory.
	var boardRepo board.Repository = memory.NewBoardRepository(memory.SeedBoards())

	if cfg.CacheEnabled {
		store := basecache.NewStore(cfg.CacheTTL)
		scoreRepo = cacherepo.NewScoreRepository(scoreRepo, store)
		playerRepo = cacherepo.NewPlayerRepository(playerRepo, store)
		boardRepo = cacherepo.NewBoardRepository(boardRepo, store)
	}

	return scoreRepo, playerRepo, boardRepo, cleanup, nil
}

func openDB(cfg config.Config) (*sqlx.DB, error) {
	dbURL := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)
	db, err := otelsqlx.Connect("postgres", dbURL,
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	return db, nil
}
