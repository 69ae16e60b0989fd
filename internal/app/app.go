package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	_ "github.com/lib/pq"

	"github.com/dreamsquad/fantasy-cricket/internal/config"
	"github.com/dreamsquad/fantasy-cricket/internal/domain/match"
	"github.com/dreamsquad/fantasy-cricket/internal/domain/player"
	"github.com/dreamsquad/fantasy-cricket/internal/domain/selection"
	"github.com/dreamsquad/fantasy-cricket/internal/infrastructure/account/gatekeeper"
	cachedrepo "github.com/dreamsquad/fantasy-cricket/internal/infrastructure/repository/cache"
	"github.com/dreamsquad/fantasy-cricket/internal/infrastructure/repository/memory"
	"github.com/dreamsquad/fantasy-cricket/internal/infrastructure/repository/postgres"
	"github.com/dreamsquad/fantasy-cricket/internal/interfaces/httpapi"
	basecache "github.com/dreamsquad/fantasy-cricket/internal/platform/cache"
	idgen "github.com/dreamsquad/fantasy-cricket/internal/platform/id"
	"github.com/dreamsquad/fantasy-cricket/internal/platform/logging"
	"github.com/dreamsquad/fantasy-cricket/internal/platform/resilience"
	"github.com/dreamsquad/fantasy-cricket/internal/usecase"
)

const sessionJanitorInterval = time.Minute

// App bundles the HTTP server with the resources that must be released on
// shutdown.
type App struct {
	Server *http.Server

	sessionService *usecase.SessionService
	db             *sqlx.DB
	logger         *logging.Logger
}

type repositories struct {
	matches    match.Repository
	players    player.Repository
	selections selection.Repository
	store      httpapi.Pinger
}

func New(cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}

	db, repos, err := buildRepositories(cfg, logger)
	if err != nil {
		return nil, err
	}

	matchSvc := usecase.NewMatchService(repos.matches, usecase.MatchListRetry{
		Attempts:  cfg.MatchListRetryAttempts,
		BaseDelay: cfg.MatchListRetryBaseDelay,
	}, logger)
	rosterSvc := usecase.NewRosterService(repos.players)
	teamSvc := usecase.NewTeamService(repos.selections, repos.players, repos.matches, logger)
	sessionSvc := usecase.NewSessionService(
		teamSvc,
		repos.matches,
		repos.players,
		idgen.NewRandomGenerator(),
		cfg.SessionTTL,
		logger,
	)

	verifier := gatekeeper.NewClient(gatekeeper.ClientConfig{
		BaseURL:        cfg.AuthBaseURL,
		IntrospectPath: cfg.AuthIntrospectPath,
		Timeout:        cfg.AuthTimeout,
		Logger:         logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.AuthCircuitEnabled,
			FailureThreshold: cfg.AuthCircuitFailureCount,
			OpenTimeout:      cfg.AuthCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.AuthCircuitHalfOpenMax,
		},
	})

	handler := httpapi.NewHandler(matchSvc, rosterSvc, teamSvc, sessionSvc, repos.store, logger)
	router := httpapi.NewRouter(handler, verifier, logger, cfg.CORSAllowedOrigins)

	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return &App{
		Server:         server,
		sessionService: sessionSvc,
		db:             db,
		logger:         logger,
	}, nil
}

// RunSessionJanitor drops expired builder sessions until ctx is cancelled.
func (a *App) RunSessionJanitor(ctx context.Context) {
	ticker := time.NewTicker(sessionJanitorInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if purged := a.sessionService.PurgeExpired(); purged > 0 {
				a.logger.Info("expired sessions purged", "count", purged)
			}
		}
	}
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}

	return a.db.Close()
}

func buildRepositories(cfg config.Config, logger *logging.Logger) (*sqlx.DB, repositories, error) {
	if cfg.UseMemoryStore {
		logger.Info("storage backend", "kind", "memory")

		matches := memory.NewMatchRepository(memory.SeedMatches(time.Now()))
		players := memory.NewPlayerRepository(memory.SeedPlayers())
		return nil, repositories{
			matches:    matches,
			players:    players,
			selections: memory.NewSelectionRepository(),
			store:      matches,
		}, nil
	}

	db, err := openDatabase(cfg)
	if err != nil {
		return nil, repositories{}, err
	}

	matches := postgres.NewMatchRepository(db)
	repos := repositories{
		matches:    matches,
		players:    postgres.NewPlayerRepository(db),
		selections: postgres.NewSelectionRepository(db),
		store:      matches,
	}
	logger.Info("storage backend", "kind", "postgres", "db_name", dbNameFromURL(cfg.DBURL))

	if cfg.CacheEnabled {
		store := basecache.NewStore(cfg.CacheTTL)
		cachedMatches := cachedrepo.NewMatchRepository(matches, store)
		repos.matches = cachedMatches
		repos.players = cachedrepo.NewPlayerRepository(repos.players, store)
		repos.store = cachedMatches
		logger.Info("read cache enabled", "ttl", cfg.CacheTTL.String())
	}

	return db, repos, nil
}

func openDatabase(cfg config.Config) (*sqlx.DB, error) {
	dsn := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)

	db, err := otelsqlx.Open("postgres", dsn,
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return db, nil
}
