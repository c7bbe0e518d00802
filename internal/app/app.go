package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/league-dashboard/internal/config"
	"github.com/riskibarqy/league-dashboard/internal/domain/correction"
	"github.com/riskibarqy/league-dashboard/internal/domain/division"
	"github.com/riskibarqy/league-dashboard/internal/domain/headline"
	"github.com/riskibarqy/league-dashboard/internal/domain/match"
	"github.com/riskibarqy/league-dashboard/internal/domain/player"
	"github.com/riskibarqy/league-dashboard/internal/domain/team"
	"github.com/riskibarqy/league-dashboard/internal/infrastructure/account/supabase"
	cacherepo "github.com/riskibarqy/league-dashboard/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/league-dashboard/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/league-dashboard/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/league-dashboard/internal/interfaces/httpapi"
	"github.com/riskibarqy/league-dashboard/internal/platform/cache"
	idgen "github.com/riskibarqy/league-dashboard/internal/platform/id"
	"github.com/riskibarqy/league-dashboard/internal/platform/logging"
	"github.com/riskibarqy/league-dashboard/internal/platform/metrics"
	"github.com/riskibarqy/league-dashboard/internal/platform/resilience"
	"github.com/riskibarqy/league-dashboard/internal/usecase"
)

type repositories struct {
	divisions   division.Repository
	teams       team.Repository
	players     player.Repository
	matches     match.Repository
	headlines   headline.Repository
	corrections correction.Repository
}

// Server is the assembled HTTP service plus the resources it owns.
type Server struct {
	HTTP *http.Server

	db *sqlx.DB
}

// Close releases resources opened while building the server.
func (s *Server) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Server, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	var metricsManager *metrics.Manager
	if cfg.MetricsEnabled {
		metricsManager = metrics.NewManager(
			metrics.WithRuntimeCollectors(),
			metrics.WithConstLabels(map[string]string{"service": cfg.ServiceName, "env": cfg.AppEnv}),
		)
	}

	repos, db, err := buildRepositories(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	if cfg.CacheEnabled {
		repos = withReadCache(repos, cache.NewStore(cfg.CacheTTL,
			cache.WithName("repository"),
			cache.WithRecorder(metricsManager),
		))
	}

	ids := idgen.NewUUIDGenerator()
	standings := usecase.NewStandingService(repos.teams, repos.matches, repos.players, metricsManager, logger)
	results := usecase.NewResultService(repos.teams, repos.matches, repos.players)
	headlines := usecase.NewHeadlineService(repos.headlines, ids)

	services := httpapi.Services{
		Divisions:   usecase.NewDivisionService(repos.divisions, cfg.DefaultDivisionID),
		Standings:   standings,
		Overview:    usecase.NewOverviewService(standings, results, headlines),
		Results:     results,
		Teams:       usecase.NewTeamService(repos.divisions, repos.teams, repos.matches, repos.players, standings),
		Headlines:   headlines,
		Matches:     usecase.NewMatchService(repos.matches, repos.teams, ids),
		Players:     usecase.NewPlayerService(repos.players, repos.teams, ids),
		Corrections: usecase.NewCorrectionService(repos.corrections, ids),
		Recompute:   usecase.NewRecomputeService(repos.divisions, standings, metricsManager, logger).WithDefaultWorkers(cfg.RecomputeWorkers),
	}

	authClient := supabase.NewClient(
		&http.Client{Timeout: cfg.SupabaseTimeout},
		supabase.Config{
			URL:       cfg.SupabaseURL,
			AnonKey:   cfg.SupabaseAnonKey,
			JWTSecret: cfg.SupabaseJWTSecret,
			Timeout:   cfg.SupabaseTimeout,
			Breaker: resilience.CircuitBreakerConfig{
				Enabled:          cfg.SupabaseCircuitEnabled,
				FailureThreshold: cfg.SupabaseCircuitFailureCount,
				OpenTimeout:      cfg.SupabaseCircuitOpenTimeout,
				HalfOpenMaxReq:   cfg.SupabaseCircuitHalfOpenMaxReq,
			},
		},
		logger,
		supabase.WithCache(cache.NewStore(cfg.AuthCacheTTL,
			cache.WithName("auth"),
			cache.WithRecorder(metricsManager),
			cache.WithMaxEntries(10_000),
		)),
		supabase.WithBreakerListener(func(from, to resilience.CircuitState) {
			metricsManager.SetBreakerState("supabase_auth", string(to))
			logger.Warn("supabase auth circuit state changed", "from", string(from), "to", string(to))
		}),
	)

	handler := httpapi.NewHandler(services, logger)
	router := httpapi.NewRouter(handler, authClient, logger, metricsManager, httpapi.RouterConfig{
		ServiceName:        cfg.ServiceName,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		InternalJobToken:   cfg.InternalJobToken,
		SwaggerEnabled:     cfg.SwaggerEnabled,
	})

	return &Server{
		HTTP: &http.Server{
			Addr:         cfg.HTTPAddr,
			Handler:      router,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
		db: db,
	}, nil
}

func buildRepositories(ctx context.Context, cfg config.Config, logger *logging.Logger) (repositories, *sqlx.DB, error) {
	switch cfg.StorageDriver {
	case config.StoragePostgres:
		db, err := openDatabase(ctx, cfg, logger)
		if err != nil {
			return repositories{}, nil, err
		}
		if err := postgres.BootstrapSeed(ctx, db); err != nil {
			_ = db.Close()
			return repositories{}, nil, fmt.Errorf("bootstrap seed: %w", err)
		}
		return repositories{
			divisions:   postgres.NewDivisionRepository(db),
			teams:       postgres.NewTeamRepository(db),
			players:     postgres.NewPlayerRepository(db),
			matches:     postgres.NewMatchRepository(db),
			headlines:   postgres.NewHeadlineRepository(db),
			corrections: postgres.NewCorrectionRepository(db),
		}, db, nil
	default:
		logger.Info("using in-memory storage", "divisions", len(memory.SeedDivisions()))
		return repositories{
			divisions:   memory.NewDivisionRepository(memory.SeedDivisions()),
			teams:       memory.NewTeamRepository(memory.SeedTeams()),
			players:     memory.NewPlayerRepository(memory.SeedPlayers()),
			matches:     memory.NewMatchRepository(memory.SeedMatches(), memory.SeedGoals()),
			headlines:   memory.NewHeadlineRepository(memory.SeedHeadlines()),
			corrections: memory.NewCorrectionRepository(),
		}, nil, nil
	}
}

// withReadCache wraps the read-heavy repositories. Corrections are admin-only
// and stay uncached.
func withReadCache(repos repositories, store *cache.Store) repositories {
	repos.divisions = cacherepo.NewDivisionRepository(repos.divisions, store)
	repos.teams = cacherepo.NewTeamRepository(repos.teams, store)
	repos.players = cacherepo.NewPlayerRepository(repos.players, store)
	repos.matches = cacherepo.NewMatchRepository(repos.matches, store)
	repos.headlines = cacherepo.NewHeadlineRepository(repos.headlines, store)
	return repos
}
