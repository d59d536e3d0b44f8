package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	"go.opentelemetry.io/otel/attribute"

	"github.com/ufaleague/league-api/external/webhook"
	"github.com/ufaleague/league-api/internal/config"
	"github.com/ufaleague/league-api/internal/domain/fixture"
	"github.com/ufaleague/league-api/internal/domain/holiday"
	"github.com/ufaleague/league-api/internal/domain/season"
	"github.com/ufaleague/league-api/internal/domain/team"
	cachedrepo "github.com/ufaleague/league-api/internal/infrastructure/repository/cache"
	"github.com/ufaleague/league-api/internal/infrastructure/repository/memory"
	"github.com/ufaleague/league-api/internal/infrastructure/repository/postgres"
	"github.com/ufaleague/league-api/internal/interfaces/httpapi"
	"github.com/ufaleague/league-api/internal/platform/cache"
	idgen "github.com/ufaleague/league-api/internal/platform/id"
	"github.com/ufaleague/league-api/internal/platform/logging"
	"github.com/ufaleague/league-api/internal/platform/resilience"
	"github.com/ufaleague/league-api/internal/usecase"
)

// NewHTTPServer wires repositories, services, and the HTTP router. With no
// DB_URL configured the service runs against seeded in-memory repositories,
// which is enough for local development and the demo deployment.
func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, func(), error) {
	if logger == nil {
		logger = logging.Default()
	}

	scheduleCfg := cfg.ScheduleConfig()

	var (
		seasonRepo  season.Repository
		teamRepo    team.Repository
		holidayRepo holiday.Repository
		fixtureRepo fixture.Repository
	)
	cleanup := func() {}

	if cfg.DBURL != "" {
		db, err := openDatabase(cfg)
		if err != nil {
			return nil, nil, err
		}
		cleanup = func() {
			_ = db.Close()
		}
		if cfg.DBBootstrapSeed {
			seedCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := postgres.BootstrapSeed(seedCtx, db); err != nil {
				cleanup()
				return nil, nil, fmt.Errorf("bootstrap seed: %w", err)
			}
		}
		seasonRepo = postgres.NewSeasonRepository(db)
		teamRepo = postgres.NewTeamRepository(db)
		holidayRepo = postgres.NewHolidayRepository(db)
		fixtureRepo = postgres.NewFixtureRepository(db, cfg.LeagueTimezone)
		logger.Info("using postgres repositories", "db", dbNameFromURL(cfg.DBURL))
	} else {
		seasonRepo = memory.NewSeasonRepository(memory.SeedSeasons())
		teamRepo = memory.NewTeamRepository(memory.SeedTeams())
		holidayRepo = memory.NewHolidayRepository(memory.SeedHolidays())
		fixtureRepo = memory.NewFixtureRepository(nil)
		logger.Info("using in-memory repositories", "reason", "DB_URL is empty")
	}

	if cfg.CacheEnabled {
		store := cache.NewStore(cfg.CacheTTL)
		seasonRepo = cachedrepo.NewSeasonRepository(seasonRepo, store)
		teamRepo = cachedrepo.NewTeamRepository(teamRepo, store)
		holidayRepo = cachedrepo.NewHolidayRepository(holidayRepo, store)
		fixtureRepo = cachedrepo.NewFixtureRepository(fixtureRepo, store)
	}

	var notifier usecase.Notifier
	if cfg.WebhookEnabled {
		notifier = webhook.NewNotifier(webhook.NotifierConfig{
			URL:     cfg.WebhookURL,
			Token:   cfg.WebhookToken,
			Timeout: cfg.WebhookTimeout,
			CircuitBreaker: resilience.CircuitBreakerConfig{
				Enabled:          cfg.WebhookCircuitEnabled,
				FailureThreshold: cfg.WebhookCircuitFailureCount,
				OpenTimeout:      cfg.WebhookCircuitOpenTimeout,
				HalfOpenMaxReq:   cfg.WebhookCircuitHalfOpenMaxReq,
			},
		}, logger)
	}

	idGenerator := idgen.NewRandomGenerator()

	handler := httpapi.NewHandler(
		usecase.NewSeasonService(seasonRepo, teamRepo, fixtureRepo, scheduleCfg),
		usecase.NewTeamService(seasonRepo, teamRepo),
		usecase.NewHolidayService(seasonRepo, holidayRepo, idGenerator),
		usecase.NewFixtureService(seasonRepo, teamRepo, fixtureRepo, holidayRepo, idGenerator, scheduleCfg, notifier),
		usecase.NewScheduleService(seasonRepo, teamRepo, fixtureRepo, holidayRepo, idGenerator, scheduleCfg, notifier),
		usecase.NewCascadeService(seasonRepo, fixtureRepo, holidayRepo, scheduleCfg, notifier),
		usecase.NewAuditService(seasonRepo, teamRepo, fixtureRepo, holidayRepo, scheduleCfg),
		usecase.NewSummaryService(seasonRepo, teamRepo, fixtureRepo, holidayRepo),
		logger,
	)
	router := httpapi.NewRouter(handler, logger, cfg.SwaggerEnabled, cfg.CORSAllowedOrigins, cfg.AdminAPIToken)

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

	return server, cleanup, nil
}

func openDatabase(cfg config.Config) (*sqlx.DB, error) {
	dbURL := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)
	db, err := otelsqlx.Open("postgres", dbURL,
		otelsql.WithAttributes(attribute.String("db.system", "postgresql")),
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return db, nil
}
