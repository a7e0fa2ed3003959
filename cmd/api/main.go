package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"goal-planner/config"
	_ "goal-planner/docs" // Swagger docs
	"goal-planner/internal/goal/repository/sqlstore"
	"goal-planner/internal/goal/usecase"
	"goal-planner/internal/httpserver"
	"goal-planner/internal/middleware"
	"goal-planner/internal/validation"
	"goal-planner/pkg/datemath"
	"goal-planner/pkg/eventbus"
	"goal-planner/pkg/gcalendar"
	"goal-planner/pkg/llmprovider"
	"goal-planner/pkg/log"
	"goal-planner/pkg/metrics"
	"goal-planner/pkg/postgre"
	"goal-planner/pkg/scope"
	"goal-planner/pkg/sqlite"
)

// @title       Goal Planner API
// @description Goal validation and conflict-free daily schedule synthesis.
// @version     1
// @host        localhost:8080
// @schemes     http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Goal Planner...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	config.Watch(func(next *config.Config, err error) {
		if err != nil {
			logger.Warnf(ctx, "Config reload failed: %v", err)
			return
		}
		log.SetLevel(logger, next.Logger.Level)
		logger.Infof(ctx, "Config reloaded, log level: %s", next.Logger.Level)
	})

	// 3. Dates
	dates, err := datemath.NewParser(cfg.Planner.Timezone)
	if err != nil {
		logger.Fatalf(ctx, "Failed to load timezone %q: %v", cfg.Planner.Timezone, err)
	}

	// 4. Storage
	db, dialect, err := openDatabase(ctx, cfg.Database)
	if err != nil {
		logger.Fatalf(ctx, "Failed to open database: %v", err)
	}
	defer db.Close()
	if err := sqlstore.Migrate(ctx, db); err != nil {
		logger.Fatalf(ctx, "Failed to migrate database: %v", err)
	}
	repo := sqlstore.New(db, dialect, dates.Location(), logger)
	logger.Infof(ctx, "Goal store ready (%s)", dialect)

	// 5. Optional integrations
	deps := usecase.Deps{
		Repo:      repo,
		Validator: validation.New(dates, validation.Config{MaxMonths: cfg.Planner.MaxMonths}),
		Dates:     dates,
		Metrics:   metrics.New(),
		Publisher: eventbus.Nop{},
	}

	providers, warnings, err := llmprovider.InitializeProviders(&cfg.LLM)
	for _, w := range warnings {
		logger.Warnf(ctx, "LLM provider skipped: %s", w)
	}
	switch {
	case errors.Is(err, llmprovider.ErrNoProvidersConfigured):
		logger.Warn(ctx, "No LLM providers configured: free-text extraction disabled, template content only")
	case err != nil:
		logger.Fatalf(ctx, "Failed to initialize LLM providers: %v", err)
	default:
		deps.Oracle = llmprovider.NewManager(providers, llmprovider.ConfigFromLLM(cfg.LLM), logger)
		logger.Infof(ctx, "LLM providers initialized: %d", len(providers))
	}

	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendar, err := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if err != nil {
			logger.Warnf(ctx, "Google Calendar disabled: %v", err)
		} else {
			deps.Calendar = calendar
			logger.Info(ctx, "Google Calendar client initialized")
		}
	}

	if cfg.NATS.URL != "" {
		publisher, err := eventbus.Connect(eventbus.Config{URL: cfg.NATS.URL, Name: httpserver.ServiceName})
		if err != nil {
			logger.Warnf(ctx, "NATS disabled: %v", err)
		} else {
			defer publisher.Close()
			deps.Publisher = publisher
			logger.Infof(ctx, "Publishing goal events to %s", cfg.NATS.Subject)
		}
	}

	// 6. Goal domain
	ucCfg, err := usecase.ConfigFromPlanner(cfg.Planner, cfg.GoogleCalendar, cfg.NATS.Subject)
	if err != nil {
		logger.Fatalf(ctx, "Invalid planner config: %v", err)
	}
	goalUC := usecase.New(logger, deps, ucCfg)

	// 7. HTTP server
	if cfg.Auth.JWTSecret == "" && !cfg.Auth.Disabled {
		logger.Fatal(ctx, "auth.jwt_secret is required unless auth.disabled is set")
	}
	mw := middleware.New(logger, scope.New(cfg.Auth.JWTSecret), cfg.Auth, cfg.RateLimit)

	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		DB:             db,
		Metrics:        deps.Metrics,
		Middleware:     mw,
		GoalUseCase:    goalUC,
		Location:       dates.Location(),
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to create HTTP server: %v", err)
	}

	if err := httpServer.Run(ctx); err != nil {
		logger.Errorf(ctx, "HTTP server stopped: %v", err)
		return
	}
	logger.Info(context.Background(), "Goal Planner stopped")
}

func openDatabase(ctx context.Context, cfg config.DatabaseConfig) (*sql.DB, sqlstore.Dialect, error) {
	dialect, err := sqlstore.ParseDialect(cfg.Driver)
	if err != nil {
		return nil, "", err
	}

	var db *sql.DB
	switch dialect {
	case sqlstore.DialectPostgres:
		db, err = postgre.Connect(ctx, cfg.DSN)
	default:
		db, err = sqlite.Open(ctx, cfg.DSN)
	}
	if err != nil {
		return nil, "", err
	}
	return db, dialect, nil
}
