package httpserver

import (
	"context"
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"goal-planner/internal/goal"
	"goal-planner/internal/middleware"
	"goal-planner/pkg/log"
	"goal-planner/pkg/metrics"
)

// Pinger reports whether a backing store is reachable. *sql.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin            *gin.Engine
	l              log.Logger
	port           int
	mode           string
	environment    string
	allowedOrigins []string

	db         Pinger
	metrics    *metrics.Planner
	middleware middleware.Middleware

	// Goal domain
	goalUC   goal.UseCase
	location *time.Location
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger         log.Logger
	Port           int
	Mode           string
	Environment    string
	AllowedOrigins []string

	DB         Pinger
	Metrics    *metrics.Planner
	Middleware middleware.Middleware

	// Goal domain
	GoalUseCase goal.UseCase
	Location    *time.Location
}

// New creates a new HTTPServer instance with every route registered.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:              logger,
		gin:            gin.New(),
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		allowedOrigins: cfg.AllowedOrigins,
		db:             cfg.DB,
		metrics:        cfg.Metrics,
		middleware:     cfg.Middleware,
		goalUC:         cfg.GoalUseCase,
		location:       cfg.Location,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	srv.mapHandlers()

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.goalUC == nil {
		return errors.New("goal use case is required")
	}
	return nil
}
