package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
	"github.com/smarttravellers/tripplanner/internal/config"
	"github.com/smarttravellers/tripplanner/internal/database"
	"github.com/smarttravellers/tripplanner/internal/utils"
	"golang.org/x/sync/errgroup"
)

const (
	rateLimitPruneInterval = time.Minute
	rateLimitIdle          = 10 * time.Minute
)

// Application wires configuration, database, router, and server lifecycle.
type Application struct {
	cfg  config.Application
	deps *Dependencies
	pool *pgxpool.Pool
	srv  *http.Server
}

// NewApplication constructs the full HTTP application, ready to Run().
func NewApplication(ctx context.Context, cfg config.Application) (*Application, error) {
	var db database.Querier
	var pool *pgxpool.Pool
	if cfg.Database.Enabled {
		if err := database.Migrate(cfg.Database); err != nil {
			return nil, err
		}
		p, err := database.Open(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}
		pool, db = p, p
	}

	deps, err := BuildDependencies(db, cfg, utils.SystemClock{})
	if err != nil {
		if pool != nil {
			pool.Close()
		}
		return nil, err
	}

	r := mux.NewRouter()
	RegisterRoutes(r, deps)
	handler := SetupMiddleware(r, deps, cfg)

	srv := &http.Server{
		Handler:      handler,
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		WriteTimeout: cfg.Server.WriteTimeout,
		ReadTimeout:  cfg.Server.ReadTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return &Application{cfg: cfg, deps: deps, pool: pool, srv: srv}, nil
}

// Handler returns the fully wired HTTP handler.
func (a *Application) Handler() http.Handler {
	return a.srv.Handler
}

// Run starts the HTTP server and blocks until ctx is cancelled, then shuts the server down
// gracefully.
func (a *Application) Run(ctx context.Context) error {
	if a.pool != nil {
		defer a.pool.Close()
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Infof("Starting server on %s", a.srv.Addr)
		if err := a.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		log.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
		defer cancel()
		return a.srv.Shutdown(shutdownCtx)
	})

	if a.deps.RateLimiter != nil {
		g.Go(func() error {
			return a.deps.RateLimiter.RunPruner(ctx, rateLimitPruneInterval, rateLimitIdle)
		})
	}

	return g.Wait()
}
