// Package server wires the cellar server: storage backend, label storage,
// the public gRPC endpoint and the admin HTTP endpoint.
package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrijs2005/cellarkeeper/internal/logging"
	"github.com/dmitrijs2005/cellarkeeper/internal/metrics"
	"github.com/dmitrijs2005/cellarkeeper/internal/server/config"
	"github.com/dmitrijs2005/cellarkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/cellarkeeper/internal/server/services"
	"github.com/dmitrijs2005/cellarkeeper/internal/store"
	"github.com/dmitrijs2005/cellarkeeper/internal/store/memory"

	gs "github.com/dmitrijs2005/cellarkeeper/internal/server/grpc"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	config   *config.Config
	logger   logging.Logger
	store    store.Store
	db       *sql.DB
	registry *prometheus.Registry
	grpc     *gs.GRPCServer
}

// NewApp opens the configured store. An empty DatabaseDSN selects the
// in-memory store, which loses everything on restart.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	app := &App{config: c, logger: logger.With("module", "app"), registry: prometheus.NewRegistry()}
	app.registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	if c.DatabaseDSN == "" {
		app.logger.Warn(ctx, "no database configured, using the in-memory store")
		app.store = memory.New()
	} else {
		repos := repomanager.NewPostgresRepositoryManager()
		db, err := repomanager.OpenPostgres(ctx, c.DatabaseDSN, repos)
		if err != nil {
			return nil, fmt.Errorf("db init error: %w", err)
		}
		app.db = db
		app.store = repomanager.NewStore(db, repos)
	}

	labels := services.NewLabelService(app.store, c)
	app.grpc = gs.NewGRPCServer(c.EndpointAddrGRPC, logger, app.store, labels, metrics.NewRPC(app.registry))
	return app, nil
}

func (app *App) runAdmin(ctx context.Context) error {
	srv := &http.Server{
		Addr:              app.config.AdminAddr,
		Handler:           newAdminRouter(app.registry, app.store),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			app.logger.Error(ctx, "admin server shutdown", "error", err)
		}
	}()

	app.logger.Info(ctx, "Starting admin server", "address", app.config.AdminAddr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Run serves until ctx is cancelled or one of the servers fails, which
// stops the other.
func (app *App) Run(ctx context.Context) error {
	defer app.close()

	app.logger.Info(ctx, "Starting app...")

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return app.grpc.Run(ctx) })
	if app.config.AdminAddr != "" {
		g.Go(func() error { return app.runAdmin(ctx) })
	}

	err := g.Wait()
	app.logger.Info(context.Background(), "App stopped")
	return err
}

func (app *App) close() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error(context.Background(), "db close", "error", err)
		}
	}
}
