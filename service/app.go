package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"faredash/app/controllers"
	"faredash/app/generator"
	"faredash/app/logging"
	"faredash/app/metrics"
	"faredash/app/repositories"
	"faredash/app/routes"
	"faredash/app/sentiment"
	"faredash/app/services"
	"faredash/app/views"
	"faredash/config"

	"github.com/dgraph-io/badger/v4"
)

// App holds the wired dashboard.
type App struct {
	Config  *config.Config
	DB      *badger.DB
	Service *services.DashboardService
	Metrics *metrics.Metrics
	Router  http.Handler
	logger  *slog.Logger
}

// NewApp opens the dataset cache and wires the service, views and routes.
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Get()
	}

	start, err := cfg.Dataset.Start()
	if err != nil {
		return nil, fmt.Errorf("invalid dataset start date: %w", err)
	}
	gen, err := generator.New(generator.Options{
		StartDate: start,
		Replicas:  cfg.Dataset.Replicas,
		Seed:      cfg.Dataset.Seed,
	})
	if err != nil {
		return nil, err
	}

	db, err := repositories.OpenStore(repositories.StoreOptions{
		Path:       cfg.Store.Path,
		SyncWrites: cfg.Store.SyncWrites,
		Logger:     logger,
	})
	if err != nil {
		return nil, err
	}

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New(cfg.Metrics.Namespace)
	}

	classifier := sentiment.NewClassifier(nil).WithLogger(logger)
	svc := services.NewDashboardService(repositories.NewBadgerDatasetRepository(db), gen, classifier).
		WithMetrics(m).
		WithLogger(logger)

	presenter, err := views.NewHTMLPresenter()
	if err != nil {
		db.Close()
		return nil, err
	}

	return &App{
		Config:  cfg,
		DB:      db,
		Service: svc,
		Metrics: m,
		Router:  routes.SetupRoutes(controllers.NewDashboardController(svc, presenter), m),
		logger:  logger,
	}, nil
}

// Close releases the dataset cache.
func (a *App) Close() error {
	return a.DB.Close()
}

// Server returns an HTTP server for the app's router.
func (a *App) Server() *Server {
	return NewServer(a.Router, ServerOptions{
		Addr:            a.Config.HTTP.Addr,
		ReadTimeout:     a.Config.HTTP.ReadTimeout,
		WriteTimeout:    a.Config.HTTP.WriteTimeout,
		ShutdownTimeout: a.Config.HTTP.ShutdownTimeout,
		Logger:          a.logger,
	})
}

// RunAppServer wires the dashboard from cfg and serves it until ctx is done.
func RunAppServer(ctx context.Context, cfg *config.Config) error {
	app, err := NewApp(cfg, nil)
	if err != nil {
		return err
	}
	defer app.Close()

	// Warm the cache so the first visitor does not pay for generation.
	if _, err := app.Service.Dataset(ctx); err != nil {
		return err
	}
	return app.Server().Run(ctx)
}
