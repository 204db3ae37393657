package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"transaction-seeder/internal/config"
	"transaction-seeder/internal/database"
	"transaction-seeder/internal/export"
	"transaction-seeder/internal/handlers"
	"transaction-seeder/internal/middleware"
	"transaction-seeder/internal/repositories"
	"transaction-seeder/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// app bundles what every command needs for a generation run
type app struct {
	registry *prometheus.Registry
	writer   *export.CSVWriter
	logger   *slog.Logger
	metrics  services.MetricsRecorderInterface
}

func newApp(opts options, logger *slog.Logger) *app {
	registry := prometheus.NewRegistry()
	return &app{
		registry: registry,
		writer:   export.NewCSVWriter(export.Options{UseCRLF: opts.useCRLF}),
		logger:   logger,
		metrics:  services.NewPrometheusMetrics(registry),
	}
}

func (a *app) datasetService(opts ...services.DatasetOption) services.DatasetServiceInterface {
	return services.NewDatasetService(a.writer, services.NewGenerationLogger(a.logger), a.metrics, opts...)
}

// flushMetrics writes the registry to path when one is configured. Errors are
// only logged.
func (a *app) flushMetrics(path string) {
	if path == "" {
		return
	}
	if err := prometheus.WriteToTextfile(path, a.registry); err != nil {
		a.logger.Error("Failed to write metrics file", "path", path, "error", err)
	}
}

func runGenerate(ctx context.Context, opts options, logger *slog.Logger, stdout io.Writer) error {
	a := newApp(opts, logger)
	defer a.flushMetrics(opts.metricsFile)

	svc := a.datasetService()
	dataset, err := svc.Generate(ctx, opts.request())
	if err != nil {
		return err
	}
	if err := svc.WriteCSV(ctx, opts.output, dataset); err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Generated %s with %d rows.\n", opts.output, len(dataset.Transactions))
	return nil
}

func runSeed(ctx context.Context, cfg *config.Config, opts options, logger *slog.Logger, stdout io.Writer) error {
	a := newApp(opts, logger)
	defer a.flushMetrics(opts.metricsFile)

	db, err := database.Initialize(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer db.Close()

	svc := a.datasetService(
		services.WithRepository(repositories.NewTransactionRepository(db.DB)),
		services.WithPendingRepository(repositories.NewPendingTransactionRepository(db.DB)),
	)
	dataset, err := svc.Generate(ctx, opts.request())
	if err != nil {
		return err
	}

	if opts.pending {
		batchID, err := svc.Stage(ctx, dataset)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Staged %d rows as pending batch %s.\n", len(dataset.Transactions), batchID)
		return nil
	}

	batchID, err := svc.Persist(ctx, dataset, opts.replace)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Seeded %d rows as batch %s.\n", len(dataset.Transactions), batchID)
	return nil
}

func runServe(ctx context.Context, cfg *config.Config, opts options, logger *slog.Logger) error {
	a := newApp(opts, logger)
	defer a.flushMetrics(opts.metricsFile)

	a.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	db, err := database.Initialize(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer db.Close()

	repo := repositories.NewTransactionRepository(db.DB)
	svc := a.datasetService(services.WithRepository(repo))
	dataset, err := svc.Generate(ctx, opts.request())
	if err != nil {
		return err
	}
	if _, err := svc.Persist(ctx, dataset, opts.replace); err != nil {
		return err
	}

	e := newServer(ctx, cfg, logger, a, svc, repo, repositories.NewPendingTransactionRepository(db.DB), db)
	return serveUntilDone(ctx, cfg.Server, logger, e)
}

func newServer(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	a *app,
	svc services.DatasetServiceInterface,
	repo repositories.TransactionRepositoryInterface,
	pending repositories.PendingTransactionRepositoryInterface,
	db handlers.HealthChecker,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.NewHTTPErrorHandler(a.registry)

	limiter := middleware.NewRateLimiter(cfg.Server.RateLimitPerSecond, cfg.Server.RateLimitBurst)
	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery(logger))
	e.Use(middleware.SecurityHeaders())
	e.Use(limiter.Middleware())

	var dev *handlers.DevHandler
	if cfg.IsDevelopment() {
		dev = handlers.NewDevHandler(svc, repo)
	}

	handlers.RegisterRoutes(e,
		handlers.NewTransactionHandler(repo, services.NewTransactionSummarizer(), a.writer),
		handlers.NewPendingHandler(pending),
		handlers.NewHealthCheckHandler(db),
		promhttp.HandlerFor(a.registry, promhttp.HandlerOpts{Registry: a.registry}),
		dev,
	)

	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	go limiter.Run(ctx, time.Minute)
	return e
}

// serveUntilDone runs e until ctx is cancelled, then shuts it down within the
// configured timeout
func serveUntilDone(ctx context.Context, cfg config.ServerConfig, logger *slog.Logger, e *echo.Echo) error {
	addr := net.JoinHostPort(cfg.Host, cfg.Port)
	errCh := make(chan error, 1)

	go func() {
		logger.Info("Starting API server", "addr", addr, "environment", cfg.Environment)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	logger.Info("Server exited")
	return nil
}
