package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/net/netutil"

	"domainscout/internal/app"
	"domainscout/internal/config"
	"domainscout/internal/database"
	"domainscout/internal/handler"
	"domainscout/internal/metrics"
	custommiddleware "domainscout/internal/middleware"
	"domainscout/internal/prefs"
	"domainscout/internal/validation"
)

const streamRoute = "/api/v1/check/stream"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	if err := run(ctx, logger); err != nil {
		logger.Error("application failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	var pool *pgxpool.Pool
	var writer metrics.CopyWriter
	if cfg.Metrics.Enabled {
		pool, err = database.NewPool(ctx, &cfg.Database)
		if err != nil {
			return fmt.Errorf("failed to connect to metrics database: %w", err)
		}
		defer pool.Close()

		if err := database.EnsureSchema(ctx, pool); err != nil {
			return err
		}
		writer = pool
	}

	recorder := metrics.NewRecorder(writer, &cfg.Metrics, logger)
	recorder.Start(ctx)
	defer recorder.Close()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	collector := metrics.NewCollector(reg)

	pipeline, err := app.NewPipeline(cfg, logger, app.Observers{
		Retry:    collector,
		Outcomes: collector,
		Jobs:     collector,
		Business: recorder,
	})
	if err != nil {
		return fmt.Errorf("failed to build pipeline: %w", err)
	}
	defer pipeline.Close()

	prefsStore, err := prefs.New(cfg.Prefs.MaxSizePow2, cfg.Prefs.RecentCap)
	if err != nil {
		return fmt.Errorf("failed to create prefs store: %w", err)
	}
	defer prefsStore.Close()

	samplerOpts := []metrics.SamplerOption{
		metrics.WithPrefs(prefsStore),
		metrics.WithJobs(pipeline.Service),
	}
	if pool != nil {
		samplerOpts = append(samplerOpts, metrics.WithPool(pool))
	}
	sampler := metrics.NewSampler([]metrics.InfraRecorder{recorder, collector}, samplerOpts...)
	go sampler.Run(ctx, metrics.DefaultSampleInterval)

	validator := validation.NewRequestValidator(cfg.Validation.MaxTLDs, cfg.Validation.MaxKeywordsLength)
	h := handler.New(pipeline.Service, validator, prefsStore, logger, recorder, cfg.Pipeline.StreamBuffer)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(custommiddleware.RequestID())
	e.Use(custommiddleware.RequestLogger(logger))
	e.Use(middleware.BodyLimit(cfg.Validation.MaxRequestBodySize))
	e.Use(custommiddleware.Metrics(recorder, collector))
	e.Use(custommiddleware.RateLimit(&cfg.RateLimit, logger, streamRoute))

	h.Register(e)

	if cfg.Metrics.PrometheusEnabled {
		e.GET("/metrics", echo.WrapHandler(collector.Handler()))
	}

	if cfg.Pprof.Enabled {
		pprofGroup := e.Group("/debug/pprof", custommiddleware.PprofAuth(cfg.Pprof.Secret))
		custommiddleware.RegisterPprof(pprofGroup)
		logger.Info("pprof endpoints enabled", slog.String("path", "/debug/pprof/*"))
	}

	httpAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("starting HTTP server",
		slog.String("addr", httpAddr),
		slog.String("provider", pipeline.Provider.Name()),
		slog.Int("max_connections", cfg.Server.MaxConnections))

	httpListener, err := net.Listen("tcp", httpAddr)
	if err != nil {
		return fmt.Errorf("failed to create HTTP listener: %w", err)
	}
	if cfg.Server.MaxConnections > 0 {
		httpListener = netutil.LimitListener(httpListener, cfg.Server.MaxConnections)
	}

	return serve(ctx, newHTTPServer(ctx, e), httpListener, logger)
}

// newHTTPServer derives every request context from ctx, so shutdown cancels
// running check streams and they end with their done record. There is no
// write timeout: a check stream lasts as long as its job.
func newHTTPServer(ctx context.Context, h http.Handler) *http.Server {
	return &http.Server{
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 14, // 16KB
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}
}

// serve runs srv until ctx is done, then waits for open requests to finish.
func serve(ctx context.Context, srv *http.Server, ln net.Listener, logger *slog.Logger) error {
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", slog.String("error", err.Error()))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown failed: %w", err)
	}

	return nil
}
