package server

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"TokenScope/internal/service/ratelimit"
	"TokenScope/pkg/config"
	xhttp "TokenScope/pkg/http"
	applogger "TokenScope/pkg/logger"
)

// App encapsulates the serve-mode lifecycle: HTTP server plus the resources
// that must be released on shutdown.
type App struct {
	cfg         *config.Config
	log         *applogger.Logger
	httpHandler xhttp.Handler
	httpServer  *xhttp.Server
	limiter     *ratelimit.Limiter
	closers     []io.Closer
}

// New creates a new App. closers are closed in order after the HTTP server stops.
func New(cfg *config.Config, l *applogger.Logger, handler xhttp.Handler, closers ...io.Closer) *App {
	if l == nil {
		l = applogger.Nop()
	}
	app := &App{
		cfg:         cfg,
		log:         l,
		httpHandler: handler,
		closers:     closers,
	}

	metricsPath := ""
	if cfg.Metrics.Enabled {
		metricsPath = cfg.Metrics.Path
	}
	opts := []xhttp.ServerOption{
		xhttp.WithPort(cfg.Server.Port),
		xhttp.WithTimeouts(cfg.Server.ReadTimeout, cfg.Server.WriteTimeout, cfg.Server.ShutdownTimeout),
		xhttp.WithMetricsPath(metricsPath),
		xhttp.WithLogger(l),
	}
	if rl := cfg.Server.RateLimit; rl.Enabled {
		app.limiter = ratelimit.New(rl.Burst, rl.PerSecond)
		opts = append(opts, xhttp.WithRateLimiter(app.limiter))
	}
	app.httpServer = xhttp.NewServer(handler, opts...)
	return app
}

// Server returns the HTTP server, mainly for tests.
func (a *App) Server() *xhttp.Server {
	return a.httpServer
}

// Run starts the HTTP server and blocks until ctx is done, SIGINT/SIGTERM
// arrives, or the listener fails.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := a.httpServer.Start()
	a.log.Info("tokenscope serving",
		applogger.String("env", a.cfg.Environment),
		applogger.Int("port", a.cfg.Server.Port),
		applogger.String("watchlist", a.cfg.Watchlist.Backend),
		applogger.Bool("kafka", a.cfg.Kafka.Enabled),
	)

	var prune <-chan time.Time
	if a.limiter != nil {
		t := time.NewTicker(time.Minute)
		defer t.Stop()
		prune = t.C
	}

	var runErr error
loop:
	for {
		select {
		case <-ctx.Done():
			a.log.Info("shutdown signal received")
			break loop
		case err, ok := <-errCh:
			if ok && err != nil {
				runErr = err
			}
			break loop
		case <-prune:
			a.limiter.Prune(10 * time.Minute)
		}
	}

	if err := a.shutdown(context.Background()); err != nil && runErr == nil {
		runErr = err
	}
	return runErr
}

// shutdown gracefully stops all services.
func (a *App) shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, a.cfg.Server.ShutdownTimeout)
	defer cancel()

	var firstErr error
	if err := a.httpServer.Stop(shutdownCtx); err != nil {
		a.log.Error("http shutdown error", applogger.Error(err))
		firstErr = err
	}

	for _, c := range a.closers {
		if c == nil {
			continue
		}
		if err := c.Close(); err != nil {
			a.log.Warn("close error", applogger.Error(err))
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	a.log.Info("shutdown complete")
	return firstErr
}
