package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/msomdec/job-portal/internal/config"
	"github.com/msomdec/job-portal/internal/domain"
	"github.com/msomdec/job-portal/internal/handler"
	"github.com/msomdec/job-portal/internal/repository/postgres"
	"github.com/msomdec/job-portal/internal/repository/sqlite"
	"github.com/msomdec/job-portal/internal/service"
)

func main() {
	// Graceful shutdown on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := run(ctx)
	stop()
	if err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

// run starts the server and blocks until ctx is cancelled or the listener
// fails. Any error that prevents a clean start or shutdown is returned.
func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logOpts := &slog.HandlerOptions{Level: cfg.LogLevel}
	logger := slog.New(slog.NewMultiHandler(
		slog.NewTextHandler(os.Stdout, logOpts),
		slog.NewJSONHandler(os.Stderr, logOpts),
	))
	slog.SetDefault(logger)

	db, err := openDatabase(ctx, cfg)
	if err != nil {
		return fmt.Errorf("open %s database: %w", cfg.DatabaseDriver, err)
	}
	defer db.Close()

	if err := db.Migrate(ctx); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	slog.Info("database migrations applied", "driver", cfg.DatabaseDriver)

	if cfg.BcryptCost > 0 {
		slog.Warn("password hashing enabled; stored passwords will be bcrypt hashes", "cost", cfg.BcryptCost)
	}
	usersManager := service.NewUsersManager(db.Users(), cfg.BcryptCost)

	limiter := service.NewRateLimiter(cfg.RegisterRate, float64(cfg.RegisterBurst))
	defer limiter.Stop()

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, db, usersManager, limiter)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler.RequestLogger(handler.SecurityHeaders(mux)),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20, // 1MB
	}

	serveErr := make(chan error, 1)
	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case err := <-serveErr:
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}
	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	slog.Info("server stopped")
	return nil
}

func openDatabase(ctx context.Context, cfg config.Config) (domain.Database, error) {
	switch cfg.DatabaseDriver {
	case config.DriverSQLite:
		return sqlite.New(cfg.DatabasePath)
	case config.DriverPostgres:
		return postgres.Connect(ctx, cfg.DatabaseURL)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.DatabaseDriver)
	}
}
