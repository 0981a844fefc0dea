// Package server initializes and runs the user service. It opens the
// database, applies migrations, wires the HTTP API and handles graceful
// shutdown on OS signals.
package server

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

	"github.com/cghdev/userdesk/internal/logging"
	"github.com/cghdev/userdesk/internal/server/config"
	"github.com/cghdev/userdesk/internal/server/httpapi"
	"github.com/cghdev/userdesk/internal/server/storage"
	"github.com/cghdev/userdesk/internal/server/users"
	"github.com/jackc/pgx/v5/pgxpool"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	config      *config.Config
	logger      logging.Logger
	pool        *pgxpool.Pool
	userService *users.Service
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	if err := storage.RunMigrations(ctx, c.DatabaseDSN); err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	pool, err := storage.Open(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	repo := users.NewPostgresRepository(pool)
	us := users.NewService(repo, logger)

	return &App{config: c, logger: logger, pool: pool, userService: us}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.initSignalHandler(cancelFunc)

	router := httpapi.NewRouter(app.userService, app.logger)
	srv := &http.Server{Addr: app.config.Addr, Handler: router}

	errCh := make(chan error, 1)
	go func() {
		app.logger.Info(ctx, "starting server", "addr", app.config.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-ctx.Done():
		app.logger.Info(ctx, "shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown error: %w", err)
		}
	}

	app.pool.Close()
	return nil
}
