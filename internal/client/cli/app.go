package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/cghdev/userdesk/internal/client/api"
	"github.com/cghdev/userdesk/internal/client/config"
	"github.com/cghdev/userdesk/internal/client/session"
	"github.com/cghdev/userdesk/internal/logging"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

// App wires the config, the API client and the session together and drives
// the interactive loop.
type App struct {
	config  *config.Config
	api     api.Client
	session *session.Session
	logger  logging.Logger
	reader  *bufio.Reader
	out     io.Writer

	modeMu sync.Mutex
	mode   Mode
}

func NewApp(cfg *config.Config) *App {
	// Structured logs go to stderr so they do not interleave with the REPL.
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stderr, nil)))

	apiClient := api.New(cfg.BaseURL, cfg.ResourcePrefix, cfg.RequestTimeout)

	return &App{
		config:  cfg,
		api:     apiClient,
		session: session.New(apiClient, logger),
		logger:  logger,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}
}

func (a *App) setMode(mode Mode) {
	a.modeMu.Lock()
	defer a.modeMu.Unlock()
	if a.mode != mode {
		a.mode = mode
		a.logger.Info(context.Background(), "connection state changed", "mode", mode)
	}
}

func (a *App) getMode() Mode {
	a.modeMu.Lock()
	defer a.modeMu.Unlock()
	return a.mode
}

func (a *App) getStatus() string {
	s := string(a.getMode())
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// StartOnlineStatusWatcher periodically probes the server and flips the
// online/offline indicator shown in the prompt.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			probeCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			err := a.api.Ping(probeCtx)
			cancel()

			if err != nil {
				a.setMode(ModeOffline)
			} else {
				a.setMode(ModeOnline)
			}

		case <-ctx.Done():
			return
		}
	}
}

// Run loads the initial list and enters the REPL.
func (a *App) Run(ctx context.Context) {
	printlnFn("User management client (type 'help' for commands)")

	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	_ = a.ListUsers(ctx)

	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
}
