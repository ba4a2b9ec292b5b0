package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/kdudkov/gocoord/internal/config"
	"github.com/kdudkov/gocoord/pkg/log"
)

var (
	gitRevision = "unknown"
	gitBranch   = "unknown"
)

const shutdownTimeout = time.Second * 5

type App struct {
	logger *slog.Logger
	cfg    *config.AppConfig
	snap   atomic.Pointer[config.Snapshot]
}

func NewApp(cfg *config.AppConfig) (*App, error) {
	s, err := cfg.Snapshot()
	if err != nil {
		return nil, err
	}

	app := &App{
		logger: slog.Default().With(slog.String("logger", "app")),
		cfg:    cfg,
	}

	app.snap.Store(s)

	return app, nil
}

// Config returns the config in effect. Handlers take it once per request.
func (app *App) Config() *config.Snapshot {
	return app.snap.Load()
}

func (app *App) reload(s *config.Snapshot) {
	old := app.snap.Swap(s)

	if old.APIAddr != s.APIAddr || old.Metrics != s.Metrics || old.LogErrorsOnly != s.LogErrorsOnly {
		app.logger.Warn("api_addr, metrics and log_errors_only are applied on restart")
	}

	app.logger.Info("config reloaded",
		slog.Int("target", s.Target),
		slog.Int("decimals", s.Decimals),
		slog.String("system", s.System.ID()))
}

func (app *App) Run(ctx context.Context) error {
	app.cfg.Watch(app.reload)

	s := app.Config()
	srv := NewHttp(app, s)

	errCh := make(chan error, 1)

	go func() {
		app.logger.Info("listening api at " + srv.Address())
		errCh <- srv.Listen()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	app.logger.Info("exiting...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}

func main() {
	fmt.Printf("version %s %s\n", gitRevision, gitBranch)

	conf := flag.String("config", "gocoord.yml", "name of config file")
	debug := flag.Bool("debug", false, "debug")
	flag.Parse()

	log.Setup(*debug)

	cfg := config.NewAppConfig()
	if !cfg.Load(*conf) {
		slog.Info("no config file loaded, using defaults and environment")
	}

	app, err := NewApp(cfg)
	if err != nil {
		slog.Error("bad config", slog.Any("error", err))
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := app.Run(ctx); err != nil {
		slog.Error("server error", slog.Any("error", err))
		os.Exit(1)
	}
}
