// Package server initializes and runs the records API server. It selects
// the storage backend, starts the HTTP endpoint and handles graceful
// shutdown on OS signals.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"policerecords/internal/config"
	"policerecords/internal/files"
	"policerecords/internal/httpapi"
	"policerecords/internal/logging"
	"policerecords/internal/storage"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	config *config.Config
	logger logging.Logger
}

func NewApp(c *config.Config) *App {
	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	return &App{config: c, logger: logger}
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "starting app", "addr", app.config.HTTPAddr)

	app.initSignalHandler(cancelFunc)

	store, closeStore := storage.Open(ctx, app.config, app.logger)

	api := httpapi.New(store, files.NewPresigner(app.config), app.logger)

	srv := &http.Server{
		Addr:    app.config.HTTPAddr,
		Handler: api.NewRouter(),
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			app.logger.Error(ctx, "http server failed", "error", err)
			cancelFunc()
		}
	}()

	<-ctx.Done()

	app.logger.Info(ctx, "shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		app.logger.Error(shutdownCtx, "http shutdown failed", "error", err)
	}
	if err := closeStore(shutdownCtx); err != nil {
		app.logger.Error(shutdownCtx, "storage close failed", "error", err)
	}
}
