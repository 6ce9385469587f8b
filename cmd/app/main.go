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

	_ "github.com/osse101/BrandishItemSearch/docs"
	"github.com/osse101/BrandishItemSearch/internal/bootstrap"
	"github.com/osse101/BrandishItemSearch/internal/config"
	"github.com/osse101/BrandishItemSearch/internal/handler"
	"github.com/osse101/BrandishItemSearch/internal/server"
)

// @title Brandish Item Search API
// @version 1.0
// @description Search, filter and sort the Brandish item catalog, plus the news and diff feeds.
// @BasePath /
func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run owns every deferred cleanup so they fire before main exits
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("configuration failed: %w", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return fmt.Errorf("logger setup failed: %w", err)
	}
	defer logFile.Close()

	if handler.Version == "dev" && cfg.Version != "" {
		handler.Version = cfg.Version
	}
	handler.InitValidator()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	catalog := bootstrap.NewSession(cfg)
	bootstrap.LoadCatalog(ctx, catalog)

	srv := server.NewServer(server.Options{
		Port:              cfg.Port,
		TrustedProxies:    cfg.TrustedProxies,
		SuggestionLimit:   cfg.SuggestionLimit,
		HighTierDropLevel: cfg.HighTierDropLevel,
	}, catalog)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	var serveErr error
	select {
	case <-ctx.Done():
	case serveErr = <-errCh:
		if serveErr != nil {
			slog.Error("Server failed", "error", serveErr)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), bootstrap.ShutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, srv, catalog)

	if serveErr != nil {
		return fmt.Errorf("server failed: %w", serveErr)
	}
	return nil
}
