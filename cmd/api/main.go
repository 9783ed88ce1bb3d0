package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"isbnapi/internal/config"
	"isbnapi/internal/platform/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log := logger.New(os.Stderr, logger.Config{Level: "info", Service: "isbnapi"})
		log.Fatal().Err(err).Msg("cannot load config")
	}

	log := logger.New(os.Stdout, logger.Config{
		Level:   cfg.LogLevel,
		Pretty:  cfg.LogPretty,
		Service: "isbnapi",
	})
	logger.RedirectStdlog(log)

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      newRouter(cfg, log),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info().
			Str("addr", cfg.Addr).
			Int("country_width", cfg.Scheme.CountryWidth).
			Int("publisher_width", cfg.Scheme.PublisherWidth).
			Int("group_digit", cfg.Scheme.GroupDigit).
			Msg("starting server")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Fatal().Err(err).Msg("server error")
		}
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
