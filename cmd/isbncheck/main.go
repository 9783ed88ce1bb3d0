package main

import (
	"errors"
	"os"

	"isbnapi/internal/config"
	"isbnapi/internal/platform/logger"
)

func main() {
	log := logger.New(os.Stderr, logger.Config{Level: "warn", Service: "isbncheck"})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	root := newRootCommand(cfg.Scheme)
	if err := root.Execute(); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		log.Error().Err(err).Msg("command failed")
		os.Exit(2)
	}
}
