package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"homeworkbot/internal/app"
	"homeworkbot/internal/config"
	"homeworkbot/internal/logger"

	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(2)
	}

	// Initialize logger
	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(2)
	}
	defer func() { _ = log.Sync() }()

	application, err := app.New(cfg, log)
	var missingErr *app.MissingTokensError
	if errors.As(err, &missingErr) {
		log.Fatal("Программа принудительно остановлена: отсутствуют токены",
			zap.Strings("tokens", missingErr.Tokens),
		)
	}
	if err != nil {
		log.Fatal("Failed to initialize application", zap.Error(err))
	}

	if err := application.Run(context.Background()); err != nil {
		log.Fatal("Application stopped with error", zap.Error(err))
	}
}
