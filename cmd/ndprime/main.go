package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/randomtoy/ndprime/internal/adapters/cli"
	"github.com/randomtoy/ndprime/internal/app"
	"github.com/randomtoy/ndprime/internal/config"
)

func main() {
	level, err := config.ParseLogLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		level = slog.LevelWarn
	}

	// stdout carries only the result.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	svc := app.NewPrimeService(nil, nil, logger)
	os.Exit(cli.Run(context.Background(), os.Stdin, os.Stdout, svc, logger))
}
