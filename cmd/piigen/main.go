package main

import (
	"fmt"
	"log/slog"
	"os"

	"piigen/internal/app"
	"piigen/internal/config"
	"piigen/internal/generator"
	"piigen/internal/infrastructure"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Warn("Failed to load config, using defaults", "error", err)
		cfg = config.Default()
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	logger.Info("Starting piigen",
		slog.String("version", config.AppVersion),
		slog.String("base_dir", cfg.Output.BaseDir))

	gen := generator.New(generator.WithProgress(os.Stdout))
	application := app.New(cfg, os.Stdin, os.Stdout, gen)

	if err := application.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		logger.Error("Run failed", slog.String("error", err.Error()))
		infrastructure.CloseLogFile()
		os.Exit(1)
	}
}
