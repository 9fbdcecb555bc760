package main

import (
	"fmt"
	"log/slog"
	"os"

	"hr-directory/internal/app"
	"hr-directory/internal/config"
	"hr-directory/internal/server"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("config", "error", err)
		os.Exit(1)
	}
	if err := cfg.RequireSessionSecret(); err != nil {
		logger.Error("config", "error", err)
		os.Exit(1)
	}

	a, err := app.Bootstrap(cfg, logger)
	if err != nil {
		logger.Error("bootstrap", "error", err)
		os.Exit(1)
	}

	r := server.NewRouter(cfg, a, logger)

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	logger.Info("starting server", "addr", addr)
	if err := r.Run(addr); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}
