// Package main is the entry point for the shatterbox window.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/shatterbox/internal/app"
	"github.com/Faultbox/shatterbox/internal/config"
	"github.com/Faultbox/shatterbox/internal/logger"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== shatterbox ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	a, err := app.New(cfg)
	if err != nil {
		logger.Error("failed to create app", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}

	if err := runApp(a); err != nil {
		logger.Error("app error", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}

	logger.Info("app closed normally")
}

type application interface {
	Run() error
	Close()
}

// runApp runs a and always closes it, so callers may exit right after.
func runApp(a application) error {
	defer a.Close()
	return a.Run()
}
