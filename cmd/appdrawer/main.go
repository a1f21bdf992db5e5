package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/desktools/appdrawer/internal/config"
	"github.com/desktools/appdrawer/internal/launcher"
	"github.com/desktools/appdrawer/internal/platform"
)

const version = "1.1.0"

// Every path ends with status 0, including config and window failures.
func main() {
	configPath := flag.String("config", config.DefaultPath, "Path to configuration file")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	logger, err := createLogger(*logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "create logger: %v\n", err)
		return
	}
	defer logger.Sync()

	logger.Info("appdrawer launching", zap.String("version", version))

	session, err := config.Load(*configPath)
	switch {
	case errors.Is(err, config.ErrNoApps):
		logger.Info("No apps?", zap.String("config", *configPath))
		return
	case err != nil:
		logger.Error("Failed to read config",
			zap.String("config", *configPath),
			zap.Error(err))
		return
	}

	logger.Info("Config loaded",
		zap.String("session", session.ID),
		zap.Int("apps", session.Count()),
		zap.Uint32("icon_size", session.IconSize))

	l := launcher.New(platform.New(logger), logger)
	if err := l.Run(session); err != nil {
		logger.Error("Launcher stopped", zap.String("session", session.ID), zap.Error(err))
	}
}
