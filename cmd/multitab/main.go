// cmd/multitab/main.go
package main

import (
	"context"
	"io"
	stlog "log" // Use standard log for FATAL errors before logger is ready
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/bethropolis/multitab/internal/app"
	"github.com/bethropolis/multitab/internal/config"
	"github.com/bethropolis/multitab/internal/logger"
)

func main() {
	paths, err := config.ResolvePaths()
	if err != nil {
		stlog.Fatalf("Failed to locate configuration: %v", err)
	}

	// --- Configuration ---
	cfg, cfgErr := config.Load(paths.Config)

	// --- Logger Initialization ---
	// The terminal belongs to the UI, so logs go to a file unless "-" is configured.
	var output io.Writer = os.Stderr
	if logPath := cfg.LogFile(paths); logPath != "-" {
		if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
			stlog.Printf("Warning: cannot create log directory: %v", err)
		}
		logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			stlog.Printf("Warning: cannot open log file '%s', logging disabled: %v", logPath, err)
			output = io.Discard
		} else {
			defer logFile.Close()
			output = logFile
		}
	}
	logger.Init(cfg.Logger, output)

	logger.Infof("Starting %s %s...", config.AppName, config.Version)
	logger.Debugf("Config file: %s", paths.Config)
	if cfgErr != nil {
		logger.Warnf("Using default configuration: %v", cfgErr)
	}

	// --- Create and Run App ---
	editor, err := app.NewApp(app.Options{Config: cfg, Paths: paths})
	if err != nil {
		logger.Errorf("Error initializing application: %v", err)
		stlog.Fatalf("Error initializing application: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := editor.Run(ctx); err != nil {
		logger.Errorf("Application exited with error: %v", err)
		stop()
		os.Exit(1)
	}

	logger.Infof("%s finished.", config.AppName)
}
