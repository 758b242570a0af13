// cmd/loom/main.go
package main

import (
	"io"
	stlog "log" // standard log for errors before the logger is ready
	"os"

	"github.com/bethropolis/loom/internal/app"
	"github.com/bethropolis/loom/internal/config"
	"github.com/bethropolis/loom/internal/logger"
)

func main() {
	// --- Flag & Config Loading ---
	flags := &config.Flags{}
	filePaths := flags.ParseFlags()

	configPath := ""
	if flags.ConfigFilePath != nil {
		configPath = *flags.ConfigFilePath
	}
	cfg, err := config.LoadConfig(configPath, flags)
	if err != nil {
		stlog.Fatalf("Failed to load configuration: %v", err)
	}

	// --- Logger Initialization ---
	var logOutput io.Writer
	var logFile *os.File
	switch cfg.Logger.LogFilePath {
	case "-":
		logOutput = os.Stderr
	case "":
		logFile, err = os.OpenFile(config.DefaultLogFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	default:
		logFile, err = os.OpenFile(cfg.Logger.LogFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	}
	if err != nil {
		stlog.Fatalf("Failed to open log file: %v", err)
	}
	if logFile != nil {
		defer logFile.Close()
		logOutput = logFile
	}

	logger.Init(logger.ParseLevel(cfg.Logger.LogLevel), logOutput)
	logger.Infof("Starting loom...")
	logger.Debugf("Shortcut precedence: %s", cfg.Input.Precedence)

	// --- Create and Run App ---
	loomApp, err := app.NewApp(cfg, filePaths)
	if err != nil {
		logger.Errorf("Error initializing application: %v", err)
		os.Exit(1)
	}

	if err := loomApp.Run(); err != nil {
		logger.Errorf("Application exited with error: %v", err)
		os.Exit(1)
	}

	logger.Infof("loom finished.")
}
