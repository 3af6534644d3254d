package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tphakala/vocalization-go/cmd"
	"github.com/tphakala/vocalization-go/internal/conf"
	"github.com/tphakala/vocalization-go/internal/logger"
)

func main() {
	settings, err := conf.Load(os.Getenv("VOCALIZATION_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading configuration: %v\n", err)
		os.Exit(1)
	}

	closeLogger := setupLogging(settings)
	defer closeLogger()

	rootCmd := cmd.RootCommand(settings)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// setupLogging installs the global logger: human-readable console output,
// plus a JSON log file in the data directory when enabled. Returns a close
// function for the log file.
func setupLogging(settings *conf.Settings) func() {
	level := logger.LogLevel(settings.Logging.Level)
	if settings.Debug {
		level = logger.LogLevelDebug
	}

	console := logger.NewSlogLogger(os.Stderr, level, false)

	if !settings.Logging.File {
		logger.SetGlobal(console)
		return func() {}
	}

	logPath := filepath.Join(settings.Output.DataDir, "service.log")
	if err := os.MkdirAll(settings.Output.DataDir, 0o755); err != nil {
		console.Warn("Cannot create data directory, file logging disabled",
			logger.String("data_dir", settings.Output.DataDir),
			logger.Error(err))
		logger.SetGlobal(console)
		return func() {}
	}

	fileLogger, closeFile, err := logger.NewFileLogger(logPath, level)
	if err != nil {
		console.Warn("Cannot open log file, file logging disabled",
			logger.String("log_path", logPath),
			logger.Error(err))
		logger.SetGlobal(console)
		return func() {}
	}

	logger.SetGlobal(logger.NewMultiLogger(console, fileLogger))
	return func() { _ = closeFile() }
}
