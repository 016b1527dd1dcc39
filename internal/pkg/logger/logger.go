package logger

import (
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config represents logger configuration
type Config struct {
	Level       string // debug, info, warn, error, fatal
	Environment string // development, production, test
	LogFile     string // file path for logs; stdout belongs to the TUI
}

// Init initializes the global logger with the given configuration.
// All output goes to the log file: the terminal is owned by the UI,
// so writing to stdout would corrupt the rendered screens.
func Init(cfg Config) error {
	zerolog.TimeFieldFormat = time.RFC3339

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.LogFile == "" {
		// No file configured: discard rather than fight the TUI for stdout.
		log.Logger = zerolog.Nop()
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
		return err
	}
	file, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}

	if cfg.Environment == "development" || cfg.Environment == "dev" {
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        file,
			TimeFormat: "15:04:05",
			NoColor:    true,
		}).With().Caller().Logger()
	} else {
		log.Logger = zerolog.New(file).
			With().
			Timestamp().
			Logger()
	}

	return nil
}
