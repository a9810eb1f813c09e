package main

import (
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// initLogger wires zerolog to the console and a run log file. The returned
// file stays open for the life of the process.
func initLogger() (*os.File, error) {
	if err := os.MkdirAll("logs", 0o755); err != nil {
		return nil, err
	}

	logFile, err := os.OpenFile(filepath.Join("logs", "azurknowledge.log"),
		os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}

	console := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}
	log.Logger = zerolog.New(zerolog.MultiLevelWriter(console, logFile)).
		With().Timestamp().Logger()
	return logFile, nil
}
