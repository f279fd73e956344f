package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Settings are process-level options read from the environment.
type Settings struct {
	Port            string
	LogLevel        logrus.Level
	HistoryDB       string
	ShutdownTimeout time.Duration
	Concurrency     int
}

// LoadSettings reads settings from the environment after loading any of the
// given .env files that exist (".env" when none are named). Variables already
// set in the environment win over the files.
func LoadSettings(files ...string) (*Settings, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	s := &Settings{
		Port:            getenv("PORT", "8080"),
		HistoryDB:       getenv("HISTORY_DB", "benefits-history.db"),
		ShutdownTimeout: 10 * time.Second,
	}

	level, err := logrus.ParseLevel(getenv("LOG_LEVEL", "info"))
	if err != nil {
		return nil, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	s.LogLevel = level

	if v := os.Getenv("SHUTDOWN_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("SHUTDOWN_TIMEOUT: %w", err)
		}
		s.ShutdownTimeout = d
	}
	if v := os.Getenv("SCENARIO_CONCURRENCY"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("SCENARIO_CONCURRENCY must be a non-negative integer, got %q", v)
		}
		s.Concurrency = n
	}
	return s, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
