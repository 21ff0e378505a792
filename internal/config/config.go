// Package config loads runtime settings from environment variables,
// falling back to defaults for anything unset.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/avoigt/timecard/internal/domain"
)

// Config holds all runtime settings.
type Config struct {
	// DBPath is the SQLite file backing the key-value store. Empty
	// means the default under the user's home directory, resolved by
	// the caller.
	DBPath string

	// SessionTTL is the lifetime of a login session.
	SessionTTL time.Duration

	// WeekStart is the explicit week boundary for the weekly window.
	WeekStart time.Weekday

	// LogUseCases enables use-case telemetry on stderr.
	LogUseCases bool
}

// Default returns the stock configuration: eight-hour sessions and
// Sunday-start weeks.
func Default() Config {
	return Config{
		SessionTTL: domain.DefaultSessionTTL,
		WeekStart:  time.Sunday,
	}
}

// Load reads configuration from the environment on top of Default.
func Load() Config {
	cfg := Default()

	if v := os.Getenv("TIMECARD_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("TIMECARD_SESSION_TTL_HOURS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.SessionTTL = time.Duration(n) * time.Hour
		}
	}
	if v := os.Getenv("TIMECARD_WEEK_START"); v != "" {
		switch strings.ToLower(v) {
		case "sunday":
			cfg.WeekStart = time.Sunday
		case "monday":
			cfg.WeekStart = time.Monday
		}
	}
	if v := os.Getenv("TIMECARD_LOG"); v != "" {
		cfg.LogUseCases, _ = strconv.ParseBool(v)
	}

	return cfg
}
