package config

import (
	"testing"
	"time"

	"github.com/avoigt/timecard/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"TIMECARD_DB", "TIMECARD_SESSION_TTL_HOURS", "TIMECARD_WEEK_START", "TIMECARD_LOG"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, domain.DefaultSessionTTL, cfg.SessionTTL)
	assert.Equal(t, time.Sunday, cfg.WeekStart)
	assert.False(t, cfg.LogUseCases)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("TIMECARD_DB", "/tmp/timecard-test.db")
	t.Setenv("TIMECARD_SESSION_TTL_HOURS", "4")
	t.Setenv("TIMECARD_WEEK_START", "monday")
	t.Setenv("TIMECARD_LOG", "true")

	cfg := Load()
	assert.Equal(t, "/tmp/timecard-test.db", cfg.DBPath)
	assert.Equal(t, 4*time.Hour, cfg.SessionTTL)
	assert.Equal(t, time.Monday, cfg.WeekStart)
	assert.True(t, cfg.LogUseCases)
}

func TestLoad_IgnoresInvalidValues(t *testing.T) {
	t.Setenv("TIMECARD_SESSION_TTL_HOURS", "-3")
	t.Setenv("TIMECARD_WEEK_START", "wednesday")

	cfg := Load()
	assert.Equal(t, domain.DefaultSessionTTL, cfg.SessionTTL)
	assert.Equal(t, time.Sunday, cfg.WeekStart, "unsupported week start is ignored, not guessed")
}
