package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, k := range []string{"DB_URL", "SQLITE_PATH", "ADDR", "LOG_LEVEL", "LOG_FILE", "TREND_DAYS"} {
		t.Setenv(k, "")
	}

	cfg := loadConfig()
	assert.Equal(t, config{
		Addr:      "localhost:3000",
		LogLevel:  "info",
		TrendDays: defaultTrendDays,
	}, cfg)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("DB_URL", "postgres://localhost/healthify")
	t.Setenv("SQLITE_PATH", "data/healthify.db")
	t.Setenv("ADDR", ":8080")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FILE", "healthify")
	t.Setenv("TREND_DAYS", "30")

	cfg := loadConfig()
	assert.Equal(t, config{
		DBURL:      "postgres://localhost/healthify",
		SQLitePath: "data/healthify.db",
		Addr:       ":8080",
		LogLevel:   "debug",
		LogFile:    "healthify",
		TrendDays:  30,
	}, cfg)
}

func TestLoadConfig_InvalidTrendDays(t *testing.T) {
	for _, v := range []string{"abc", "0", "-3", "1000"} {
		t.Run(v, func(t *testing.T) {
			t.Setenv("TREND_DAYS", v)
			assert.Equal(t, defaultTrendDays, loadConfig().TrendDays)
		})
	}
}
