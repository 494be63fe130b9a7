package main

import (
	"os"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
)

// config is read from the environment (optionally seeded from .env).
type config struct {
	DBURL      string // Postgres; takes precedence over SQLitePath
	SQLitePath string // used when DBURL is empty; both empty means memory only
	Addr       string
	LogLevel   string
	LogFile    string // empty means stdout
	TrendDays  int
}

func loadConfig() config {
	cfg := config{
		DBURL:      os.Getenv("DB_URL"),
		SQLitePath: os.Getenv("SQLITE_PATH"),
		Addr:       envOr("ADDR", "localhost:3000"),
		LogLevel:   envOr("LOG_LEVEL", "info"),
		LogFile:    os.Getenv("LOG_FILE"),
		TrendDays:  defaultTrendDays,
	}
	if s := os.Getenv("TREND_DAYS"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 || n > maxTrendDays {
			log.Warnf("[loadConfig] ignoring invalid TREND_DAYS %q", s)
		} else {
			cfg.TrendDays = n
		}
	}
	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// loggingSetup sets the logrus level and output. Unknown levels fall back to
// info; a log file name gets a .log suffix if it lacks one.
func loggingSetup(logFileName string, logLevel string) {
	level, err := log.ParseLevel(strings.ToLower(logLevel))
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if logFileName == "" {
		log.SetOutput(os.Stdout)
		return
	}

	if !strings.HasSuffix(logFileName, ".log") {
		logFileName += ".log"
	}

	logFile, err := os.OpenFile(logFileName, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0644)
	if err != nil {
		log.Panicf("failed to open log file %q: %s", logFileName, err)
	}

	log.SetOutput(logFile)
}
