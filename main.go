package main

import (
	"context"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

func main() {
	// .env is optional; real environment variables win either way.
	if err := godotenv.Load(); err != nil {
		log.Debugf("no .env loaded: %v", err)
	}

	cfg := loadConfig()
	loggingSetup(cfg.LogFile, cfg.LogLevel)

	ctx := context.Background()

	var kv kvStore
	switch {
	case cfg.DBURL != "":
		pool := getDBPool(ctx, cfg.DBURL)
		defer pool.Close()
		kv = newPgKVStore(pool)
	case cfg.SQLitePath != "":
		store, err := openSQLiteKVStore(cfg.SQLitePath)
		if err != nil {
			log.Fatalf("Unable to open %s: %v", cfg.SQLitePath, err)
		}
		defer store.Close()
		kv = store
		log.Infof("Using SQLite store at %s", cfg.SQLitePath)
	default:
		log.Warn("DB_URL and SQLITE_PATH not set, profile and logs are kept in memory only")
		kv = newMemKVStore()
	}

	h := newHandler(newTracker(ctx, kv), time.Now, cfg.TrendDays)
	router := newRouter(h)

	log.Infof("Starting gin app on %s ...", cfg.Addr)
	if err := router.Run(cfg.Addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
