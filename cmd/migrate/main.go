// Command migrate applies the pending *.sql files in a migrations directory
// to the Postgres database named by DB_URL. Files run in name order; each one
// and its row in the migrations table commit together.
//
//	go run ./cmd/migrate [-dir db]
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

var migrationPrefix = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}-\d{3}-`)

func main() {
	dbDir := flag.String("dir", "db", "directory holding *.sql migrations")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Debugf("no .env loaded: %v", err)
	}

	ctx := context.Background()
	conn, err := pgx.Connect(ctx, os.Getenv("DB_URL"))
	if err != nil {
		log.Fatalf("Unable to connect to database: %v", err)
	}
	defer conn.Close(ctx)

	files, err := filepath.Glob(filepath.Join(*dbDir, "*.sql"))
	if err != nil || len(files) == 0 {
		log.Fatalf("No migration files found in %s", *dbDir)
	}

	pending := pendingMigrations(files, appliedMigrations(ctx, conn))
	for _, f := range pending {
		if err := applyMigration(ctx, conn, f); err != nil {
			log.Fatalf("[migrate] %v", err)
		}
		log.Infof("applied %s", filepath.Base(f))
	}

	log.WithFields(log.Fields{
		"applied": len(pending),
		"skipped": len(files) - len(pending),
	}).Info("migrations done")
}

// appliedMigrations lists the recorded migration filenames. Before the first
// migration the table does not exist; that reads as nothing applied.
func appliedMigrations(ctx context.Context, conn *pgx.Conn) map[string]bool {
	applied := map[string]bool{}
	rows, err := conn.Query(ctx, "SELECT migration FROM migrations")
	if err != nil {
		log.Debugf("[appliedMigrations] %v", err)
		return applied
	}
	names, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		log.Warnf("[appliedMigrations] %v", err)
	}
	for _, name := range names {
		applied[name] = true
	}
	return applied
}

// pendingMigrations returns the files not yet applied, sorted by filename.
func pendingMigrations(files []string, applied map[string]bool) []string {
	var pending []string
	for _, f := range files {
		if !applied[filepath.Base(f)] {
			pending = append(pending, f)
		}
	}
	sort.Slice(pending, func(i, j int) bool {
		return filepath.Base(pending[i]) < filepath.Base(pending[j])
	})
	return pending
}

func applyMigration(ctx context.Context, conn *pgx.Conn, path string) error {
	filename := filepath.Base(path)
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", filename, err)
	}

	tx, err := conn.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin %s: %w", filename, err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, string(content)); err != nil {
		return fmt.Errorf("running %s: %w", filename, err)
	}
	if _, err := tx.Exec(ctx,
		"INSERT INTO migrations (migration, description) VALUES ($1, $2)",
		filename, descriptionFromFilename(filename)); err != nil {
		return fmt.Errorf("recording %s: %w", filename, err)
	}
	return tx.Commit(ctx)
}

// descriptionFromFilename turns "2026-10-19-002-create-kv-store.sql" into
// "create kv store".
func descriptionFromFilename(filename string) string {
	name := migrationPrefix.ReplaceAllString(strings.TrimSuffix(filename, ".sql"), "")
	return strings.ReplaceAll(name, "-", " ")
}
