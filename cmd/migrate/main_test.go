package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDescriptionFromFilename(t *testing.T) {
	cases := []struct {
		filename string
		want     string
	}{
		{"2026-10-19-002-create-kv-store.sql", "create kv store"},
		{"2026-10-19-001-create-migrations-table.sql", "create migrations table"},
		{"no-prefix.sql", "no prefix"},
	}
	for _, tc := range cases {
		t.Run(tc.filename, func(t *testing.T) {
			assert.Equal(t, tc.want, descriptionFromFilename(tc.filename))
		})
	}
}

func TestPendingMigrations(t *testing.T) {
	files := []string{
		"db/2026-10-19-002-create-kv-store.sql",
		"db/2026-10-19-001-create-migrations-table.sql",
		"db/2026-11-02-001-add-index.sql",
	}

	t.Run("nothing applied", func(t *testing.T) {
		assert.Equal(t, []string{
			"db/2026-10-19-001-create-migrations-table.sql",
			"db/2026-10-19-002-create-kv-store.sql",
			"db/2026-11-02-001-add-index.sql",
		}, pendingMigrations(files, map[string]bool{}))
	})

	t.Run("some applied", func(t *testing.T) {
		applied := map[string]bool{
			"2026-10-19-001-create-migrations-table.sql": true,
			"2026-10-19-002-create-kv-store.sql":         true,
		}
		assert.Equal(t, []string{"db/2026-11-02-001-add-index.sql"}, pendingMigrations(files, applied))
	})

	t.Run("all applied", func(t *testing.T) {
		applied := map[string]bool{}
		for _, f := range files {
			applied[filepath.Base(f)] = true
		}
		assert.Empty(t, pendingMigrations(files, applied))
	})
}
