package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	log "github.com/sirupsen/logrus"
)

// Storage keys, all under the fixed healthify namespace.
const (
	profileKey     = "healthify.profile"
	foodLogsKey    = "healthify.foodLogs"
	workoutLogsKey = "healthify.workoutLogs"
)

// errKeyNotFound is returned by kvStore.Get for keys that were never written.
var errKeyNotFound = errors.New("key not found")

// kvStore is the persistence collaborator. Values are raw JSON documents.
type kvStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

/* ─── Postgres store ─────────────────────────────────────────────────── */

// pgxQuerier is the subset of *pgxpool.Pool the store needs.
type pgxQuerier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// pgKVStore keeps values in the kv_store table (see db/).
type pgKVStore struct {
	db pgxQuerier
}

func newPgKVStore(db pgxQuerier) *pgKVStore {
	return &pgKVStore{db: db}
}

// kvRow is a kv_store row. value is selected as text so the simple query
// protocol and the extended protocol scan it the same way.
type kvRow struct {
	Key   string `db:"key"`
	Value string `db:"value"`
}

func (s *pgKVStore) Get(ctx context.Context, key string) ([]byte, error) {
	row, err := queryOne[kvRow](ctx, s.db,
		"SELECT key, value::text AS value FROM kv_store WHERE key = @key",
		pgx.NamedArgs{"key": key})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errKeyNotFound
		}
		return nil, fmt.Errorf("get %s: %w", key, err)
	}
	return []byte(row.Value), nil
}

func (s *pgKVStore) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.db.Exec(ctx,
		`INSERT INTO kv_store (key, value) VALUES (@key, @value::jsonb)
		 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`,
		pgx.NamedArgs{"key": key, "value": string(value)})
	if err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// queryOne runs a query and scans the first row into T using RowToStructByName.
// Logs query and scan errors for debugging (e.g. struct/column mismatches);
// a missing row is expected and not logged.
func queryOne[T any](ctx context.Context, db pgxQuerier, sql string, args pgx.NamedArgs) (T, error) {
	rows, err := db.Query(ctx, sql, args)
	if err != nil {
		log.Errorf("[queryOne] Query error: %v", err)
		var zero T
		return zero, err
	}
	result, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[T])
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		log.Errorf("[queryOne] Scan error: %v", err)
	}
	return result, err
}

/* ─── In-memory store ────────────────────────────────────────────────── */

// memKVStore is a process-local kvStore, used when no database is
// configured and in tests.
type memKVStore struct {
	mu     sync.RWMutex
	values map[string][]byte
}

func newMemKVStore() *memKVStore {
	return &memKVStore{values: map[string][]byte{}}
}

func (s *memKVStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	if !ok {
		return nil, errKeyNotFound
	}
	return append([]byte(nil), v...), nil
}

func (s *memKVStore) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = append([]byte(nil), value...)
	return nil
}

/* ─── Load / save ────────────────────────────────────────────────────── */

// loadProfile reads the stored profile. Any failure (store unavailable,
// corrupt JSON) yields defaultProfile; fields absent from the stored
// document keep their default values.
func loadProfile(ctx context.Context, kv kvStore) userProfile {
	p := defaultProfile()
	if !loadJSON(ctx, kv, profileKey, &p) {
		return defaultProfile()
	}
	return p
}

// saveProfile writes p under profileKey.
func saveProfile(ctx context.Context, kv kvStore, p userProfile) error {
	return saveJSON(ctx, kv, profileKey, p)
}

// loadLedger reads both day maps. Each falls back to empty independently.
func loadLedger(ctx context.Context, kv kvStore) dailyLedger {
	l := newLedger()

	var food map[string][]foodEntry
	if loadJSON(ctx, kv, foodLogsKey, &food) && food != nil {
		l.Food = food
	}
	var workouts map[string][]workoutEntry
	if loadJSON(ctx, kv, workoutLogsKey, &workouts) && workouts != nil {
		l.Workouts = workouts
	}
	return l
}

// saveLedger writes both day maps. Both writes are attempted; the errors
// are joined.
func saveLedger(ctx context.Context, kv kvStore, l dailyLedger) error {
	return errors.Join(
		saveJSON(ctx, kv, foodLogsKey, l.Food),
		saveJSON(ctx, kv, workoutLogsKey, l.Workouts),
	)
}

// loadJSON decodes key into dst. It returns false on any failure, in which
// case dst may be partially written. Missing keys are silent; other failures
// are logged.
func loadJSON(ctx context.Context, kv kvStore, key string, dst any) bool {
	raw, err := kv.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, errKeyNotFound) {
			log.Warnf("[loadJSON] %s unavailable, using default: %v", key, err)
		}
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		log.Warnf("[loadJSON] %s is corrupt, using default: %v", key, err)
		return false
	}
	return true
}

func saveJSON(ctx context.Context, kv kvStore, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	return kv.Set(ctx, key, raw)
}
