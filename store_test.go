package main

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingKVStore fails every call, standing in for an unreachable database.
type failingKVStore struct{}

var errStorageUnavailable = errors.New("storage unavailable")

func (failingKVStore) Get(context.Context, string) ([]byte, error) {
	return nil, errStorageUnavailable
}

func (failingKVStore) Set(context.Context, string, []byte) error {
	return errStorageUnavailable
}

func TestMemKVStore_GetSet(t *testing.T) {
	ctx := context.Background()
	kv := newMemKVStore()

	_, err := kv.Get(ctx, "missing")
	assert.ErrorIs(t, err, errKeyNotFound)

	value := []byte(`{"a":1}`)
	require.NoError(t, kv.Set(ctx, "k", value))
	value[2] = 'b' // the store must not alias the caller's buffer

	got, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, string(got))
}

/* ─── Profile fallback tests ─────────────────────────────────────────── */

func TestLoadProfile_Fallbacks(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name string
		kv   func() kvStore
	}{
		{"missing key", func() kvStore { return newMemKVStore() }},
		{"store unavailable", func() kvStore { return failingKVStore{} }},
		{"corrupt json", func() kvStore {
			kv := newMemKVStore()
			kv.Set(ctx, profileKey, []byte(`{"name": "Half`))
			return kv
		}},
		{"wrong shape", func() kvStore {
			kv := newMemKVStore()
			kv.Set(ctx, profileKey, []byte(`{"age": "twenty"}`))
			return kv
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, defaultProfile(), loadProfile(ctx, tc.kv()))
		})
	}
}

func TestProfile_SaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	kv := newMemKVStore()

	p := userProfile{
		Name: "Asha", Age: 34, Gender: "female", HeightCM: 162.5, WeightKG: 58,
		ActivityLevel: "light", Goal: "lose", DailyProteinTarget: 90,
	}
	require.NoError(t, saveProfile(ctx, kv, p))
	assert.Equal(t, p, loadProfile(ctx, kv))
}

// TestLoadProfile_PartialDocument verifies fields missing from the stored
// document keep their defaults.
func TestLoadProfile_PartialDocument(t *testing.T) {
	ctx := context.Background()
	kv := newMemKVStore()
	require.NoError(t, kv.Set(ctx, profileKey, []byte(`{"name":"Sam","goal":"gain"}`)))

	want := defaultProfile()
	want.Name = "Sam"
	want.Goal = "gain"
	assert.Equal(t, want, loadProfile(ctx, kv))
}

func TestSaveProfile_StoreError(t *testing.T) {
	err := saveProfile(context.Background(), failingKVStore{}, defaultProfile())
	assert.ErrorIs(t, err, errStorageUnavailable)
}

/* ─── Ledger fallback tests ──────────────────────────────────────────── */

func TestLedger_SaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	kv := newMemKVStore()

	l := newLedger().
		addFood(testDay, egg(2)).
		addWorkout(testDay, workoutEntry{Type: "Running", DurationMin: 30, Calories: 300})
	require.NoError(t, saveLedger(ctx, kv, l))

	assert.Equal(t, l, loadLedger(ctx, kv))
}

func TestLoadLedger_Fallbacks(t *testing.T) {
	ctx := context.Background()

	assert.Equal(t, newLedger(), loadLedger(ctx, newMemKVStore()))
	assert.Equal(t, newLedger(), loadLedger(ctx, failingKVStore{}))

	kv := newMemKVStore()
	require.NoError(t, kv.Set(ctx, foodLogsKey, []byte(`null`)))
	require.NoError(t, kv.Set(ctx, workoutLogsKey, []byte(`[1,2`)))
	got := loadLedger(ctx, kv)
	assert.NotNil(t, got.Food)
	assert.NotNil(t, got.Workouts)
	assert.Empty(t, got.Food)
	assert.Empty(t, got.Workouts)
}

// TestLoadLedger_KeysFallBackIndependently verifies a corrupt workout log
// does not discard a valid food log.
func TestLoadLedger_KeysFallBackIndependently(t *testing.T) {
	ctx := context.Background()
	kv := newMemKVStore()
	require.NoError(t, kv.Set(ctx, foodLogsKey,
		[]byte(`{"2026-10-19":[{"name":"Banana (1)","calories":105,"protein":1.3,"carbs":27,"fats":0.4,"qty":2}]}`)))
	require.NoError(t, kv.Set(ctx, workoutLogsKey, []byte(`not json`)))

	got := loadLedger(ctx, kv)
	require.Len(t, got.foodFor(testDay), 1)
	assert.Equal(t, 2.0, got.foodFor(testDay)[0].Qty)
	assert.Empty(t, got.Workouts)
}

func TestSaveLedger_StoreError(t *testing.T) {
	err := saveLedger(context.Background(), failingKVStore{}, newLedger())
	assert.ErrorIs(t, err, errStorageUnavailable)
}
