package main

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTracker_StartsWithDefaults(t *testing.T) {
	tr := newTracker(context.Background(), newMemKVStore())

	assert.Equal(t, defaultProfile(), tr.currentProfile())
	assert.Equal(t, newLedger(), tr.currentLedger())
}

// TestTracker_PersistsUpdates verifies a second tracker over the same store
// sees what the first one installed.
func TestTracker_PersistsUpdates(t *testing.T) {
	ctx := context.Background()
	kv := newMemKVStore()
	tr := newTracker(ctx, kv)

	tr.updateProfile(ctx, func(p userProfile) userProfile {
		p.Name = "Asha"
		return p
	})
	tr.updateLedger(ctx, func(l dailyLedger) (dailyLedger, bool) {
		return l.addFood(testDay, egg(1)), true
	})

	reloaded := newTracker(ctx, kv)
	assert.Equal(t, "Asha", reloaded.currentProfile().Name)
	assert.Len(t, reloaded.currentLedger().foodFor(testDay), 1)
}

func TestTracker_RejectedUpdateChangesNothing(t *testing.T) {
	ctx := context.Background()
	tr := newTracker(ctx, newMemKVStore())
	tr.updateLedger(ctx, func(l dailyLedger) (dailyLedger, bool) {
		return l.addFood(testDay, egg(1)), true
	})
	before := tr.currentLedger()

	got, ok := tr.updateLedger(ctx, func(l dailyLedger) (dailyLedger, bool) {
		return l.removeFood(testDay, 5)
	})

	assert.False(t, ok)
	assert.Equal(t, before, got)
	assert.Equal(t, before, tr.currentLedger())
}

// TestTracker_SnapshotUnaffectedByLaterUpdates verifies readers hold a
// stable snapshot while writers install new ledgers.
func TestTracker_SnapshotUnaffectedByLaterUpdates(t *testing.T) {
	ctx := context.Background()
	tr := newTracker(ctx, newMemKVStore())
	tr.updateLedger(ctx, func(l dailyLedger) (dailyLedger, bool) {
		return l.addFood(testDay, egg(1)), true
	})

	snapshot := tr.currentLedger()
	tr.updateLedger(ctx, func(l dailyLedger) (dailyLedger, bool) {
		return l.addFood(testDay, egg(2)), true
	})
	tr.updateLedger(ctx, func(l dailyLedger) (dailyLedger, bool) {
		return l.removeFood(testDay, 0)
	})

	require.Len(t, snapshot.foodFor(testDay), 1)
	assert.Equal(t, 1.0, snapshot.foodFor(testDay)[0].Qty)
	assert.Equal(t, 2.0, tr.currentLedger().foodFor(testDay)[0].Qty)
}

// TestTracker_ConcurrentAddsAreNotLost verifies no update is lost when many
// writers append at once.
func TestTracker_ConcurrentAddsAreNotLost(t *testing.T) {
	ctx := context.Background()
	kv := newMemKVStore()
	tr := newTracker(ctx, kv)

	const writers = 50
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tr.updateLedger(ctx, func(l dailyLedger) (dailyLedger, bool) {
				return l.addWorkout(testDay, newWorkoutEntry("Walking", float64(i+1))), true
			})
		}(i)
	}
	wg.Wait()

	assert.Len(t, tr.currentLedger().workoutsFor(testDay), writers)
	assert.Len(t, loadLedger(ctx, kv).workoutsFor(testDay), writers)
}

// TestTracker_SaveFailureKeepsMemoryState verifies a broken store does not
// block updates; they simply are not persisted.
func TestTracker_SaveFailureKeepsMemoryState(t *testing.T) {
	ctx := context.Background()
	tr := newTracker(ctx, failingKVStore{})

	_, ok := tr.updateLedger(ctx, func(l dailyLedger) (dailyLedger, bool) {
		return l.addFood(testDay, egg(1)), true
	})

	assert.True(t, ok)
	assert.Len(t, tr.currentLedger().foodFor(testDay), 1)
}
