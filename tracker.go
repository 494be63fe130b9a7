package main

import (
	"context"
	"sync"

	log "github.com/sirupsen/logrus"
)

// tracker owns the current profile and ledger snapshots. Readers get whole
// snapshots; writers build a new value from the current one and install it
// under the lock, so no reader ever sees a half-applied change.
type tracker struct {
	mu      sync.RWMutex
	kv      kvStore
	profile userProfile
	ledger  dailyLedger
}

// newTracker loads the stored state from kv, falling back to defaults.
func newTracker(ctx context.Context, kv kvStore) *tracker {
	return &tracker{
		kv:      kv,
		profile: loadProfile(ctx, kv),
		ledger:  loadLedger(ctx, kv),
	}
}

func (t *tracker) currentProfile() userProfile {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.profile
}

func (t *tracker) currentLedger() dailyLedger {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.ledger
}

// updateProfile applies fn to the current profile, installs the result and
// persists it. A failed save is logged; the in-memory profile stays updated.
func (t *tracker) updateProfile(ctx context.Context, fn func(userProfile) userProfile) userProfile {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.profile = fn(t.profile)
	if err := saveProfile(ctx, t.kv, t.profile); err != nil {
		log.Warnf("[updateProfile] save failed: %v", err)
	}
	return t.profile
}

// updateLedger applies fn to the current ledger. When fn reports ok the new
// ledger is installed and persisted; otherwise nothing changes. The save
// happens under the lock so stored snapshots are written in install order.
func (t *tracker) updateLedger(ctx context.Context, fn func(dailyLedger) (dailyLedger, bool)) (dailyLedger, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	next, ok := fn(t.ledger)
	if !ok {
		return t.ledger, false
	}
	t.ledger = next
	if err := saveLedger(ctx, t.kv, t.ledger); err != nil {
		log.Warnf("[updateLedger] save failed: %v", err)
	}
	return t.ledger, true
}
