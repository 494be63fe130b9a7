package main

// dailyLedger holds the food and workout logs keyed by ISO date.
//
// A ledger value is never mutated in place: addFood/removeFood/addWorkout/
// removeWorkout return a new ledger that shares untouched day slices with
// the old one. Callers install the result atomically (see tracker).
type dailyLedger struct {
	Food     map[string][]foodEntry    `json:"food"`
	Workouts map[string][]workoutEntry `json:"workouts"`
}

// newLedger returns an empty ledger with both maps allocated.
func newLedger() dailyLedger {
	return dailyLedger{
		Food:     map[string][]foodEntry{},
		Workouts: map[string][]workoutEntry{},
	}
}

// foodFor returns the food entries for date. A missing key yields nil, which
// callers treat exactly like an empty day.
func (l dailyLedger) foodFor(date string) []foodEntry {
	return l.Food[date]
}

// workoutsFor returns the workout entries for date.
func (l dailyLedger) workoutsFor(date string) []workoutEntry {
	return l.Workouts[date]
}

// addFood appends e to the end of date's food log.
func (l dailyLedger) addFood(date string, e foodEntry) dailyLedger {
	return dailyLedger{
		Food:     withAppended(l.Food, date, e),
		Workouts: l.Workouts,
	}
}

// removeFood drops the entry at index from date's food log. Later entries
// shift down by one. ok is false (and l is returned unchanged) when index is
// out of range for that day.
func (l dailyLedger) removeFood(date string, index int) (dailyLedger, bool) {
	food, ok := withRemoved(l.Food, date, index)
	if !ok {
		return l, false
	}
	return dailyLedger{Food: food, Workouts: l.Workouts}, true
}

// addWorkout appends e to the end of date's workout log.
func (l dailyLedger) addWorkout(date string, e workoutEntry) dailyLedger {
	return dailyLedger{
		Food:     l.Food,
		Workouts: withAppended(l.Workouts, date, e),
	}
}

// removeWorkout drops the entry at index from date's workout log.
func (l dailyLedger) removeWorkout(date string, index int) (dailyLedger, bool) {
	workouts, ok := withRemoved(l.Workouts, date, index)
	if !ok {
		return l, false
	}
	return dailyLedger{Food: l.Food, Workouts: workouts}, true
}

// withAppended copies m and replaces m[date] with a fresh slice ending in e.
func withAppended[E any](m map[string][]E, date string, e E) map[string][]E {
	out := copyDays(m)
	day := make([]E, 0, len(m[date])+1)
	day = append(day, m[date]...)
	out[date] = append(day, e)
	return out
}

// withRemoved copies m and replaces m[date] with a fresh slice missing the
// element at index. A day left empty is dropped from the map so that an
// empty day and an absent day serialize the same way.
func withRemoved[E any](m map[string][]E, date string, index int) (map[string][]E, bool) {
	old := m[date]
	if index < 0 || index >= len(old) {
		return m, false
	}
	out := copyDays(m)
	if len(old) == 1 {
		delete(out, date)
		return out, true
	}
	day := make([]E, 0, len(old)-1)
	day = append(day, old[:index]...)
	out[date] = append(day, old[index+1:]...)
	return out, true
}

// copyDays makes a shallow copy of the day map. Day slices are shared; they
// are never written after being installed.
func copyDays[E any](m map[string][]E) map[string][]E {
	out := make(map[string][]E, len(m)+1)
	for k, v := range m {
		out[k] = v
	}
	return out
}
