package main

import (
	"time"
)

// defaultTrendDays is the trend window used when the caller passes none.
const defaultTrendDays = 7

// buildTrend returns exactly windowDays points, oldest first, ending at
// referenceDate inclusive. Days with nothing logged are still present with
// zero values. A non-positive windowDays uses defaultTrendDays.
//
// Only the calendar date of referenceDate is used; AddDate keeps month and
// year boundaries correct.
func buildTrend(ledger dailyLedger, windowDays int, referenceDate time.Time) []trendPoint {
	if windowDays <= 0 {
		windowDays = defaultTrendDays
	}
	end := time.Date(referenceDate.Year(), referenceDate.Month(), referenceDate.Day(), 0, 0, 0, 0, time.UTC)

	points := make([]trendPoint, windowDays)
	for i := 0; i < windowDays; i++ {
		d := end.AddDate(0, 0, i-(windowDays-1))
		key := d.Format(dateLayout)
		points[i] = trendPoint{
			Date:     key,
			Label:    d.Format("01-02"),
			Consumed: consumedCalories(ledger.foodFor(key)),
			Burned:   burnedCalories(ledger.workoutsFor(key)),
		}
	}
	return points
}
