package main

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// dashboardFor derives the display figures for a day: net calories (never
// below zero), intake as a percentage of target clamped to 0..100, and
// protein as a percentage of the profile's protein target.
func dashboardFor(t totals, target int, proteinTarget float64) dashboardStats {
	stats := dashboardStats{
		NetCalories: math.Max(0, t.Food.Calories-t.Burned),
		ProteinPct:  roundInt(t.Food.Protein / math.Max(1, proteinTarget) * 100),
	}
	if target > 0 {
		pct := roundInt(t.Food.Calories / float64(target) * 100)
		stats.TargetPct = min(max(pct, 0), 100)
	}
	return stats
}

// getDailySummary returns the day's entries, totals, targets and dashboard figures.
// GET /api/log/daily?date=YYYY-MM-DD (defaults to today).
func (h *Handler) getDailySummary(c *gin.Context) {
	date, ok := h.dateQuery(c, "date")
	if !ok {
		return
	}

	ledger := h.tracker.currentLedger()
	profile := h.tracker.currentProfile()

	food := ledger.foodFor(date)
	workouts := ledger.workoutsFor(date)
	// Ensure both lists are empty arrays (not null) in JSON
	if food == nil {
		food = []foodEntry{}
	}
	if workouts == nil {
		workouts = []workoutEntry{}
	}

	t := aggregate(food, workouts)
	targets := computeTargets(profile)

	c.JSON(http.StatusOK, dailySummary{
		Date:      date,
		Food:      food,
		Workouts:  workouts,
		Totals:    t,
		Targets:   targets,
		Dashboard: dashboardFor(t, targets.Target, profile.DailyProteinTarget),
	})
}

// getTrend returns consumed/burned calories per day for a dense window ending at end.
// GET /api/trend?days=N&end=YYYY-MM-DD. days defaults to the configured window,
// end defaults to today.
func (h *Handler) getTrend(c *gin.Context) {
	days := h.trendDays
	if s := c.Query("days"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 || n > maxTrendDays {
			apiError(c, http.StatusBadRequest, "days must be an integer between 1 and "+strconv.Itoa(maxTrendDays))
			return
		}
		days = n
	}

	end, ok := h.dateQuery(c, "end")
	if !ok {
		return
	}
	// Already validated by dateQuery.
	endDate, _ := time.Parse(dateLayout, end)

	c.JSON(http.StatusOK, buildTrend(h.tracker.currentLedger(), days, endDate))
}
