package main

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// createWorkoutEntry appends a workout to a day's log.
// POST /api/log/workouts. Body: { "date"?, "type", "duration_min" }.
// Calories are fixed now from the catalog rate (5 kcal/min for unknown types).
func (h *Handler) createWorkoutEntry(c *gin.Context) {
	var body createWorkoutEntryRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(body.Type) == "" {
		apiError(c, http.StatusBadRequest, "type is required")
		return
	}

	entry := newWorkoutEntry(body.Type, body.DurationMin)
	date := h.dateOrToday(body.Date)
	ledger, _ := h.tracker.updateLedger(c, func(l dailyLedger) (dailyLedger, bool) {
		return l.addWorkout(date, entry), true
	})

	c.JSON(http.StatusCreated, gin.H{
		"date":  date,
		"index": len(ledger.workoutsFor(date)) - 1,
		"entry": entry,
	})
}

// deleteWorkoutEntry removes the workout at :index from a day's log.
// DELETE /api/log/workouts/:index?date=YYYY-MM-DD. Returns 204 on success, 404 if
// the index is out of range for that day.
func (h *Handler) deleteWorkoutEntry(c *gin.Context) {
	index, ok := indexParam(c)
	if !ok {
		return
	}
	date, ok := h.dateQuery(c, "date")
	if !ok {
		return
	}

	if _, removed := h.tracker.updateLedger(c, func(l dailyLedger) (dailyLedger, bool) {
		return l.removeWorkout(date, index)
	}); !removed {
		apiError(c, http.StatusNotFound, "workout entry not found")
		return
	}

	c.Status(http.StatusNoContent)
}

// listWorkoutCatalog returns every workout type with its kcal/min rate.
// GET /api/catalog/workouts.
func (h *Handler) listWorkoutCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, workoutCatalog)
}
