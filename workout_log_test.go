package main

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type createdWorkout struct {
	Date  string       `json:"date"`
	Index int          `json:"index"`
	Entry workoutEntry `json:"entry"`
}

func TestCreateWorkoutEntry(t *testing.T) {
	cases := []struct {
		name     string
		body     string
		calories float64
	}{
		{"catalog rate", `{"type":"Running","duration_min":30}`, 300},
		{"fallback rate", `{"type":"Rowing","duration_min":20}`, 100},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router, _, _ := setupRouter(t)
			w := doRequest(router, http.MethodPost, "/api/log/workouts", tc.body)
			require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

			got := decode[createdWorkout](t, w)
			assert.Equal(t, "2026-10-19", got.Date)
			assert.Equal(t, tc.calories, got.Entry.Calories)
		})
	}
}

func TestCreateWorkoutEntry_IndexGrows(t *testing.T) {
	router, _, _ := setupRouter(t)
	doRequest(router, http.MethodPost, "/api/log/workouts", `{"type":"Yoga","duration_min":20}`)

	w := doRequest(router, http.MethodPost, "/api/log/workouts", `{"type":"Yoga","duration_min":10}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 1, decode[createdWorkout](t, w).Index)
}

func TestCreateWorkoutEntry_MissingType(t *testing.T) {
	router, _, _ := setupRouter(t)
	w := doRequest(router, http.MethodPost, "/api/log/workouts", `{"duration_min":20}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteWorkoutEntry(t *testing.T) {
	router, h, _ := setupRouter(t)
	doRequest(router, http.MethodPost, "/api/log/workouts", `{"date":"2026-10-17","type":"Cycling","duration_min":30}`)

	assert.Equal(t, http.StatusNotFound, doRequest(router, http.MethodDelete, "/api/log/workouts/0", "").Code)

	w := doRequest(router, http.MethodDelete, "/api/log/workouts/0?date=2026-10-17", "")
	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, h.tracker.currentLedger().workoutsFor("2026-10-17"))
}

func TestListWorkoutCatalog(t *testing.T) {
	router, _, _ := setupRouter(t)
	w := doRequest(router, http.MethodGet, "/api/catalog/workouts", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, workoutCatalog, decode[[]workoutCatalogItem](t, w))
}
