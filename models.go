package main

import (
	"time"
)

// dateLayout is the ISO calendar-date form used for every ledger key.
const dateLayout = "2006-01-02"

// DateOnly wraps time.Time to serialize as "YYYY-MM-DD" in JSON.
type DateOnly struct{ time.Time }

func (d DateOnly) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Time.Format(dateLayout) + `"`), nil
}

func (d *DateOnly) UnmarshalJSON(b []byte) error {
	t, err := time.Parse(`"2006-01-02"`, string(b))
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// Key returns the ledger key for d.
func (d DateOnly) Key() string {
	return d.Time.Format(dateLayout)
}

/* ─── Domain structs ─────────────────────────────────────────────────── */

// userProfile is the body profile the metabolic calculator reads. Gender,
// ActivityLevel and Goal are free text: unrecognized values are kept and
// handled by fallbacks, never rejected.
type userProfile struct {
	Name               string  `json:"name"`
	Age                int     `json:"age"`
	Gender             string  `json:"gender"`
	HeightCM           float64 `json:"height_cm"`
	WeightKG           float64 `json:"weight_kg"`
	ActivityLevel      string  `json:"activity_level"`
	Goal               string  `json:"goal"`
	DailyProteinTarget float64 `json:"daily_protein_target"`
}

// defaultProfile is installed on first use and whenever the stored profile
// cannot be loaded.
func defaultProfile() userProfile {
	return userProfile{
		Name:               "Guest",
		Age:                28,
		Gender:             "other",
		HeightCM:           170,
		WeightKG:           70,
		ActivityLevel:      "moderate",
		Goal:               "maintain",
		DailyProteinTarget: 120,
	}
}

// foodEntry is one logged food. Nutrient fields are per serving; Qty scales
// all four of them.
type foodEntry struct {
	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
	Qty      float64 `json:"qty"`
}

// workoutEntry is one logged workout. Calories is fixed when the entry is
// created and never recomputed from the catalog.
type workoutEntry struct {
	Type        string  `json:"type"`
	DurationMin float64 `json:"duration_min"`
	Calories    float64 `json:"calories"`
}

// foodTotals is the food side of a day's totals.
type foodTotals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
}

// totals is derived from a day's entries on every read; never stored.
type totals struct {
	Food   foodTotals `json:"food"`
	Burned float64    `json:"burned"`
}

// calorieTargets is the output of computeTargets.
type calorieTargets struct {
	BMR         int `json:"bmr"`
	Maintenance int `json:"maintenance"`
	Target      int `json:"target"`
}

// trendPoint is one day of the rolling consumed/burned series.
type trendPoint struct {
	Date     string  `json:"date"`
	Label    string  `json:"label"`
	Consumed float64 `json:"consumed"`
	Burned   float64 `json:"burned"`
}

/* ─── Response shapes ────────────────────────────────────────────────── */

// profileResponse is the response shape for GET/PATCH /api/profile.
type profileResponse struct {
	Profile userProfile    `json:"profile"`
	Targets calorieTargets `json:"targets"`
}

// dailySummary is the response shape for GET /api/log/daily.
// Food and Workouts are always arrays (never null) so indices line up with
// the DELETE routes.
type dailySummary struct {
	Date      string         `json:"date"`
	Food      []foodEntry    `json:"food"`
	Workouts  []workoutEntry `json:"workouts"`
	Totals    totals         `json:"totals"`
	Targets   calorieTargets `json:"targets"`
	Dashboard dashboardStats `json:"dashboard"`
}

// dashboardStats are the derived display figures for a day.
type dashboardStats struct {
	NetCalories float64 `json:"net_calories"`
	TargetPct   int     `json:"target_pct"`
	ProteinPct  int     `json:"protein_pct"`
}

/* ─── Request bodies ─────────────────────────────────────────────────── */

// createFoodEntryRequest is the request body for POST /api/log/food.
// When CatalogName is set the macros are pre-filled from the food catalog and
// the explicit nutrient fields are ignored.
type createFoodEntryRequest struct {
	Date        *DateOnly `json:"date"`
	CatalogName string    `json:"catalog_name"`
	Name        string    `json:"name"`
	Calories    float64   `json:"calories"`
	Protein     float64   `json:"protein"`
	Carbs       float64   `json:"carbs"`
	Fats        float64   `json:"fats"`
	Qty         *float64  `json:"qty"`
}

// createWorkoutEntryRequest is the request body for POST /api/log/workouts.
type createWorkoutEntryRequest struct {
	Date        *DateOnly `json:"date"`
	Type        string    `json:"type"`
	DurationMin float64   `json:"duration_min"`
}

// patchProfileRequest is the request body for PATCH /api/profile.
// All fields are pointers; only non-nil fields are applied.
type patchProfileRequest struct {
	Name               *string  `json:"name"`
	Age                *int     `json:"age"`
	Gender             *string  `json:"gender"`
	HeightCM           *float64 `json:"height_cm"`
	WeightKG           *float64 `json:"weight_kg"`
	ActivityLevel      *string  `json:"activity_level"`
	Goal               *string  `json:"goal"`
	DailyProteinTarget *float64 `json:"daily_protein_target"`
}

// askCoachRequest is the request body for POST /api/coach/ask.
type askCoachRequest struct {
	Question string    `json:"question"`
	Date     *DateOnly `json:"date"`
}
