package main

import (
	"math"
)

// activityMultipliers maps activity levels to their maintenance multiplier.
// Levels not listed here use defaultActivityMultiplier.
var activityMultipliers = map[string]float64{
	"sedentary":   1.2,
	"light":       1.375,
	"moderate":    1.55,
	"active":      1.725,
	"very-active": 1.9,
}

const defaultActivityMultiplier = 1.55

// goalAdjustments is the kcal offset from maintenance for each goal.
// "maintain" and anything unrecognized get no adjustment.
var goalAdjustments = map[string]int{
	"lose": -400,
	"gain": 300,
}

// genderOffset is the sex constant of the Mifflin-St Jeor equation. Anything
// other than "male" or "female" gets the midpoint, -78.
func genderOffset(gender string) float64 {
	switch gender {
	case "male":
		return 5
	case "female":
		return -161
	default:
		return -78
	}
}

// activityMultiplier returns the multiplier for level, falling back to the
// "moderate" value for unknown levels.
func activityMultiplier(level string) float64 {
	if mult, ok := activityMultipliers[level]; ok {
		return mult
	}
	return defaultActivityMultiplier
}

// computeTargets derives BMR (Mifflin-St Jeor), maintenance calories and the
// goal-adjusted daily target from p.
//
// Rounding is math.Round (half away from zero) at both steps: BMR is rounded
// first and maintenance is computed from the rounded BMR.
func computeTargets(p userProfile) calorieTargets {
	bmrF := 10*p.WeightKG + 6.25*p.HeightCM - 5*float64(p.Age) + genderOffset(p.Gender)
	bmr := int(math.Round(bmrF))

	maintenance := int(math.Round(float64(bmr) * activityMultiplier(p.ActivityLevel)))

	return calorieTargets{
		BMR:         bmr,
		Maintenance: maintenance,
		Target:      maintenance + goalAdjustments[p.Goal],
	}
}
