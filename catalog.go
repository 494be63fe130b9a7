package main

import (
	"math"
	"strings"
)

// foodCatalogItem is static reference data used to pre-fill food entries.
// Macros are per serving.
type foodCatalogItem struct {
	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
}

// workoutCatalogItem is a workout type and its burn rate in kcal/min.
type workoutCatalogItem struct {
	Type string  `json:"type"`
	Rate float64 `json:"rate"`
}

const (
	// maxFoodSearchResults caps searchFood results.
	maxFoodSearchResults = 6
	// fallbackWorkoutRate is used for workout types missing from the catalog.
	fallbackWorkoutRate = 5
)

var foodCatalog = []foodCatalogItem{
	{Name: "Grilled Chicken (100g)", Calories: 165, Protein: 31, Carbs: 0, Fats: 3.6},
	{Name: "Paneer (100g)", Calories: 296, Protein: 23, Carbs: 6, Fats: 22},
	{Name: "Boiled Egg (1)", Calories: 78, Protein: 6, Carbs: 0.6, Fats: 5.3},
	{Name: "Banana (1)", Calories: 105, Protein: 1.3, Carbs: 27, Fats: 0.4},
	{Name: "Oats (40g)", Calories: 154, Protein: 5.3, Carbs: 27, Fats: 2.6},
	{Name: "Greek Yogurt (150g)", Calories: 146, Protein: 15, Carbs: 9, Fats: 4},
	{Name: "Rice (1 cup cooked)", Calories: 206, Protein: 4.3, Carbs: 45, Fats: 0.4},
	{Name: "Dal (1 cup)", Calories: 198, Protein: 12, Carbs: 28, Fats: 5},
}

var workoutCatalog = []workoutCatalogItem{
	{Type: "Running", Rate: 10},
	{Type: "Cycling", Rate: 8},
	{Type: "Walking", Rate: 4},
	{Type: "Yoga", Rate: 3},
	{Type: "Swimming", Rate: 9},
}

// findWorkoutRate returns the kcal/min rate for workoutType. The match is
// exact; unknown types get fallbackWorkoutRate.
func findWorkoutRate(workoutType string) float64 {
	for _, w := range workoutCatalog {
		if w.Type == workoutType {
			return w.Rate
		}
	}
	return fallbackWorkoutRate
}

// searchFood returns catalog items whose name contains query, ignoring case,
// in catalog order and capped at maxFoodSearchResults. An empty query
// matches everything.
func searchFood(query string) []foodCatalogItem {
	q := strings.ToLower(query)
	matches := []foodCatalogItem{}
	for _, f := range foodCatalog {
		if len(matches) == maxFoodSearchResults {
			break
		}
		if strings.Contains(strings.ToLower(f.Name), q) {
			matches = append(matches, f)
		}
	}
	return matches
}

// findFood looks up a catalog item by exact name.
func findFood(name string) (foodCatalogItem, bool) {
	for _, f := range foodCatalog {
		if f.Name == name {
			return f, true
		}
	}
	return foodCatalogItem{}, false
}

// newFoodEntry builds a ledger entry from a catalog item and a quantity.
func newFoodEntry(item foodCatalogItem, qty float64) foodEntry {
	return foodEntry{
		Name:     item.Name,
		Calories: item.Calories,
		Protein:  item.Protein,
		Carbs:    item.Carbs,
		Fats:     item.Fats,
		Qty:      qty,
	}
}

// newWorkoutEntry builds a workout entry, fixing its calories at
// round(rate × minutes) using the catalog rate for workoutType.
func newWorkoutEntry(workoutType string, minutes float64) workoutEntry {
	return workoutEntry{
		Type:        workoutType,
		DurationMin: minutes,
		Calories:    math.Round(findWorkoutRate(workoutType) * minutes),
	}
}
