package main

// aggregate computes a day's totals from its entries. Food nutrients are
// scaled by qty; workout calories are summed as stored. Values are taken as
// given: negative or non-finite fields flow straight into the sums.
func aggregate(food []foodEntry, workouts []workoutEntry) totals {
	var t totals
	for _, f := range food {
		t.Food.Calories += f.Calories * f.Qty
		t.Food.Protein += f.Protein * f.Qty
		t.Food.Carbs += f.Carbs * f.Qty
		t.Food.Fats += f.Fats * f.Qty
	}
	t.Burned = burnedCalories(workouts)
	return t
}

// consumedCalories is Σ(calories × qty) over food.
func consumedCalories(food []foodEntry) float64 {
	var sum float64
	for _, f := range food {
		sum += f.Calories * f.Qty
	}
	return sum
}

// burnedCalories is Σ(calories) over workouts.
func burnedCalories(workouts []workoutEntry) float64 {
	var sum float64
	for _, w := range workouts {
		sum += w.Calories
	}
	return sum
}

// dayTotals aggregates the entries logged for date.
func (l dailyLedger) dayTotals(date string) totals {
	return aggregate(l.foodFor(date), l.workoutsFor(date))
}
