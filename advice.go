package main

import (
	"fmt"
	"math"
	"strings"
)

const (
	// calorieGapTolerance is how far (kcal) intake may stray from target
	// before the under/over rules fire.
	calorieGapTolerance = 120
	// lowProteinGrams is the protein floor below which the low-protein rule fires.
	lowProteinGrams = 80
	// carbsPerProteinLimit is the carbs:protein ratio above which the
	// imbalance rule fires.
	carbsPerProteinLimit = 3
	// maxAdviceMessages is how many messages make it into a reply.
	maxAdviceMessages = 2

	defaultAdvice = "Great work! Keep meals colorful and hydrate well. Aim for 7-8k steps today."
)

// adviceInput is what each rule sees.
type adviceInput struct {
	totals totals
	target float64
	gap    float64 // target - consumed + burned
}

// adviceRule appends message(in) when applies(in) is true.
type adviceRule struct {
	applies func(in adviceInput) bool
	message func(in adviceInput) string
}

// keywordRule puts message at the front of the reply when any of keywords
// occurs in the lowercased question.
type keywordRule struct {
	keywords []string
	message  string
}

// adviceRules are evaluated in order; each match appends.
var adviceRules = []adviceRule{
	{
		applies: func(in adviceInput) bool { return in.gap > calorieGapTolerance },
		message: func(in adviceInput) string {
			return fmt.Sprintf("You're about %d kcal under target. Consider a balanced snack like Greek yogurt with berries or a handful of nuts.",
				roundInt(in.gap))
		},
	},
	{
		applies: func(in adviceInput) bool { return in.gap < -calorieGapTolerance },
		message: func(in adviceInput) string {
			return fmt.Sprintf("You're about %d kcal over target. A light walk or reducing dinner carbs can help balance it.",
				absInt(roundInt(in.gap)))
		},
	},
	{
		applies: func(in adviceInput) bool { return in.totals.Food.Protein < lowProteinGrams },
		message: constMessage("Protein seems low today. Add eggs, paneer, tofu, or whey to hit your target."),
	},
	{
		applies: func(in adviceInput) bool {
			return in.totals.Food.Carbs > in.totals.Food.Protein*carbsPerProteinLimit
		},
		message: constMessage("Your carbs are quite high vs protein. Try swapping some carbs for lean protein."),
	},
}

// keywordRules are evaluated in order; each match is put in front of
// everything collected so far, so the last match leads the reply.
var keywordRules = []keywordRule{
	{
		keywords: []string{"protein"},
		message:  "High-protein options: eggs, Greek yogurt, chicken, paneer, tofu, legumes.",
	},
	{
		keywords: []string{"breakfast"},
		message:  "Quick breakfast ideas: oats + whey, veggie omelette, Greek yogurt parfait, peanut butter toast + banana.",
	},
	{
		keywords: []string{"fat loss", "lose weight"},
		message:  "For fat loss: 300-500 kcal deficit, 1.6-2.2 g/kg protein, 8000 steps/day, resistance training 3x/week.",
	},
}

// generateAdvice returns a short (at most two sentence-groups) suggestion for
// the day described by t against target, steered by question. It never
// returns an empty string.
func generateAdvice(question string, t totals, target float64) string {
	msgs := adviceMessages(question, t, target)
	if len(msgs) > maxAdviceMessages {
		msgs = msgs[:maxAdviceMessages]
	}
	return strings.Join(msgs, " ")
}

// adviceMessages is the full ordered message list before truncation.
func adviceMessages(question string, t totals, target float64) []string {
	in := adviceInput{
		totals: t,
		target: target,
		gap:    target - t.Food.Calories + t.Burned,
	}

	var msgs []string
	for _, r := range adviceRules {
		if r.applies(in) {
			msgs = append(msgs, r.message(in))
		}
	}
	if len(msgs) == 0 {
		msgs = append(msgs, defaultAdvice)
	}

	q := strings.ToLower(question)
	for _, k := range keywordRules {
		if k.matches(q) {
			msgs = append([]string{k.message}, msgs...)
		}
	}
	return msgs
}

func (k keywordRule) matches(lowerQuestion string) bool {
	for _, kw := range k.keywords {
		if strings.Contains(lowerQuestion, kw) {
			return true
		}
	}
	return false
}

func constMessage(s string) func(adviceInput) string {
	return func(adviceInput) string { return s }
}

// roundInt rounds half away from zero, same convention as computeTargets.
func roundInt(f float64) int {
	return int(math.Round(f))
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
