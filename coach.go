package main

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

/* ─── Quick tips ─────────────────────────────────────────────────────── */

// quickTip is a one-tap coach action. Tips with a Food name also append that
// catalog item (qty 1) to today's food log.
type quickTip struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Reply string `json:"-"`
	Food  string `json:"-"`
}

var quickTips = []quickTip{
	{
		ID:    "high-protein-snack",
		Label: "High-protein snack",
		Reply: "Added Greek Yogurt (150g) to today's log.",
		Food:  "Greek Yogurt (150g)",
	},
	{
		ID:    "walk",
		Label: "Add 15-min walk",
		Reply: "Great! A 15-min brisk walk burns ~60 kcal. Log it under Workout.",
	},
	{
		ID:    "hydration",
		Label: "Hydration reminder",
		Reply: "Sip water regularly. Aim for 2-3L today.",
	},
}

func findQuickTip(id string) (quickTip, bool) {
	for _, t := range quickTips {
		if t.ID == id {
			return t, true
		}
	}
	return quickTip{}, false
}

// coachGreeting is the opening line of a coach session.
func coachGreeting(name string) string {
	return fmt.Sprintf("Hi %s! I'm your AI health coach. Ask me anything or tap quick tips below.", name)
}

// coachStatus summarizes a day in one line.
func coachStatus(t totals, target int) string {
	return fmt.Sprintf("Today: %d kcal eaten, %d kcal burned. Target %d kcal.",
		roundInt(t.Food.Calories), roundInt(t.Burned), target)
}

/* ─── Handlers ───────────────────────────────────────────────────────── */

// getCoach returns the greeting, the quick tips and today's status line.
// GET /api/coach.
func (h *Handler) getCoach(c *gin.Context) {
	profile := h.tracker.currentProfile()
	t := h.tracker.currentLedger().dayTotals(h.today())

	c.JSON(http.StatusOK, gin.H{
		"greeting": coachGreeting(profile.Name),
		"tips":     quickTips,
		"status":   coachStatus(t, computeTargets(profile).Target),
	})
}

// askCoach answers a free-text question from the rule table, using the
// totals for the requested day (default today) and the profile's target.
// POST /api/coach/ask. Body: { "question", "date"? }.
func (h *Handler) askCoach(c *gin.Context) {
	var req askCoachRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	question := strings.TrimSpace(req.Question)
	if question == "" {
		apiError(c, http.StatusBadRequest, "question is required")
		return
	}

	date := h.dateOrToday(req.Date)
	t := h.tracker.currentLedger().dayTotals(date)
	target := computeTargets(h.tracker.currentProfile()).Target

	c.JSON(http.StatusOK, gin.H{"reply": generateAdvice(question, t, float64(target))})
}

// applyCoachTip runs a quick tip.
// POST /api/coach/tips/:id. Returns the tip's reply; food tips also log the food for today.
func (h *Handler) applyCoachTip(c *gin.Context) {
	tip, found := findQuickTip(c.Param("id"))
	if !found {
		apiError(c, http.StatusNotFound, "tip not found")
		return
	}

	if tip.Food != "" {
		item, ok := findFood(tip.Food)
		if !ok {
			log.Errorf("[applyCoachTip] tip %s references unknown food %q", tip.ID, tip.Food)
			apiError(c, http.StatusInternalServerError, "tip is misconfigured")
			return
		}
		date := h.today()
		h.tracker.updateLedger(c, func(l dailyLedger) (dailyLedger, bool) {
			return l.addFood(date, newFoodEntry(item, 1)), true
		})
	}

	c.JSON(http.StatusOK, gin.H{"reply": tip.Reply})
}
