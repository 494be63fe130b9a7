package main

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// createFoodEntry appends a food entry to a day's log.
// POST /api/log/food. Date defaults to today, qty to 1. With catalog_name the
// macros come from the food catalog; otherwise name and macros come from the body.
// Numeric fields are not range-checked.
func (h *Handler) createFoodEntry(c *gin.Context) {
	var body createFoodEntryRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	qty := 1.0
	if body.Qty != nil {
		qty = *body.Qty
	}

	var entry foodEntry
	if body.CatalogName != "" {
		item, found := findFood(body.CatalogName)
		if !found {
			apiError(c, http.StatusBadRequest, "unknown catalog_name")
			return
		}
		entry = newFoodEntry(item, qty)
	} else {
		if strings.TrimSpace(body.Name) == "" {
			apiError(c, http.StatusBadRequest, "name or catalog_name is required")
			return
		}
		entry = foodEntry{
			Name:     body.Name,
			Calories: body.Calories,
			Protein:  body.Protein,
			Carbs:    body.Carbs,
			Fats:     body.Fats,
			Qty:      qty,
		}
	}

	date := h.dateOrToday(body.Date)
	ledger, _ := h.tracker.updateLedger(c, func(l dailyLedger) (dailyLedger, bool) {
		return l.addFood(date, entry), true
	})

	c.JSON(http.StatusCreated, gin.H{
		"date":  date,
		"index": len(ledger.foodFor(date)) - 1,
		"entry": entry,
	})
}

// deleteFoodEntry removes the entry at :index from a day's food log. Returns 204 on success.
// DELETE /api/log/food/:index?date=YYYY-MM-DD. Later entries shift down by one,
// so clients must re-read the day before deleting again.
func (h *Handler) deleteFoodEntry(c *gin.Context) {
	index, ok := indexParam(c)
	if !ok {
		return
	}
	date, ok := h.dateQuery(c, "date")
	if !ok {
		return
	}

	if _, removed := h.tracker.updateLedger(c, func(l dailyLedger) (dailyLedger, bool) {
		return l.removeFood(date, index)
	}); !removed {
		apiError(c, http.StatusNotFound, "food entry not found")
		return
	}

	c.Status(http.StatusNoContent)
}

// searchFoodCatalog returns up to six catalog foods matching q.
// GET /api/catalog/foods?q=egg. An empty q lists the first six items.
func (h *Handler) searchFoodCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, searchFood(c.Query("q")))
}
