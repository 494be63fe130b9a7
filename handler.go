package main

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

// maxTrendDays bounds the ?days= parameter of GET /api/trend.
const maxTrendDays = 366

// Handler holds shared dependencies (state, clock, config) for all route handlers.
type Handler struct {
	tracker   *tracker
	now       func() time.Time // clock source for "today"; overridable for tests
	trendDays int              // default trend window
}

func newHandler(t *tracker, now func() time.Time, trendDays int) *Handler {
	if trendDays <= 0 {
		trendDays = defaultTrendDays
	}
	return &Handler{tracker: t, now: now, trendDays: trendDays}
}

// today is the current UTC calendar date as a ledger key.
func (h *Handler) today() string {
	return h.now().UTC().Format(dateLayout)
}

/* ─── Request helpers ────────────────────────────────────────────────── */

// apiError returns a consistent JSON error response: {"error": "message"}.
func apiError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// dateQuery reads a YYYY-MM-DD query param, defaulting to today. On a
// malformed value it writes a 400 and returns ok=false.
func (h *Handler) dateQuery(c *gin.Context, name string) (string, bool) {
	date := c.Query(name)
	if date == "" {
		return h.today(), true
	}
	if _, err := time.Parse(dateLayout, date); err != nil {
		apiError(c, http.StatusBadRequest, "invalid "+name+", expected YYYY-MM-DD")
		return "", false
	}
	return date, true
}

// dateOrToday returns d's key, or today when d is nil.
func (h *Handler) dateOrToday(d *DateOnly) string {
	if d == nil {
		return h.today()
	}
	return d.Key()
}

// indexParam reads the :index path param. On a non-integer value it writes a
// 400 and returns ok=false. Range checking is left to the ledger.
func indexParam(c *gin.Context) (int, bool) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		apiError(c, http.StatusBadRequest, "index must be an integer")
		return 0, false
	}
	return index, true
}

/* ─── Server setup ────────────────────────────────────────────────────── */

// getDBPool creates a connection pool for the key-value store.
func getDBPool(ctx context.Context, dbURL string) *pgxpool.Pool {
	config, err := pgxpool.ParseConfig(dbURL)
	if err != nil {
		log.Fatalf("Unable to parse DB URL: %v", err)
	}
	// Use simple query protocol to avoid "cached plan must not change result type"
	// errors from server-side prepared statement caches after schema changes.
	config.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol
	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		log.Fatalf("Unable to connect to database: %v", err)
	}
	log.Info("DB pool ready!")
	return pool
}

// newRouter builds the gin engine with middleware and all routes.
func newRouter(h *Handler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestIDMiddleware(), requestLogger())
	router.SetTrustedProxies(nil)
	h.registerRoutes(router)
	return router
}

// registerRoutes registers all API routes on the router.
func (h *Handler) registerRoutes(router *gin.Engine) {
	api := router.Group("/api")
	api.GET("/profile", h.getProfile)
	api.PATCH("/profile", h.patchProfile)
	api.GET("/log/daily", h.getDailySummary)
	api.POST("/log/food", h.createFoodEntry)
	api.DELETE("/log/food/:index", h.deleteFoodEntry)
	api.POST("/log/workouts", h.createWorkoutEntry)
	api.DELETE("/log/workouts/:index", h.deleteWorkoutEntry)
	api.GET("/trend", h.getTrend)
	api.GET("/catalog/foods", h.searchFoodCatalog)
	api.GET("/catalog/workouts", h.listWorkoutCatalog)
	api.GET("/coach", h.getCoach)
	api.POST("/coach/ask", h.askCoach)
	api.POST("/coach/tips/:id", h.applyCoachTip)
}
