package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mirraashid/survey-response-service/internal/config"
	"github.com/mirraashid/survey-response-service/internal/handlers"
	"github.com/mirraashid/survey-response-service/internal/store"
)

// NewRouter wires the probe endpoints and the submission API.
// Public: /health, /ready, /api/submissions
func NewRouter(cfg config.Config, st store.Store) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())

	// Liveness: confirms the process is running.
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Readiness: confirms the store dependency is reachable.
	r.GET("/ready", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), time.Second)
		defer cancel()

		if err := st.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	handlers.RegisterSubmissionRoutes(r, st, cfg.SaveTimeout)

	return r
}
