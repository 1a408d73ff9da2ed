package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mirraashid/survey-response-service/internal/models"
	"github.com/mirraashid/survey-response-service/internal/store"
)

// RegisterSubmissionRoutes registers the ingestion-path endpoint.
//
// POST /api/submissions
// - answers must be a non-empty JSON object; its internal shape is never inspected
// - Durable: 201 only after the store confirms the write
// - No retries here; callers own retry/backoff policy
func RegisterSubmissionRoutes(r gin.IRoutes, st store.Store, saveTimeout time.Duration) {
	r.POST("/api/submissions", func(c *gin.Context) {
		var req models.SubmissionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON payload"})
			return
		}

		// Required shape per contract: a present, non-empty object.
		// Absent and null both decode to a nil map.
		if req.Answers == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "answers must be an object"})
			return
		}
		if len(req.Answers) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "answers must not be empty"})
			return
		}

		// Bound the storage call so a stuck backend surfaces as unavailable
		// instead of holding the request open.
		ctx, cancel := context.WithTimeout(c.Request.Context(), saveTimeout)
		defer cancel()

		saved, err := st.Save(ctx, req.SurveyID, req.Answers)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "storage unavailable"})
			return
		}

		c.JSON(http.StatusCreated, models.SubmissionReceipt{
			Message: "submission saved",
			Saved:   saved,
		})
	})
}
