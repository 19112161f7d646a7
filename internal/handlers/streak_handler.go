package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/thrashered1/SmartSaveAI/internal/models"
	"github.com/thrashered1/SmartSaveAI/internal/services"
)

// StreakHandler serves the under-budget streak.
type StreakHandler struct {
	streaks services.StreakServicer
	audit   services.AuditServicer
}

func NewStreakHandler(streaks services.StreakServicer, audit services.AuditServicer) *StreakHandler {
	return &StreakHandler{streaks: streaks, audit: audit}
}

// Evaluate godoc
// @Summary Evaluate today's streak
// @Description Judges today against the safe daily spend. Repeat calls on the same day are no-ops.
// @Tags streaks
// @Produce json
// @Success 200 {object} services.StreakStatus
// @Failure 404 {object} map[string]interface{}
// @Security BearerAuth
// @Router /streaks/evaluate [post]
func (h *StreakHandler) Evaluate(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	status, err := h.streaks.Evaluate(c.Request.Context(), userID, models.DateOf(time.Now()))
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.audit.Log(c.Request.Context(), userID, "evaluate", "streak", userID, c.ClientIP(), map[string]any{
		"current": status.Current,
		"best":    status.Best,
	})
	c.JSON(http.StatusOK, status)
}

// Get godoc
// @Summary Current streak state
// @Tags streaks
// @Produce json
// @Success 200 {object} services.StreakStatus
// @Security BearerAuth
// @Router /streaks [get]
func (h *StreakHandler) Get(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	status, err := h.streaks.Get(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}
