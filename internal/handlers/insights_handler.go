package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/thrashered1/SmartSaveAI/internal/models"
	"github.com/thrashered1/SmartSaveAI/internal/services"
)

// InsightsHandler serves the derived month views.
type InsightsHandler struct {
	insights services.InsightServicer
}

func NewInsightsHandler(insights services.InsightServicer) *InsightsHandler {
	return &InsightsHandler{insights: insights}
}

// Summary godoc
// @Summary Budget runway and health score for a month
// @Tags insights
// @Produce json
// @Param month path int true "Month (1-12)"
// @Param year path int true "Year"
// @Success 200 {object} services.SummaryResult
// @Failure 404 {object} map[string]interface{}
// @Security BearerAuth
// @Router /insights/summary/{month}/{year} [get]
func (h *InsightsHandler) Summary(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	month, year, ok := parseMonthYear(c)
	if !ok {
		return
	}

	// Past and future months are judged from their last day so the
	// runway numbers describe the month as a whole.
	today := models.DateOf(time.Now())
	if int(today.Month()) != month || today.Year() != year {
		today = models.NewDate(year, time.Month(month)+1, 0)
	}

	result, err := h.insights.Summary(c.Request.Context(), userID, month, year, today)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Analytics godoc
// @Summary Category, merchant, trend and comparison analytics for a month
// @Tags insights
// @Produce json
// @Param month path int true "Month (1-12)"
// @Param year path int true "Year"
// @Success 200 {object} services.AnalyticsResult
// @Security BearerAuth
// @Router /insights/analytics/{month}/{year} [get]
func (h *InsightsHandler) Analytics(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	month, year, ok := parseMonthYear(c)
	if !ok {
		return
	}

	result, err := h.insights.Analytics(c.Request.Context(), userID, month, year)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
