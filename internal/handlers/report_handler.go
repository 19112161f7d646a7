package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thrashered1/SmartSaveAI/internal/services"
)

// ReportHandler serves the downloadable monthly report.
type ReportHandler struct {
	reports services.ReportServicer
}

func NewReportHandler(reports services.ReportServicer) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// Download godoc
// @Summary Download a month's report
// @Description Renders the month into a plain-text report served as an attachment.
// @Tags reports
// @Produce plain
// @Param month path int true "Month (1-12)"
// @Param year path int true "Year"
// @Success 200 {string} string "Report body"
// @Security BearerAuth
// @Router /reports/{month}/{year} [get]
func (h *ReportHandler) Download(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	month, year, ok := parseMonthYear(c)
	if !ok {
		return
	}

	body, filename, err := h.reports.Render(c.Request.Context(), userID, month, year)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/plain; charset=utf-8", body)
}
