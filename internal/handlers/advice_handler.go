package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thrashered1/SmartSaveAI/internal/errors"
	"github.com/thrashered1/SmartSaveAI/internal/services"
)

// AdviceHandler serves AI spending advice.
type AdviceHandler struct {
	advice services.AdviceServicer
}

func NewAdviceHandler(advice services.AdviceServicer) *AdviceHandler {
	return &AdviceHandler{advice: advice}
}

// Advise godoc
// @Summary Get AI advice for the current month
// @Description Summarizes the current month's budget and spending and asks the model for guidance. The client's figures are advisory; everything is recomputed from stored data. Falls back to a canned line when the model is unreachable.
// @Tags advice
// @Accept json
// @Produce json
// @Param request body services.AdviceRequest true "Client snapshot of the month"
// @Success 200 {object} services.AdviceResponse
// @Failure 404 {object} map[string]interface{}
// @Security BearerAuth
// @Router /ai-advice [post]
func (h *AdviceHandler) Advise(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	var req services.AdviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, errors.Wrap(errors.ErrInvalidInput, err))
		return
	}

	resp, err := h.advice.Advise(c.Request.Context(), userID, req)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
