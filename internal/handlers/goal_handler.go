package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/thrashered1/SmartSaveAI/internal/errors"
	"github.com/thrashered1/SmartSaveAI/internal/events"
	"github.com/thrashered1/SmartSaveAI/internal/logger"
	"github.com/thrashered1/SmartSaveAI/internal/services"
)

// GoalHandler serves savings goals.
type GoalHandler struct {
	goals     services.GoalServicer
	audit     services.AuditServicer
	publisher events.Publisher
}

func NewGoalHandler(goals services.GoalServicer, audit services.AuditServicer, publisher events.Publisher) *GoalHandler {
	return &GoalHandler{goals: goals, audit: audit, publisher: publisher}
}

// List godoc
// @Summary List goals
// @Tags goals
// @Produce json
// @Success 200 {array} models.Goal
// @Security BearerAuth
// @Router /goals [get]
func (h *GoalHandler) List(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	goals, err := h.goals.List(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, goals)
}

// Create godoc
// @Summary Create a goal
// @Tags goals
// @Accept json
// @Produce json
// @Param request body services.CreateGoalRequest true "Goal payload"
// @Success 201 {object} models.Goal
// @Failure 400 {object} map[string]interface{}
// @Security BearerAuth
// @Router /goals [post]
func (h *GoalHandler) Create(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	var req services.CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, errors.Wrap(errors.ErrInvalidInput, err))
		return
	}

	goal, err := h.goals.Create(c.Request.Context(), userID, req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.audit.Log(c.Request.Context(), userID, "create", "goal", goal.ID, c.ClientIP(), map[string]any{
		"name":          goal.Name,
		"target_amount": goal.TargetAmount,
	})
	c.JSON(http.StatusCreated, goal)
}

// AddMoney godoc
// @Summary Deposit into a goal
// @Description Adds money to a goal. Crossing the target completes the goal and keeps the surplus.
// @Tags goals
// @Accept json
// @Produce json
// @Param id path string true "Goal ID"
// @Param request body services.AddMoneyRequest true "Deposit"
// @Success 200 {object} services.AddMoneyResult
// @Failure 404 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Security BearerAuth
// @Router /goals/{id}/add-money [post]
func (h *GoalHandler) AddMoney(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	goalID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req services.AddMoneyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, errors.Wrap(errors.ErrInvalidInput, err))
		return
	}

	result, err := h.goals.AddMoney(c.Request.Context(), userID, goalID, req.Amount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if result.Completed {
		if err := h.publisher.PublishGoalCompleted(c.Request.Context(), events.GoalCompletedMessage{
			UserID:        userID,
			GoalID:        goalID,
			Name:          result.GoalName,
			TargetAmount:  result.TargetAmount,
			CurrentAmount: result.NewAmount,
			Source:        req.Source,
			OccurredAt:    time.Now(),
		}); err != nil {
			logger.Get().Warnw("goal event not published", "goal_id", goalID, "error", err)
		}
	}

	changes := map[string]any{
		"amount":     req.Amount,
		"new_amount": result.NewAmount,
		"completed":  result.Completed,
	}
	if req.Source != "" {
		changes["source"] = req.Source
	}
	h.audit.Log(c.Request.Context(), userID, "add_money", "goal", goalID, c.ClientIP(), changes)
	c.JSON(http.StatusOK, result)
}

// Delete godoc
// @Summary Delete a goal
// @Tags goals
// @Produce json
// @Param id path string true "Goal ID"
// @Success 204
// @Failure 404 {object} map[string]interface{}
// @Security BearerAuth
// @Router /goals/{id} [delete]
func (h *GoalHandler) Delete(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	goalID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.goals.Delete(c.Request.Context(), userID, goalID); err != nil {
		respondWithError(c, err)
		return
	}

	h.audit.Log(c.Request.Context(), userID, "delete", "goal", goalID, c.ClientIP(), nil)
	c.Status(http.StatusNoContent)
}
