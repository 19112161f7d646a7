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

// ExpenseHandler serves expense CRUD.
type ExpenseHandler struct {
	expenses  services.ExpenseServicer
	audit     services.AuditServicer
	publisher events.Publisher
}

func NewExpenseHandler(expenses services.ExpenseServicer, audit services.AuditServicer, publisher events.Publisher) *ExpenseHandler {
	return &ExpenseHandler{expenses: expenses, audit: audit, publisher: publisher}
}

// Create godoc
// @Summary Record an expense
// @Tags expenses
// @Accept json
// @Produce json
// @Param request body services.CreateExpenseRequest true "Expense payload"
// @Success 201 {object} models.Expense
// @Failure 400 {object} map[string]interface{}
// @Security BearerAuth
// @Router /expenses [post]
func (h *ExpenseHandler) Create(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	var req services.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, errors.Wrap(errors.ErrInvalidInput, err))
		return
	}

	expense, err := h.expenses.Create(c.Request.Context(), userID, req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.publisher.PublishExpenseCreated(c.Request.Context(), events.ExpenseCreatedMessage{
		UserID:     userID,
		ExpenseID:  expense.ID,
		Amount:     expense.Amount,
		Category:   string(expense.Category),
		Date:       expense.Date.String(),
		OccurredAt: time.Now(),
	}); err != nil {
		logger.Get().Warnw("expense event not published", "expense_id", expense.ID, "error", err)
	}

	h.audit.Log(c.Request.Context(), userID, "create", "expense", expense.ID, c.ClientIP(), map[string]any{
		"amount":   expense.Amount,
		"category": expense.Category,
	})
	c.JSON(http.StatusCreated, expense)
}

// ListMonth godoc
// @Summary List a month's expenses
// @Tags expenses
// @Produce json
// @Param month path int true "Month (1-12)"
// @Param year path int true "Year"
// @Success 200 {array} models.Expense
// @Security BearerAuth
// @Router /expenses/{month}/{year} [get]
func (h *ExpenseHandler) ListMonth(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	month, year, ok := parseMonthYear(c)
	if !ok {
		return
	}

	expenses, err := h.expenses.ListMonth(c.Request.Context(), userID, month, year)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, expenses)
}

// List godoc
// @Summary List expenses across months
// @Tags expenses
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Items per page (max 100)"
// @Param from query string false "Inclusive start date (YYYY-MM-DD)"
// @Param to query string false "Inclusive end date (YYYY-MM-DD)"
// @Success 200 {object} pagination.PageResponse[models.Expense]
// @Security BearerAuth
// @Router /expenses [get]
func (h *ExpenseHandler) List(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	var req services.ListExpensesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondWithError(c, errors.Wrap(errors.ErrInvalidInput, err))
		return
	}

	resp, err := h.expenses.List(c.Request.Context(), userID, req)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Delete godoc
// @Summary Delete an expense
// @Tags expenses
// @Produce json
// @Param id path string true "Expense ID"
// @Success 204
// @Failure 404 {object} map[string]interface{}
// @Security BearerAuth
// @Router /expenses/{id} [delete]
func (h *ExpenseHandler) Delete(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	expenseID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.expenses.Delete(c.Request.Context(), userID, expenseID); err != nil {
		respondWithError(c, err)
		return
	}

	h.audit.Log(c.Request.Context(), userID, "delete", "expense", expenseID, c.ClientIP(), nil)
	c.Status(http.StatusNoContent)
}
