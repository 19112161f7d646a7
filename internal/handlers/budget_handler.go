package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thrashered1/SmartSaveAI/internal/errors"
	"github.com/thrashered1/SmartSaveAI/internal/services"
)

// BudgetHandler serves monthly budgets and their income sources.
type BudgetHandler struct {
	budgets services.BudgetServicer
	audit   services.AuditServicer
}

func NewBudgetHandler(budgets services.BudgetServicer, audit services.AuditServicer) *BudgetHandler {
	return &BudgetHandler{budgets: budgets, audit: audit}
}

// Get godoc
// @Summary Get the budget for a month
// @Description Returns the budget with its income sources. 404 with code BUDGET_NOT_FOUND means the user has not set this month up yet.
// @Tags budgets
// @Produce json
// @Param month path int true "Month (1-12)"
// @Param year path int true "Year"
// @Success 200 {object} models.Budget
// @Failure 404 {object} map[string]interface{}
// @Security BearerAuth
// @Router /budgets/{month}/{year} [get]
func (h *BudgetHandler) Get(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	month, year, ok := parseMonthYear(c)
	if !ok {
		return
	}

	budget, err := h.budgets.Get(c.Request.Context(), userID, month, year)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, budget)
}

// Create godoc
// @Summary Create a budget
// @Description Creates the budget for a month. The total income is computed from the income sources.
// @Tags budgets
// @Accept json
// @Produce json
// @Param request body services.CreateBudgetRequest true "Budget payload"
// @Success 201 {object} models.Budget
// @Failure 400 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Security BearerAuth
// @Router /budgets [post]
func (h *BudgetHandler) Create(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	var req services.CreateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, errors.Wrap(errors.ErrInvalidInput, err))
		return
	}

	budget, err := h.budgets.Create(c.Request.Context(), userID, req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.audit.Log(c.Request.Context(), userID, "create", "budget", budget.ID, c.ClientIP(), map[string]any{
		"month":        budget.Month,
		"year":         budget.Year,
		"total_income": budget.TotalIncome,
	})
	c.JSON(http.StatusCreated, budget)
}

// Update godoc
// @Summary Replace a budget's income sources
// @Description Swaps the income sources of an existing budget and recomputes the total.
// @Tags budgets
// @Accept json
// @Produce json
// @Param month path int true "Month (1-12)"
// @Param year path int true "Year"
// @Param request body services.UpdateBudgetRequest true "New income sources"
// @Success 200 {object} models.Budget
// @Failure 404 {object} map[string]interface{}
// @Security BearerAuth
// @Router /budgets/{month}/{year} [put]
func (h *BudgetHandler) Update(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	month, year, ok := parseMonthYear(c)
	if !ok {
		return
	}

	var req services.UpdateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, errors.Wrap(errors.ErrInvalidInput, err))
		return
	}

	budget, err := h.budgets.Update(c.Request.Context(), userID, month, year, req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.audit.Log(c.Request.Context(), userID, "update", "budget", budget.ID, c.ClientIP(), map[string]any{
		"total_income": budget.TotalIncome,
	})
	c.JSON(http.StatusOK, budget)
}

// AddIncomeSource godoc
// @Summary Add an income source
// @Description Appends one income source to an existing month's budget.
// @Tags budgets
// @Accept json
// @Produce json
// @Param month path int true "Month (1-12)"
// @Param year path int true "Year"
// @Param request body services.IncomeSourceInput true "Income source"
// @Success 200 {object} models.Budget
// @Failure 404 {object} map[string]interface{}
// @Security BearerAuth
// @Router /budgets/{month}/{year}/income [post]
func (h *BudgetHandler) AddIncomeSource(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	month, year, ok := parseMonthYear(c)
	if !ok {
		return
	}

	var req services.IncomeSourceInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, errors.Wrap(errors.ErrInvalidInput, err))
		return
	}

	budget, err := h.budgets.AddIncomeSource(c.Request.Context(), userID, month, year, req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.audit.Log(c.Request.Context(), userID, "add_income_source", "budget", budget.ID, c.ClientIP(), map[string]any{
		"name":   req.Name,
		"amount": req.Amount,
	})
	c.JSON(http.StatusOK, budget)
}
