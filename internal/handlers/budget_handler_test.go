package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/thrashered1/SmartSaveAI/internal/errors"
	"github.com/thrashered1/SmartSaveAI/internal/middleware"
	"github.com/thrashered1/SmartSaveAI/internal/models"
	"github.com/thrashered1/SmartSaveAI/internal/services"
)

type fakeBudgetService struct {
	budget *models.Budget
	err    error
}

func (f *fakeBudgetService) Get(context.Context, string, int, int) (*models.Budget, error) {
	return f.budget, f.err
}
func (f *fakeBudgetService) Create(context.Context, string, services.CreateBudgetRequest) (*models.Budget, error) {
	return f.budget, f.err
}
func (f *fakeBudgetService) Update(context.Context, string, int, int, services.UpdateBudgetRequest) (*models.Budget, error) {
	return f.budget, f.err
}
func (f *fakeBudgetService) AddIncomeSource(context.Context, string, int, int, services.IncomeSourceInput) (*models.Budget, error) {
	return f.budget, f.err
}

type nopAudit struct{}

func (nopAudit) Log(context.Context, string, string, string, string, string, map[string]any) {}

// injectUserID stands in for the auth middleware.
func injectUserID(id string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userID", id)
		c.Next()
	}
}

func newBudgetRouter(svc services.BudgetServicer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.ErrorHandler(), injectUserID("user-1"))
	h := NewBudgetHandler(svc, nopAudit{})
	r.GET("/budgets/:month/:year", h.Get)
	r.POST("/budgets", h.Create)
	return r
}

func TestBudgetHandlerGet(t *testing.T) {
	t.Run("existing budget", func(t *testing.T) {
		budget := &models.Budget{Month: 9, Year: 2025, TotalIncome: 300_000}
		r := newBudgetRouter(&fakeBudgetService{budget: budget})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/budgets/9/2025", nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var got models.Budget
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid JSON: %v", err)
		}
		if got.TotalIncome != 300_000 {
			t.Errorf("expected total 300000, got %d", got.TotalIncome)
		}
	})

	t.Run("missing budget maps to the error envelope", func(t *testing.T) {
		r := newBudgetRouter(&fakeBudgetService{err: errors.ErrBudgetNotFound})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/budgets/9/2025", nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "BUDGET_NOT_FOUND") {
			t.Errorf("expected BUDGET_NOT_FOUND code, got %s", w.Body.String())
		}
	})

	t.Run("month out of range", func(t *testing.T) {
		r := newBudgetRouter(&fakeBudgetService{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/budgets/13/2025", nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestBudgetHandlerCreate(t *testing.T) {
	t.Run("invalid body", func(t *testing.T) {
		r := newBudgetRouter(&fakeBudgetService{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/budgets", strings.NewReader(`{"month": 0}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("duplicate month", func(t *testing.T) {
		r := newBudgetRouter(&fakeBudgetService{err: errors.ErrBudgetExists})

		body := `{"month":9,"year":2025,"income_sources":[{"name":"Salary","amount":100000}]}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/budgets", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d: %s", w.Code, w.Body.String())
		}
	})
}
