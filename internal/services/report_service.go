package services

import (
	"context"
	"fmt"
	"time"

	"github.com/thrashered1/SmartSaveAI/internal/errors"
	"github.com/thrashered1/SmartSaveAI/internal/report"
)

// ReportService implements ReportServicer. Budgets are optional for a
// report, so a month without one still renders; the summary just omits
// the budget lines.
type ReportService struct {
	budgets  BudgetServicer
	expenses ExpenseServicer
	now      func() time.Time
}

func NewReportService(budgets BudgetServicer, expenses ExpenseServicer) *ReportService {
	return &ReportService{budgets: budgets, expenses: expenses, now: time.Now}
}

// Render produces the report body and its download filename.
func (s *ReportService) Render(ctx context.Context, userID string, month, year int) ([]byte, string, error) {
	expenses, err := s.expenses.ListMonth(ctx, userID, month, year)
	if err != nil {
		return nil, "", err
	}

	budget, err := s.budgets.Get(ctx, userID, month, year)
	if err != nil {
		if !errors.Is(err, errors.ErrBudgetNotFound) {
			return nil, "", err
		}
		budget = nil
	}

	generatedAt := s.now()
	label := fmt.Sprintf("%s %d", time.Month(month), year)
	body := report.Render(expenses, budget, label, generatedAt)
	return body, report.Filename(generatedAt), nil
}
