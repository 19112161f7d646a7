package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/thrashered1/SmartSaveAI/internal/insights"
	"github.com/thrashered1/SmartSaveAI/internal/models"
)

// InsightService implements InsightServicer. All derivation is pure; this
// service only assembles snapshots for the insights package to chew on.
type InsightService struct {
	budgets  BudgetServicer
	expenses ExpenseServicer
}

func NewInsightService(budgets BudgetServicer, expenses ExpenseServicer) *InsightService {
	return &InsightService{budgets: budgets, expenses: expenses}
}

// Summary returns the runway plus health score for one month as of today.
func (s *InsightService) Summary(ctx context.Context, userID string, month, year int, today models.Date) (*SummaryResult, error) {
	budget, err := s.budgets.Get(ctx, userID, month, year)
	if err != nil {
		return nil, err
	}
	expenses, err := s.expenses.ListMonth(ctx, userID, month, year)
	if err != nil {
		return nil, err
	}

	summary := insights.ComputeRunway(budget.TotalIncome, expenses, today)
	score := insights.HealthScore(budget.TotalIncome, expenses, summary.MoneyLeft, today.Day(), summary.DaysInMonth)

	return &SummaryResult{Summary: summary, Score: score}, nil
}

// Analytics assembles the full derived view of a month. The current and
// previous month snapshots are fetched concurrently.
func (s *InsightService) Analytics(ctx context.Context, userID string, month, year int) (*AnalyticsResult, error) {
	prevMonth, prevYear := month-1, year
	if prevMonth == 0 {
		prevMonth, prevYear = 12, year-1
	}

	var current, previous []models.Expense
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		current, err = s.expenses.ListMonth(gctx, userID, month, year)
		return err
	})
	g.Go(func() error {
		var err error
		previous, err = s.expenses.ListMonth(gctx, userID, prevMonth, prevYear)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	daily := insights.DailySeries(current)

	return &AnalyticsResult{
		Categories: insights.CategoryTotals(current),
		Merchants:  insights.MerchantTotals(current),
		Comparison: insights.CompareMonths(current, previous),
		Daily:      daily,
		Weekend:    insights.WeekendBreakdown(daily),
		Highlights: insights.TopHighlights(current),
	}, nil
}
