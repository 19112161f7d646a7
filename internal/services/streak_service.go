package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/thrashered1/SmartSaveAI/internal/errors"
	"github.com/thrashered1/SmartSaveAI/internal/insights"
	"github.com/thrashered1/SmartSaveAI/internal/models"
)

// StreakService implements StreakServicer. It composes the budget and
// expense services so a day's verdict always comes from the same runway
// math the summary endpoint shows.
type StreakService struct {
	db       *gorm.DB
	budgets  BudgetServicer
	expenses ExpenseServicer
}

func NewStreakService(db *gorm.DB, budgets BudgetServicer, expenses ExpenseServicer) *StreakService {
	return &StreakService{db: db, budgets: budgets, expenses: expenses}
}

// Evaluate advances the streak for today. The first call of a calendar
// day judges it; repeat calls on the same day return the stored state
// unchanged, so refreshing a dashboard cannot double-count a day.
func (s *StreakService) Evaluate(ctx context.Context, userID string, today models.Date) (*StreakStatus, error) {
	streak, err := s.loadOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	if streak.LastEvaluated.Equal(today) {
		return status(streak), nil
	}

	month, year := int(today.Month()), today.Year()
	budget, err := s.budgets.Get(ctx, userID, month, year)
	if err != nil {
		return nil, err
	}
	expenses, err := s.expenses.ListMonth(ctx, userID, month, year)
	if err != nil {
		return nil, err
	}

	summary := insights.ComputeRunway(budget.TotalIncome, expenses, today)

	var todaySpent int64
	for _, e := range expenses {
		if e.Date.Equal(today) {
			todaySpent += e.Amount
		}
	}

	// A day with no runway left only passes if nothing was spent.
	underBudget := float64(todaySpent) <= summary.SafeDailySpend ||
		(todaySpent == 0 && summary.SafeDailySpend <= 0)

	streak.Current, streak.Best = insights.Advance(streak.Current, streak.Best, underBudget)
	streak.LastEvaluated = today

	err = s.db.WithContext(ctx).Model(streak).Updates(map[string]any{
		"current":        streak.Current,
		"best":           streak.Best,
		"last_evaluated": streak.LastEvaluated,
	}).Error
	if err != nil {
		return nil, errors.Wrap(errors.ErrInternalServer, err)
	}
	return status(streak), nil
}

// Get returns the stored streak without advancing it.
func (s *StreakService) Get(ctx context.Context, userID string) (*StreakStatus, error) {
	streak, err := s.loadOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	return status(streak), nil
}

func (s *StreakService) loadOrCreate(ctx context.Context, userID string) (*models.Streak, error) {
	var streak models.Streak
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&streak).Error
	if err == nil {
		return &streak, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errors.Wrap(errors.ErrInternalServer, err)
	}

	streak = models.Streak{UserID: userID}
	if err := s.db.WithContext(ctx).Create(&streak).Error; err != nil {
		return nil, errors.Wrap(errors.ErrInternalServer, err)
	}
	return &streak, nil
}

func status(streak *models.Streak) *StreakStatus {
	st := &StreakStatus{
		Current:           streak.Current,
		Best:              streak.Best,
		NextMilestone:     insights.NextMilestone(streak.Current),
		MilestoneProgress: insights.MilestoneProgress(streak.Current),
	}
	if !streak.LastEvaluated.IsZero() {
		st.LastEvaluated = streak.LastEvaluated.String()
	}
	return st
}
