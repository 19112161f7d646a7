package services

import (
	"context"

	"github.com/thrashered1/SmartSaveAI/internal/insights"
	"github.com/thrashered1/SmartSaveAI/internal/models"
	"github.com/thrashered1/SmartSaveAI/internal/pagination"
)

// RegisterRequest carries the payload for creating a new account.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" binding:"required,min=1,max=100"`
}

// LoginRequest carries the credentials for an existing account.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// IncomeSourceInput is one named income line inside a budget payload.
type IncomeSourceInput struct {
	Name   string `json:"name" binding:"required,min=1,max=100"`
	Amount int64  `json:"amount" binding:"required,gt=0"`
}

// CreateBudgetRequest creates the budget for one month. The total is always
// computed server side from the income sources.
type CreateBudgetRequest struct {
	Month         int                 `json:"month" binding:"required,min=1,max=12"`
	Year          int                 `json:"year" binding:"required,min=2000,max=2100"`
	IncomeSources []IncomeSourceInput `json:"income_sources" binding:"required,min=1,dive"`
}

// ListExpensesRequest filters and paginates the cross-month expense
// listing. From and To are inclusive "YYYY-MM-DD" bounds.
type ListExpensesRequest struct {
	pagination.PageRequest
	From string `form:"from" binding:"omitempty,calendar_date"`
	To   string `form:"to" binding:"omitempty,calendar_date"`
}

// UpdateBudgetRequest replaces the income sources of an existing budget.
type UpdateBudgetRequest struct {
	IncomeSources []IncomeSourceInput `json:"income_sources" binding:"required,min=1,dive"`
}

// CreateExpenseRequest records a single expense.
type CreateExpenseRequest struct {
	Amount   int64                  `json:"amount" binding:"required,gt=0"`
	Category models.ExpenseCategory `json:"category" binding:"required,expense_category"`
	Note     string                 `json:"note" binding:"max=200"`
	Date     models.Date            `json:"date" binding:"required"`
}

// CreateGoalRequest creates a savings goal.
type CreateGoalRequest struct {
	Name         string              `json:"name" binding:"required,min=1,max=100"`
	Icon         string              `json:"icon" binding:"max=10"`
	TargetAmount int64               `json:"target_amount" binding:"required,gt=0"`
	Deadline     *models.Date        `json:"deadline"`
	Priority     models.GoalPriority `json:"priority" binding:"omitempty,goal_priority"`
}

// AddMoneyRequest deposits into a goal. Source labels where the money
// came from, such as a salary or a bonus.
type AddMoneyRequest struct {
	Amount int64  `json:"amount" binding:"required,gt=0"`
	Source string `json:"source" binding:"max=100"`
}

// AddMoneyResult reports the goal state after a deposit. The goal fields
// are for event payloads and stay out of the JSON response.
type AddMoneyResult struct {
	NewAmount int64 `json:"new_amount"`
	Completed bool  `json:"completed"`

	GoalName     string `json:"-"`
	TargetAmount int64  `json:"-"`
}

// AdviceRequest is the client's snapshot of the current month. The figures
// are advisory only: the service recomputes everything from stored data, so
// stale or fabricated numbers cannot steer the prompt.
type AdviceRequest struct {
	MoneyLeft      int64   `json:"money_left"`
	DaysLeft       int     `json:"days_left"`
	BurnRate       float64 `json:"burn_rate"`
	SafeDailySpend float64 `json:"safe_daily_spend"`
	TotalIncome    int64   `json:"total_income"`
	TotalSpent     int64   `json:"total_spent"`
}

// AdviceResponse is the advice text plus whether the model was reachable.
type AdviceResponse struct {
	Advice   string `json:"advice"`
	Fallback bool   `json:"fallback"`
}

// SummaryResult bundles the runway figures with the health score.
type SummaryResult struct {
	insights.Summary
	Score insights.ScoreBreakdown `json:"score"`
}

// AnalyticsResult is the full derived view of one month.
type AnalyticsResult struct {
	Categories []insights.CategoryTotal `json:"categories"`
	Merchants  []insights.MerchantTotal `json:"merchants"`
	Comparison insights.Comparison      `json:"comparison"`
	Daily      []insights.DailyPoint    `json:"daily"`
	Weekend    insights.WeekendStats    `json:"weekend"`
	Highlights insights.Highlights      `json:"highlights"`
}

// StreakStatus is the persisted streak plus milestone progress.
type StreakStatus struct {
	Current           int                 `json:"current"`
	Best              int                 `json:"best"`
	LastEvaluated     string              `json:"last_evaluated,omitempty"`
	NextMilestone     *insights.Milestone `json:"next_milestone,omitempty"`
	MilestoneProgress float64             `json:"milestone_progress"`
}

// UserServicer manages accounts and credentials.
type UserServicer interface {
	Register(ctx context.Context, req RegisterRequest) (*models.User, error)
	Authenticate(ctx context.Context, req LoginRequest) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
}

// BudgetServicer manages monthly budgets and their income sources.
type BudgetServicer interface {
	Get(ctx context.Context, userID string, month, year int) (*models.Budget, error)
	Create(ctx context.Context, userID string, req CreateBudgetRequest) (*models.Budget, error)
	Update(ctx context.Context, userID string, month, year int, req UpdateBudgetRequest) (*models.Budget, error)
	AddIncomeSource(ctx context.Context, userID string, month, year int, src IncomeSourceInput) (*models.Budget, error)
}

// ExpenseServicer manages expense records.
type ExpenseServicer interface {
	Create(ctx context.Context, userID string, req CreateExpenseRequest) (*models.Expense, error)
	ListMonth(ctx context.Context, userID string, month, year int) ([]models.Expense, error)
	List(ctx context.Context, userID string, req ListExpensesRequest) (*pagination.PageResponse[models.Expense], error)
	Delete(ctx context.Context, userID, expenseID string) error
}

// GoalServicer manages savings goals.
type GoalServicer interface {
	List(ctx context.Context, userID string) ([]models.Goal, error)
	Create(ctx context.Context, userID string, req CreateGoalRequest) (*models.Goal, error)
	AddMoney(ctx context.Context, userID, goalID string, amount int64) (*AddMoneyResult, error)
	Delete(ctx context.Context, userID, goalID string) error
}

// StreakServicer advances and reports the under-budget streak.
type StreakServicer interface {
	Evaluate(ctx context.Context, userID string, today models.Date) (*StreakStatus, error)
	Get(ctx context.Context, userID string) (*StreakStatus, error)
}

// InsightServicer derives summaries and analytics from stored data.
type InsightServicer interface {
	Summary(ctx context.Context, userID string, month, year int, today models.Date) (*SummaryResult, error)
	Analytics(ctx context.Context, userID string, month, year int) (*AnalyticsResult, error)
}

// AdviceServicer produces AI-backed spending advice.
type AdviceServicer interface {
	Advise(ctx context.Context, userID string, req AdviceRequest) (*AdviceResponse, error)
}

// ReportServicer renders the downloadable monthly report.
type ReportServicer interface {
	Render(ctx context.Context, userID string, month, year int) ([]byte, string, error)
}

// AuditServicer records mutations for traceability.
type AuditServicer interface {
	Log(ctx context.Context, userID, action, resourceType, resourceID, ipAddress string, changes map[string]any)
}
