// Package insights holds the derivation logic over expense snapshots:
// budget runway, category/merchant/trend aggregation, the financial
// health score, and the streak step. Everything here is a pure function
// of its arguments; callers fetch a snapshot and pass "today" in, so
// identical input always yields identical output.
package insights

import (
	"time"

	"github.com/thrashered1/SmartSaveAI/internal/models"
)

// Summary describes the budget runway at a point within a month. All
// amounts are integer cents; the per-day rates are fractional cents.
type Summary struct {
	TotalSpent     int64   `json:"total_spent"`
	MoneyLeft      int64   `json:"money_left"`
	DaysInMonth    int     `json:"days_in_month"`
	DaysLeft       int     `json:"days_left"`
	BurnRate       float64 `json:"burn_rate"`
	SafeDailySpend float64 `json:"safe_daily_spend"`
	OverBudget     bool    `json:"over_budget"`
}

// DaysInMonth returns the number of calendar days in the given month.
func DaysInMonth(year int, month time.Month) int {
	// Day zero of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// TotalSpent sums the expense amounts.
func TotalSpent(expenses []models.Expense) int64 {
	var total int64
	for _, e := range expenses {
		total += e.Amount
	}
	return total
}

// ComputeRunway derives the runway numbers for today within today's
// month. MoneyLeft may go negative; a negative safe daily spend marks the
// summary over budget rather than being hidden. Zero or missing inputs
// degrade to zero-valued outputs, never to a panic.
func ComputeRunway(totalIncome int64, expenses []models.Expense, today models.Date) Summary {
	totalSpent := TotalSpent(expenses)
	moneyLeft := totalIncome - totalSpent

	daysInMonth := DaysInMonth(today.Year(), today.Month())
	dayOfMonth := today.Day()
	daysLeft := daysInMonth - dayOfMonth

	var burnRate float64
	if dayOfMonth > 0 {
		burnRate = float64(totalSpent) / float64(dayOfMonth)
	}

	var safeDailySpend float64
	if daysLeft > 0 {
		safeDailySpend = float64(moneyLeft) / float64(daysLeft)
	}

	return Summary{
		TotalSpent:     totalSpent,
		MoneyLeft:      moneyLeft,
		DaysInMonth:    daysInMonth,
		DaysLeft:       daysLeft,
		BurnRate:       burnRate,
		SafeDailySpend: safeDailySpend,
		OverBudget:     safeDailySpend < 0,
	}
}
