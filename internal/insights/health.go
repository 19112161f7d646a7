package insights

import (
	"math"

	"github.com/thrashered1/SmartSaveAI/internal/models"
)

// Sub-score ceilings. The four components always sum to at most 100.
const (
	maxAdherence   = 40.0
	maxSavings     = 30.0
	maxConsistency = 20.0
	maxEmergency   = 10.0
)

// ScoreBreakdown is the composite health score with its components. Each
// component is clamped to [0, max]; Total is the rounded sum.
type ScoreBreakdown struct {
	Adherence     float64 `json:"adherence"`
	SavingsRate   float64 `json:"savings_rate"`
	Consistency   float64 `json:"consistency"`
	EmergencyFund float64 `json:"emergency_fund"`
	Total         int     `json:"total"`
	Label         string  `json:"label"`
}

// HealthScore blends four heuristics into a 0-100 score:
//
//   - adherence (40): expected pro-rata spend versus actual spend,
//     full marks when nothing was spent yet;
//   - savings rate (30): money left as a share of income, clamped at the
//     ceiling even when mid-month income pushes moneyLeft past income;
//   - consistency (20): 20 minus population variance of per-day spend
//     (in currency units) over 100, floored at zero — a scale-sensitive
//     heuristic, not a normalized statistic;
//   - emergency fund (10): months of reserve times ten, capped.
func HealthScore(totalIncome int64, expenses []models.Expense, moneyLeft int64, dayOfMonth, daysInMonth int) ScoreBreakdown {
	totalSpent := TotalSpent(expenses)

	adherence := maxAdherence
	if totalSpent > 0 && daysInMonth > 0 {
		dailyBudget := float64(totalIncome) / float64(daysInMonth)
		expectedSpent := dailyBudget * float64(dayOfMonth)
		adherence = clamp(expectedSpent/float64(totalSpent)*maxAdherence, 0, maxAdherence)
	}

	var savings float64
	if moneyLeft > 0 && totalIncome > 0 {
		savings = clamp(float64(moneyLeft)/float64(totalIncome)*maxSavings, 0, maxSavings)
	}

	consistency := maxConsistency
	if variance, ok := dailyVariance(expenses); ok {
		consistency = clamp(maxConsistency-variance/100, 0, maxConsistency)
	}

	var emergency float64
	if totalIncome > 0 {
		monthsReserve := float64(moneyLeft) / float64(totalIncome)
		emergency = clamp(monthsReserve*maxEmergency, 0, maxEmergency)
	}

	total := int(math.Round(adherence + savings + consistency + emergency))
	return ScoreBreakdown{
		Adherence:     adherence,
		SavingsRate:   savings,
		Consistency:   consistency,
		EmergencyFund: emergency,
		Total:         total,
		Label:         ScoreLabel(total),
	}
}

// ScoreLabel bands a total score, evaluated top-down with inclusive
// lower bounds.
func ScoreLabel(total int) string {
	switch {
	case total >= 81:
		return "Excellent"
	case total >= 61:
		return "Good"
	case total >= 41:
		return "Fair"
	default:
		return "Poor"
	}
}

// dailyVariance returns the population variance of per-day spend totals
// in currency units. The second return is false when there are no
// expenses to bucket.
func dailyVariance(expenses []models.Expense) (float64, bool) {
	if len(expenses) == 0 {
		return 0, false
	}

	perDay := make(map[models.Date]int64)
	for _, e := range expenses {
		perDay[e.Date] += e.Amount
	}

	values := make([]float64, 0, len(perDay))
	var sum float64
	for _, cents := range perDay {
		v := float64(cents) / 100
		values = append(values, v)
		sum += v
	}
	mean := sum / float64(len(values))

	var variance float64
	for _, v := range values {
		variance += (v - mean) * (v - mean)
	}
	variance /= float64(len(values))
	return variance, true
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
