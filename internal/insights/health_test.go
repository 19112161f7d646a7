package insights

import (
	"testing"

	"github.com/thrashered1/SmartSaveAI/internal/models"
)

func TestHealthScore(t *testing.T) {
	t.Run("no_spending_scores_full_adherence", func(t *testing.T) {
		s := HealthScore(100000, nil, 100000, 15, 30)

		if s.Adherence != 40 {
			t.Errorf("expected full adherence 40, got %f", s.Adherence)
		}
		if s.SavingsRate != 30 {
			t.Errorf("expected savings clamped at 30, got %f", s.SavingsRate)
		}
		if s.Consistency != 20 {
			t.Errorf("expected consistency 20 with no spend days, got %f", s.Consistency)
		}
		if s.EmergencyFund != 10 {
			t.Errorf("expected emergency fund capped at 10, got %f", s.EmergencyFund)
		}
		if s.Total != 100 || s.Label != "Excellent" {
			t.Errorf("expected 100/Excellent, got %d/%s", s.Total, s.Label)
		}
	})

	t.Run("savings_rate_clamps_when_money_left_exceeds_income", func(t *testing.T) {
		// Extra income recorded mid-month can push moneyLeft past income;
		// the sub-score must still respect its ceiling.
		s := HealthScore(50000, nil, 120000, 10, 30)
		if s.SavingsRate != 30 {
			t.Errorf("expected savings clamped to 30, got %f", s.SavingsRate)
		}
		if s.EmergencyFund != 10 {
			t.Errorf("expected emergency clamped to 10, got %f", s.EmergencyFund)
		}
	})

	t.Run("sub_scores_never_negative", func(t *testing.T) {
		expenses := []models.Expense{
			expense(200000, models.CategoryShopping, sept(2)), // wildly over budget
		}
		s := HealthScore(50000, expenses, -150000, 20, 30)

		for name, v := range map[string]float64{
			"adherence":      s.Adherence,
			"savings_rate":   s.SavingsRate,
			"consistency":    s.Consistency,
			"emergency_fund": s.EmergencyFund,
		} {
			if v < 0 {
				t.Errorf("%s went negative: %f", name, v)
			}
		}
	})

	t.Run("bounds_hold_over_varied_inputs", func(t *testing.T) {
		inputs := []struct {
			income, spent int64
			day, days     int
		}{
			{100000, 10000, 1, 31},
			{100000, 99999, 28, 28},
			{1, 100000, 15, 30},
			{0, 5000, 15, 30},
		}
		for _, in := range inputs {
			expenses := []models.Expense{expense(in.spent, models.CategoryOther, sept(1))}
			s := HealthScore(in.income, expenses, in.income-in.spent, in.day, in.days)

			if s.Adherence < 0 || s.Adherence > 40 {
				t.Errorf("adherence out of bounds: %f for %+v", s.Adherence, in)
			}
			if s.SavingsRate < 0 || s.SavingsRate > 30 {
				t.Errorf("savings out of bounds: %f for %+v", s.SavingsRate, in)
			}
			if s.Consistency < 0 || s.Consistency > 20 {
				t.Errorf("consistency out of bounds: %f for %+v", s.Consistency, in)
			}
			if s.EmergencyFund < 0 || s.EmergencyFund > 10 {
				t.Errorf("emergency out of bounds: %f for %+v", s.EmergencyFund, in)
			}
			if s.Total < 0 || s.Total > 100 {
				t.Errorf("total out of bounds: %d for %+v", s.Total, in)
			}
		}
	})

	t.Run("erratic_spending_lowers_consistency", func(t *testing.T) {
		steady := []models.Expense{
			expense(1000, models.CategoryFood, sept(1)),
			expense(1000, models.CategoryFood, sept(2)),
			expense(1000, models.CategoryFood, sept(3)),
		}
		erratic := []models.Expense{
			expense(100, models.CategoryFood, sept(1)),
			expense(20000, models.CategoryFood, sept(2)),
			expense(300, models.CategoryFood, sept(3)),
		}
		a := HealthScore(100000, steady, 97000, 3, 30)
		b := HealthScore(100000, erratic, 79600, 3, 30)

		if b.Consistency >= a.Consistency {
			t.Errorf("expected erratic consistency %f below steady %f", b.Consistency, a.Consistency)
		}
		if a.Consistency != 20 {
			t.Errorf("expected zero-variance spend to score full 20, got %f", a.Consistency)
		}
	})
}

func TestScoreLabel(t *testing.T) {
	cases := []struct {
		score int
		label string
	}{
		{100, "Excellent"},
		{81, "Excellent"},
		{80, "Good"},
		{61, "Good"},
		{60, "Fair"},
		{41, "Fair"},
		{40, "Poor"},
		{0, "Poor"},
	}
	for _, c := range cases {
		if got := ScoreLabel(c.score); got != c.label {
			t.Errorf("ScoreLabel(%d) = %s, want %s", c.score, got, c.label)
		}
	}
}
