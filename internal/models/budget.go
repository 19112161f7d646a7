package models

// Budget is the monthly income plan. One budget exists per (user, month,
// year); TotalIncome is always the sum of the income sources and is
// recomputed server-side whenever the sources change.
type Budget struct {
	Base
	UserID        string         `gorm:"type:uuid;not null;uniqueIndex:idx_budget_period" json:"user_id"`
	Month         int            `gorm:"not null;uniqueIndex:idx_budget_period" json:"month"`
	Year          int            `gorm:"not null;uniqueIndex:idx_budget_period" json:"year"`
	TotalIncome   int64          `gorm:"type:bigint;not null" json:"total_income"`
	IncomeSources []IncomeSource `gorm:"foreignKey:BudgetID;constraint:OnDelete:CASCADE" json:"income_sources"`
}

// SumSources totals the income source amounts.
func (b *Budget) SumSources() int64 {
	var total int64
	for _, s := range b.IncomeSources {
		total += s.Amount
	}
	return total
}

// IncomeSource is one named contribution to a monthly budget, e.g. a
// salary or an allowance. Amounts are integer cents.
type IncomeSource struct {
	Base
	BudgetID string `gorm:"type:uuid;not null;index" json:"budget_id"`
	Name     string `gorm:"not null" json:"name"`
	Amount   int64  `gorm:"type:bigint;not null" json:"amount"`
}
