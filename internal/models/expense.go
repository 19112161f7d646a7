package models

// ExpenseCategory is the closed set of spending categories. Anything the
// client sends outside this set is rejected at binding time rather than
// falling through to a lookup default.
type ExpenseCategory string

const (
	CategoryFood      ExpenseCategory = "Food"
	CategoryTransport ExpenseCategory = "Transport"
	CategoryRent      ExpenseCategory = "Rent"
	CategoryFun       ExpenseCategory = "Fun"
	CategoryShopping  ExpenseCategory = "Shopping"
	CategoryOther     ExpenseCategory = "Other"
)

// ExpenseCategories lists all categories in display order.
var ExpenseCategories = []ExpenseCategory{
	CategoryFood,
	CategoryTransport,
	CategoryRent,
	CategoryFun,
	CategoryShopping,
	CategoryOther,
}

// Valid reports whether c is one of the known categories.
func (c ExpenseCategory) Valid() bool {
	switch c {
	case CategoryFood, CategoryTransport, CategoryRent, CategoryFun, CategoryShopping, CategoryOther:
		return true
	}
	return false
}

// Icon returns the display icon for a category. Unknown values map to the
// Other icon.
func (c ExpenseCategory) Icon() string {
	switch c {
	case CategoryFood:
		return "🍔"
	case CategoryTransport:
		return "🚌"
	case CategoryRent:
		return "🏠"
	case CategoryFun:
		return "🎉"
	case CategoryShopping:
		return "🛍️"
	default:
		return "📦"
	}
}

// Expense is a single spending record. Amounts are integer cents.
// Expenses are immutable once created; the only mutation is deletion.
type Expense struct {
	Base
	UserID   string          `gorm:"type:uuid;not null;index" json:"user_id"`
	Amount   int64           `gorm:"type:bigint;not null" json:"amount"`
	Category ExpenseCategory `gorm:"not null" json:"category"`
	Note     string          `json:"note,omitempty"`
	Date     Date            `gorm:"not null;index" json:"date"`
}

// Merchant returns the merchant label for aggregation: the note when
// present, otherwise the category name.
func (e *Expense) Merchant() string {
	if e.Note != "" {
		return e.Note
	}
	return string(e.Category)
}
