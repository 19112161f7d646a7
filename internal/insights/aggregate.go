package insights

import (
	"sort"
	"time"

	"github.com/thrashered1/SmartSaveAI/internal/models"
)

// CategoryTotal is one row of the category breakdown.
type CategoryTotal struct {
	Category   models.ExpenseCategory `json:"category"`
	Amount     int64                  `json:"amount"`
	Percentage float64                `json:"percentage"`
}

// CategoryTotals groups expenses by category and sums per group, sorted
// descending by sum. Ties keep first-encountered order. Percentages are
// of the overall total and are all zero when nothing was spent.
func CategoryTotals(expenses []models.Expense) []CategoryTotal {
	totalSpent := TotalSpent(expenses)

	sums := make(map[models.ExpenseCategory]int64)
	var order []models.ExpenseCategory
	for _, e := range expenses {
		if _, seen := sums[e.Category]; !seen {
			order = append(order, e.Category)
		}
		sums[e.Category] += e.Amount
	}

	totals := make([]CategoryTotal, 0, len(order))
	for _, cat := range order {
		var pct float64
		if totalSpent > 0 {
			pct = float64(sums[cat]) / float64(totalSpent) * 100
		}
		totals = append(totals, CategoryTotal{Category: cat, Amount: sums[cat], Percentage: pct})
	}

	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].Amount > totals[j].Amount
	})
	return totals
}

// MerchantTotal summarizes spending against one merchant.
type MerchantTotal struct {
	Name    string  `json:"name"`
	Total   int64   `json:"total"`
	Count   int     `json:"count"`
	Average float64 `json:"average"`
}

// maxMerchants caps the merchant breakdown to the biggest spenders.
const maxMerchants = 5

// MerchantTotals groups expenses by merchant label (the note, or the
// category when the note is empty), sorted descending by total and
// truncated to the top five.
func MerchantTotals(expenses []models.Expense) []MerchantTotal {
	type bucket struct {
		total int64
		count int
	}
	buckets := make(map[string]*bucket)
	var order []string
	for i := range expenses {
		name := expenses[i].Merchant()
		b, seen := buckets[name]
		if !seen {
			b = &bucket{}
			buckets[name] = b
			order = append(order, name)
		}
		b.total += expenses[i].Amount
		b.count++
	}

	merchants := make([]MerchantTotal, 0, len(order))
	for _, name := range order {
		b := buckets[name]
		merchants = append(merchants, MerchantTotal{
			Name:    name,
			Total:   b.total,
			Count:   b.count,
			Average: float64(b.total) / float64(b.count),
		})
	}

	sort.SliceStable(merchants, func(i, j int) bool {
		return merchants[i].Total > merchants[j].Total
	})
	if len(merchants) > maxMerchants {
		merchants = merchants[:maxMerchants]
	}
	return merchants
}

// CategoryDelta is the month-over-month change within one category.
type CategoryDelta struct {
	Category      models.ExpenseCategory `json:"category"`
	ThisMonth     int64                  `json:"this_month"`
	LastMonth     int64                  `json:"last_month"`
	Delta         int64                  `json:"delta"`
	PercentChange float64                `json:"percent_change"`
}

// Comparison contrasts this calendar month's spending with the previous.
type Comparison struct {
	ThisMonthTotal int64           `json:"this_month_total"`
	LastMonthTotal int64           `json:"last_month_total"`
	Difference     int64           `json:"difference"`
	PercentChange  float64         `json:"percent_change"`
	Categories     []CategoryDelta `json:"categories"`
}

// CompareMonths computes totals and per-category deltas between the
// current and previous month's expenses. Percent change is zero when the
// prior amount is zero; categories sort by absolute delta descending with
// stable ties.
func CompareMonths(current, previous []models.Expense) Comparison {
	thisTotal := TotalSpent(current)
	lastTotal := TotalSpent(previous)
	difference := thisTotal - lastTotal

	var pctChange float64
	if lastTotal > 0 {
		pctChange = float64(difference) / float64(lastTotal) * 100
	}

	thisByCat := make(map[models.ExpenseCategory]int64)
	lastByCat := make(map[models.ExpenseCategory]int64)
	var order []models.ExpenseCategory
	seen := make(map[models.ExpenseCategory]bool)
	for _, e := range current {
		if !seen[e.Category] {
			seen[e.Category] = true
			order = append(order, e.Category)
		}
		thisByCat[e.Category] += e.Amount
	}
	for _, e := range previous {
		if !seen[e.Category] {
			seen[e.Category] = true
			order = append(order, e.Category)
		}
		lastByCat[e.Category] += e.Amount
	}

	deltas := make([]CategoryDelta, 0, len(order))
	for _, cat := range order {
		delta := thisByCat[cat] - lastByCat[cat]
		var pct float64
		if lastByCat[cat] > 0 {
			pct = float64(delta) / float64(lastByCat[cat]) * 100
		}
		deltas = append(deltas, CategoryDelta{
			Category:      cat,
			ThisMonth:     thisByCat[cat],
			LastMonth:     lastByCat[cat],
			Delta:         delta,
			PercentChange: pct,
		})
	}

	sort.SliceStable(deltas, func(i, j int) bool {
		return abs64(deltas[i].Delta) > abs64(deltas[j].Delta)
	})

	return Comparison{
		ThisMonthTotal: thisTotal,
		LastMonthTotal: lastTotal,
		Difference:     difference,
		PercentChange:  pctChange,
		Categories:     deltas,
	}
}

// DayOfWeekTotal is total spending accumulated on one weekday.
type DayOfWeekTotal struct {
	Day   time.Weekday `json:"day"`
	Total int64        `json:"total"`
}

// Highlights are the headline facts derived from a period's expenses.
type Highlights struct {
	Biggest              *models.Expense        `json:"biggest,omitempty"`
	MostFrequentCategory models.ExpenseCategory `json:"most_frequent_category"`
	MostFrequentCount    int                    `json:"most_frequent_count"`
	AverageDaily         float64                `json:"average_daily"`
	MostExpensiveDay     *DayOfWeekTotal        `json:"most_expensive_day,omitempty"`
	CheapestDay          *DayOfWeekTotal        `json:"cheapest_day,omitempty"`
	Total                int64                  `json:"total"`
	Count                int                    `json:"count"`
}

// weekdaysMondayFirst fixes the tie-break iteration order for the
// day-of-week stats.
var weekdaysMondayFirst = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
	time.Friday, time.Saturday, time.Sunday,
}

// TopHighlights derives the biggest single expense, most frequent
// category, average daily spend over distinct days, and the most and
// least expensive days of the week. All ties resolve to the first-seen
// candidate; day-of-week ties follow Monday-first order. Returns the zero
// Highlights for an empty snapshot.
func TopHighlights(expenses []models.Expense) Highlights {
	if len(expenses) == 0 {
		return Highlights{}
	}

	biggest := expenses[0]
	for _, e := range expenses[1:] {
		if e.Amount > biggest.Amount {
			biggest = e
		}
	}

	counts := make(map[models.ExpenseCategory]int)
	var catOrder []models.ExpenseCategory
	for _, e := range expenses {
		if counts[e.Category] == 0 {
			catOrder = append(catOrder, e.Category)
		}
		counts[e.Category]++
	}
	frequent := catOrder[0]
	for _, cat := range catOrder[1:] {
		if counts[cat] > counts[frequent] {
			frequent = cat
		}
	}

	total := TotalSpent(expenses)
	days := make(map[models.Date]bool)
	for _, e := range expenses {
		days[e.Date] = true
	}
	distinctDays := len(days)
	if distinctDays == 0 {
		distinctDays = 1
	}
	avgDaily := float64(total) / float64(distinctDays)

	dayTotals := make(map[time.Weekday]int64)
	for _, e := range expenses {
		dayTotals[e.Date.Weekday()] += e.Amount
	}
	var most, least *DayOfWeekTotal
	for _, wd := range weekdaysMondayFirst {
		t, ok := dayTotals[wd]
		if !ok {
			continue
		}
		if most == nil || t > most.Total {
			most = &DayOfWeekTotal{Day: wd, Total: t}
		}
		if least == nil || t < least.Total {
			least = &DayOfWeekTotal{Day: wd, Total: t}
		}
	}

	b := biggest
	return Highlights{
		Biggest:              &b,
		MostFrequentCategory: frequent,
		MostFrequentCount:    counts[frequent],
		AverageDaily:         avgDaily,
		MostExpensiveDay:     most,
		CheapestDay:          least,
		Total:                total,
		Count:                len(expenses),
	}
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
