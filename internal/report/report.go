// Package report renders a period's expenses into a deterministic,
// paginated plain-text document suitable for download and for golden-file
// comparison. The category table reuses the insights aggregation so the
// report can never drift from what the analytics endpoints say.
package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/thrashered1/SmartSaveAI/internal/insights"
	"github.com/thrashered1/SmartSaveAI/internal/models"
)

const (
	pageWidth    = 60
	linesPerPage = 40
	maxRows      = 20
	title        = "SmartSaveAI Report"
)

// Filename names the downloadable artifact for the day it was generated.
func Filename(generatedAt time.Time) string {
	return "SmartSaveAI-Report-" + generatedAt.Format("2006-01-02") + ".txt"
}

// Render assembles the report: header, summary, category breakdown, and
// the twenty most recent transactions, paginated with a page footer on
// every page. Output is byte-exact for identical input; the caller
// supplies the generation timestamp.
func Render(expenses []models.Expense, budget *models.Budget, periodLabel string, generatedAt time.Time) []byte {
	var lines []string
	add := func(format string, args ...interface{}) {
		lines = append(lines, fmt.Sprintf(format, args...))
	}

	total := insights.TotalSpent(expenses)

	add("%s", title)
	add("%s", strings.Repeat("=", len(title)))
	add("")
	add("Period:    %s", strings.ToUpper(periodLabel))
	add("Generated: %s", generatedAt.Format("Jan 02, 2006 15:04"))
	add("")

	add("Summary")
	add("-------")
	add("%-26s%s", "Total Expenses:", money(total))
	add("%-26s%d", "Transactions:", len(expenses))
	add("%-26s%s", "Average Daily Spending:", moneyFloat(averageDaily(expenses, total)))
	if budget != nil {
		add("%-26s%s", "Monthly Budget:", money(budget.TotalIncome))
		add("%-26s%s", "Money Left:", money(budget.TotalIncome-total))
	}
	add("")

	add("Category Breakdown")
	add("------------------")
	add("%-12s%14s%14s", "Category", "Amount", "Percentage")
	for _, ct := range insights.CategoryTotals(expenses) {
		add("%-12s%14s%13.1f%%", ct.Category, money(ct.Amount), ct.Percentage)
	}
	add("")

	add("Recent Transactions")
	add("-------------------")
	add("%-8s%-12s%-24s%12s", "Date", "Category", "Note", "Amount")
	for _, e := range recentFirst(expenses) {
		add("%-8s%-12s%-24s%12s", e.Date.Time().Format("Jan 02"), e.Category, noteOrDash(e.Note), money(e.Amount))
	}

	return paginate(lines)
}

// averageDaily is total spend over the number of distinct expense days.
func averageDaily(expenses []models.Expense, total int64) float64 {
	days := make(map[models.Date]bool)
	for _, e := range expenses {
		days[e.Date] = true
	}
	n := len(days)
	if n == 0 {
		n = 1
	}
	return float64(total) / float64(n)
}

// recentFirst returns the most recent transactions, newest first, capped
// at maxRows. Same-day transactions keep their input order.
func recentFirst(expenses []models.Expense) []models.Expense {
	sorted := make([]models.Expense, len(expenses))
	copy(sorted, expenses)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[j].Date.Before(sorted[i].Date)
	})
	if len(sorted) > maxRows {
		sorted = sorted[:maxRows]
	}
	return sorted
}

// noteOrDash truncates on runes so a multibyte character is never split.
func noteOrDash(note string) string {
	if note == "" {
		return "-"
	}
	runes := []rune(note)
	if len(runes) > 22 {
		return string(runes[:22])
	}
	return note
}

// money formats integer cents with the currency symbol and exactly two
// decimal places.
func money(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s€%d.%02d", sign, cents/100, cents%100)
}

// moneyFloat formats fractional cents to two decimal places.
func moneyFloat(cents float64) string {
	if cents < 0 {
		return fmt.Sprintf("-€%.2f", -cents/100)
	}
	return fmt.Sprintf("€%.2f", cents/100)
}

// paginate splits content lines into fixed-height pages, padding the last
// page, and stamps a centered "Page X of Y" footer on each.
func paginate(lines []string) []byte {
	pages := (len(lines) + linesPerPage - 1) / linesPerPage
	if pages == 0 {
		pages = 1
	}

	var b strings.Builder
	for p := 0; p < pages; p++ {
		start := p * linesPerPage
		end := start + linesPerPage
		if end > len(lines) {
			end = len(lines)
		}
		for _, line := range lines[start:end] {
			b.WriteString(line)
			b.WriteByte('\n')
		}
		for i := end - start; i < linesPerPage; i++ {
			b.WriteByte('\n')
		}
		b.WriteString(center(fmt.Sprintf("Page %d of %d", p+1, pages)))
		b.WriteByte('\n')
	}
	return []byte(b.String())
}

func center(s string) string {
	pad := (pageWidth - len(s)) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", pad) + s
}
