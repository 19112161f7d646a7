package report

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/thrashered1/SmartSaveAI/internal/insights"
	"github.com/thrashered1/SmartSaveAI/internal/models"
)

func fixtureExpenses() []models.Expense {
	return []models.Expense{
		{Amount: 10000, Category: models.CategoryFood, Note: "Groceries", Date: models.NewDate(2025, time.September, 5)},
		{Amount: 5000, Category: models.CategoryTransport, Date: models.NewDate(2025, time.September, 10)},
		{Amount: 2500, Category: models.CategoryFood, Note: "Takeaway", Date: models.NewDate(2025, time.September, 12)},
	}
}

func fixtureBudget() *models.Budget {
	return &models.Budget{Month: 9, Year: 2025, TotalIncome: 100000}
}

var generatedAt = time.Date(2025, time.September, 15, 14, 30, 0, 0, time.UTC)

func TestRender(t *testing.T) {
	t.Run("byte_identical_for_identical_input", func(t *testing.T) {
		a := Render(fixtureExpenses(), fixtureBudget(), "september 2025", generatedAt)
		b := Render(fixtureExpenses(), fixtureBudget(), "september 2025", generatedAt)
		if !bytes.Equal(a, b) {
			t.Fatal("two renders of the same input differ")
		}
	})

	t.Run("header_and_summary", func(t *testing.T) {
		out := string(Render(fixtureExpenses(), fixtureBudget(), "september 2025", generatedAt))

		for _, want := range []string{
			"SmartSaveAI Report",
			"Period:    SEPTEMBER 2025",
			"Generated: Sep 15, 2025 14:30",
			"€175.00",  // total
			"€1000.00", // budget
			"€825.00",  // money left
		} {
			if !strings.Contains(out, want) {
				t.Errorf("report missing %q", want)
			}
		}
	})

	t.Run("category_table_matches_aggregation_exactly", func(t *testing.T) {
		expenses := fixtureExpenses()
		out := string(Render(expenses, fixtureBudget(), "september 2025", generatedAt))
		lines := strings.Split(out, "\n")

		totals := insights.CategoryTotals(expenses)
		var tableRows []string
		inTable := false
		for _, line := range lines {
			if strings.HasPrefix(line, "Category    ") {
				inTable = true
				continue
			}
			if inTable {
				if strings.TrimSpace(line) == "" {
					break
				}
				tableRows = append(tableRows, line)
			}
		}

		if len(tableRows) != len(totals) {
			t.Fatalf("expected %d category rows, got %d", len(totals), len(tableRows))
		}
		for i, ct := range totals {
			row := tableRows[i]
			if !strings.HasPrefix(row, string(ct.Category)) {
				t.Errorf("row %d: expected category %s, got %q", i, ct.Category, row)
			}
			wantPct := fmt.Sprintf("%.1f%%", ct.Percentage)
			if !strings.HasSuffix(row, wantPct) {
				t.Errorf("row %d: expected percentage %s, got %q", i, wantPct, row)
			}
		}
	})

	t.Run("transactions_newest_first_capped_at_twenty", func(t *testing.T) {
		var expenses []models.Expense
		for day := 1; day <= 25; day++ {
			expenses = append(expenses, models.Expense{
				Amount:   int64(day * 100),
				Category: models.CategoryOther,
				Date:     models.NewDate(2025, time.September, day),
			})
		}
		out := string(Render(expenses, nil, "september 2025", generatedAt))

		if !strings.Contains(out, "Sep 25") {
			t.Error("expected newest transaction present")
		}
		if strings.Contains(out, "Sep 05 ") || strings.Contains(out, "Sep 01 ") {
			t.Error("expected transactions past the 20 newest to be dropped")
		}
		first := strings.Index(out, "Sep 25")
		second := strings.Index(out, "Sep 24")
		if first == -1 || second == -1 || first > second {
			t.Error("expected newest-first ordering")
		}
	})

	t.Run("every_page_is_footed", func(t *testing.T) {
		out := string(Render(fixtureExpenses(), fixtureBudget(), "september 2025", generatedAt))
		if !strings.Contains(out, "Page 1 of 1") {
			t.Error("expected page footer")
		}

		// Enough rows to spill onto a second page.
		var many []models.Expense
		for day := 1; day <= 20; day++ {
			many = append(many, models.Expense{
				Amount:   1000,
				Category: models.ExpenseCategories[day%len(models.ExpenseCategories)],
				Date:     models.NewDate(2025, time.September, day),
			})
		}
		out = string(Render(many, fixtureBudget(), "september 2025", generatedAt))
		if !strings.Contains(out, "Page 1 of 2") || !strings.Contains(out, "Page 2 of 2") {
			t.Errorf("expected two footed pages")
		}
	})

	t.Run("empty_note_renders_dash", func(t *testing.T) {
		out := string(Render(fixtureExpenses(), nil, "september 2025", generatedAt))
		if !strings.Contains(out, "Transport   -") {
			t.Error("expected dash placeholder for missing note")
		}
	})

	t.Run("filename", func(t *testing.T) {
		if got := Filename(generatedAt); got != "SmartSaveAI-Report-2025-09-15.txt" {
			t.Errorf("unexpected filename %s", got)
		}
	})
}

func TestNoteOrDash(t *testing.T) {
	t.Run("empty note becomes a dash", func(t *testing.T) {
		if got := noteOrDash(""); got != "-" {
			t.Errorf("expected dash, got %q", got)
		}
	})

	t.Run("long note truncates on runes", func(t *testing.T) {
		note := strings.Repeat("ü", 30)
		got := noteOrDash(note)
		if !utf8.ValidString(got) {
			t.Fatalf("truncation produced invalid UTF-8: %q", got)
		}
		if got != strings.Repeat("ü", 22) {
			t.Errorf("expected 22 runes, got %q", got)
		}
	})
}

func TestMoney(t *testing.T) {
	cases := []struct {
		cents int64
		want  string
	}{
		{0, "€0.00"},
		{5, "€0.05"},
		{15000, "€150.00"},
		{-2550, "-€25.50"},
	}
	for _, c := range cases {
		if got := money(c.cents); got != c.want {
			t.Errorf("money(%d) = %s, want %s", c.cents, got, c.want)
		}
	}
}
