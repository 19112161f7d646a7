package services

import (
	"context"
	"testing"

	"github.com/thrashered1/SmartSaveAI/internal/models"
	"github.com/thrashered1/SmartSaveAI/internal/pagination"
	"github.com/thrashered1/SmartSaveAI/internal/testutil"
)

func TestExpenseServiceListMonth(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewExpenseService(db)
	ctx := context.Background()

	user := testutil.CreateTestUser(t, db)
	sept := func(day int) models.Date { return models.NewDate(2025, 9, day) }

	testutil.CreateTestExpense(t, db, user.ID, 1200, models.CategoryFood, "lunch", sept(3))
	testutil.CreateTestExpense(t, db, user.ID, 4500, models.CategoryTransport, "", sept(15))
	// Boundary days of the surrounding months must not leak in.
	testutil.CreateTestExpense(t, db, user.ID, 9999, models.CategoryRent, "", models.NewDate(2025, 8, 31))
	testutil.CreateTestExpense(t, db, user.ID, 9999, models.CategoryRent, "", models.NewDate(2025, 10, 1))

	t.Run("only the requested month", func(t *testing.T) {
		expenses, err := svc.ListMonth(ctx, user.ID, 9, 2025)
		testutil.AssertNoError(t, err)
		if len(expenses) != 2 {
			t.Fatalf("expected 2 expenses, got %d", len(expenses))
		}
		if expenses[0].Date.Before(expenses[1].Date) {
			t.Error("expected newest first")
		}
	})

	t.Run("december window wraps the year", func(t *testing.T) {
		testutil.CreateTestExpense(t, db, user.ID, 500, models.CategoryFun, "", models.NewDate(2025, 12, 31))
		expenses, err := svc.ListMonth(ctx, user.ID, 12, 2025)
		testutil.AssertNoError(t, err)
		if len(expenses) != 1 {
			t.Fatalf("expected 1 expense, got %d", len(expenses))
		}
	})

	t.Run("other users are invisible", func(t *testing.T) {
		other := testutil.CreateTestUser(t, db)
		expenses, err := svc.ListMonth(ctx, other.ID, 9, 2025)
		testutil.AssertNoError(t, err)
		if len(expenses) != 0 {
			t.Errorf("expected no expenses, got %d", len(expenses))
		}
	})
}

func TestExpenseServiceListPaginated(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewExpenseService(db)
	ctx := context.Background()

	user := testutil.CreateTestUser(t, db)
	for day := 1; day <= 25; day++ {
		testutil.CreateTestExpense(t, db, user.ID, int64(day*100), models.CategoryFood, "", models.NewDate(2025, 9, day))
	}

	page, err := svc.List(ctx, user.ID, ListExpensesRequest{PageRequest: pagination.PageRequest{Page: 2, PageSize: 10}})
	testutil.AssertNoError(t, err)
	if page.TotalItems != 25 {
		t.Errorf("expected 25 total, got %d", page.TotalItems)
	}
	if page.TotalPages != 3 {
		t.Errorf("expected 3 pages, got %d", page.TotalPages)
	}
	if len(page.Data) != 10 {
		t.Errorf("expected 10 items on page 2, got %d", len(page.Data))
	}
	// Newest first: page 2 starts at Sep 15.
	if got := page.Data[0].Date.Day(); got != 15 {
		t.Errorf("expected page 2 to start at day 15, got %d", got)
	}

	t.Run("date range bounds are inclusive", func(t *testing.T) {
		page, err := svc.List(ctx, user.ID, ListExpensesRequest{From: "2025-09-10", To: "2025-09-12"})
		testutil.AssertNoError(t, err)
		if page.TotalItems != 3 {
			t.Errorf("expected 3 in range, got %d", page.TotalItems)
		}
		if got := page.Data[0].Date.Day(); got != 12 {
			t.Errorf("expected newest in range to be day 12, got %d", got)
		}
	})

	t.Run("malformed bound is rejected", func(t *testing.T) {
		_, err := svc.List(ctx, user.ID, ListExpensesRequest{From: "12/09/2025"})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestExpenseServiceDelete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewExpenseService(db)
	ctx := context.Background()

	user := testutil.CreateTestUser(t, db)
	expense := testutil.CreateTestExpense(t, db, user.ID, 1000, models.CategoryShopping, "", testutil.Today())

	t.Run("owner can delete", func(t *testing.T) {
		testutil.AssertNoError(t, svc.Delete(ctx, user.ID, expense.ID))
		_, err := svc.List(ctx, user.ID, ListExpensesRequest{})
		testutil.AssertNoError(t, err)
	})

	t.Run("second delete reports not found", func(t *testing.T) {
		err := svc.Delete(ctx, user.ID, expense.ID)
		testutil.AssertAppError(t, err, "EXPENSE_NOT_FOUND")
	})

	t.Run("cannot delete another user's expense", func(t *testing.T) {
		other := testutil.CreateTestUser(t, db)
		victim := testutil.CreateTestExpense(t, db, user.ID, 1000, models.CategoryFood, "", testutil.Today())
		err := svc.Delete(ctx, other.ID, victim.ID)
		testutil.AssertAppError(t, err, "EXPENSE_NOT_FOUND")
	})
}
