package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/thrashered1/SmartSaveAI/internal/models"
)

var fixtureCounter atomic.Int64

// TestPassword is the plaintext behind every fixture user's hash.
const TestPassword = "correct-horse-battery"

// CreateTestUser inserts a user with a unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash fixture password: %v", err)
	}

	n := fixtureCounter.Add(1)
	user := &models.User{
		Email:    fmt.Sprintf("user%d@example.com", n),
		Password: string(hash),
		Name:     fmt.Sprintf("Test User %d", n),
		IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestBudget inserts a budget with two income sources summing to
// totalIncome (cents).
func CreateTestBudget(t *testing.T, db *gorm.DB, userID string, month, year int, totalIncome int64) *models.Budget {
	t.Helper()

	half := totalIncome / 2
	budget := &models.Budget{
		UserID:      userID,
		Month:       month,
		Year:        year,
		TotalIncome: totalIncome,
		IncomeSources: []models.IncomeSource{
			{Name: "Salary", Amount: totalIncome - half},
			{Name: "Freelance", Amount: half},
		},
	}
	if err := db.Create(budget).Error; err != nil {
		t.Fatalf("failed to create test budget: %v", err)
	}
	return budget
}

// CreateTestExpense inserts one expense.
func CreateTestExpense(t *testing.T, db *gorm.DB, userID string, amount int64, category models.ExpenseCategory, note string, date models.Date) *models.Expense {
	t.Helper()

	expense := &models.Expense{
		UserID:   userID,
		Amount:   amount,
		Category: category,
		Note:     note,
		Date:     date,
	}
	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	return expense
}

// CreateTestGoal inserts a goal with the given target (cents).
func CreateTestGoal(t *testing.T, db *gorm.DB, userID string, target int64) *models.Goal {
	t.Helper()

	n := fixtureCounter.Add(1)
	goal := &models.Goal{
		UserID:       userID,
		Name:         fmt.Sprintf("Goal %d", n),
		Icon:         "🎯",
		TargetAmount: target,
		Priority:     models.GoalPriorityMedium,
	}
	if err := db.Create(goal).Error; err != nil {
		t.Fatalf("failed to create test goal: %v", err)
	}
	return goal
}

// CreateTestStreak inserts a streak row in a given state.
func CreateTestStreak(t *testing.T, db *gorm.DB, userID string, current, best int, lastEvaluated models.Date) *models.Streak {
	t.Helper()

	streak := &models.Streak{
		UserID:        userID,
		Current:       current,
		Best:          best,
		LastEvaluated: lastEvaluated,
	}
	if err := db.Create(streak).Error; err != nil {
		t.Fatalf("failed to create test streak: %v", err)
	}
	return streak
}

// Today returns the current calendar day.
func Today() models.Date {
	return models.DateOf(time.Now())
}
