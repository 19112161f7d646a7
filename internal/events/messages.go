package events

import (
	"encoding/json"
	"time"
)

// ExpenseCreatedMessage notifies downstream consumers of a new expense.
type ExpenseCreatedMessage struct {
	UserID     string    `json:"user_id"`
	ExpenseID  string    `json:"expense_id"`
	Amount     int64     `json:"amount"`
	Category   string    `json:"category"`
	Date       string    `json:"date"`
	OccurredAt time.Time `json:"occurred_at"`
}

// GoalCompletedMessage notifies downstream consumers that a savings goal
// crossed its target.
type GoalCompletedMessage struct {
	UserID        string    `json:"user_id"`
	GoalID        string    `json:"goal_id"`
	Name          string    `json:"name"`
	TargetAmount  int64     `json:"target_amount"`
	CurrentAmount int64     `json:"current_amount"`
	Source        string    `json:"source,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// ToJSON serializes the message body.
func (m ExpenseCreatedMessage) ToJSON() ([]byte, error) { return json.Marshal(m) }

// ToJSON serializes the message body.
func (m GoalCompletedMessage) ToJSON() ([]byte, error) { return json.Marshal(m) }
