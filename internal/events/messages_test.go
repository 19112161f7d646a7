package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"
)

func TestExpenseCreatedMessageJSON(t *testing.T) {
	msg := ExpenseCreatedMessage{
		UserID:     "user-1",
		ExpenseID:  "exp-1",
		Amount:     1250,
		Category:   "Food",
		Date:       "2025-09-01",
		OccurredAt: time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC),
	}

	body, err := msg.ToJSON()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(body, &decoded); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if decoded["category"] != "Food" {
		t.Errorf("expected category Food, got %v", decoded["category"])
	}
	if decoded["amount"].(float64) != 1250 {
		t.Errorf("expected amount 1250, got %v", decoded["amount"])
	}
}

func TestNopPublisher(t *testing.T) {
	var p Publisher = NopPublisher{}
	if err := p.PublishExpenseCreated(context.Background(), ExpenseCreatedMessage{}); err != nil {
		t.Errorf("expected nil error, got %v", err)
	}
	if err := p.PublishGoalCompleted(context.Background(), GoalCompletedMessage{}); err != nil {
		t.Errorf("expected nil error, got %v", err)
	}
	if err := p.Close(); err != nil {
		t.Errorf("expected nil error, got %v", err)
	}
}
