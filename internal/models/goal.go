package models

import "time"

// GoalPriority ranks how urgent a savings goal is.
type GoalPriority string

const (
	GoalPriorityLow    GoalPriority = "low"
	GoalPriorityMedium GoalPriority = "medium"
	GoalPriorityHigh   GoalPriority = "high"
)

// Goal is a named savings target. CurrentAmount grows through add-money
// events; crossing TargetAmount sets CompletedAt, which is terminal.
// Contributions past the target are kept, not clamped.
type Goal struct {
	Base
	UserID        string       `gorm:"type:uuid;not null;index" json:"user_id"`
	Name          string       `gorm:"not null" json:"name"`
	Icon          string       `json:"icon"`
	TargetAmount  int64        `gorm:"type:bigint;not null" json:"target_amount"`
	CurrentAmount int64        `gorm:"type:bigint;not null;default:0" json:"current_amount"`
	Deadline      *Date        `json:"deadline,omitempty"`
	Priority      GoalPriority `gorm:"not null;default:medium" json:"priority"`
	CompletedAt   *time.Time   `json:"completed_at,omitempty"`
}

// Completed reports whether the goal has reached its target.
func (g *Goal) Completed() bool {
	return g.CompletedAt != nil
}

// Progress returns completion as a percentage, capped at 100.
func (g *Goal) Progress() float64 {
	if g.TargetAmount <= 0 {
		return 0
	}
	pct := float64(g.CurrentAmount) / float64(g.TargetAmount) * 100
	if pct > 100 {
		return 100
	}
	return pct
}
