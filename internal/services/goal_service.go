package services

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/thrashered1/SmartSaveAI/internal/errors"
	"github.com/thrashered1/SmartSaveAI/internal/models"
)

// GoalService implements GoalServicer.
type GoalService struct {
	db *gorm.DB
}

func NewGoalService(db *gorm.DB) *GoalService {
	return &GoalService{db: db}
}

// List returns the user's goals, newest first.
func (s *GoalService) List(ctx context.Context, userID string) ([]models.Goal, error) {
	var goals []models.Goal
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&goals).Error
	if err != nil {
		return nil, errors.Wrap(errors.ErrInternalServer, err)
	}
	return goals, nil
}

func (s *GoalService) Create(ctx context.Context, userID string, req CreateGoalRequest) (*models.Goal, error) {
	priority := req.Priority
	if priority == "" {
		priority = models.GoalPriorityMedium
	}

	goal := &models.Goal{
		UserID:       userID,
		Name:         req.Name,
		Icon:         req.Icon,
		TargetAmount: req.TargetAmount,
		Deadline:     req.Deadline,
		Priority:     priority,
	}
	if err := s.db.WithContext(ctx).Create(goal).Error; err != nil {
		return nil, errors.Wrap(errors.ErrInternalServer, err)
	}
	return goal, nil
}

// AddMoney deposits into a goal. Crossing the target marks the goal
// completed; the surplus stays on the goal rather than being clamped.
// Deposits into an already completed goal are rejected.
func (s *GoalService) AddMoney(ctx context.Context, userID, goalID string, amount int64) (*AddMoneyResult, error) {
	var result AddMoneyResult

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var goal models.Goal
		err := tx.Where("id = ? AND user_id = ?", goalID, userID).First(&goal).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.ErrGoalNotFound
			}
			return errors.Wrap(errors.ErrInternalServer, err)
		}
		if goal.Completed() {
			return errors.ErrGoalCompleted
		}

		goal.CurrentAmount += amount
		updates := map[string]any{"current_amount": goal.CurrentAmount}
		if goal.CurrentAmount >= goal.TargetAmount && goal.CompletedAt == nil {
			now := time.Now()
			goal.CompletedAt = &now
			updates["completed_at"] = now
		}
		if err := tx.Model(&goal).Updates(updates).Error; err != nil {
			return errors.Wrap(errors.ErrInternalServer, err)
		}

		result = AddMoneyResult{
			NewAmount:    goal.CurrentAmount,
			Completed:    goal.Completed(),
			GoalName:     goal.Name,
			TargetAmount: goal.TargetAmount,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Delete removes a goal at any stage, completed or not.
func (s *GoalService) Delete(ctx context.Context, userID, goalID string) error {
	result := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", goalID, userID).
		Delete(&models.Goal{})
	if result.Error != nil {
		return errors.Wrap(errors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.ErrGoalNotFound
	}
	return nil
}
