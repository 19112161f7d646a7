package services

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/thrashered1/SmartSaveAI/internal/errors"
	"github.com/thrashered1/SmartSaveAI/internal/models"
	"github.com/thrashered1/SmartSaveAI/internal/pagination"
)

// ExpenseService implements ExpenseServicer.
type ExpenseService struct {
	db *gorm.DB
}

func NewExpenseService(db *gorm.DB) *ExpenseService {
	return &ExpenseService{db: db}
}

func (s *ExpenseService) Create(ctx context.Context, userID string, req CreateExpenseRequest) (*models.Expense, error) {
	expense := &models.Expense{
		UserID:   userID,
		Amount:   req.Amount,
		Category: req.Category,
		Note:     req.Note,
		Date:     req.Date,
	}
	if err := s.db.WithContext(ctx).Create(expense).Error; err != nil {
		return nil, errors.Wrap(errors.ErrInternalServer, err)
	}
	return expense, nil
}

// ListMonth returns every expense dated inside the given month, newest first.
func (s *ExpenseService) ListMonth(ctx context.Context, userID string, month, year int) ([]models.Expense, error) {
	start, end := monthWindow(month, year)

	var expenses []models.Expense
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date < ?", userID, start, end).
		Order("date DESC, created_at DESC").
		Find(&expenses).Error
	if err != nil {
		return nil, errors.Wrap(errors.ErrInternalServer, err)
	}
	return expenses, nil
}

// List returns the user's expenses across all months, paginated and
// optionally bounded to a date range.
func (s *ExpenseService) List(ctx context.Context, userID string, req ListExpensesRequest) (*pagination.PageResponse[models.Expense], error) {
	req.Defaults()

	var from, to models.Date
	if req.From != "" {
		d, err := models.ParseDate(req.From)
		if err != nil {
			return nil, errors.Wrap(errors.ErrInvalidInput, err)
		}
		from = d
	}
	if req.To != "" {
		d, err := models.ParseDate(req.To)
		if err != nil {
			return nil, errors.Wrap(errors.ErrInvalidInput, err)
		}
		to = d
	}

	filter := func(db *gorm.DB) *gorm.DB {
		db = db.Where("user_id = ?", userID)
		if !from.IsZero() {
			db = db.Where("date >= ?", from)
		}
		if !to.IsZero() {
			db = db.Where("date <= ?", to)
		}
		return db
	}

	var total int64
	if err := s.db.WithContext(ctx).Model(&models.Expense{}).
		Scopes(filter).Count(&total).Error; err != nil {
		return nil, errors.Wrap(errors.ErrInternalServer, err)
	}

	var expenses []models.Expense
	err := s.db.WithContext(ctx).
		Scopes(filter).
		Order("date DESC, created_at DESC").
		Scopes(pagination.Paginate(req.PageRequest)).
		Find(&expenses).Error
	if err != nil {
		return nil, errors.Wrap(errors.ErrInternalServer, err)
	}

	resp := pagination.NewPageResponse(expenses, req.Page, req.PageSize, total)
	return &resp, nil
}

// Delete removes one expense. Only the owner can delete it.
func (s *ExpenseService) Delete(ctx context.Context, userID, expenseID string) error {
	result := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", expenseID, userID).
		Delete(&models.Expense{})
	if result.Error != nil {
		return errors.Wrap(errors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.ErrExpenseNotFound
	}
	return nil
}

// monthWindow returns [first day of month, first day of next month).
// NewDate normalizes month 13 into January of the following year.
func monthWindow(month, year int) (models.Date, models.Date) {
	start := models.NewDate(year, time.Month(month), 1)
	end := models.NewDate(year, time.Month(month)+1, 1)
	return start, end
}
