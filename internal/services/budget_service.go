package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/thrashered1/SmartSaveAI/internal/errors"
	"github.com/thrashered1/SmartSaveAI/internal/models"
)

// BudgetService implements BudgetServicer. The stored total income is always
// recomputed from the income sources; client-supplied totals are ignored.
type BudgetService struct {
	db *gorm.DB
}

func NewBudgetService(db *gorm.DB) *BudgetService {
	return &BudgetService{db: db}
}

// Get returns the budget for one month with its income sources preloaded.
func (s *BudgetService) Get(ctx context.Context, userID string, month, year int) (*models.Budget, error) {
	var budget models.Budget
	err := s.db.WithContext(ctx).
		Preload("IncomeSources").
		Where("user_id = ? AND month = ? AND year = ?", userID, month, year).
		First(&budget).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrBudgetNotFound
		}
		return nil, errors.Wrap(errors.ErrInternalServer, err)
	}
	return &budget, nil
}

// Create sets up the budget for a month the user has none for yet.
func (s *BudgetService) Create(ctx context.Context, userID string, req CreateBudgetRequest) (*models.Budget, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Budget{}).
		Where("user_id = ? AND month = ? AND year = ?", userID, req.Month, req.Year).
		Count(&count).Error
	if err != nil {
		return nil, errors.Wrap(errors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil, errors.ErrBudgetExists
	}

	budget := &models.Budget{
		UserID: userID,
		Month:  req.Month,
		Year:   req.Year,
	}
	for _, src := range req.IncomeSources {
		budget.IncomeSources = append(budget.IncomeSources, models.IncomeSource{
			Name:   src.Name,
			Amount: src.Amount,
		})
	}
	budget.TotalIncome = budget.SumSources()

	if err := s.db.WithContext(ctx).Create(budget).Error; err != nil {
		return nil, errors.Wrap(errors.ErrInternalServer, err)
	}
	return budget, nil
}

// Update replaces the income sources of an existing budget and recomputes
// the total inside one transaction.
func (s *BudgetService) Update(ctx context.Context, userID string, month, year int, req UpdateBudgetRequest) (*models.Budget, error) {
	budget, err := s.Get(ctx, userID, month, year)
	if err != nil {
		return nil, err
	}

	sources := make([]models.IncomeSource, 0, len(req.IncomeSources))
	for _, src := range req.IncomeSources {
		sources = append(sources, models.IncomeSource{
			BudgetID: budget.ID,
			Name:     src.Name,
			Amount:   src.Amount,
		})
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().
			Where("budget_id = ?", budget.ID).
			Delete(&models.IncomeSource{}).Error; err != nil {
			return err
		}
		if err := tx.Create(&sources).Error; err != nil {
			return err
		}
		budget.IncomeSources = sources
		budget.TotalIncome = budget.SumSources()
		return tx.Model(budget).Update("total_income", budget.TotalIncome).Error
	})
	if err != nil {
		return nil, errors.Wrap(errors.ErrInternalServer, err)
	}
	return budget, nil
}

// AddIncomeSource appends one source to an existing budget.
func (s *BudgetService) AddIncomeSource(ctx context.Context, userID string, month, year int, src IncomeSourceInput) (*models.Budget, error) {
	budget, err := s.Get(ctx, userID, month, year)
	if err != nil {
		return nil, err
	}

	source := models.IncomeSource{
		BudgetID: budget.ID,
		Name:     src.Name,
		Amount:   src.Amount,
	}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&source).Error; err != nil {
			return err
		}
		budget.IncomeSources = append(budget.IncomeSources, source)
		budget.TotalIncome = budget.SumSources()
		return tx.Model(budget).Update("total_income", budget.TotalIncome).Error
	})
	if err != nil {
		return nil, errors.Wrap(errors.ErrInternalServer, err)
	}
	return budget, nil
}
