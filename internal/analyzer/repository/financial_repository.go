package repository

import (
	"context"

	"stock-market-analyzer/internal/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FinancialRepository defines the interface for annual statements.
type FinancialRepository interface {
	BulkInsertIgnore(ctx context.Context, financials []entity.Financial) error
	FindAllWithCompany(ctx context.Context) ([]entity.Financial, error)
}

// NewFinancialRepository creates a new GORM-based financial repository.
func NewFinancialRepository(db *gorm.DB) FinancialRepository {
	return &financialRepository{db: db}
}

type financialRepository struct {
	db *gorm.DB
}

// BulkInsertIgnore appends statement rows, skipping existing
// (company, year) rows.
func (r *financialRepository) BulkInsertIgnore(ctx context.Context, financials []entity.Financial) error {
	if len(financials) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&financials).Error
}

// FindAllWithCompany retrieves every statement joined with its company,
// ordered by ticker then year. The ratio engine and anomaly scan depend on
// this ordering.
func (r *financialRepository) FindAllWithCompany(ctx context.Context) ([]entity.Financial, error) {
	var financials []entity.Financial
	err := r.db.WithContext(ctx).
		Preload("Company").
		Joins("JOIN companies ON companies.id = financials.company_id").
		Order("companies.ticker ASC, financials.year ASC").
		Find(&financials).Error
	if err != nil {
		return nil, err
	}
	return financials, nil
}
