package repository

import (
	"context"

	"stock-market-analyzer/internal/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CompanyRepository defines the interface for company reference data.
type CompanyRepository interface {
	Upsert(ctx context.Context, company *entity.Company) error
	FindByTicker(ctx context.Context, ticker string) (*entity.Company, error)
	FindAll(ctx context.Context) ([]entity.Company, error)
}

// NewCompanyRepository creates a new GORM-based company repository.
func NewCompanyRepository(db *gorm.DB) CompanyRepository {
	return &companyRepository{db: db}
}

type companyRepository struct {
	db *gorm.DB
}

// Upsert inserts the company, ignoring the row if the ticker already
// exists, and resolves the stored ID either way so re-loads stay
// idempotent.
func (r *companyRepository) Upsert(ctx context.Context, company *entity.Company) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "ticker"}}, DoNothing: true}).
		Create(company).Error
	if err != nil {
		return err
	}
	if company.ID == 0 {
		return r.db.WithContext(ctx).Where("ticker = ?", company.Ticker).First(company).Error
	}
	return nil
}

// FindByTicker retrieves a company by its ticker.
func (r *companyRepository) FindByTicker(ctx context.Context, ticker string) (*entity.Company, error) {
	var company entity.Company
	if err := r.db.WithContext(ctx).Where("ticker = ?", ticker).First(&company).Error; err != nil {
		return nil, err
	}
	return &company, nil
}

// FindAll retrieves all companies ordered by ticker.
func (r *companyRepository) FindAll(ctx context.Context) ([]entity.Company, error) {
	var companies []entity.Company
	if err := r.db.WithContext(ctx).Order("ticker ASC").Find(&companies).Error; err != nil {
		return nil, err
	}
	return companies, nil
}
