package repository

import (
	"context"

	"stock-market-analyzer/internal/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DailyPriceRepository defines the interface for simulated price bars.
type DailyPriceRepository interface {
	BulkInsertIgnore(ctx context.Context, prices []entity.DailyPrice) error
	FindByTicker(ctx context.Context, ticker string) ([]entity.DailyPrice, error)
}

// NewDailyPriceRepository creates a new GORM-based daily price repository.
func NewDailyPriceRepository(db *gorm.DB) DailyPriceRepository {
	return &dailyPriceRepository{db: db}
}

type dailyPriceRepository struct {
	db *gorm.DB
}

// BulkInsertIgnore appends price bars, skipping any (company, date) rows
// that already exist so repeated loads do not duplicate history.
func (r *dailyPriceRepository) BulkInsertIgnore(ctx context.Context, prices []entity.DailyPrice) error {
	if len(prices) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		CreateInBatches(prices, 500).Error
}

// FindByTicker retrieves a company's full price history in chronological
// order.
func (r *dailyPriceRepository) FindByTicker(ctx context.Context, ticker string) ([]entity.DailyPrice, error) {
	var prices []entity.DailyPrice
	err := r.db.WithContext(ctx).
		Joins("JOIN companies ON companies.id = daily_prices.company_id").
		Where("companies.ticker = ?", ticker).
		Order("daily_prices.date ASC").
		Find(&prices).Error
	if err != nil {
		return nil, err
	}
	return prices, nil
}
