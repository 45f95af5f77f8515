package entity

import "time"

// Financial is one annual statement, all figures in USD millions. Rows are
// append-only and unique per (company, year).
type Financial struct {
	ID               uint    `gorm:"primaryKey"`
	CompanyID        uint    `gorm:"not null;uniqueIndex:idx_financials_company_year"`
	Company          Company `gorm:"foreignKey:CompanyID"`
	Year             int     `gorm:"not null;uniqueIndex:idx_financials_company_year"`
	Revenue          float64
	GrossProfit      float64
	NetIncome        float64
	TotalAssets      float64
	TotalLiabilities float64
	Equity           float64
	CreatedAt        time.Time `gorm:"autoCreateTime"`
}
