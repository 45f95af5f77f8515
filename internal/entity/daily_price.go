package entity

import "time"

// DailyPrice is one simulated OHLCV bar. Rows are append-only and unique
// per (company, date).
type DailyPrice struct {
	ID        uint      `gorm:"primaryKey"`
	CompanyID uint      `gorm:"not null;uniqueIndex:idx_daily_prices_company_date"`
	Company   Company   `gorm:"foreignKey:CompanyID"`
	Date      time.Time `gorm:"type:date;not null;uniqueIndex:idx_daily_prices_company_date"`
	Open      float64   `gorm:"not null"`
	High      float64   `gorm:"not null"`
	Low       float64   `gorm:"not null"`
	Close     float64   `gorm:"not null"`
	Volume    int64     `gorm:"not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}
