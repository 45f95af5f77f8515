package entity

import "time"

// Company is the root reference entity. Rows are created once at load time
// and never mutated within a run.
type Company struct {
	ID        uint   `gorm:"primaryKey"`
	Ticker    string `gorm:"uniqueIndex;not null"`
	Name      string `gorm:"not null"`
	Sector    string
	Industry  string
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}
