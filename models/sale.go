package models

import "time"

type Sale struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Amount    float64   `gorm:"type:decimal(10,2);not null" json:"amount"`
	CreatedAt time.Time `gorm:"not null;index" json:"createdAt"`
}

// DailySales is one row of the weekly trend.
type DailySales struct {
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
}
