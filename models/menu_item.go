package models

import (
	"path"
	"time"
)

type MenuItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Category  string    `gorm:"type:varchar(100);not null;index" json:"category"`
	Price     float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	ImageUrl  *string   `gorm:"type:varchar(255)" json:"imageUrl"`
	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
}

// ImageFile returns the stored file name behind ImageUrl, or "" when the item has no image.
func (m *MenuItem) ImageFile() string {
	if m.ImageUrl == nil || *m.ImageUrl == "" {
		return ""
	}
	return path.Base(*m.ImageUrl)
}
