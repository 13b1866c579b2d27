package models

import "time"

type ServiceCategory struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CategoryName string    `gorm:"size:255;uniqueIndex;not null" json:"category_name"`
	Description  *string   `gorm:"type:text" json:"description"`
	IsActive     bool      `gorm:"not null" json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}
