package models

import "time"

// Service names are unique per category at the storage level (case
// sensitive); the case-insensitive rule is enforced by the catalog use cases.
type Service struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	CategoryID  uint            `gorm:"not null;uniqueIndex:idx_services_category_name,priority:1" json:"category"`
	Category    ServiceCategory `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	ServiceName string          `gorm:"size:255;not null;uniqueIndex:idx_services_category_name,priority:2" json:"service_name"`
	Description *string         `gorm:"type:text" json:"description"`
	IsActive    bool            `gorm:"not null" json:"is_active"`
	CreatedAt   time.Time       `json:"created_at"`
}
