package models

type ServiceProvider struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	UserID      uint    `gorm:"uniqueIndex;not null" json:"user_id"`
	User        User    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	PhoneNumber string  `gorm:"size:15;not null" json:"phone_number"`
	CompanyName *string `gorm:"size:255" json:"company_name"`
}
