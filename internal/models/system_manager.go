package models

// SystemManager is the profile of an admin or agent account.
type SystemManager struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	UserID      uint   `gorm:"uniqueIndex;not null" json:"user_id"`
	User        User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	PhoneNumber string `gorm:"size:15;not null" json:"phone_number"`
}
