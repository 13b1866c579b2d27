package models

import "time"

const (
	RoleAdmin           = "admin"
	RoleServiceProvider = "service_provider"
	RoleClient          = "client"
	RoleAgent           = "agent"
)

type User struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Email     string `gorm:"size:254;uniqueIndex;not null" json:"email"`
	Username  string `gorm:"size:150;uniqueIndex;not null" json:"username"`
	FirstName string `gorm:"size:150" json:"first_name"`
	LastName  string `gorm:"size:150" json:"last_name"`

	PasswordHash string `gorm:"column:password;size:128;not null" json:"-"`
	Role         string `gorm:"size:20;not null" json:"role"`

	IsActive    bool `gorm:"not null" json:"is_active"`
	IsStaff     bool `gorm:"not null" json:"is_staff"`
	IsSuperuser bool `gorm:"not null" json:"is_superuser"`

	DateJoined time.Time `gorm:"autoCreateTime" json:"date_joined"`
}

func IsValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleServiceProvider, RoleClient, RoleAgent:
		return true
	}
	return false
}
