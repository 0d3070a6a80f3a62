package models

import (
	"strings"

	"gorm.io/gorm"
)

type User struct {
	ID       uint    `gorm:"primaryKey;column:user_id"`
	Name     string  `gorm:"type:varchar(255);not null"`
	Email    string  `gorm:"type:varchar(255);uniqueIndex;not null"`
	WeightKg float64 `gorm:"column:weight_kg;not null;default:0"`
}

// BeforeSave hook for validation
func (u *User) BeforeSave(tx *gorm.DB) error {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))

	if u.Email == "" || !strings.Contains(u.Email, "@") {
		return gorm.ErrInvalidData
	}
	if strings.TrimSpace(u.Name) == "" {
		return gorm.ErrInvalidData
	}
	if u.WeightKg < 0 {
		return gorm.ErrInvalidData
	}

	return nil
}

// TableName specifies the table name
func (User) TableName() string {
	return "users"
}
