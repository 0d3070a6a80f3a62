package models

import (
	"strings"

	"gorm.io/gorm"
)

type Goal struct {
	ID              uint   `gorm:"primaryKey;column:goal_id"`
	UserID          uint   `gorm:"column:user_id;not null;index"`
	User            User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	GoalDescription string `gorm:"column:goal_description;type:text;not null"`
	TargetValue     int    `gorm:"column:target_value;not null"`
	CurrentValue    int    `gorm:"column:current_value;not null;default:0"`
}

func (g *Goal) BeforeSave(tx *gorm.DB) error {
	if strings.TrimSpace(g.GoalDescription) == "" {
		return gorm.ErrInvalidData
	}
	if g.TargetValue < 1 {
		return gorm.ErrInvalidData
	}
	if g.CurrentValue < 0 {
		return gorm.ErrInvalidData
	}
	return nil
}

func (Goal) TableName() string {
	return "goals"
}
