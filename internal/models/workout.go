package models

import (
	"time"

	"gorm.io/gorm"
)

type Workout struct {
	ID              uint       `gorm:"primaryKey;column:workout_id"`
	UserID          uint       `gorm:"column:user_id;not null;index"`
	User            User       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	WorkoutDate     time.Time  `gorm:"column:workout_date;not null;index"`
	DurationMinutes int        `gorm:"column:duration_minutes;not null"`
	Exercises       []Exercise `gorm:"foreignKey:WorkoutID;constraint:OnDelete:CASCADE"`
}

func (w *Workout) BeforeSave(tx *gorm.DB) error {
	if w.DurationMinutes < 0 {
		return gorm.ErrInvalidData
	}
	return nil
}

func (Workout) TableName() string {
	return "workouts"
}

type Exercise struct {
	ID           uint    `gorm:"primaryKey;column:exercise_id"`
	WorkoutID    uint    `gorm:"column:workout_id;not null;index"`
	ExerciseName string  `gorm:"column:exercise_name;type:varchar(255);not null"`
	Reps         int     `gorm:"not null"`
	Sets         int     `gorm:"not null"`
	WeightKg     float64 `gorm:"column:weight_kg;not null"`
}

func (e *Exercise) BeforeSave(tx *gorm.DB) error {
	if e.Reps < 0 || e.Sets < 0 || e.WeightKg < 0 {
		return gorm.ErrInvalidData
	}
	return nil
}

func (Exercise) TableName() string {
	return "exercises"
}
