package models

import (
	"gorm.io/gorm"
)

// Friendship is an undirected relation stored once per pair. BeforeSave
// canonicalizes the ordering (lower id first) so the unordered pair has a
// single representation in the friends table.
type Friendship struct {
	UserID1 uint `gorm:"primaryKey;column:user_id_1;autoIncrement:false"`
	UserID2 uint `gorm:"primaryKey;column:user_id_2;autoIncrement:false"`
}

func (f *Friendship) BeforeSave(tx *gorm.DB) error {
	if f.UserID1 == 0 || f.UserID2 == 0 {
		return gorm.ErrInvalidData
	}

	// No self-friendship
	if f.UserID1 == f.UserID2 {
		return gorm.ErrInvalidData
	}

	if f.UserID1 > f.UserID2 {
		f.UserID1, f.UserID2 = f.UserID2, f.UserID1
	}

	return nil
}

func (Friendship) TableName() string {
	return "friends"
}
