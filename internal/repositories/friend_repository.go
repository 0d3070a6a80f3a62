package repositories

import (
	stderrors "errors"

	"github.com/mroshb/fitness_tracker/internal/models"
	"github.com/mroshb/fitness_tracker/pkg/errors"
	"gorm.io/gorm"
)

type FriendRepository struct {
	db *gorm.DB
}

func NewFriendRepository(db *gorm.DB) *FriendRepository {
	return &FriendRepository{db: db}
}

// FriendEntry is one row of a user's friend list.
type FriendEntry struct {
	UserID uint   `gorm:"column:user_id"`
	Name   string `gorm:"column:name"`
	Email  string `gorm:"column:email"`
}

// AddFriend stores the undirected edge between two users. The pair is
// canonicalized by the model hook, so each unordered pair exists at most once.
func (r *FriendRepository) AddFriend(userID, friendID uint) error {
	if userID == friendID {
		return errors.New(errors.ErrCodeValidation, "cannot add yourself as a friend")
	}

	friendship := models.Friendship{
		UserID1: userID,
		UserID2: friendID,
	}

	result := r.db.Create(&friendship)
	if stderrors.Is(result.Error, gorm.ErrDuplicatedKey) {
		return errors.New(errors.ErrCodeAlreadyExists, "already friends")
	}
	if stderrors.Is(result.Error, gorm.ErrInvalidData) {
		return errors.Wrap(result.Error, errors.ErrCodeValidation, "invalid friendship")
	}
	if result.Error != nil {
		return errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to add friend")
	}

	return nil
}

// RemoveFriend deletes the edge regardless of which side initiated. Both
// orderings are matched so rows predating pair canonicalization still go away.
func (r *FriendRepository) RemoveFriend(userID, friendID uint) error {
	result := r.db.Where(
		"(user_id_1 = ? AND user_id_2 = ?) OR (user_id_1 = ? AND user_id_2 = ?)",
		userID, friendID, friendID, userID,
	).Delete(&models.Friendship{})

	if result.Error != nil {
		return errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to remove friend")
	}
	if result.RowsAffected == 0 {
		return errors.New(errors.ErrCodeNotFound, "friendship not found")
	}

	return nil
}

// GetFriends returns the other end of every edge touching the user.
func (r *FriendRepository) GetFriends(userID uint) ([]FriendEntry, error) {
	var friends []FriendEntry

	err := r.db.Table("users").
		Select("users.user_id, users.name, users.email").
		Joins("JOIN friends ON (users.user_id = friends.user_id_1 AND friends.user_id_2 = ?) OR (users.user_id = friends.user_id_2 AND friends.user_id_1 = ?)",
			userID, userID).
		Order("users.name ASC").
		Scan(&friends).Error

	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternalError, "failed to get friends")
	}

	return friends, nil
}

// AreFriends checks whether the undirected edge exists.
func (r *FriendRepository) AreFriends(userID, friendID uint) (bool, error) {
	var count int64
	result := r.db.Model(&models.Friendship{}).
		Where(
			"(user_id_1 = ? AND user_id_2 = ?) OR (user_id_1 = ? AND user_id_2 = ?)",
			userID, friendID, friendID, userID,
		).Count(&count)

	if result.Error != nil {
		return false, errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to check friendship")
	}

	return count > 0, nil
}
