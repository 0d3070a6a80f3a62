package repositories

import (
	stderrors "errors"

	"github.com/mroshb/fitness_tracker/internal/models"
	"github.com/mroshb/fitness_tracker/pkg/errors"
	"gorm.io/gorm"
)

type GoalRepository struct {
	db *gorm.DB
}

func NewGoalRepository(db *gorm.DB) *GoalRepository {
	return &GoalRepository{db: db}
}

// CreateGoal stores a new goal. Progress starts at zero.
func (r *GoalRepository) CreateGoal(userID uint, description string, targetValue int) error {
	goal := models.Goal{
		UserID:          userID,
		GoalDescription: description,
		TargetValue:     targetValue,
	}

	result := r.db.Create(&goal)
	if stderrors.Is(result.Error, gorm.ErrInvalidData) {
		return errors.Wrap(result.Error, errors.ErrCodeValidation, "invalid goal data")
	}
	if result.Error != nil {
		return errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to create goal")
	}
	return nil
}

// GetGoals returns all goals of a user, oldest first.
func (r *GoalRepository) GetGoals(userID uint) ([]models.Goal, error) {
	var goals []models.Goal

	err := r.db.Where("user_id = ?", userID).
		Order("goal_id ASC").
		Find(&goals).Error

	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternalError, "failed to get goals")
	}

	return goals, nil
}

// UpdateGoalProgress sets the current value of one goal. Other goals are
// untouched.
func (r *GoalRepository) UpdateGoalProgress(goalID uint, currentValue int) error {
	if currentValue < 0 {
		return errors.New(errors.ErrCodeValidation, "progress cannot be negative")
	}

	result := r.db.Model(&models.Goal{}).
		Where("goal_id = ?", goalID).
		Update("current_value", currentValue)

	if result.Error != nil {
		return errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to update goal progress")
	}
	if result.RowsAffected == 0 {
		return errors.New(errors.ErrCodeNotFound, "goal not found")
	}

	return nil
}
