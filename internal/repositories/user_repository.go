package repositories

import (
	stderrors "errors"

	"github.com/mroshb/fitness_tracker/internal/models"
	"github.com/mroshb/fitness_tracker/pkg/errors"
	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// CreateUser registers a new user. A duplicate email is reported as
// ALREADY_EXISTS without mutating the store.
func (r *UserRepository) CreateUser(user *models.User) error {
	result := r.db.Create(user)
	if stderrors.Is(result.Error, gorm.ErrDuplicatedKey) {
		return errors.New(errors.ErrCodeAlreadyExists, "email already registered")
	}
	if stderrors.Is(result.Error, gorm.ErrInvalidData) {
		return errors.Wrap(result.Error, errors.ErrCodeValidation, "invalid user data")
	}
	if result.Error != nil {
		return errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to create user")
	}
	return nil
}

// GetUserByEmail retrieves a user by exact email match
func (r *UserRepository) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	result := r.db.Where("email = ?", email).First(&user)

	if result.Error == gorm.ErrRecordNotFound {
		return nil, errors.New(errors.ErrCodeNotFound, "user not found")
	}
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to get user")
	}

	return &user, nil
}

// GetUserByID retrieves a user by ID
func (r *UserRepository) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	result := r.db.First(&user, id)

	if result.Error == gorm.ErrRecordNotFound {
		return nil, errors.New(errors.ErrCodeNotFound, "user not found")
	}
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to get user")
	}

	return &user, nil
}

// UpdateProfile updates name and weight for a user. Email is immutable.
func (r *UserRepository) UpdateProfile(userID uint, name string, weightKg float64) error {
	result := r.db.Model(&models.User{}).Where("user_id = ?", userID).Updates(map[string]interface{}{
		"name":      name,
		"weight_kg": weightKg,
	})
	if result.Error != nil {
		return errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to update profile")
	}
	if result.RowsAffected == 0 {
		return errors.New(errors.ErrCodeNotFound, "user not found")
	}
	return nil
}
