package repositories

import (
	stderrors "errors"
	"time"

	"github.com/mroshb/fitness_tracker/internal/models"
	"github.com/mroshb/fitness_tracker/pkg/errors"
	"gorm.io/gorm"
)

type WorkoutRepository struct {
	db *gorm.DB
}

func NewWorkoutRepository(db *gorm.DB) *WorkoutRepository {
	return &WorkoutRepository{db: db}
}

// WorkoutHistoryEntry is one joined workout/exercise row, newest workout first.
type WorkoutHistoryEntry struct {
	WorkoutID       uint      `gorm:"column:workout_id"`
	WorkoutDate     time.Time `gorm:"column:workout_date"`
	DurationMinutes int       `gorm:"column:duration_minutes"`
	ExerciseName    string    `gorm:"column:exercise_name"`
	Reps            int       `gorm:"column:reps"`
	Sets            int       `gorm:"column:sets"`
	WeightKg        float64   `gorm:"column:weight_kg"`
}

// LogWorkout creates a workout together with its exercises in one transaction.
// Either the workout and every exercise are committed, or nothing is.
func (r *WorkoutRepository) LogWorkout(userID uint, date time.Time, durationMinutes int, exercises []models.Exercise) (uint, error) {
	workout := models.Workout{
		UserID:          userID,
		WorkoutDate:     date,
		DurationMinutes: durationMinutes,
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&workout).Error; err != nil {
			return err
		}
		for i := range exercises {
			exercises[i].ID = 0
			exercises[i].WorkoutID = workout.ID
			if err := tx.Create(&exercises[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})

	if stderrors.Is(err, gorm.ErrInvalidData) {
		return 0, errors.Wrap(err, errors.ErrCodeValidation, "invalid workout data")
	}
	if err != nil {
		return 0, errors.Wrap(err, errors.ErrCodeInternalError, "failed to log workout")
	}

	return workout.ID, nil
}

// AddExercise appends one exercise to an existing workout.
func (r *WorkoutRepository) AddExercise(workoutID uint, name string, reps, sets int, weightKg float64) error {
	exercise := models.Exercise{
		WorkoutID:    workoutID,
		ExerciseName: name,
		Reps:         reps,
		Sets:         sets,
		WeightKg:     weightKg,
	}

	result := r.db.Create(&exercise)
	if stderrors.Is(result.Error, gorm.ErrInvalidData) {
		return errors.Wrap(result.Error, errors.ErrCodeValidation, "invalid exercise data")
	}
	if result.Error != nil {
		return errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to add exercise")
	}
	return nil
}

// GetHistory returns the user's workout/exercise rows ordered by workout date
// descending. A workout without exercises produces no rows (inner join).
func (r *WorkoutRepository) GetHistory(userID uint) ([]WorkoutHistoryEntry, error) {
	var entries []WorkoutHistoryEntry

	err := r.db.Table("workouts").
		Select("workouts.workout_id, workouts.workout_date, workouts.duration_minutes, exercises.exercise_name, exercises.reps, exercises.sets, exercises.weight_kg").
		Joins("JOIN exercises ON workouts.workout_id = exercises.workout_id").
		Where("workouts.user_id = ?", userID).
		Order("workouts.workout_date DESC, workouts.workout_id DESC, exercises.exercise_id ASC").
		Scan(&entries).Error

	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternalError, "failed to get workout history")
	}

	return entries, nil
}
