package repositories

import (
	"database/sql"
	"time"

	"github.com/mroshb/fitness_tracker/internal/models"
	"github.com/mroshb/fitness_tracker/pkg/errors"
	"gorm.io/gorm"
)

type StatsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

// InsightsReport holds store-wide aggregates. AVG/MAX/MIN are pointers so an
// empty store yields nil instead of a fabricated zero.
type InsightsReport struct {
	TotalUsers         int64
	TotalWorkouts      int64
	AvgWorkoutDuration *float64
	MaxReps            *int
	MinWeightLifted    *float64
}

// Leaderboard metrics
const (
	MetricTotalMinutes  = "total_minutes"
	MetricTotalWorkouts = "total_workouts"
)

// LeaderboardEntry is one leaderboard row. Rows are grouped by display name,
// matching the reporting the product asks for.
type LeaderboardEntry struct {
	Name  string `gorm:"column:name"`
	Value int64  `gorm:"column:value"`
}

// GetBusinessInsights composes five independent scalar aggregates.
func (r *StatsRepository) GetBusinessInsights() (*InsightsReport, error) {
	report := &InsightsReport{}

	if err := r.db.Model(&models.User{}).Count(&report.TotalUsers).Error; err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternalError, "failed to count users")
	}

	if err := r.db.Model(&models.Workout{}).Count(&report.TotalWorkouts).Error; err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternalError, "failed to count workouts")
	}

	var avgDuration sql.NullFloat64
	if err := r.db.Model(&models.Workout{}).
		Select("AVG(duration_minutes)").
		Scan(&avgDuration).Error; err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternalError, "failed to average workout duration")
	}
	if avgDuration.Valid {
		report.AvgWorkoutDuration = &avgDuration.Float64
	}

	var maxReps sql.NullInt64
	if err := r.db.Model(&models.Exercise{}).
		Select("MAX(reps)").
		Scan(&maxReps).Error; err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternalError, "failed to get max reps")
	}
	if maxReps.Valid {
		reps := int(maxReps.Int64)
		report.MaxReps = &reps
	}

	var minWeight sql.NullFloat64
	if err := r.db.Model(&models.Exercise{}).
		Select("MIN(weight_kg)").
		Scan(&minWeight).Error; err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternalError, "failed to get min weight")
	}
	if minWeight.Valid {
		report.MinWeightLifted = &minWeight.Float64
	}

	return report, nil
}

// GetLeaderboard aggregates workouts dated on or after since, grouped by user
// name, sorted descending by the aggregate. Supported metrics are
// MetricTotalMinutes (summed duration) and MetricTotalWorkouts (count).
func (r *StatsRepository) GetLeaderboard(metric string, since time.Time) ([]LeaderboardEntry, error) {
	var aggregate string
	switch metric {
	case MetricTotalMinutes:
		aggregate = "SUM(workouts.duration_minutes)"
	case MetricTotalWorkouts:
		aggregate = "COUNT(workouts.workout_id)"
	default:
		return nil, errors.New(errors.ErrCodeValidation, "unknown leaderboard metric")
	}

	var entries []LeaderboardEntry
	err := r.db.Table("users").
		Select("users.name, " + aggregate + " AS value").
		Joins("JOIN workouts ON users.user_id = workouts.user_id").
		Where("workouts.workout_date >= ?", since).
		Group("users.name").
		Order("value DESC").
		Scan(&entries).Error

	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternalError, "failed to get leaderboard")
	}

	return entries, nil
}
