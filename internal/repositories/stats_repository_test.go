package repositories

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/mroshb/fitness_tracker/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetBusinessInsights(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStatsRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "workouts"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(10))
	mock.ExpectQuery(`SELECT AVG\(duration_minutes\) FROM "workouts"`).
		WillReturnRows(sqlmock.NewRows([]string{"avg"}).AddRow(42.5))
	mock.ExpectQuery(`SELECT MAX\(reps\) FROM "exercises"`).
		WillReturnRows(sqlmock.NewRows([]string{"max"}).AddRow(15))
	mock.ExpectQuery(`SELECT MIN\(weight_kg\) FROM "exercises"`).
		WillReturnRows(sqlmock.NewRows([]string{"min"}).AddRow(20.0))

	report, err := repo.GetBusinessInsights()

	require.NoError(t, err)
	assert.Equal(t, int64(3), report.TotalUsers)
	assert.Equal(t, int64(10), report.TotalWorkouts)
	require.NotNil(t, report.AvgWorkoutDuration)
	assert.InDelta(t, 42.5, *report.AvgWorkoutDuration, 0.001)
	require.NotNil(t, report.MaxReps)
	assert.Equal(t, 15, *report.MaxReps)
	require.NotNil(t, report.MinWeightLifted)
	assert.InDelta(t, 20.0, *report.MinWeightLifted, 0.001)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetBusinessInsights_EmptyStore(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStatsRepository(db)

	// AVG/MAX/MIN over zero rows come back as SQL NULL, not zero.
	mock.ExpectQuery(`SELECT count\(\*\) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "workouts"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`SELECT AVG\(duration_minutes\) FROM "workouts"`).
		WillReturnRows(sqlmock.NewRows([]string{"avg"}).AddRow(nil))
	mock.ExpectQuery(`SELECT MAX\(reps\) FROM "exercises"`).
		WillReturnRows(sqlmock.NewRows([]string{"max"}).AddRow(nil))
	mock.ExpectQuery(`SELECT MIN\(weight_kg\) FROM "exercises"`).
		WillReturnRows(sqlmock.NewRows([]string{"min"}).AddRow(nil))

	report, err := repo.GetBusinessInsights()

	require.NoError(t, err)
	assert.Equal(t, int64(0), report.TotalUsers)
	assert.Nil(t, report.AvgWorkoutDuration)
	assert.Nil(t, report.MaxReps)
	assert.Nil(t, report.MinWeightLifted)
}

func TestGetLeaderboard_TotalMinutes(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStatsRepository(db)

	since := time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"name", "value"}).
		AddRow("Alice", 180).
		AddRow("Bob", 120)
	mock.ExpectQuery(`SELECT users.name, SUM\(workouts.duration_minutes\) AS value FROM "users" JOIN workouts`).
		WithArgs(since).
		WillReturnRows(rows)

	entries, err := repo.GetLeaderboard(MetricTotalMinutes, since)

	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Alice", entries[0].Name)
	assert.Equal(t, int64(180), entries[0].Value)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetLeaderboard_TotalWorkouts(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStatsRepository(db)

	since := time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"name", "value"}).
		AddRow("Bob", 4)
	mock.ExpectQuery(`SELECT users.name, COUNT\(workouts.workout_id\) AS value FROM "users" JOIN workouts`).
		WithArgs(since).
		WillReturnRows(rows)

	entries, err := repo.GetLeaderboard(MetricTotalWorkouts, since)

	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, int64(4), entries[0].Value)
}

func TestGetLeaderboard_UnknownMetric(t *testing.T) {
	db, _ := newMockDB(t)
	repo := NewStatsRepository(db)

	_, err := repo.GetLeaderboard("calories", time.Now())

	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeValidation))
}
