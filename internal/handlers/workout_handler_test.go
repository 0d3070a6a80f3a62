package handlers

import (
	"testing"
	"time"

	"github.com/mroshb/fitness_tracker/internal/repositories"
)

func TestGroupHistory(t *testing.T) {
	newer := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	older := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)

	entries := []repositories.WorkoutHistoryEntry{
		{WorkoutID: 12, WorkoutDate: newer, DurationMinutes: 45, ExerciseName: "Squat"},
		{WorkoutID: 12, WorkoutDate: newer, DurationMinutes: 45, ExerciseName: "Bench Press"},
		{WorkoutID: 9, WorkoutDate: older, DurationMinutes: 30, ExerciseName: "Running"},
	}

	views := GroupHistory(entries)

	if len(views) != 2 {
		t.Fatalf("got %d groups, want 2", len(views))
	}
	if views[0].WorkoutID != 12 {
		t.Errorf("first group WorkoutID = %d, want 12 (row order preserved)", views[0].WorkoutID)
	}
	if len(views[0].Exercises) != 2 {
		t.Errorf("first group has %d exercises, want 2", len(views[0].Exercises))
	}
	if views[0].Exercises[1].ExerciseName != "Bench Press" {
		t.Errorf("exercise order not preserved: %q", views[0].Exercises[1].ExerciseName)
	}
	if views[1].WorkoutID != 9 || views[1].DurationMinutes != 30 {
		t.Errorf("second group = %+v, want workout 9 / 30 mins", views[1])
	}
}

func TestGroupHistory_Empty(t *testing.T) {
	if views := GroupHistory(nil); len(views) != 0 {
		t.Errorf("got %d groups for no rows, want 0", len(views))
	}
}

func TestParseWorkoutDate(t *testing.T) {
	now := time.Date(2026, 9, 1, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{"plain date", "2026-08-30", time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC), false},
		{"today keyword", "today", time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), false},
		{"today uppercase", "TODAY", time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), false},
		{"padded input", "  2026-08-30  ", time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC), false},
		{"future date", "2026-09-02", time.Time{}, true},
		{"wrong format", "30/08/2026", time.Time{}, true},
		{"garbage", "yesterday-ish", time.Time{}, true},
		{"empty", "", time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseWorkoutDate(tt.input, now)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseWorkoutDate(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && !got.Equal(tt.want) {
				t.Errorf("ParseWorkoutDate(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
