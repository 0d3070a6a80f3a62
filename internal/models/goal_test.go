package models

import (
	"testing"
)

func TestGoal_BeforeSave(t *testing.T) {
	tests := []struct {
		name        string
		description string
		target      int
		current     int
		wantErr     bool
	}{
		{
			name:        "Fresh goal",
			description: "Workout 5 times a week",
			target:      5,
			current:     0,
			wantErr:     false,
		},
		{
			name:        "Progress above target is allowed",
			description: "Run 10 km",
			target:      10,
			current:     12,
			wantErr:     false,
		},
		{
			name:        "Blank description",
			description: "  ",
			target:      5,
			current:     0,
			wantErr:     true,
		},
		{
			name:        "Zero target",
			description: "Run 10 km",
			target:      0,
			current:     0,
			wantErr:     true,
		},
		{
			name:        "Negative progress",
			description: "Run 10 km",
			target:      10,
			current:     -1,
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := &Goal{
				UserID:          1,
				GoalDescription: tt.description,
				TargetValue:     tt.target,
				CurrentValue:    tt.current,
			}

			err := g.BeforeSave(nil)
			if (err != nil) != tt.wantErr {
				t.Errorf("BeforeSave() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestGoal_TableName(t *testing.T) {
	if (Goal{}).TableName() != "goals" {
		t.Errorf("TableName() = %q, want %q", Goal{}.TableName(), "goals")
	}
}
