package handlers

import "testing"

func TestNewUserSession_StartsLoggedOut(t *testing.T) {
	s := NewUserSession()

	if s.LoggedIn() {
		t.Error("new session reports logged in")
	}
	if s.State != StateNone {
		t.Errorf("new session State = %q, want none", s.State)
	}
	if s.Data == nil {
		t.Error("new session Data map is nil")
	}
}

func TestUserSession_ClearFlowKeepsLogin(t *testing.T) {
	s := NewUserSession()
	s.UserID = 7
	s.Email = "alice@example.com"
	s.ActiveSection = SectionWorkouts
	s.State = StateWorkoutDuration
	s.Data["duration"] = 45

	s.ClearFlow()

	if !s.LoggedIn() {
		t.Error("ClearFlow() logged the user out")
	}
	if s.ActiveSection != SectionWorkouts {
		t.Errorf("ClearFlow() changed section to %q", s.ActiveSection)
	}
	if s.State != StateNone {
		t.Errorf("State = %q after ClearFlow(), want none", s.State)
	}
	if len(s.Data) != 0 {
		t.Errorf("Data not cleared: %v", s.Data)
	}
}

func TestUserSession_Logout(t *testing.T) {
	s := NewUserSession()
	s.UserID = 7
	s.Email = "alice@example.com"
	s.ActiveSection = SectionGoals
	s.State = StateGoalTarget
	s.Data["target"] = 100

	s.Logout()

	if s.LoggedIn() {
		t.Error("still logged in after Logout()")
	}
	if s.Email != "" || s.ActiveSection != "" {
		t.Errorf("identity not cleared: email=%q section=%q", s.Email, s.ActiveSection)
	}
	if s.State != StateNone || len(s.Data) != 0 {
		t.Errorf("flow not cleared: state=%q data=%v", s.State, s.Data)
	}
}
