package handlers

// Section is the active screen of a logged-in session.
type Section string

const (
	SectionProfile     Section = "profile"
	SectionWorkouts    Section = "workouts"
	SectionLeaderboard Section = "leaderboard"
	SectionGoals       Section = "goals"
	SectionInsights    Section = "insights"
)

// UserSession is the explicit per-chat session object. UserID == 0 means
// logged out. State tracks the active input flow within the current screen.
type UserSession struct {
	UserID        uint
	Email         string
	ActiveSection Section
	State         string
	Data          map[string]interface{}
}

func NewUserSession() *UserSession {
	return &UserSession{
		Data: make(map[string]interface{}),
	}
}

func (s *UserSession) LoggedIn() bool {
	return s.UserID != 0
}

// ClearFlow aborts any in-progress input flow but keeps the login.
func (s *UserSession) ClearFlow() {
	s.State = StateNone
	s.Data = make(map[string]interface{})
}

// Logout returns the session to the logged-out state.
func (s *UserSession) Logout() {
	s.UserID = 0
	s.Email = ""
	s.ActiveSection = ""
	s.ClearFlow()
}

// Session states
const (
	StateNone = ""

	// Login / signup
	StateLoginEmail   = "login_email"
	StateSignupName   = "signup_name"
	StateSignupEmail  = "signup_email"
	StateSignupWeight = "signup_weight"

	// Profile
	StateEditName       = "edit_name"
	StateEditWeight     = "edit_weight"
	StateAddFriendEmail = "add_friend_email"

	// Workout logging
	StateWorkoutDate     = "workout_date"
	StateWorkoutDuration = "workout_duration"
	StateExerciseName    = "exercise_name"
	StateExerciseReps    = "exercise_reps"
	StateExerciseSets    = "exercise_sets"
	StateExerciseWeight  = "exercise_weight"

	// Goals
	StateGoalDescription = "goal_description"
	StateGoalTarget      = "goal_target"
	StateGoalProgress    = "goal_progress"
)
