package telegram

// Main menu buttons
const (
	BtnProfile     = "👤 Profile"
	BtnWorkouts    = "🏋️ Workouts"
	BtnLogWorkout  = "➕ Log Workout"
	BtnLeaderboard = "🏆 Leaderboard"
	BtnGoals       = "🎯 Goals"
	BtnInsights    = "📊 Insights"
	BtnLogout      = "🚪 Log Out"
)

// Login menu buttons
const (
	BtnLogin  = "🔑 Log In"
	BtnSignup = "📝 Sign Up"
)

// Flow buttons
const (
	BtnCancel = "❌ Cancel"
	BtnDone   = "✅ Done"
)

// Messages
const (
	MsgWelcome = "💪 Welcome to Fitness Tracker!\n\nLog workouts, set goals, connect with friends and climb the weekly leaderboard.\n\nLog in with your email, or sign up for a new account."
	MsgHelp    = "💪 Fitness Tracker\n\n" +
		"👤 Profile — view and update your details, manage friends\n" +
		"🏋️ Workouts — log workouts with exercises and browse history\n" +
		"🏆 Leaderboard — weekly ranking among all users\n" +
		"🎯 Goals — set goals and track progress\n" +
		"📊 Insights — overall usage statistics\n\n" +
		"Commands: /start /help /cancel /logout"
	MsgCancel       = "Okay, cancelled."
	MsgPleaseLogin  = "🔒 Please log in first."
	MsgRateLimited  = "🐢 Easy there! Too many actions, give it a few seconds."
	MsgUnknownInput = "🤔 I didn't get that. Use the menu buttons or /help."
)
