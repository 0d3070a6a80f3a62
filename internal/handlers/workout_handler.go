package handlers

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/mroshb/fitness_tracker/internal/models"
	"github.com/mroshb/fitness_tracker/internal/repositories"
	"github.com/mroshb/fitness_tracker/internal/security"
	"github.com/mroshb/fitness_tracker/pkg/logger"
)

const workoutDateLayout = "2006-01-02"

// WorkoutView is one workout with its exercises, grouped for rendering.
type WorkoutView struct {
	WorkoutID       uint
	Date            time.Time
	DurationMinutes int
	Exercises       []repositories.WorkoutHistoryEntry
}

// GroupHistory folds joined history rows into per-workout groups, preserving
// the date-descending order of the rows.
func GroupHistory(entries []repositories.WorkoutHistoryEntry) []WorkoutView {
	var views []WorkoutView
	index := make(map[uint]int)

	for _, e := range entries {
		i, seen := index[e.WorkoutID]
		if !seen {
			views = append(views, WorkoutView{
				WorkoutID:       e.WorkoutID,
				Date:            e.WorkoutDate,
				DurationMinutes: e.DurationMinutes,
			})
			i = len(views) - 1
			index[e.WorkoutID] = i
		}
		views[i].Exercises = append(views[i].Exercises, e)
	}

	return views
}

// ShowWorkouts renders the workout tracking section: history plus the
// log-a-workout entry point.
func (h *HandlerManager) ShowWorkouts(chatID int64, session *UserSession, bot BotInterface) {
	session.ActiveSection = SectionWorkouts

	entries, err := h.WorkoutRepo.GetHistory(session.UserID)
	if err != nil {
		logger.Error("Failed to load workout history", "user_id", session.UserID, "error", err)
		bot.SendMessage(chatID, "❌ Could not load your workout history.", nil)
		return
	}

	var sb strings.Builder
	sb.WriteString("🏋️ Workout Tracking\n\n")

	views := GroupHistory(entries)
	if len(views) == 0 {
		sb.WriteString("No workout history found. Log your first workout!\n")
	} else {
		for _, v := range views {
			sb.WriteString(fmt.Sprintf("📅 %s — %d mins\n", v.Date.Format(workoutDateLayout), v.DurationMinutes))
			for _, ex := range v.Exercises {
				sb.WriteString(fmt.Sprintf("  • %s: %d sets of %d reps at %.1f kg\n",
					ex.ExerciseName, ex.Sets, ex.Reps, ex.WeightKg))
			}
		}
	}

	sb.WriteString("\nUse ➕ Log Workout to record a new session.")
	bot.SendMessage(chatID, sb.String(), bot.GetMainMenuKeyboard())
}

// StartLogWorkout begins the workout logging flow.
func (h *HandlerManager) StartLogWorkout(chatID int64, session *UserSession, bot BotInterface) {
	session.State = StateWorkoutDate
	session.Data = make(map[string]interface{})
	bot.SendMessage(chatID, "📅 Workout date? Send YYYY-MM-DD or 'today':", bot.GetCancelKeyboard())
}

// HandleWorkoutFlow walks date -> duration -> exercises. Exercises repeat
// until 'done'; the workout and all exercises are then committed atomically.
func (h *HandlerManager) HandleWorkoutFlow(chatID int64, text string, session *UserSession, bot BotInterface) {
	input := strings.TrimSpace(text)

	switch session.State {
	case StateWorkoutDate:
		date, err := ParseWorkoutDate(input, time.Now())
		if err != nil {
			bot.SendMessage(chatID, "⚠️ Please send the date as YYYY-MM-DD or 'today':", bot.GetCancelKeyboard())
			return
		}
		session.Data["date"] = date
		session.State = StateWorkoutDuration
		bot.SendMessage(chatID, "⏱ Duration in minutes?", bot.GetCancelKeyboard())

	case StateWorkoutDuration:
		duration, err := strconv.Atoi(input)
		if err != nil || duration < 1 {
			bot.SendMessage(chatID, "⚠️ Please send the duration in whole minutes (at least 1):", bot.GetCancelKeyboard())
			return
		}
		session.Data["duration"] = duration
		session.Data["exercises"] = []models.Exercise{}
		session.State = StateExerciseName
		bot.SendMessage(chatID, "💪 Exercise #1 — name?", bot.GetCancelKeyboard())

	case StateExerciseName:
		if strings.EqualFold(input, "done") {
			h.finishWorkout(chatID, session, bot)
			return
		}
		name := security.SanitizeText(input)
		if name == "" {
			bot.SendMessage(chatID, "⚠️ Exercise name can't be empty. Name?", bot.GetCancelKeyboard())
			return
		}
		session.Data["ex_name"] = name
		session.State = StateExerciseReps
		bot.SendMessage(chatID, "🔁 Reps?", bot.GetCancelKeyboard())

	case StateExerciseReps:
		reps, err := strconv.Atoi(input)
		if err != nil || reps < 0 {
			bot.SendMessage(chatID, "⚠️ Please send a non-negative number of reps:", bot.GetCancelKeyboard())
			return
		}
		session.Data["ex_reps"] = reps
		session.State = StateExerciseSets
		bot.SendMessage(chatID, "🔢 Sets?", bot.GetCancelKeyboard())

	case StateExerciseSets:
		sets, err := strconv.Atoi(input)
		if err != nil || sets < 0 {
			bot.SendMessage(chatID, "⚠️ Please send a non-negative number of sets:", bot.GetCancelKeyboard())
			return
		}
		session.Data["ex_sets"] = sets
		session.State = StateExerciseWeight
		bot.SendMessage(chatID, "⚖️ Weight in kg?", bot.GetCancelKeyboard())

	case StateExerciseWeight:
		weight, err := strconv.ParseFloat(input, 64)
		if err != nil || !security.ValidateWeight(weight) {
			bot.SendMessage(chatID, "⚠️ Please send a valid weight in kg:", bot.GetCancelKeyboard())
			return
		}

		exercises, _ := session.Data["exercises"].([]models.Exercise)
		name, _ := session.Data["ex_name"].(string)
		reps, _ := session.Data["ex_reps"].(int)
		sets, _ := session.Data["ex_sets"].(int)

		exercises = append(exercises, models.Exercise{
			ExerciseName: name,
			Reps:         reps,
			Sets:         sets,
			WeightKg:     weight,
		})
		session.Data["exercises"] = exercises
		session.State = StateExerciseName

		bot.SendMessage(chatID,
			fmt.Sprintf("✅ Exercise recorded. Exercise #%d — name? (or press Done)", len(exercises)+1),
			bot.GetExerciseLoopKeyboard())

	default:
		logger.Warn("Unknown workout state", "state", session.State, "chat_id", chatID)
		session.ClearFlow()
	}
}

func (h *HandlerManager) finishWorkout(chatID int64, session *UserSession, bot BotInterface) {
	exercises, _ := session.Data["exercises"].([]models.Exercise)
	if len(exercises) == 0 {
		bot.SendMessage(chatID, "⚠️ Add at least one exercise before finishing. Exercise name?", bot.GetCancelKeyboard())
		return
	}

	date, _ := session.Data["date"].(time.Time)
	duration, _ := session.Data["duration"].(int)

	session.ClearFlow()

	workoutID, err := h.WorkoutRepo.LogWorkout(session.UserID, date, duration, exercises)
	if err != nil {
		logger.Error("Failed to log workout", "user_id", session.UserID, "error", err)
		bot.SendMessage(chatID, "❌ Failed to log workout. Nothing was saved.", bot.GetMainMenuKeyboard())
		return
	}

	logger.Info("Workout logged", "user_id", session.UserID, "workout_id", workoutID, "exercises", len(exercises))
	bot.SendMessage(chatID, "🎉 Workout logged successfully!", bot.GetMainMenuKeyboard())
	h.ShowWorkouts(chatID, session, bot)
}

// ParseWorkoutDate accepts YYYY-MM-DD or the word "today". Future dates are
// rejected; a workout is a record of something that happened.
func ParseWorkoutDate(input string, now time.Time) (time.Time, error) {
	if strings.EqualFold(strings.TrimSpace(input), "today") {
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}

	date, err := time.Parse(workoutDateLayout, strings.TrimSpace(input))
	if err != nil {
		return time.Time{}, err
	}
	if date.After(now) {
		return time.Time{}, fmt.Errorf("workout date %s is in the future", date.Format(workoutDateLayout))
	}
	return date, nil
}
