package handlers

import (
	"fmt"
	"strings"

	"github.com/mroshb/fitness_tracker/internal/repositories"
	"github.com/mroshb/fitness_tracker/pkg/logger"
)

// FormatInsights renders the report; nil aggregates (empty store) show as N/A.
func FormatInsights(report *repositories.InsightsReport) string {
	var sb strings.Builder
	sb.WriteString("📊 Business Insights\n\n")
	sb.WriteString(fmt.Sprintf("Total Users: %d\n", report.TotalUsers))
	sb.WriteString(fmt.Sprintf("Total Workouts Logged: %d\n", report.TotalWorkouts))

	if report.AvgWorkoutDuration != nil {
		sb.WriteString(fmt.Sprintf("Average Workout Duration: %.2f mins\n", *report.AvgWorkoutDuration))
	} else {
		sb.WriteString("Average Workout Duration: N/A\n")
	}

	if report.MaxReps != nil {
		sb.WriteString(fmt.Sprintf("Maximum Reps in a Single Exercise: %d\n", *report.MaxReps))
	} else {
		sb.WriteString("Maximum Reps in a Single Exercise: N/A\n")
	}

	if report.MinWeightLifted != nil {
		sb.WriteString(fmt.Sprintf("Minimum Weight Lifted: %.1f kg\n", *report.MinWeightLifted))
	} else {
		sb.WriteString("Minimum Weight Lifted: N/A\n")
	}

	return sb.String()
}

// ShowInsights renders the aggregate usage statistics section.
func (h *HandlerManager) ShowInsights(chatID int64, session *UserSession, bot BotInterface) {
	session.ActiveSection = SectionInsights

	report, err := h.StatsRepo.GetBusinessInsights()
	if err != nil {
		logger.Error("Failed to load insights", "error", err)
		bot.SendMessage(chatID, "❌ Could not load insights.", nil)
		return
	}

	bot.SendMessage(chatID, FormatInsights(report), bot.GetMainMenuKeyboard())
}
