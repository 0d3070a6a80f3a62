package handlers

import (
	"fmt"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/mroshb/fitness_tracker/internal/repositories"
	"github.com/mroshb/fitness_tracker/pkg/logger"
)

var rankMedals = []string{"🥇", "🥈", "🥉"}

// ShowLeaderboard renders the trailing-window leaderboard for the given
// metric, with a toggle for the other metric.
func (h *HandlerManager) ShowLeaderboard(chatID int64, metric string, session *UserSession, bot BotInterface) {
	session.ActiveSection = SectionLeaderboard

	if metric != repositories.MetricTotalMinutes && metric != repositories.MetricTotalWorkouts {
		metric = repositories.MetricTotalMinutes
	}

	since := time.Now().Add(-h.Config.GetLeaderboardWindow())
	entries, err := h.StatsRepo.GetLeaderboard(metric, since)
	if err != nil {
		logger.Error("Failed to load leaderboard", "metric", metric, "error", err)
		bot.SendMessage(chatID, "❌ Could not load the leaderboard.", nil)
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🏆 Leaderboard — last %d days\n", h.Config.LeaderboardWindowDays))

	switch metric {
	case repositories.MetricTotalMinutes:
		sb.WriteString("Ranked by total minutes\n\n")
	case repositories.MetricTotalWorkouts:
		sb.WriteString("Ranked by workouts logged\n\n")
	}

	if len(entries) == 0 {
		sb.WriteString("No leaderboard data available for this week.")
	} else {
		for i, e := range entries {
			medal := fmt.Sprintf("%d.", i+1)
			if i < len(rankMedals) {
				medal = rankMedals[i]
			}
			sb.WriteString(fmt.Sprintf("%s %s — %d\n", medal, e.Name, e.Value))
		}
	}

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⏱ Total Minutes", "lb_metric_"+repositories.MetricTotalMinutes),
			tgbotapi.NewInlineKeyboardButtonData("🔁 Total Workouts", "lb_metric_"+repositories.MetricTotalWorkouts),
		),
	)

	bot.SendMessage(chatID, sb.String(), keyboard)
}
