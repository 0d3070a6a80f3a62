package handlers

import (
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/mroshb/fitness_tracker/internal/security"
	apperrors "github.com/mroshb/fitness_tracker/pkg/errors"
	"github.com/mroshb/fitness_tracker/pkg/logger"
)

// ShowGoals renders the goals section with per-goal progress buttons.
func (h *HandlerManager) ShowGoals(chatID int64, session *UserSession, bot BotInterface) {
	session.ActiveSection = SectionGoals

	goals, err := h.GoalRepo.GetGoals(session.UserID)
	if err != nil {
		logger.Error("Failed to load goals", "user_id", session.UserID, "error", err)
		bot.SendMessage(chatID, "❌ Could not load your goals.", nil)
		return
	}

	var sb strings.Builder
	sb.WriteString("🎯 My Fitness Goals\n\n")

	if len(goals) == 0 {
		sb.WriteString("You haven't set any goals yet.")
	} else {
		for i, g := range goals {
			sb.WriteString(fmt.Sprintf("%d. %s\n   Progress: %d / %d\n", i+1, g.GoalDescription, g.CurrentValue, g.TargetValue))
		}
	}

	var rows [][]tgbotapi.InlineKeyboardButton
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("🆕 Set a New Goal", "goal_new"),
	))
	for i, g := range goals {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(
				fmt.Sprintf("📈 Update Progress on #%d", i+1),
				fmt.Sprintf("goal_progress_%d", g.ID),
			),
		))
	}

	bot.SendMessage(chatID, sb.String(), tgbotapi.NewInlineKeyboardMarkup(rows...))
}

// StartNewGoal begins the goal creation flow.
func (h *HandlerManager) StartNewGoal(chatID int64, session *UserSession, bot BotInterface) {
	session.State = StateGoalDescription
	session.Data = make(map[string]interface{})
	bot.SendMessage(chatID, "🎯 Describe your goal (e.g. 'Workout 5 times a week'):", bot.GetCancelKeyboard())
}

// StartGoalProgress begins the progress update flow for one goal.
func (h *HandlerManager) StartGoalProgress(chatID int64, goalID uint, session *UserSession, bot BotInterface) {
	session.State = StateGoalProgress
	session.Data = map[string]interface{}{"goal_id": goalID}
	bot.SendMessage(chatID, "📈 What's your current progress value?", bot.GetCancelKeyboard())
}

// HandleGoalFlow walks description -> target for creation, or applies a
// progress value, then re-renders the section.
func (h *HandlerManager) HandleGoalFlow(chatID int64, text string, session *UserSession, bot BotInterface) {
	input := strings.TrimSpace(text)

	switch session.State {
	case StateGoalDescription:
		description := security.SanitizeText(input)
		if description == "" {
			bot.SendMessage(chatID, "⚠️ Description can't be empty. Describe your goal:", bot.GetCancelKeyboard())
			return
		}
		session.Data["description"] = description
		session.State = StateGoalTarget
		bot.SendMessage(chatID, "🔢 Target value? (a whole number, at least 1)", bot.GetCancelKeyboard())

	case StateGoalTarget:
		target, err := strconv.Atoi(input)
		if err != nil || target < 1 {
			bot.SendMessage(chatID, "⚠️ Please send a whole number of at least 1:", bot.GetCancelKeyboard())
			return
		}

		description, _ := session.Data["description"].(string)
		session.ClearFlow()

		if err := h.GoalRepo.CreateGoal(session.UserID, description, target); err != nil {
			logger.Error("Failed to create goal", "user_id", session.UserID, "error", err)
			bot.SendMessage(chatID, "❌ Failed to set goal.", bot.GetMainMenuKeyboard())
			return
		}

		bot.SendMessage(chatID, "✅ Goal set successfully!", bot.GetMainMenuKeyboard())
		h.ShowGoals(chatID, session, bot)

	case StateGoalProgress:
		value, err := strconv.Atoi(input)
		if err != nil || value < 0 {
			bot.SendMessage(chatID, "⚠️ Please send a non-negative whole number:", bot.GetCancelKeyboard())
			return
		}

		goalID, _ := session.Data["goal_id"].(uint)
		session.ClearFlow()

		if err := h.GoalRepo.UpdateGoalProgress(goalID, value); err != nil {
			if apperrors.HasCode(err, apperrors.ErrCodeNotFound) {
				bot.SendMessage(chatID, "⚠️ That goal no longer exists.", bot.GetMainMenuKeyboard())
			} else {
				logger.Error("Failed to update goal progress", "goal_id", goalID, "error", err)
				bot.SendMessage(chatID, "❌ Failed to update progress.", bot.GetMainMenuKeyboard())
			}
			return
		}

		bot.SendMessage(chatID, "✅ Progress updated!", bot.GetMainMenuKeyboard())
		h.ShowGoals(chatID, session, bot)

	default:
		logger.Warn("Unknown goal state", "state", session.State, "chat_id", chatID)
		session.ClearFlow()
	}
}
