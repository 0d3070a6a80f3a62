package handlers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mroshb/fitness_tracker/internal/models"
	"github.com/mroshb/fitness_tracker/internal/security"
	apperrors "github.com/mroshb/fitness_tracker/pkg/errors"
	"github.com/mroshb/fitness_tracker/pkg/logger"
)

// StartLogin begins the email prompt for an existing account.
func (h *HandlerManager) StartLogin(chatID int64, session *UserSession, bot BotInterface) {
	session.State = StateLoginEmail
	bot.SendMessage(chatID, "📧 Enter your email to log in:", bot.GetCancelKeyboard())
}

// HandleLoginEmail resolves the email and, on success, transitions the session
// to logged in. Signup is suggested when the lookup misses.
func (h *HandlerManager) HandleLoginEmail(chatID int64, text string, session *UserSession, bot BotInterface) {
	email := strings.ToLower(strings.TrimSpace(text))
	if !security.ValidateEmail(email) {
		bot.SendMessage(chatID, "⚠️ That doesn't look like an email address. Try again:", bot.GetCancelKeyboard())
		return
	}

	user, err := h.UserRepo.GetUserByEmail(email)
	if err != nil {
		if apperrors.HasCode(err, apperrors.ErrCodeNotFound) {
			session.ClearFlow()
			bot.SendMessage(chatID, "❌ User not found. Please sign up first.", bot.GetLoginMenuKeyboard())
			return
		}
		logger.Error("Login lookup failed", "error", err)
		session.ClearFlow()
		bot.SendMessage(chatID, "❌ Something went wrong. Please try again.", bot.GetLoginMenuKeyboard())
		return
	}

	session.UserID = user.ID
	session.Email = user.Email
	session.ActiveSection = SectionProfile
	session.ClearFlow()

	bot.SendMessage(chatID, fmt.Sprintf("✅ Logged in as %s. Welcome back!", user.Name), bot.GetMainMenuKeyboard())
	h.ShowProfile(chatID, session, bot)
}

// StartSignup begins the three-step signup flow.
func (h *HandlerManager) StartSignup(chatID int64, session *UserSession, bot BotInterface) {
	session.State = StateSignupName
	session.Data = make(map[string]interface{})
	bot.SendMessage(chatID, "👤 What's your full name?", bot.GetCancelKeyboard())
}

// HandleSignupFlow walks name -> email -> weight, then creates the account.
// Signup never auto-authenticates; the user must log in afterwards.
func (h *HandlerManager) HandleSignupFlow(chatID int64, text string, session *UserSession, bot BotInterface) {
	switch session.State {
	case StateSignupName:
		name := security.SanitizeText(text)
		if name == "" {
			bot.SendMessage(chatID, "⚠️ Name can't be empty. What's your full name?", bot.GetCancelKeyboard())
			return
		}
		session.Data["name"] = name
		session.State = StateSignupEmail
		bot.SendMessage(chatID, "📧 What's your email?", bot.GetCancelKeyboard())

	case StateSignupEmail:
		email := strings.ToLower(strings.TrimSpace(text))
		if !security.ValidateEmail(email) {
			bot.SendMessage(chatID, "⚠️ That doesn't look like an email address. Try again:", bot.GetCancelKeyboard())
			return
		}
		session.Data["email"] = email
		session.State = StateSignupWeight
		bot.SendMessage(chatID, "⚖️ What's your weight in kg? (e.g. 72.5)", bot.GetCancelKeyboard())

	case StateSignupWeight:
		weight, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
		if err != nil || !security.ValidateWeight(weight) {
			bot.SendMessage(chatID, "⚠️ Please send a valid weight in kg (e.g. 72.5):", bot.GetCancelKeyboard())
			return
		}

		name, _ := session.Data["name"].(string)
		email, _ := session.Data["email"].(string)

		user := &models.User{
			Name:     name,
			Email:    email,
			WeightKg: weight,
		}

		session.ClearFlow()
		if err := h.UserRepo.CreateUser(user); err != nil {
			if apperrors.HasCode(err, apperrors.ErrCodeAlreadyExists) {
				bot.SendMessage(chatID, "❌ That email is already registered. Try logging in.", bot.GetLoginMenuKeyboard())
				return
			}
			logger.Error("Signup failed", "error", err)
			bot.SendMessage(chatID, "❌ Error creating account. Please try again.", bot.GetLoginMenuKeyboard())
			return
		}

		bot.SendMessage(chatID, "🎉 Account created! Please log in.", bot.GetLoginMenuKeyboard())

	default:
		logger.Warn("Unknown signup state", "state", session.State, "chat_id", chatID)
		session.ClearFlow()
	}
}

// HandleLogout ends the session and returns to the login menu.
func (h *HandlerManager) HandleLogout(chatID int64, session *UserSession, bot BotInterface) {
	session.Logout()
	bot.SendMessage(chatID, "👋 Logged out. See you next workout!", bot.GetLoginMenuKeyboard())
}
