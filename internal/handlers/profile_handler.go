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

// ShowProfile renders the profile section: account details and the friend
// list, fetched fresh from the store.
func (h *HandlerManager) ShowProfile(chatID int64, session *UserSession, bot BotInterface) {
	session.ActiveSection = SectionProfile

	user, err := h.UserRepo.GetUserByID(session.UserID)
	if err != nil {
		logger.Error("Failed to load profile", "user_id", session.UserID, "error", err)
		bot.SendMessage(chatID, "❌ Could not load your profile. Please try again.", nil)
		return
	}

	friends, err := h.FriendRepo.GetFriends(session.UserID)
	if err != nil {
		logger.Error("Failed to load friends", "user_id", session.UserID, "error", err)
		bot.SendMessage(chatID, "❌ Could not load your friends. Please try again.", nil)
		return
	}

	var sb strings.Builder
	sb.WriteString("👤 Your Profile\n\n")
	sb.WriteString(fmt.Sprintf("Name: %s\n", user.Name))
	sb.WriteString(fmt.Sprintf("Email: %s\n", user.Email))
	sb.WriteString(fmt.Sprintf("Weight: %.1f kg\n\n", user.WeightKg))

	if len(friends) == 0 {
		sb.WriteString("🤝 No friends yet. Add one by email!")
	} else {
		sb.WriteString(fmt.Sprintf("🤝 My Friends (%d):\n", len(friends)))
		for _, f := range friends {
			sb.WriteString(fmt.Sprintf("• %s (%s)\n", f.Name, f.Email))
		}
	}

	var rows [][]tgbotapi.InlineKeyboardButton
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("✏️ Edit Name", "profile_edit_name"),
		tgbotapi.NewInlineKeyboardButtonData("⚖️ Edit Weight", "profile_edit_weight"),
	))
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("➕ Add Friend", "profile_add_friend"),
		tgbotapi.NewInlineKeyboardButtonData("🔗 Share Profile", "profile_share"),
	))
	for _, f := range friends {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(
				fmt.Sprintf("🗑 Remove %s", f.Name),
				fmt.Sprintf("friend_remove_%d", f.UserID),
			),
		))
	}

	bot.SendMessage(chatID, sb.String(), tgbotapi.NewInlineKeyboardMarkup(rows...))
}

// StartEditName begins the name update flow.
func (h *HandlerManager) StartEditName(chatID int64, session *UserSession, bot BotInterface) {
	session.State = StateEditName
	bot.SendMessage(chatID, "✏️ Send your new name:", bot.GetCancelKeyboard())
}

// StartEditWeight begins the weight update flow.
func (h *HandlerManager) StartEditWeight(chatID int64, session *UserSession, bot BotInterface) {
	session.State = StateEditWeight
	bot.SendMessage(chatID, "⚖️ Send your new weight in kg:", bot.GetCancelKeyboard())
}

// HandleEditProfileFlow applies a name or weight change and re-renders the
// profile on success.
func (h *HandlerManager) HandleEditProfileFlow(chatID int64, text string, session *UserSession, bot BotInterface) {
	user, err := h.UserRepo.GetUserByID(session.UserID)
	if err != nil {
		session.ClearFlow()
		bot.SendMessage(chatID, "❌ Could not load your profile. Please try again.", bot.GetMainMenuKeyboard())
		return
	}

	name := user.Name
	weight := user.WeightKg

	switch session.State {
	case StateEditName:
		name = security.SanitizeText(text)
		if name == "" {
			bot.SendMessage(chatID, "⚠️ Name can't be empty. Send your new name:", bot.GetCancelKeyboard())
			return
		}

	case StateEditWeight:
		w, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
		if err != nil || !security.ValidateWeight(w) {
			bot.SendMessage(chatID, "⚠️ Please send a valid weight in kg:", bot.GetCancelKeyboard())
			return
		}
		weight = w

	default:
		logger.Warn("Unknown profile edit state", "state", session.State, "chat_id", chatID)
		session.ClearFlow()
		return
	}

	session.ClearFlow()
	if err := h.UserRepo.UpdateProfile(session.UserID, name, weight); err != nil {
		logger.Error("Profile update failed", "user_id", session.UserID, "error", err)
		bot.SendMessage(chatID, "❌ Failed to update profile.", bot.GetMainMenuKeyboard())
		return
	}

	bot.SendMessage(chatID, "✅ Profile updated successfully!", bot.GetMainMenuKeyboard())
	h.ShowProfile(chatID, session, bot)
}

// StartAddFriend begins the add-friend-by-email flow.
func (h *HandlerManager) StartAddFriend(chatID int64, session *UserSession, bot BotInterface) {
	session.State = StateAddFriendEmail
	bot.SendMessage(chatID, "📧 Enter your friend's email:", bot.GetCancelKeyboard())
}

// HandleAddFriendEmail resolves the email first; an unknown email fails
// without mutation.
func (h *HandlerManager) HandleAddFriendEmail(chatID int64, text string, session *UserSession, bot BotInterface) {
	email := strings.ToLower(strings.TrimSpace(text))
	if !security.ValidateEmail(email) {
		bot.SendMessage(chatID, "⚠️ That doesn't look like an email address. Try again:", bot.GetCancelKeyboard())
		return
	}

	session.ClearFlow()

	friend, err := h.UserRepo.GetUserByEmail(email)
	if err != nil {
		if apperrors.HasCode(err, apperrors.ErrCodeNotFound) {
			bot.SendMessage(chatID, "❌ No user with that email. Check the address.", bot.GetMainMenuKeyboard())
			return
		}
		logger.Error("Friend lookup failed", "error", err)
		bot.SendMessage(chatID, "❌ Failed to add friend. Please try again.", bot.GetMainMenuKeyboard())
		return
	}

	if err := h.FriendRepo.AddFriend(session.UserID, friend.ID); err != nil {
		switch {
		case apperrors.HasCode(err, apperrors.ErrCodeAlreadyExists):
			bot.SendMessage(chatID, "✅ You're already friends!", bot.GetMainMenuKeyboard())
		case apperrors.HasCode(err, apperrors.ErrCodeValidation):
			bot.SendMessage(chatID, "⚠️ You can't add yourself as a friend.", bot.GetMainMenuKeyboard())
		default:
			logger.Error("Add friend failed", "user_id", session.UserID, "error", err)
			bot.SendMessage(chatID, "❌ Failed to add friend. Please try again.", bot.GetMainMenuKeyboard())
		}
		return
	}

	bot.SendMessage(chatID, fmt.Sprintf("🤝 %s added as a friend!", friend.Name), bot.GetMainMenuKeyboard())
	h.ShowProfile(chatID, session, bot)
}

// HandleRemoveFriend deletes the friendship from either side and re-renders.
func (h *HandlerManager) HandleRemoveFriend(chatID int64, friendID uint, session *UserSession, bot BotInterface) {
	if err := h.FriendRepo.RemoveFriend(session.UserID, friendID); err != nil {
		if apperrors.HasCode(err, apperrors.ErrCodeNotFound) {
			bot.SendMessage(chatID, "⚠️ You're not friends with that user anymore.", nil)
		} else {
			logger.Error("Remove friend failed", "user_id", session.UserID, "error", err)
			bot.SendMessage(chatID, "❌ Failed to remove friend.", nil)
		}
		return
	}

	bot.SendMessage(chatID, "✅ Friend removed.", nil)
	h.ShowProfile(chatID, session, bot)
}

// HandleShareProfile sends a signed deep link to this user's public profile.
func (h *HandlerManager) HandleShareProfile(chatID int64, session *UserSession, bot BotInterface) {
	token, err := security.GenerateShareToken(session.UserID, session.Email, h.Config.JWTSecret)
	if err != nil {
		logger.Error("Share token generation failed", "user_id", session.UserID, "error", err)
		bot.SendMessage(chatID, "❌ Could not create a share link.", nil)
		return
	}

	link := fmt.Sprintf("https://t.me/%s?start=%s", bot.GetUsername(), token)
	bot.SendMessage(chatID, fmt.Sprintf("🔗 Share this link with a friend (valid 7 days):\n%s", link), nil)
}

// ShowSharedProfile renders the public profile behind a share link, with an
// add-friend shortcut for logged-in viewers.
func (h *HandlerManager) ShowSharedProfile(chatID int64, token string, session *UserSession, bot BotInterface) {
	claims, err := security.ValidateShareToken(token, h.Config.JWTSecret)
	if err != nil {
		bot.SendMessage(chatID, "⚠️ This share link is invalid or has expired.", nil)
		return
	}

	user, err := h.UserRepo.GetUserByID(claims.UserID)
	if err != nil {
		bot.SendMessage(chatID, "⚠️ This profile no longer exists.", nil)
		return
	}

	text := fmt.Sprintf("👤 %s shared their profile with you!\nEmail: %s", user.Name, user.Email)

	var keyboard interface{}
	if session.LoggedIn() && session.UserID != user.ID {
		keyboard = tgbotapi.NewInlineKeyboardMarkup(
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData("➕ Add Friend", fmt.Sprintf("friend_add_%d", user.ID)),
			),
		)
	}

	bot.SendMessage(chatID, text, keyboard)
}

// HandleAddFriendByID adds a friendship from a shared-profile shortcut.
func (h *HandlerManager) HandleAddFriendByID(chatID int64, friendID uint, session *UserSession, bot BotInterface) {
	friend, err := h.UserRepo.GetUserByID(friendID)
	if err != nil {
		bot.SendMessage(chatID, "⚠️ This profile no longer exists.", nil)
		return
	}

	if err := h.FriendRepo.AddFriend(session.UserID, friend.ID); err != nil {
		if apperrors.HasCode(err, apperrors.ErrCodeAlreadyExists) {
			bot.SendMessage(chatID, "✅ You're already friends!", nil)
			return
		}
		logger.Error("Add friend by id failed", "user_id", session.UserID, "error", err)
		bot.SendMessage(chatID, "❌ Failed to add friend.", nil)
		return
	}

	bot.SendMessage(chatID, fmt.Sprintf("🤝 %s added as a friend!", friend.Name), nil)
}
