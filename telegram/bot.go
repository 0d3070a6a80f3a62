package telegram

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/mroshb/fitness_tracker/internal/config"
	"github.com/mroshb/fitness_tracker/internal/handlers"
	"github.com/mroshb/fitness_tracker/internal/middleware"
	"github.com/mroshb/fitness_tracker/internal/repositories"
	"github.com/mroshb/fitness_tracker/pkg/logger"
	"gorm.io/gorm"
)

const numWorkers = 8

type Bot struct {
	api      *tgbotapi.BotAPI
	config   *config.Config
	db       *gorm.DB
	handlers *handlers.HandlerManager
	limiter  *middleware.RateLimiter

	// Per-chat sessions for conversation state
	sessions map[int64]*handlers.UserSession
	mu       sync.RWMutex

	// Worker pool for parallel processing, hashed by chat so per-user
	// processing stays ordered
	workerChans []chan tgbotapi.Update
}

func InitBot(cfg *config.Config, db *gorm.DB) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	if cfg.AppEnv == "development" {
		api.Debug = true
	}

	logger.Info("Authorized on account", "username", api.Self.UserName)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	workoutRepo := repositories.NewWorkoutRepository(db)
	friendRepo := repositories.NewFriendRepository(db)
	goalRepo := repositories.NewGoalRepository(db)
	statsRepo := repositories.NewStatsRepository(db)

	handlerMgr := handlers.NewHandlerManager(cfg, db, userRepo, workoutRepo, friendRepo, goalRepo, statsRepo)

	bot := &Bot{
		api:         api,
		config:      cfg,
		db:          db,
		handlers:    handlerMgr,
		limiter:     middleware.NewRateLimiter(cfg.RateLimitPerUser, time.Minute),
		sessions:    make(map[int64]*handlers.UserSession),
		workerChans: make([]chan tgbotapi.Update, numWorkers),
	}

	for i := 0; i < numWorkers; i++ {
		bot.workerChans[i] = make(chan tgbotapi.Update, 100)
		go bot.startWorker(bot.workerChans[i])
	}

	go bot.startUpdateListener()

	return bot, nil
}

func (b *Bot) Stop() {
	b.api.StopReceivingUpdates()
}

func (b *Bot) startUpdateListener() {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	for update := range updates {
		var chatID int64
		if update.Message != nil {
			chatID = update.Message.Chat.ID
		} else if update.CallbackQuery != nil && update.CallbackQuery.Message != nil {
			chatID = update.CallbackQuery.Message.Chat.ID
		}

		if chatID != 0 {
			workerIdx := chatID % int64(len(b.workerChans))
			if workerIdx < 0 {
				workerIdx = -workerIdx
			}
			b.workerChans[workerIdx] <- update
		}
	}

	for _, ch := range b.workerChans {
		close(ch)
	}
	logger.Info("Update listener stopped")
}

func (b *Bot) startWorker(updates <-chan tgbotapi.Update) {
	for update := range updates {
		b.handleUpdate(update)
	}
}

func (b *Bot) handleUpdate(update tgbotapi.Update) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Panic in handleUpdate", "error", r)
		}
	}()

	if update.Message != nil {
		b.handleMessage(update.Message)
	} else if update.CallbackQuery != nil {
		b.handleCallbackQuery(update.CallbackQuery)
	}
}

// getSession returns the session for a chat, creating it if needed.
func (b *Bot) getSession(chatID int64) *handlers.UserSession {
	b.mu.RLock()
	session, exists := b.sessions[chatID]
	b.mu.RUnlock()
	if exists {
		return session
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if session, exists = b.sessions[chatID]; exists {
		return session
	}
	session = handlers.NewUserSession()
	b.sessions[chatID] = session
	return session
}

func (b *Bot) handleMessage(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	logger.Debug("Received message", "chat_id", chatID, "text", message.Text)

	if !b.limiter.Allow(chatID) {
		b.SendMessage(chatID, MsgRateLimited, nil)
		return
	}

	session := b.getSession(chatID)

	if message.IsCommand() {
		b.handleCommand(message, session)
		return
	}

	text := strings.TrimSpace(message.Text)

	// Cancel aborts any input flow but keeps the login
	if text == BtnCancel {
		session.ClearFlow()
		if session.LoggedIn() {
			b.SendMessage(chatID, MsgCancel, MainMenuKeyboard())
		} else {
			b.SendMessage(chatID, MsgCancel, LoginMenuKeyboard())
		}
		return
	}

	if !session.LoggedIn() {
		b.handleLoggedOutMessage(chatID, text, session)
		return
	}

	b.handleLoggedInMessage(chatID, text, session)
}

func (b *Bot) handleCommand(message *tgbotapi.Message, session *handlers.UserSession) {
	chatID := message.Chat.ID

	switch message.Command() {
	case "start":
		if payload := message.CommandArguments(); payload != "" {
			b.handlers.ShowSharedProfile(chatID, payload, session, b)
			return
		}
		if session.LoggedIn() {
			b.SendMessage(chatID, "💪 Welcome back!", MainMenuKeyboard())
			return
		}
		b.SendMessage(chatID, MsgWelcome, LoginMenuKeyboard())

	case "help":
		b.SendMessage(chatID, MsgHelp, nil)

	case "cancel":
		session.ClearFlow()
		if session.LoggedIn() {
			b.SendMessage(chatID, MsgCancel, MainMenuKeyboard())
		} else {
			b.SendMessage(chatID, MsgCancel, LoginMenuKeyboard())
		}

	case "logout":
		b.handlers.HandleLogout(chatID, session, b)

	default:
		b.SendMessage(chatID, MsgUnknownInput, nil)
	}
}

func (b *Bot) handleLoggedOutMessage(chatID int64, text string, session *handlers.UserSession) {
	switch session.State {
	case handlers.StateLoginEmail:
		b.handlers.HandleLoginEmail(chatID, text, session, b)
		return
	case handlers.StateSignupName, handlers.StateSignupEmail, handlers.StateSignupWeight:
		b.handlers.HandleSignupFlow(chatID, text, session, b)
		return
	}

	switch text {
	case BtnLogin:
		b.handlers.StartLogin(chatID, session, b)
	case BtnSignup:
		b.handlers.StartSignup(chatID, session, b)
	default:
		b.SendMessage(chatID, MsgWelcome, LoginMenuKeyboard())
	}
}

func (b *Bot) handleLoggedInMessage(chatID int64, text string, session *handlers.UserSession) {
	// Section navigation switches context from anywhere outside a flow
	if session.State == handlers.StateNone {
		switch text {
		case BtnProfile:
			b.handlers.ShowProfile(chatID, session, b)
			return
		case BtnWorkouts:
			b.handlers.ShowWorkouts(chatID, session, b)
			return
		case BtnLogWorkout:
			b.handlers.StartLogWorkout(chatID, session, b)
			return
		case BtnLeaderboard:
			b.handlers.ShowLeaderboard(chatID, repositories.MetricTotalMinutes, session, b)
			return
		case BtnGoals:
			b.handlers.ShowGoals(chatID, session, b)
			return
		case BtnInsights:
			b.handlers.ShowInsights(chatID, session, b)
			return
		case BtnLogout:
			b.handlers.HandleLogout(chatID, session, b)
			return
		}

		b.SendMessage(chatID, MsgUnknownInput, MainMenuKeyboard())
		return
	}

	// Input flow dispatch by state
	switch session.State {
	case handlers.StateEditName, handlers.StateEditWeight:
		b.handlers.HandleEditProfileFlow(chatID, text, session, b)

	case handlers.StateAddFriendEmail:
		b.handlers.HandleAddFriendEmail(chatID, text, session, b)

	case handlers.StateWorkoutDate, handlers.StateWorkoutDuration,
		handlers.StateExerciseReps, handlers.StateExerciseSets, handlers.StateExerciseWeight:
		b.handlers.HandleWorkoutFlow(chatID, text, session, b)

	case handlers.StateExerciseName:
		if text == BtnDone {
			text = "done"
		}
		b.handlers.HandleWorkoutFlow(chatID, text, session, b)

	case handlers.StateGoalDescription, handlers.StateGoalTarget, handlers.StateGoalProgress:
		b.handlers.HandleGoalFlow(chatID, text, session, b)

	default:
		logger.Warn("Unknown session state", "state", session.State, "chat_id", chatID)
		session.ClearFlow()
		b.SendMessage(chatID, MsgUnknownInput, MainMenuKeyboard())
	}
}

func (b *Bot) handleCallbackQuery(query *tgbotapi.CallbackQuery) {
	if query.Message == nil {
		return
	}
	chatID := query.Message.Chat.ID
	data := query.Data

	if !b.limiter.Allow(chatID) {
		b.AnswerCallbackQuery(query.ID, MsgRateLimited, true)
		return
	}

	session := b.getSession(chatID)
	if !session.LoggedIn() {
		b.AnswerCallbackQuery(query.ID, MsgPleaseLogin, true)
		return
	}

	b.AnswerCallbackQuery(query.ID, "", false)

	switch {
	case data == "profile_edit_name":
		b.handlers.StartEditName(chatID, session, b)

	case data == "profile_edit_weight":
		b.handlers.StartEditWeight(chatID, session, b)

	case data == "profile_add_friend":
		b.handlers.StartAddFriend(chatID, session, b)

	case data == "profile_share":
		b.handlers.HandleShareProfile(chatID, session, b)

	case strings.HasPrefix(data, "friend_remove_"):
		if id, ok := parseIDSuffix(data, "friend_remove_"); ok {
			b.handlers.HandleRemoveFriend(chatID, id, session, b)
		}

	case strings.HasPrefix(data, "friend_add_"):
		if id, ok := parseIDSuffix(data, "friend_add_"); ok {
			b.handlers.HandleAddFriendByID(chatID, id, session, b)
		}

	case data == "goal_new":
		b.handlers.StartNewGoal(chatID, session, b)

	case strings.HasPrefix(data, "goal_progress_"):
		if id, ok := parseIDSuffix(data, "goal_progress_"); ok {
			b.handlers.StartGoalProgress(chatID, id, session, b)
		}

	case strings.HasPrefix(data, "lb_metric_"):
		metric := strings.TrimPrefix(data, "lb_metric_")
		b.handlers.ShowLeaderboard(chatID, metric, session, b)

	default:
		logger.Warn("Unknown callback data", "data", data, "chat_id", chatID)
	}
}

func parseIDSuffix(data, prefix string) (uint, bool) {
	id, err := strconv.ParseUint(strings.TrimPrefix(data, prefix), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// SendMessage sends a text message with an optional keyboard and returns the
// message id (0 on failure).
func (b *Bot) SendMessage(chatID int64, text string, keyboard interface{}) int {
	msg := tgbotapi.NewMessage(chatID, text)
	if keyboard != nil {
		msg.ReplyMarkup = keyboard
	}

	sent, err := b.api.Send(msg)
	if err != nil {
		logger.Error("Failed to send message", "chat_id", chatID, "error", err)
		return 0
	}
	return sent.MessageID
}

func (b *Bot) AnswerCallbackQuery(queryID string, text string, showAlert bool) {
	callback := tgbotapi.NewCallback(queryID, text)
	callback.ShowAlert = showAlert
	if _, err := b.api.Request(callback); err != nil {
		logger.Error("Failed to answer callback query", "error", err)
	}
}

func (b *Bot) GetUsername() string {
	return b.api.Self.UserName
}

func (b *Bot) GetMainMenuKeyboard() interface{} {
	return MainMenuKeyboard()
}

func (b *Bot) GetLoginMenuKeyboard() interface{} {
	return LoginMenuKeyboard()
}

func (b *Bot) GetCancelKeyboard() interface{} {
	return CancelKeyboard()
}

func (b *Bot) GetExerciseLoopKeyboard() interface{} {
	return ExerciseLoopKeyboard()
}
