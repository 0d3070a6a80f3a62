package handlers

import (
	"github.com/mroshb/fitness_tracker/internal/config"
	"github.com/mroshb/fitness_tracker/internal/repositories"
	"gorm.io/gorm"
)

type HandlerManager struct {
	Config      *config.Config
	DB          *gorm.DB
	UserRepo    *repositories.UserRepository
	WorkoutRepo *repositories.WorkoutRepository
	FriendRepo  *repositories.FriendRepository
	GoalRepo    *repositories.GoalRepository
	StatsRepo   *repositories.StatsRepository
}

func NewHandlerManager(
	cfg *config.Config,
	db *gorm.DB,
	userRepo *repositories.UserRepository,
	workoutRepo *repositories.WorkoutRepository,
	friendRepo *repositories.FriendRepository,
	goalRepo *repositories.GoalRepository,
	statsRepo *repositories.StatsRepository,
) *HandlerManager {
	return &HandlerManager{
		Config:      cfg,
		DB:          db,
		UserRepo:    userRepo,
		WorkoutRepo: workoutRepo,
		FriendRepo:  friendRepo,
		GoalRepo:    goalRepo,
		StatsRepo:   statsRepo,
	}
}

// BotInterface is the presentation surface the controller renders through.
// Implemented by the telegram layer; kept as an interface to avoid a circular
// dependency and to keep handlers testable.
type BotInterface interface {
	SendMessage(chatID int64, text string, keyboard interface{}) int
	AnswerCallbackQuery(queryID string, text string, showAlert bool)
	GetUsername() string
	GetMainMenuKeyboard() interface{}
	GetLoginMenuKeyboard() interface{}
	GetCancelKeyboard() interface{}
	GetExerciseLoopKeyboard() interface{}
}
