package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// MainMenuKeyboard creates the section navigation keyboard for logged-in users
func MainMenuKeyboard() tgbotapi.ReplyKeyboardMarkup {
	var rows [][]tgbotapi.KeyboardButton

	rows = append(rows, tgbotapi.NewKeyboardButtonRow(
		tgbotapi.NewKeyboardButton(BtnProfile),
		tgbotapi.NewKeyboardButton(BtnWorkouts),
	))

	rows = append(rows, tgbotapi.NewKeyboardButtonRow(
		tgbotapi.NewKeyboardButton(BtnLogWorkout),
	))

	rows = append(rows, tgbotapi.NewKeyboardButtonRow(
		tgbotapi.NewKeyboardButton(BtnLeaderboard),
		tgbotapi.NewKeyboardButton(BtnGoals),
	))

	rows = append(rows, tgbotapi.NewKeyboardButtonRow(
		tgbotapi.NewKeyboardButton(BtnInsights),
		tgbotapi.NewKeyboardButton(BtnLogout),
	))

	return tgbotapi.NewReplyKeyboard(rows...)
}

// LoginMenuKeyboard creates the logged-out keyboard
func LoginMenuKeyboard() tgbotapi.ReplyKeyboardMarkup {
	return tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(BtnLogin),
			tgbotapi.NewKeyboardButton(BtnSignup),
		),
	)
}

// CancelKeyboard creates a single-button keyboard to abort an input flow
func CancelKeyboard() tgbotapi.ReplyKeyboardMarkup {
	keyboard := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(BtnCancel),
		),
	)
	keyboard.OneTimeKeyboard = false
	return keyboard
}

// ExerciseLoopKeyboard is shown between exercises while logging a workout
func ExerciseLoopKeyboard() tgbotapi.ReplyKeyboardMarkup {
	return tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(BtnDone),
			tgbotapi.NewKeyboardButton(BtnCancel),
		),
	)
}
