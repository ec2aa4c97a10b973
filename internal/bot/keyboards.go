package bot

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/carltonnorthern/soft-splits-blackjack/internal/game"
)

const (
	CallbackHit       = "hit"
	CallbackStand     = "stand"
	CallbackDouble    = "double"
	CallbackSplit     = "split"
	CallbackHint      = "hint"
	CallbackPlayAgain = "play_again"
	CallbackBalance   = "balance"
	CallbackTrainStop = "train_stop"

	// у этих callback после двоеточия идёт аргумент
	CallbackTrainKindPrefix   = "train_kind:"
	CallbackTrainAnswerPrefix = "train_answer:"
)

var actionLabels = map[game.Action]string{
	game.ActionHit:    "👊 Hit",
	game.ActionStand:  "✋ Stand",
	game.ActionDouble: "💰 Double",
	game.ActionSplit:  "✂️ Split",
}

type GameKeyboardOptions struct {
	CanDouble bool
	CanSplit  bool
}

func GameKeyboard(opts GameKeyboardOptions) tgbotapi.InlineKeyboardMarkup {
	row := []tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardButtonData(actionLabels[game.ActionHit], CallbackHit),
		tgbotapi.NewInlineKeyboardButtonData(actionLabels[game.ActionStand], CallbackStand),
	}

	if opts.CanDouble {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(actionLabels[game.ActionDouble], CallbackDouble))
	}
	if opts.CanSplit {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(actionLabels[game.ActionSplit], CallbackSplit))
	}

	return tgbotapi.NewInlineKeyboardMarkup(
		row,
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("💡 Подсказка", CallbackHint),
		),
	)
}

func EndGameKeyboard(lastBet int) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(
				fmt.Sprintf("🔄 Ещё (%d)", lastBet),
				CallbackPlayAgain,
			),
			tgbotapi.NewInlineKeyboardButtonData("💵 Баланс", CallbackBalance),
		),
	)
}

// TrainKindKeyboard предлагает раздел таблицы для тренировки.
func TrainKindKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🃏 Пары", CallbackTrainKindPrefix+"pair"),
			tgbotapi.NewInlineKeyboardButtonData("🅰️ Мягкие", CallbackTrainKindPrefix+"soft"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔢 Жёсткие", CallbackTrainKindPrefix+"hard"),
			tgbotapi.NewInlineKeyboardButtonData("🎲 Все подряд", CallbackTrainKindPrefix+"any"),
		),
	)
}

// TrainAnswerKeyboard: варианты ответа на тренировочную раздачу.
func TrainAnswerKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(actionLabels[game.ActionHit], CallbackTrainAnswerPrefix+string(game.ActionHit)),
			tgbotapi.NewInlineKeyboardButtonData(actionLabels[game.ActionStand], CallbackTrainAnswerPrefix+string(game.ActionStand)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(actionLabels[game.ActionDouble], CallbackTrainAnswerPrefix+string(game.ActionDouble)),
			tgbotapi.NewInlineKeyboardButtonData(actionLabels[game.ActionSplit], CallbackTrainAnswerPrefix+string(game.ActionSplit)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⏹ Закончить", CallbackTrainStop),
		),
	)
}
