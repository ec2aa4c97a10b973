package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameKeyboard(t *testing.T) {
	kb := GameKeyboard(GameKeyboardOptions{CanDouble: true, CanSplit: true})

	require.Len(t, kb.InlineKeyboard, 2)
	row := kb.InlineKeyboard[0]
	require.Len(t, row, 4)
	assert.Equal(t, CallbackHit, *row[0].CallbackData)
	assert.Equal(t, CallbackStand, *row[1].CallbackData)
	assert.Equal(t, CallbackDouble, *row[2].CallbackData)
	assert.Equal(t, CallbackSplit, *row[3].CallbackData)

	hintRow := kb.InlineKeyboard[1]
	require.Len(t, hintRow, 1)
	assert.Equal(t, CallbackHint, *hintRow[0].CallbackData)
}

func TestGameKeyboardHidesUnavailable(t *testing.T) {
	kb := GameKeyboard(GameKeyboardOptions{})

	row := kb.InlineKeyboard[0]
	require.Len(t, row, 2)
	assert.Equal(t, "👊 Hit", row[0].Text)
	assert.Equal(t, "✋ Stand", row[1].Text)
}

func TestEndGameKeyboard(t *testing.T) {
	kb := EndGameKeyboard(250)

	row := kb.InlineKeyboard[0]
	require.Len(t, row, 2)
	assert.Equal(t, "🔄 Ещё (250)", row[0].Text)
	assert.Equal(t, CallbackPlayAgain, *row[0].CallbackData)
	assert.Equal(t, CallbackBalance, *row[1].CallbackData)
}

func TestTrainKeyboards(t *testing.T) {
	kinds := TrainKindKeyboard()
	require.Len(t, kinds.InlineKeyboard, 2)
	assert.Equal(t, "train_kind:pair", *kinds.InlineKeyboard[0][0].CallbackData)
	assert.Equal(t, "train_kind:any", *kinds.InlineKeyboard[1][1].CallbackData)

	answers := TrainAnswerKeyboard()
	require.Len(t, answers.InlineKeyboard, 3)
	assert.Equal(t, "train_answer:hit", *answers.InlineKeyboard[0][0].CallbackData)
	assert.Equal(t, "train_answer:split", *answers.InlineKeyboard[1][1].CallbackData)
	assert.Equal(t, CallbackTrainStop, *answers.InlineKeyboard[2][0].CallbackData)
}
