package player

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carltonnorthern/soft-splits-blackjack/internal/database"
)

func newTestRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	db, err := database.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db.DB)
}

func TestGetOrCreate(t *testing.T) {
	repo := newTestRepo(t)

	p, err := repo.GetOrCreate(42, 1000, 100)
	require.NoError(t, err)
	assert.Equal(t, int64(42), p.ChatID)
	assert.Equal(t, 1000, p.Balance)
	assert.Equal(t, 100, p.LastBet)
	assert.Equal(t, 0, p.Games)

	p.Balance = 1500
	p.RecordDecision(true)
	p.RecordDecision(false)
	require.NoError(t, repo.Save(p))

	again, err := repo.GetOrCreate(42, 1000, 100)
	require.NoError(t, err)
	assert.Equal(t, 1500, again.Balance)
	assert.Equal(t, 2, again.Decisions)
	assert.Equal(t, 1, again.Correct)
}

func TestGetTopByBalance(t *testing.T) {
	repo := newTestRepo(t)

	rich, err := repo.GetOrCreate(1, 1000, 100)
	require.NoError(t, err)
	rich.AddBlackjack(250)
	rich.RecordDecision(true)
	rich.RecordDecision(true)
	require.NoError(t, repo.Save(rich))

	poor, err := repo.GetOrCreate(2, 1000, 100)
	require.NoError(t, err)
	poor.AddLoss()
	poor.RecordDecision(false)
	require.NoError(t, repo.Save(poor))

	// игрок без сыгранных раундов в топ не попадает
	_, err = repo.GetOrCreate(3, 1000, 100)
	require.NoError(t, err)

	top, err := repo.GetTopByBalance(10)
	require.NoError(t, err)
	require.Len(t, top, 2)

	assert.Equal(t, int64(1), top[0].ChatID)
	assert.Equal(t, 1250, top[0].Balance)
	assert.InDelta(t, 100.0, top[0].WinRate, 0.01)
	assert.InDelta(t, 100.0, top[0].Accuracy, 0.01)

	assert.Equal(t, int64(2), top[1].ChatID)
	assert.InDelta(t, 0.0, top[1].Accuracy, 0.01)
}

func TestPlaceBet(t *testing.T) {
	p := &Player{Balance: 100, LastBet: 50}

	assert.False(t, p.PlaceBet(200))
	assert.Equal(t, 100, p.Balance)
	assert.Equal(t, 50, p.LastBet, "неудачная ставка ничего не меняет")

	assert.True(t, p.PlaceBet(60))
	assert.Equal(t, 40, p.Balance)
	assert.Equal(t, 60, p.LastBet)

	assert.True(t, p.CanAfford(40))
	assert.False(t, p.CanAfford(41))
}

func TestOutcomeCounters(t *testing.T) {
	p := &Player{Balance: 1000}

	p.AddWin(200)
	p.AddBlackjack(250)
	p.AddDraw(100)
	p.AddLoss()

	assert.Equal(t, 1550, p.Balance)
	assert.Equal(t, 2, p.Wins)
	assert.Equal(t, 1, p.Blackjacks)
	assert.Equal(t, 1, p.Draws)
	assert.Equal(t, 1, p.Losses)
	assert.Equal(t, 4, p.Games)
	assert.InDelta(t, 50.0, p.WinRate(), 0.01)
}

func TestAccuracy(t *testing.T) {
	p := &Player{}
	assert.Zero(t, p.Accuracy())

	p.RecordDecision(true)
	p.RecordDecision(true)
	p.RecordDecision(false)

	assert.Equal(t, 3, p.Decisions)
	assert.Equal(t, 2, p.Correct)
	assert.InDelta(t, 66.66, p.Accuracy(), 0.01)
}
