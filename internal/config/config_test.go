package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("BOT_TOKEN", "test-token")
	t.Setenv("DATABASE_PATH", "")
	t.Setenv("DECKS", "")
	t.Setenv("START_BALANCE", "")
	t.Setenv("DEFAULT_BET", "")
	t.Setenv("MIN_BET", "")
	t.Setenv("MAX_BET", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "test-token", cfg.BotToken)
	assert.Equal(t, "./blackjack.db", cfg.DatabasePath)
	assert.Equal(t, 6, cfg.Decks)
	assert.Equal(t, 1000, cfg.StartBalance)
	assert.Equal(t, 100, cfg.DefaultBet)
	assert.Equal(t, 10, cfg.MinBet)
	assert.Equal(t, 10000, cfg.MaxBet)
}

func TestLoadRequiresToken(t *testing.T) {
	t.Setenv("BOT_TOKEN", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "BOT_TOKEN")
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("BOT_TOKEN", "x")
	t.Setenv("DATABASE_PATH", "/tmp/casino.db")
	t.Setenv("DECKS", "8")
	t.Setenv("MIN_BET", "50")
	t.Setenv("MAX_BET", "5000")
	t.Setenv("START_BALANCE", "")
	t.Setenv("DEFAULT_BET", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/casino.db", cfg.DatabasePath)
	assert.Equal(t, 8, cfg.Decks)
	assert.Equal(t, 50, cfg.MinBet)
	assert.Equal(t, 5000, cfg.MaxBet)
}

func TestLoadIgnoresGarbageNumbers(t *testing.T) {
	t.Setenv("BOT_TOKEN", "x")
	t.Setenv("DECKS", "many")
	t.Setenv("MIN_BET", "")
	t.Setenv("MAX_BET", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.Decks)
}

func TestLoadRejectsBadBetLimits(t *testing.T) {
	t.Setenv("BOT_TOKEN", "x")
	t.Setenv("MIN_BET", "100")
	t.Setenv("MAX_BET", "10")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bet limits")
}
