package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	BotToken     string
	DatabasePath string
	Decks        int
	StartBalance int
	DefaultBet   int
	MinBet       int
	MaxBet       int
}

func Load() (*Config, error) {
	godotenv.Load()

	token := os.Getenv("BOT_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("BOT_TOKEN is not set")
	}

	dbPath := os.Getenv("DATABASE_PATH")
	if dbPath == "" {
		dbPath = "./blackjack.db"
	}

	cfg := &Config{
		BotToken:     token,
		DatabasePath: dbPath,
		Decks:        getEnvInt("DECKS", 6),
		StartBalance: getEnvInt("START_BALANCE", 1000),
		DefaultBet:   getEnvInt("DEFAULT_BET", 100),
		MinBet:       getEnvInt("MIN_BET", 10),
		MaxBet:       getEnvInt("MAX_BET", 10000),
	}

	if cfg.MinBet <= 0 || cfg.MaxBet < cfg.MinBet {
		return nil, fmt.Errorf("bet limits are inconsistent: min %d, max %d", cfg.MinBet, cfg.MaxBet)
	}

	return cfg, nil
}

// getEnvInt читает число из окружения, пустые и кривые значения дают дефолт
func getEnvInt(key string, def int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}
