package main

import (
	"flag"
	"log"

	"go.uber.org/zap"

	"github.com/carltonnorthern/soft-splits-blackjack/internal/bot"
	"github.com/carltonnorthern/soft-splits-blackjack/internal/config"
	"github.com/carltonnorthern/soft-splits-blackjack/internal/database"
	"github.com/carltonnorthern/soft-splits-blackjack/internal/player"
)

func main() {
	verbose := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()

	logCfg := zap.NewProductionConfig()
	if *verbose {
		logCfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	logger, err := logCfg.Build()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("database connected", zap.String("path", cfg.DatabasePath))

	playerRepo := player.NewRepository(db.DB)

	b, err := bot.New(cfg, playerRepo, logger)
	if err != nil {
		logger.Fatal("failed to create bot", zap.Error(err))
	}

	if err := b.Run(); err != nil {
		logger.Fatal("bot error", zap.Error(err))
	}
}
