package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/aliskhannn/memory-game-bot/internal/config"
	"github.com/aliskhannn/memory-game-bot/internal/delivery/telegram"
	"github.com/aliskhannn/memory-game-bot/internal/logger"
	"github.com/aliskhannn/memory-game-bot/internal/repository"
	"github.com/aliskhannn/memory-game-bot/internal/service"
	"github.com/aliskhannn/memory-game-bot/internal/storage"
)

func main() {
	// A missing .env is fine: the environment may already be set.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	lg, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = lg.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := openStore(ctx, cfg.Storage, lg)
	if err != nil {
		lg.Fatal("failed to open storage", zap.Error(err))
	}
	defer func() {
		if err := store.Close(); err != nil {
			lg.Error("failed to close storage", zap.Error(err))
		}
	}()

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramAPIToken)
	if err != nil {
		lg.Fatal("failed to create bot", zap.Error(err))
	}
	lg.Info("authorized", zap.String("username", bot.Self.UserName))

	// Set commands.
	commands := []tgbotapi.BotCommand{
		{Command: "start", Description: "Start the bot"},
		{Command: "help", Description: "Show commands"},
		{Command: "contacts", Description: "List and delete contacts"},
		{Command: "add", Description: "Add a contact (usage: /add Name: 0123456789)"},
		{Command: "paste", Description: "Import many contacts"},
		{Command: "random_contacts", Description: "Add practice contacts (usage: /random_contacts 5)"},
		{Command: "export", Description: "Export contacts and a backup file"},
		{Command: "backup", Description: "Show the last auto-backup"},
		{Command: "restore", Description: "Restore from a backup"},
		{Command: "recall", Description: "Mode 1: pick the right number"},
		{Command: "missing", Description: "Mode 2: fill the missing digits"},
		{Command: "sequence", Description: "Mode 3: remember a sequence"},
		{Command: "input", Description: "Mode 4: type full numbers"},
		{Command: "otp", Description: "OTP memory (usage: /otp [length] [seconds])"},
		{Command: "scores", Description: "Best scores and OTP stats"},
		{Command: "reset_otp", Description: "Reset OTP stats"},
		{Command: "stop", Description: "Stop the current game"},
		{Command: "reset", Description: "Delete all data"},
	}
	if _, err := bot.Request(tgbotapi.NewSetMyCommands(commands...)); err != nil {
		lg.Warn("failed to set bot commands", zap.Error(err))
	}

	// Initialize repositories and services.
	contactRepo := repository.NewContactRepository(store, lg)
	scoreRepo := repository.NewScoreRepository(store, lg)
	backupRepo := repository.NewBackupRepository(store, lg)
	otpRepo := repository.NewOTPRepository(store, lg)
	resetRepo := repository.NewResetRepository(store)

	validator := service.NewContactValidator()
	scoreService := service.NewScoreService(scoreRepo, lg)
	backupService := service.NewBackupService(contactRepo, scoreRepo, backupRepo, validator, lg)
	contactService := service.NewContactService(contactRepo, backupService, validator, lg)
	gameService := service.NewGameService(contactRepo, scoreService, otpRepo, lg)
	resetService := service.NewResetService(resetRepo, gameService, lg)

	sweeper := service.NewIdleSweeper(gameService, cfg.Game.SweepSchedule, cfg.Game.IdleTimeout, lg)

	handler := telegram.NewHandler(
		bot,
		lg,
		cfg.Game,
		gameService,
		contactService,
		backupService,
		scoreService,
		resetService,
		storage.NewBoardStorage(),
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return sweeper.Start(gctx)
	})
	g.Go(func() error {
		return handler.Run(gctx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		lg.Error("bot stopped with error", zap.Error(err))
	}
	lg.Info("shutdown complete")
}
