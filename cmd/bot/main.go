package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"homework_status_bot/internal/app"
	"homework_status_bot/internal/infra/config"
	"homework_status_bot/internal/infra/logger"
	"homework_status_bot/internal/infra/practicum"
	"homework_status_bot/internal/infra/scheduler"
	"homework_status_bot/internal/infra/telegram"
)

const defaultConfigFile = "config.yaml"

func main() {
	fmt.Println("Homework Status Bot starting...")

	configFile := os.Getenv("CONFIG_FILE")
	if configFile == "" {
		configFile = defaultConfigFile
	}

	cfg, err := config.Load(configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: Could not load application configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: Could not initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Close()

	mainLogger := logger.Component("main")
	mainLogger.WithFields(logrus.Fields{
		"log_level":   cfg.LogLevel,
		"environment": cfg.Environment,
		"schedule":    cfg.PollSchedule,
	}).Info("Configuration loaded")

	if err := cfg.CheckTokens(); err != nil {
		mainLogger.WithError(err).Fatal("Required environment variables are missing")
	}

	bot, err := telegram.NewBot(cfg.TelegramToken, cfg.TelegramAPIURL)
	if err != nil {
		mainLogger.WithError(err).Fatal("Could not create Telegram bot")
	}
	notifier := app.NewNotifier(telegram.NewTelebotAdapter(bot), cfg.TelegramChatID, logger.Component("notifier"))
	mainLogger.Info("Notifier initialized")

	apiClient := practicum.NewClient(cfg.Endpoint, cfg.PracticumToken, cfg.RequestTimeout, logger.Component("practicum"))

	pacer, err := scheduler.NewPacer(cfg.PollSchedule)
	if err != nil {
		mainLogger.WithError(err).Fatal("Could not create poll scheduler")
	}

	poller := app.NewStatusPoller(apiClient, notifier, pacer, logger.Component("poller"))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	mainLogger.Info("Application setup complete. Polling homework statuses...")
	if err := poller.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		mainLogger.WithError(err).Error("Status poller stopped unexpectedly")
		return
	}
	mainLogger.Info("Application shut down gracefully.")
}
