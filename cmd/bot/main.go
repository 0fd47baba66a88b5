package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"homework_notification_bot/internal/app"
	"homework_notification_bot/internal/infra/config"
	"homework_notification_bot/internal/infra/logger"
	"homework_notification_bot/internal/infra/practicum"
	"homework_notification_bot/internal/infra/scheduler"
	"homework_notification_bot/internal/infra/telegram"

	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"
)

// exitConfigError is distinct from logrus's generic fatal exit (1) so a
// supervisor can tell a misconfigured start from any other crash.
const exitConfigError = 2

func main() {
	log := logger.Get()

	cfg, err := config.Load()
	if err != nil {
		log.Log(logrus.FatalLevel, "Could not load application configuration: ", err)
		os.Exit(exitConfigError)
	}
	logger.Init(cfg)
	log.Infof("Configuration loaded. LogLevel: %s, Environment: %s, Chat ID: %d", cfg.LogLevel, cfg.Environment, cfg.TelegramChatID)

	pref := telebot.Settings{
		Token: cfg.TelegramToken,
		// The bot only sends; a long poller is still required by telebot
		// but is never started because no handlers are registered.
		Poller: &telebot.LongPoller{Timeout: 10 * time.Second},
	}
	bot, err := telebot.NewBot(pref)
	if err != nil {
		log.Fatalf("Could not create Telegram bot: %v", err)
	}
	log.Info("Telegram bot initialized.")

	apiClient := practicum.NewHTTPClient(cfg.Endpoint, cfg.PracticumToken, cfg.HTTPTimeout)
	telegramClient := telegram.NewTelebotAdapter(bot)

	poller := app.NewPoller(apiClient, telegramClient, cfg.TelegramChatID, log)
	pollScheduler := scheduler.NewPollScheduler(poller, log, cfg.PollInterval)
	if err := pollScheduler.Start(); err != nil {
		log.Fatalf("Could not start poll scheduler: %v", err)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit // Block until a signal is received

	log.Info("Shutting down application...")
	pollScheduler.Stop()
	log.Info("Application shut down gracefully.")
}
