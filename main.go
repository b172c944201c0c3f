package main

import (
	"fmt"
	"log"
	"net/http"

	"trendmint/internal/config"
	"trendmint/internal/handlers"
	"trendmint/internal/logger"
	"trendmint/internal/middleware"
	sentryutil "trendmint/internal/sentry"
	"trendmint/internal/telegram"
	"trendmint/internal/trends"
)

func main() {
	// Load configuration from .env and environment variables
	config.Load()

	if config.Cfg.TelegramToken == "" || config.Cfg.TelegramToken == "YOUR_BOT_TOKEN_HERE" {
		log.Fatal("TELEGRAM_BOT_TOKEN is not set. Get one from @BotFather and export it.")
	}

	// Initialize Sentry (non-blocking if SENTRY_DSN is empty)
	sentryutil.Init()
	defer sentryutil.Flush()

	bot, err := telegram.NewBot(config.Cfg.TelegramToken)
	if err != nil {
		log.Fatalf("telegram: %v", err)
	}

	// Push fresh-trend alerts to opted-in users after each refresh
	trends.OnRefreshComplete = bot.NotifyFresh

	// Start the background refresh scheduler
	trends.StartScheduler()

	// Optional ops endpoint for probes and dashboards
	if config.Cfg.StatusServerEnabled {
		mux := http.NewServeMux()
		mux.HandleFunc("/healthz", handlers.HealthHandler)
		mux.HandleFunc("/status", handlers.StatusHandler)

		go func() {
			logger.Info("status server starting", map[string]interface{}{"addr": config.Cfg.StatusAddr})
			if err := http.ListenAndServe(config.Cfg.StatusAddr, middleware.Recovery(mux)); err != nil {
				logger.Error("status server stopped", map[string]interface{}{"error": err.Error()})
			}
		}()
	}

	logger.Info("bot starting", map[string]interface{}{"interval": config.Cfg.UpdateInterval.String()})
	fmt.Println("TrendMint bot running. Press Ctrl+C to stop.")

	// Blocks on the Telegram long-poll loop
	bot.Start()
}
