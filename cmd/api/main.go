package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"smart-task-assistant/config"
	_ "smart-task-assistant/docs" // Swagger docs
	engineHTTP "smart-task-assistant/internal/engine/delivery/http"
	engineUC "smart-task-assistant/internal/engine/usecase"
	"smart-task-assistant/internal/httpserver"
	"smart-task-assistant/internal/middleware"
	taskHTTP "smart-task-assistant/internal/task/delivery/http"
	tgDelivery "smart-task-assistant/internal/task/delivery/telegram"
	"smart-task-assistant/internal/task/repository/inmem"
	taskUC "smart-task-assistant/internal/task/usecase"
	"smart-task-assistant/pkg/clock"
	"smart-task-assistant/pkg/gcalendar"
	"smart-task-assistant/pkg/log"
	"smart-task-assistant/pkg/telegram"
)

// @title       Smart Task Assistant API
// @description Rule-based task intelligence: text analysis, command dispatch, suggestions and productivity insights.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Smart Task Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Timezone: %s", cfg.Engine.Timezone)

	// 3. Core components
	clk := clock.NewReal(cfg.Engine.Timezone)
	engine := engineUC.New(logger)
	taskRepo := inmem.New(clk, logger)

	// Google Calendar client (optional)
	var calendarClient *gcalendar.Client
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, err = gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if err != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", err)
		} else {
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	taskUseCase := taskUC.New(logger, engine, taskRepo, calendarClient, clk,
		cfg.GoogleCalendar.CalendarID, cfg.Engine.Timezone)

	// 4. Delivery handlers
	mw := middleware.New(logger, cfg.RateLimit.PerMin)
	taskHandler := taskHTTP.New(logger, taskUseCase)
	engineHandler := engineHTTP.New(logger, engine, clk)

	// Telegram webhook (optional)
	var telegramHandler tgDelivery.Handler
	if cfg.Telegram.BotToken != "" {
		telegramBot := telegram.NewBot(cfg.Telegram.BotToken)
		telegramHandler = tgDelivery.New(logger, taskUseCase, telegramBot)

		// Register webhook: auto-detect ngrok or fallback to manual config
		webhookURL := cfg.Telegram.WebhookURL
		if webhookURL == "" {
			ngrokURL, ngrokErr := detectNgrokURL(ctx, "http://ngrok:4040")
			if ngrokErr != nil {
				logger.Warnf(ctx, "Could not detect ngrok URL: %v", ngrokErr)
			} else {
				webhookURL = ngrokURL + "/webhook/telegram"
				logger.Infof(ctx, "Auto-detected ngrok URL: %s", webhookURL)
			}
		}

		if webhookURL != "" {
			if whErr := telegramBot.SetWebhook(webhookURL); whErr != nil {
				logger.Warnf(ctx, "Failed to set Telegram webhook: %v", whErr)
			} else {
				logger.Infof(ctx, "Telegram webhook registered at %s", webhookURL)
			}
		}
	} else {
		logger.Warn(ctx, "Telegram disabled: TELEGRAM_BOT_TOKEN is missing")
	}

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		Middleware:      mw,
		TaskHandler:     taskHandler,
		EngineHandler:   engineHandler,
		TelegramHandler: telegramHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
