package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"

	"daily-plan-assistant/config"
	_ "daily-plan-assistant/docs" // Swagger docs
	"daily-plan-assistant/internal/agent"
	agentHTTP "daily-plan-assistant/internal/agent/delivery/http"
	"daily-plan-assistant/internal/agent/tools"
	chatHTTP "daily-plan-assistant/internal/chat/delivery/http"
	jsonlRepo "daily-plan-assistant/internal/chat/repository/jsonl"
	chatUsecase "daily-plan-assistant/internal/chat/usecase"
	"daily-plan-assistant/internal/httpserver"
	"daily-plan-assistant/internal/middleware"
	planHTTP "daily-plan-assistant/internal/plan/delivery/http"
	fileRepo "daily-plan-assistant/internal/plan/repository/file"
	planUsecase "daily-plan-assistant/internal/plan/usecase"
	"daily-plan-assistant/pkg/log"
	"daily-plan-assistant/pkg/openai"
)

// @title       Daily Plan Assistant API
// @description Local assistant serving markdown daily plan files, an OpenAI-compatible chat proxy, and an LLM tool surface.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	configFile := pflag.String("config", "", "path to config.yaml")
	port := pflag.Int("port", 0, "override the configured HTTP port")
	pflag.Parse()

	// 1. Configuration
	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}
	if *port != 0 {
		cfg.HTTPServer.Port = *port
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

	logger.Info(ctx, "Starting Daily Plan Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Plan root: %s", cfg.Plan.RootDir)

	// 3. Timezone for day-file resolution
	loc := time.Local
	if cfg.Plan.Timezone != "" {
		parsed, tzErr := time.LoadLocation(cfg.Plan.Timezone)
		if tzErr != nil {
			logger.Warnf(ctx, "Invalid timezone %q, falling back to local time: %v", cfg.Plan.Timezone, tzErr)
		} else {
			loc = parsed
		}
	}

	// 4. Plan domain
	storage := fileRepo.New(logger)
	planUC := planUsecase.New(logger, storage, cfg.Plan.RootDir, loc)
	planHandler := planHTTP.New(logger, planUC)

	// 5. Chat domain (optional, needs an API key)
	var chatHandler chatHTTP.Handler
	if cfg.Chat.APIKey != "" {
		client, clientErr := openai.New(openai.Config{
			APIKey:           cfg.Chat.APIKey,
			Model:            cfg.Chat.Model,
			BaseURL:          cfg.Chat.BaseURL,
			HTTPClient:       &http.Client{Timeout: durationOr(ctx, logger, cfg.Chat.Timeout, openai.DefaultTimeout)},
			StreamHTTPClient: &http.Client{Timeout: durationOr(ctx, logger, cfg.Chat.StreamTimeout, openai.DefaultStreamTimeout)},
		})
		if clientErr != nil {
			logger.Errorf(ctx, "Failed to initialize completion client: %v", clientErr)
			return
		}

		history, histErr := jsonlRepo.New(logger, cfg.Chat.LogPath)
		if histErr != nil {
			logger.Errorf(ctx, "Failed to initialize chat history at %s: %v", cfg.Chat.LogPath, histErr)
			return
		}

		chatUC := chatUsecase.New(logger, client, history, chatUsecase.Config{
			SystemPrompt:    cfg.Chat.SystemPrompt,
			HistoryWindow:   cfg.Chat.HistoryWindow,
			MaxTokens:       cfg.Chat.MaxTokens,
			StreamMaxTokens: cfg.Chat.StreamMaxTokens,
		})
		chatHandler = chatHTTP.New(logger, chatUC)
		logger.Info(ctx, "Chat domain initialized")
	} else {
		logger.Warn(ctx, "Chat skipped: OPENAI_API_KEY is missing")
	}

	// 6. Agent tool surface
	registry := agent.NewRegistry(logger)
	if err := tools.RegisterAll(registry, logger, planUC, loc); err != nil {
		logger.Errorf(ctx, "Failed to register tools: %v", err)
		return
	}
	agentHandler := agentHTTP.New(logger, registry)
	logger.Infof(ctx, "Registered %d tools", len(registry.Names()))

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:              logger,
		Port:                cfg.HTTPServer.Port,
		Mode:                cfg.HTTPServer.Mode,
		Environment:         cfg.Environment.Name,
		Middleware:          middleware.New(logger),
		PlanHandler:         planHandler,
		ChatHandler:         chatHandler,
		ChatRateLimitPerMin: cfg.Chat.RateLimitPerMin,
		AgentHandler:        agentHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

func durationOr(ctx context.Context, logger log.Logger, raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		logger.Warnf(ctx, "Invalid duration %q, using %s: %v", raw, fallback, err)
		return fallback
	}
	return d
}
