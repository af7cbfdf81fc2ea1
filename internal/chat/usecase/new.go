package usecase

import (
	"daily-plan-assistant/internal/chat/repository"
	"daily-plan-assistant/pkg/log"
	"daily-plan-assistant/pkg/openai"
)

// Config tunes message assembly and completion limits.
type Config struct {
	SystemPrompt string
	// HistoryWindow is how many recent records ride along as context.
	HistoryWindow int
	// MaxTokens bounds synchronous replies; StreamMaxTokens bounds
	// streamed ones.
	MaxTokens       int
	StreamMaxTokens int
}

const (
	defaultHistoryWindow   = 50
	defaultMaxTokens       = 300
	defaultStreamMaxTokens = 600
)

// implUseCase is the private implementation of chat.UseCase.
type implUseCase struct {
	l       log.Logger
	client  openai.IOpenAI
	history repository.History
	cfg     Config
}

// New creates a new chat UseCase implementation.
func New(l log.Logger, client openai.IOpenAI, history repository.History, cfg Config) *implUseCase {
	if cfg.HistoryWindow <= 0 {
		cfg.HistoryWindow = defaultHistoryWindow
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = defaultMaxTokens
	}
	if cfg.StreamMaxTokens <= 0 {
		cfg.StreamMaxTokens = defaultStreamMaxTokens
	}
	return &implUseCase{
		l:       l,
		client:  client,
		history: history,
		cfg:     cfg,
	}
}
