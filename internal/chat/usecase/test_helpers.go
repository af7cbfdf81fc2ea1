package usecase

import (
	"context"

	"daily-plan-assistant/internal/model"
	"daily-plan-assistant/pkg/openai"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// mockClient implements openai.IOpenAI with function fields.
type mockClient struct {
	chatCompletion       func(ctx context.Context, req *openai.Request) (*openai.Response, error)
	streamChatCompletion func(ctx context.Context, req *openai.Request, onDelta func(string) error) error
}

func (m *mockClient) ChatCompletion(ctx context.Context, req *openai.Request) (*openai.Response, error) {
	return m.chatCompletion(ctx, req)
}

func (m *mockClient) StreamChatCompletion(ctx context.Context, req *openai.Request, onDelta func(string) error) error {
	return m.streamChatCompletion(ctx, req, onDelta)
}

// memHistory is an in-memory History.
type memHistory struct {
	records []model.ChatMessage
	listErr error
}

func (h *memHistory) Append(ctx context.Context, role, content string) error {
	h.records = append(h.records, model.ChatMessage{
		Timestamp: "2025-08-31 15:04:05",
		Role:      role,
		Content:   content,
	})
	return nil
}

func (h *memHistory) List(ctx context.Context) ([]model.ChatMessage, error) {
	if h.listErr != nil {
		return nil, h.listErr
	}
	return h.records, nil
}

func reply(content string) *openai.Response {
	return &openai.Response{
		Choices: []openai.Choice{{Message: openai.Message{Role: model.RoleAssistant, Content: content}}},
		Usage:   openai.Usage{PromptTokens: 10, CompletionTokens: 5, TotalTokens: 15},
	}
}
