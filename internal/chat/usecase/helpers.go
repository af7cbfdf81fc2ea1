package usecase

import (
	"context"

	"daily-plan-assistant/internal/model"
	"daily-plan-assistant/pkg/openai"
)

// conversational filters the log to the roles the completion API accepts
// as conversation context.
func conversational(records []model.ChatMessage) []model.ChatMessage {
	filtered := make([]model.ChatMessage, 0, len(records))
	for _, r := range records {
		if r.Role == model.RoleUser || r.Role == model.RoleAssistant {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// buildMessages assembles the outgoing conversation: system prompt, the
// most recent history window, then the current user message. A history
// read failure degrades to a contextless conversation rather than
// failing the chat call.
func (uc *implUseCase) buildMessages(ctx context.Context, userText string) []openai.Message {
	var messages []openai.Message
	if uc.cfg.SystemPrompt != "" {
		messages = append(messages, openai.Message{Role: model.RoleSystem, Content: uc.cfg.SystemPrompt})
	}

	records, err := uc.history.List(ctx)
	if err != nil {
		uc.l.Warnf(ctx, "uc.buildMessages history.List: %v", err)
		records = nil
	}
	recent := conversational(records)
	if len(recent) > uc.cfg.HistoryWindow {
		recent = recent[len(recent)-uc.cfg.HistoryWindow:]
	}
	for _, r := range recent {
		messages = append(messages, openai.Message{Role: r.Role, Content: r.Content})
	}

	return append(messages, openai.Message{Role: model.RoleUser, Content: userText})
}

// logMessage appends to the conversation history; failures are logged
// and swallowed because losing one log record must not fail the chat.
func (uc *implUseCase) logMessage(ctx context.Context, role, content string) {
	if err := uc.history.Append(ctx, role, content); err != nil {
		uc.l.Errorf(ctx, "uc.logMessage history.Append: %v", err)
	}
}
