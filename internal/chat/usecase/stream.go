package usecase

import (
	"context"
	"fmt"
	"strings"

	"daily-plan-assistant/internal/chat"
	"daily-plan-assistant/internal/model"
	"daily-plan-assistant/pkg/openai"
)

// Stream forwards the message and emits the reply incrementally. When
// the stream cannot be established the synchronous endpoint is tried
// once and its full reply is emitted as a single delta. Both records are
// persisted after the reply is complete.
func (uc *implUseCase) Stream(ctx context.Context, input chat.StreamInput, onDelta func(chunk string) error) (chat.StreamOutput, error) {
	if strings.TrimSpace(input.Message) == "" {
		return chat.StreamOutput{}, chat.ErrEmptyMessage
	}

	messages := uc.buildMessages(ctx, input.Message)

	var full strings.Builder
	err := uc.client.StreamChatCompletion(ctx, &openai.Request{
		Messages:  messages,
		MaxTokens: uc.cfg.StreamMaxTokens,
	}, func(chunk string) error {
		full.WriteString(chunk)
		return onDelta(chunk)
	})
	if err != nil && full.Len() == 0 {
		uc.l.Warnf(ctx, "uc.Stream falling back to sync call: %v", err)
		resp, syncErr := uc.client.ChatCompletion(ctx, &openai.Request{
			Messages:  messages,
			MaxTokens: uc.cfg.StreamMaxTokens,
		})
		if syncErr != nil || len(resp.Choices) == 0 {
			uc.l.Errorf(ctx, "uc.Stream fallback ChatCompletion: %v", syncErr)
			return chat.StreamOutput{}, fmt.Errorf("%w: %v", chat.ErrCompletionFailed, err)
		}
		reply := resp.Choices[0].Message.Content
		full.WriteString(reply)
		if err := onDelta(reply); err != nil {
			return chat.StreamOutput{}, err
		}
	} else if err != nil {
		// The stream broke mid-reply; whatever arrived has already been
		// emitted, so report the failure instead of double-sending.
		return chat.StreamOutput{}, fmt.Errorf("%w: %v", chat.ErrCompletionFailed, err)
	}

	uc.logMessage(ctx, model.RoleUser, input.Message)
	uc.logMessage(ctx, model.RoleAssistant, full.String())

	return chat.StreamOutput{Reply: full.String()}, nil
}
