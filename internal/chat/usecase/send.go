package usecase

import (
	"context"
	"fmt"
	"strings"

	"daily-plan-assistant/internal/chat"
	"daily-plan-assistant/internal/model"
	"daily-plan-assistant/pkg/openai"
)

// Send forwards the message synchronously. The user record is persisted
// before the upstream call; the assistant record only on success.
func (uc *implUseCase) Send(ctx context.Context, input chat.SendInput) (chat.SendOutput, error) {
	if strings.TrimSpace(input.Message) == "" {
		return chat.SendOutput{}, chat.ErrEmptyMessage
	}

	uc.logMessage(ctx, model.RoleUser, input.Message)

	resp, err := uc.client.ChatCompletion(ctx, &openai.Request{
		Messages:  uc.buildMessages(ctx, input.Message),
		MaxTokens: uc.cfg.MaxTokens,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Send ChatCompletion: %v", err)
		return chat.SendOutput{}, fmt.Errorf("%w: %v", chat.ErrCompletionFailed, err)
	}
	if len(resp.Choices) == 0 {
		return chat.SendOutput{}, fmt.Errorf("%w: empty choices", chat.ErrCompletionFailed)
	}

	reply := resp.Choices[0].Message.Content
	uc.logMessage(ctx, model.RoleAssistant, reply)

	return chat.SendOutput{
		Reply: reply,
		Usage: chat.Usage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		},
	}, nil
}
