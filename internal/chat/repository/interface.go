package repository

import (
	"context"

	"daily-plan-assistant/internal/model"
)

//go:generate mockery --name History
type History interface {
	// Append adds one record to the end of the conversation log.
	Append(ctx context.Context, role, content string) error

	// List returns every stored record in append order. A log that does
	// not exist yet reads as empty, not as an error.
	List(ctx context.Context) ([]model.ChatMessage, error)
}
