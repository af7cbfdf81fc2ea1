package chat

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Send forwards one user message synchronously and returns the reply.
	Send(ctx context.Context, input SendInput) (SendOutput, error)

	// Stream forwards one user message and emits the reply token-by-token
	// through onDelta. Falls back to a synchronous call when the stream
	// cannot be established.
	Stream(ctx context.Context, input StreamInput, onDelta func(chunk string) error) (StreamOutput, error)

	// History pages over the persisted conversation log.
	History(ctx context.Context, input HistoryInput) (HistoryOutput, error)
}
