package openai

import "context"

// IOpenAI defines the interface for an OpenAI-compatible chat completion client
type IOpenAI interface {
	// ChatCompletion sends a synchronous completion request.
	ChatCompletion(ctx context.Context, req *Request) (*Response, error)

	// StreamChatCompletion streams the completion, invoking onDelta for
	// every content chunk. A non-nil error from onDelta aborts the stream.
	StreamChatCompletion(ctx context.Context, req *Request, onDelta func(chunk string) error) error
}
