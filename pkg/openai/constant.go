package openai

import "time"

const (
	// DefaultBaseURL is the default OpenAI-compatible API endpoint
	DefaultBaseURL = "https://api.openai.com/v1"

	// DefaultModel is the default model to use
	DefaultModel = "gpt-4o-mini"

	// DefaultTimeout bounds synchronous completion calls
	DefaultTimeout = 60 * time.Second

	// DefaultStreamTimeout bounds a whole streaming response
	DefaultStreamTimeout = 300 * time.Second
)
