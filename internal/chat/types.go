package chat

import "daily-plan-assistant/internal/model"

// Usage reports token consumption of one completion call.
type Usage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// --- UseCase Inputs ---

type SendInput struct {
	Message string
}

type StreamInput struct {
	Message string
}

type HistoryInput struct {
	Limit int
	// Before bounds the page to records strictly before this index in the
	// full conversation order; nil reads the latest page.
	Before *int
}

// --- UseCase Outputs ---

type SendOutput struct {
	Reply string
	Usage Usage
}

type StreamOutput struct {
	Reply string
}

type HistoryOutput struct {
	History []model.ChatMessage
	// NextBefore continues paging backwards; nil when the oldest record
	// was reached.
	NextBefore *int
	Total      int
}
