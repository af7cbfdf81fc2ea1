package chat

import "errors"

var (
	ErrEmptyMessage     = errors.New("message is empty")
	ErrCompletionFailed = errors.New("completion request failed")
)
