package http

import (
	"errors"

	"daily-plan-assistant/internal/chat"
	pkgErrors "daily-plan-assistant/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, chat.ErrEmptyMessage):
		return pkgErrors.NewHTTPError(400, "empty_message")
	case errors.Is(err, chat.ErrCompletionFailed):
		return pkgErrors.NewHTTPError(502, "completion_failed")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
