package http

import (
	"errors"

	"daily-plan-assistant/internal/agent"
	pkgErrors "daily-plan-assistant/pkg/errors"
)

// mapError translates registry errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, agent.ErrToolNotFound):
		return pkgErrors.NewHTTPError(404, "tool_not_found")
	case errors.Is(err, agent.ErrInvalidArguments):
		return pkgErrors.NewHTTPError(400, "invalid_arguments")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
