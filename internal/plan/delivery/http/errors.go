package http

import (
	"errors"

	"daily-plan-assistant/internal/plan"
	pkgErrors "daily-plan-assistant/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
// The messages are stable discriminants clients can switch on.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, plan.ErrNotFound):
		return pkgErrors.NewHTTPError(404, "not_found")
	case errors.Is(err, plan.ErrTaskNotFound):
		return pkgErrors.NewHTTPError(404, "task_not_found")
	case errors.Is(err, plan.ErrSectionNotFound):
		return pkgErrors.NewHTTPError(404, "section_not_found")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
