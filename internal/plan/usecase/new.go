package usecase

import (
	"time"

	"daily-plan-assistant/internal/plan/repository"
	"daily-plan-assistant/pkg/log"
)

// implUseCase is the private implementation of plan.UseCase.
type implUseCase struct {
	l       log.Logger
	storage repository.Storage
	root    string
	loc     *time.Location

	// now is the wall clock; swapped in tests.
	now func() time.Time
}

// New creates a new plan UseCase rooted at root. Day files live under
// root/YYYY/MM/DD.md and "today" is computed in loc.
func New(l log.Logger, storage repository.Storage, root string, loc *time.Location) *implUseCase {
	if loc == nil {
		loc = time.Local
	}
	return &implUseCase{
		l:       l,
		storage: storage,
		root:    root,
		loc:     loc,
		now:     time.Now,
	}
}
