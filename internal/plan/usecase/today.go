package usecase

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"daily-plan-assistant/internal/plan"
)

// dayPath builds the canonical root/YYYY/MM/DD.md path for t.
func (uc *implUseCase) dayPath(t time.Time) string {
	t = t.In(uc.loc)
	return filepath.Join(uc.root,
		fmt.Sprintf("%04d", t.Year()),
		fmt.Sprintf("%02d", int(t.Month())),
		fmt.Sprintf("%02d.md", t.Day()))
}

// todayPath resolves the current day's file path.
func (uc *implUseCase) todayPath() string {
	return uc.dayPath(uc.now())
}

// resolvePath defaults an empty caller-supplied path to today's file.
func (uc *implUseCase) resolvePath(path string) string {
	if path == "" {
		return uc.todayPath()
	}
	return path
}

// ResolveToday computes today's file path in the configured timezone.
// Purely a path function: it never creates anything.
func (uc *implUseCase) ResolveToday(ctx context.Context) (plan.TodayOutput, error) {
	now := uc.now().In(uc.loc)
	path := uc.dayPath(now)
	return plan.TodayOutput{
		Date:   now.Format("2006-01-02"),
		Path:   path,
		Exists: uc.storage.Exists(path),
	}, nil
}
