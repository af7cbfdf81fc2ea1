package usecase

import (
	"context"

	"daily-plan-assistant/internal/plan"
	"daily-plan-assistant/internal/plan/document"
)

// Read parses the target file into sections with their nested tasks.
// Read-only; the file is never touched.
func (uc *implUseCase) Read(ctx context.Context, input plan.ReadInput) (plan.ReadOutput, error) {
	path := uc.resolvePath(input.Path)
	if !uc.storage.Exists(path) {
		return plan.ReadOutput{Exists: false, Path: path}, plan.ErrNotFound
	}

	lines, err := uc.storage.ReadLines(ctx, path)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Read ReadLines: %v", err)
		return plan.ReadOutput{}, err
	}

	sections := document.Sections(lines)
	views := make([]plan.SectionView, 0, len(sections))
	for _, sec := range sections {
		views = append(views, plan.SectionView{
			Title: sec.Title,
			Range: [2]int{sec.Start, sec.End},
			Tasks: document.TasksIn(lines, sec),
		})
	}
	return plan.ReadOutput{Exists: true, Path: path, Sections: views}, nil
}
