package usecase

import (
	"context"
	"slices"
	"strings"

	"daily-plan-assistant/internal/plan"
	"daily-plan-assistant/internal/plan/document"
)

// SetTaskStatus rewrites the bracket mark of the first task whose text
// matches input.Text exactly. Unknown statuses fall back to the todo mark.
func (uc *implUseCase) SetTaskStatus(ctx context.Context, input plan.SetStatusInput) (plan.SetStatusOutput, error) {
	path := uc.resolvePath(input.Path)
	if !uc.storage.Exists(path) {
		return plan.SetStatusOutput{}, plan.ErrNotFound
	}

	lines, err := uc.storage.ReadLines(ctx, path)
	if err != nil {
		uc.l.Errorf(ctx, "uc.SetTaskStatus ReadLines: %v", err)
		return plan.SetStatusOutput{}, err
	}

	idx, ok := document.FindTask(lines, input.Text)
	if !ok {
		return plan.SetStatusOutput{}, plan.ErrTaskNotFound
	}

	// Keep the text capture as-is; only indentation in front of the dash
	// is normalized away by the rewrite.
	_, text, _ := document.MatchTask(lines[idx])
	mark := document.MarkForStatus(document.Status(input.Status))
	lines[idx] = "- " + mark + " " + text

	if err := uc.storage.WriteLines(ctx, path, lines); err != nil {
		uc.l.Errorf(ctx, "uc.SetTaskStatus WriteLines: %v", err)
		return plan.SetStatusOutput{}, err
	}
	return plan.SetStatusOutput{Updated: true, Line: idx, NewStatus: input.Status}, nil
}

// AddTask inserts a new checklist line into the first section whose title
// starts with input.SectionPrefix.
func (uc *implUseCase) AddTask(ctx context.Context, input plan.AddTaskInput) (plan.AddTaskOutput, error) {
	mark := document.MarkForStatus(document.Status(input.Status))
	line, err := uc.insertIntoSection(ctx, input.Path, input.SectionPrefix, "- "+mark+" "+input.Text)
	if err != nil {
		return plan.AddTaskOutput{}, err
	}
	return plan.AddTaskOutput{Inserted: true, Line: line}, nil
}

// AppendNote inserts a plain bulleted line with no status mark, for
// free-text annotations rather than trackable tasks.
func (uc *implUseCase) AppendNote(ctx context.Context, input plan.AppendNoteInput) (plan.AppendNoteOutput, error) {
	line, err := uc.insertIntoSection(ctx, input.Path, input.SectionPrefix, "- "+input.Line)
	if err != nil {
		return plan.AppendNoteOutput{}, err
	}
	return plan.AppendNoteOutput{Appended: true, Line: line}, nil
}

// insertIntoSection places newLine directly after the section's last
// non-blank line, so trailing blank spacing before the next heading is
// preserved. An all-blank section body falls back to the recorded end
// index. Returns the insertion index.
func (uc *implUseCase) insertIntoSection(ctx context.Context, path, sectionPrefix, newLine string) (int, error) {
	path = uc.resolvePath(path)
	if !uc.storage.Exists(path) {
		return 0, plan.ErrNotFound
	}

	lines, err := uc.storage.ReadLines(ctx, path)
	if err != nil {
		uc.l.Errorf(ctx, "uc.insertIntoSection ReadLines: %v", err)
		return 0, err
	}

	sec, ok := document.SectionByPrefix(lines, sectionPrefix)
	if !ok {
		return 0, plan.ErrSectionNotFound
	}

	insertAt := sec.End
	for i := sec.End; i > sec.Start; i-- {
		if strings.TrimSpace(lines[i]) != "" {
			insertAt = i + 1
			break
		}
	}

	lines = slices.Insert(lines, insertAt, newLine)
	if err := uc.storage.WriteLines(ctx, path, lines); err != nil {
		uc.l.Errorf(ctx, "uc.insertIntoSection WriteLines: %v", err)
		return 0, err
	}
	return insertAt, nil
}
