package usecase

import (
	"context"
	"path/filepath"
	"slices"
	"strings"

	"daily-plan-assistant/internal/plan"
	"daily-plan-assistant/internal/plan/document"
)

// Rollover migrates unfinished work from the source file (today by
// default) into tomorrow's document. Tomorrow is the calendar day after
// the current wall-clock date, regardless of which file is scanned. The
// source file is never mutated, so re-running accumulates duplicates on
// the destination.
func (uc *implUseCase) Rollover(ctx context.Context, input plan.RolloverInput) (plan.RolloverOutput, error) {
	path := uc.resolvePath(input.Path)
	if !uc.storage.Exists(path) {
		return plan.RolloverOutput{}, plan.ErrNotFound
	}

	lines, err := uc.storage.ReadLines(ctx, path)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Rollover ReadLines: %v", err)
		return plan.RolloverOutput{}, err
	}

	// Only the text survives the move: status and subsection labels are
	// discarded, and every rolled task restarts as a plain todo.
	var toMove []string
	for _, line := range lines {
		mark, text, ok := document.MatchTask(line)
		if !ok {
			continue
		}
		switch document.StatusForMark(mark) {
		case document.StatusTodo, document.StatusPartial, document.StatusInProgress:
			toMove = append(toMove, strings.TrimSpace(text))
		}
	}

	newPath := uc.dayPath(uc.now().AddDate(0, 0, 1))
	if !uc.storage.Exists(newPath) {
		if err := uc.storage.MkdirAll(filepath.Dir(newPath)); err != nil {
			uc.l.Errorf(ctx, "uc.Rollover MkdirAll: %v", err)
			return plan.RolloverOutput{}, err
		}
		// Rollover never copies yesterday's structure forward, only the
		// fallback skeleton.
		if err := uc.storage.WriteLines(ctx, newPath, document.SplitLines(fallbackTemplate)); err != nil {
			uc.l.Errorf(ctx, "uc.Rollover WriteLines template: %v", err)
			return plan.RolloverOutput{}, err
		}
	}

	newLines, err := uc.storage.ReadLines(ctx, newPath)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Rollover ReadLines tomorrow: %v", err)
		return plan.RolloverOutput{}, err
	}

	insertAt := len(newLines)
	sec, ok := document.SectionByPrefix(newLines, rolloverPrefixEmoji)
	if !ok {
		sec, ok = document.SectionByPrefix(newLines, rolloverPrefixText)
	}
	if ok {
		insertAt = sec.End + 1
	}

	for _, text := range toMove {
		newLines = slices.Insert(newLines, insertAt, "- [ ] "+text)
		insertAt++
	}

	if err := uc.storage.WriteLines(ctx, newPath, newLines); err != nil {
		uc.l.Errorf(ctx, "uc.Rollover WriteLines: %v", err)
		return plan.RolloverOutput{}, err
	}

	uc.l.Infof(ctx, "rolled %d tasks from %s into %s", len(toMove), path, newPath)
	return plan.RolloverOutput{Moved: len(toMove), NewFilePath: newPath}, nil
}
