package usecase

import (
	"context"
	"path/filepath"
	"sort"
	"strings"

	"daily-plan-assistant/internal/plan"
	"daily-plan-assistant/internal/plan/document"
)

// Create ensures today's file exists, copying the most recent same-month
// file when one exists and falling back to the embedded template otherwise.
func (uc *implUseCase) Create(ctx context.Context, input plan.CreateInput) (plan.CreateOutput, error) {
	path := uc.todayPath()
	if uc.storage.Exists(path) && !input.Force {
		return plan.CreateOutput{Created: false, Path: path, Reason: "exists"}, nil
	}

	if err := uc.storage.MkdirAll(filepath.Dir(path)); err != nil {
		uc.l.Errorf(ctx, "uc.Create MkdirAll: %v", err)
		return plan.CreateOutput{}, err
	}

	donor := uc.donorPath(path)
	if donor == "" {
		if err := uc.storage.WriteLines(ctx, path, document.SplitLines(fallbackTemplate)); err != nil {
			uc.l.Errorf(ctx, "uc.Create WriteLines: %v", err)
			return plan.CreateOutput{}, err
		}
		uc.l.Infof(ctx, "created %s from fallback template", path)
		return plan.CreateOutput{Created: true, Path: path, Source: sourceFallback}, nil
	}

	lines, err := uc.storage.ReadLines(ctx, donor)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create ReadLines donor: %v", err)
		return plan.CreateOutput{}, err
	}
	if len(lines) > 0 && document.IsTitle(lines[0]) {
		lines[0] = canonicalTitle
	}
	if err := uc.storage.WriteLines(ctx, path, lines); err != nil {
		uc.l.Errorf(ctx, "uc.Create WriteLines: %v", err)
		return plan.CreateOutput{}, err
	}
	uc.l.Infof(ctx, "created %s from donor %s", path, donor)
	return plan.CreateOutput{Created: true, Path: path, Source: donor}, nil
}

// donorPath picks the template donor for dayFile: the lexicographically
// last .md file in the same month directory. Zero-padded day names make
// that the chronologically latest day. Empty when the month has no files.
func (uc *implUseCase) donorPath(dayFile string) string {
	monthDir := filepath.Dir(dayFile)
	names, err := uc.storage.ListDir(monthDir)
	if err != nil {
		return ""
	}
	var mdFiles []string
	for _, name := range names {
		if strings.HasSuffix(name, ".md") {
			mdFiles = append(mdFiles, name)
		}
	}
	if len(mdFiles) == 0 {
		return ""
	}
	sort.Strings(mdFiles)
	return filepath.Join(monthDir, mdFiles[len(mdFiles)-1])
}
