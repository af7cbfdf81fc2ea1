// Package file is the disk implementation of the plan Storage interface.
// Writes go through a temp-file-and-rename so a crashed write never leaves
// a half-written plan behind.
package file

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/natefinch/atomic"

	"daily-plan-assistant/internal/plan/document"
	"daily-plan-assistant/pkg/log"
)

type storage struct {
	l log.Logger
}

// New creates a disk-backed Storage.
func New(l log.Logger) *storage {
	return &storage{l: l}
}

func (s *storage) ReadLines(ctx context.Context, path string) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return document.SplitLines(string(content)), nil
}

func (s *storage) WriteLines(ctx context.Context, path string, lines []string) error {
	content := document.JoinLines(lines)
	if err := atomic.WriteFile(path, strings.NewReader(content)); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	// atomic.WriteFile inherits the temp file's restrictive mode.
	if err := os.Chmod(path, 0o644); err != nil {
		s.l.Warnf(ctx, "chmod %s: %v", path, err)
	}
	return nil
}

func (s *storage) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (s *storage) MkdirAll(path string) error {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", path, err)
	}
	return nil
}

func (s *storage) ListDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names, nil
}
