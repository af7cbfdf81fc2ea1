package usecase

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// memStorage is an in-memory Storage keyed by path.
type memStorage struct {
	files map[string][]string
}

func newMemStorage() *memStorage {
	return &memStorage{files: make(map[string][]string)}
}

func (s *memStorage) ReadLines(ctx context.Context, path string) ([]string, error) {
	lines, ok := s.files[path]
	if !ok {
		return nil, fmt.Errorf("read %s: no such file", path)
	}
	out := make([]string, len(lines))
	copy(out, lines)
	return out, nil
}

func (s *memStorage) WriteLines(ctx context.Context, path string, lines []string) error {
	stored := make([]string, len(lines))
	copy(stored, lines)
	s.files[path] = stored
	return nil
}

func (s *memStorage) Exists(path string) bool {
	_, ok := s.files[path]
	return ok
}

func (s *memStorage) MkdirAll(path string) error { return nil }

func (s *memStorage) ListDir(dir string) ([]string, error) {
	var names []string
	for path := range s.files {
		if filepath.Dir(path) == dir {
			names = append(names, filepath.Base(path))
		}
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("list %s: no such directory", dir)
	}
	sort.Strings(names)
	return names, nil
}

// fixedClock pins the usecase wall clock. 2025-08-31 rolls into a new
// month, which exercises tomorrow-path computation across boundaries.
var fixedNow = time.Date(2025, 8, 31, 15, 4, 5, 0, time.UTC)

func newTestUseCase(storage *memStorage) *implUseCase {
	uc := New(&mockLogger{}, storage, "daily-plans", time.UTC)
	uc.now = func() time.Time { return fixedNow }
	return uc
}

func seed(storage *memStorage, path string, content string) {
	storage.files[path] = strings.Split(strings.TrimSuffix(content, "\n"), "\n")
}
