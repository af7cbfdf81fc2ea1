package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, arg ...any)                    {}
func (nopLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (nopLogger) Info(ctx context.Context, arg ...any)                     {}
func (nopLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (nopLogger) Warn(ctx context.Context, arg ...any)                     {}
func (nopLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (nopLogger) Error(ctx context.Context, arg ...any)                    {}
func (nopLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (nopLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (nopLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (nopLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (nopLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (nopLogger) Panic(ctx context.Context, arg ...any)                    {}
func (nopLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

func TestStorageRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := New(nopLogger{})
	path := filepath.Join(t.TempDir(), "2025", "08", "31.md")

	if s.Exists(path) {
		t.Fatal("file must not exist yet")
	}
	if _, err := s.ReadLines(ctx, path); err == nil {
		t.Fatal("reading a missing file must fail")
	}

	if err := s.MkdirAll(filepath.Dir(path)); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	lines := []string{"# 📅 今日计划", "", "- [ ] 阅读"}
	if err := s.WriteLines(ctx, path, lines); err != nil {
		t.Fatalf("WriteLines: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if got := string(raw); got != "# 📅 今日计划\n\n- [ ] 阅读\n" {
		t.Errorf("unexpected file content %q", got)
	}

	got, err := s.ReadLines(ctx, path)
	if err != nil {
		t.Fatalf("ReadLines: %v", err)
	}
	if diff := cmp.Diff(lines, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}

	t.Run("ListDir", func(t *testing.T) {
		names, err := s.ListDir(filepath.Dir(path))
		if err != nil {
			t.Fatalf("ListDir: %v", err)
		}
		if len(names) != 1 || names[0] != "31.md" {
			t.Errorf("expected [31.md], got %v", names)
		}
	})

	t.Run("Overwrite Replaces Content", func(t *testing.T) {
		if err := s.WriteLines(ctx, path, []string{"only line"}); err != nil {
			t.Fatalf("WriteLines: %v", err)
		}
		got, err := s.ReadLines(ctx, path)
		if err != nil {
			t.Fatalf("ReadLines: %v", err)
		}
		if diff := cmp.Diff([]string{"only line"}, got); diff != "" {
			t.Errorf("overwrite mismatch (-want +got):\n%s", diff)
		}
	})
}
