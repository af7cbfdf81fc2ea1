package usecase

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"daily-plan-assistant/internal/plan"
)

func TestResolveToday(t *testing.T) {
	storage := newMemStorage()
	uc := newTestUseCase(storage)
	ctx := context.Background()

	out, err := uc.ResolveToday(ctx)
	if err != nil {
		t.Fatalf("ResolveToday: %v", err)
	}
	if out.Date != "2025-08-31" {
		t.Errorf("date = %q, want 2025-08-31", out.Date)
	}
	if out.Path != "daily-plans/2025/08/31.md" {
		t.Errorf("path = %q", out.Path)
	}
	if out.Exists {
		t.Error("file must not exist yet")
	}

	t.Run("Exists After Write", func(t *testing.T) {
		seed(storage, out.Path, "# 📅 今日计划\n")
		again, _ := uc.ResolveToday(ctx)
		if !again.Exists {
			t.Error("expected exists=true")
		}
	})
}

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("Fallback When Month Is Empty", func(t *testing.T) {
		storage := newMemStorage()
		uc := newTestUseCase(storage)

		out, err := uc.Create(ctx, plan.CreateInput{})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if !out.Created || out.Source != "fallback" {
			t.Errorf("unexpected output %+v", out)
		}
		lines := storage.files[out.Path]
		if len(lines) == 0 || lines[0] != "# 📅 今日计划" {
			t.Errorf("fallback template not written, first line %q", first(lines))
		}
	})

	t.Run("No-Op When File Exists", func(t *testing.T) {
		storage := newMemStorage()
		uc := newTestUseCase(storage)
		seed(storage, "daily-plans/2025/08/31.md", "# custom\n- [ ] keep me\n")
		before, _ := storage.ReadLines(ctx, "daily-plans/2025/08/31.md")

		out, err := uc.Create(ctx, plan.CreateInput{Force: false})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if out.Created || out.Reason != "exists" {
			t.Errorf("expected created=false reason=exists, got %+v", out)
		}
		after, _ := storage.ReadLines(ctx, "daily-plans/2025/08/31.md")
		if diff := cmp.Diff(before, after); diff != "" {
			t.Errorf("no-op create must not touch the file (-before +after):\n%s", diff)
		}
	})

	t.Run("Donor Copy Rewrites Title", func(t *testing.T) {
		storage := newMemStorage()
		uc := newTestUseCase(storage)
		seed(storage, "daily-plans/2025/08/29.md", "# 📅 8月29日计划\n\n## 🎯 今日重点任务\n- [x] 旧任务\n")
		seed(storage, "daily-plans/2025/08/30.md", "# 📅 8月30日计划\n\n## 🎯 今日重点任务\n- [ ] 最近任务\n")

		out, err := uc.Create(ctx, plan.CreateInput{})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if out.Source != "daily-plans/2025/08/30.md" {
			t.Errorf("expected latest same-month donor, got %q", out.Source)
		}
		lines := storage.files[out.Path]
		want := []string{"# 📅 今日计划", "", "## 🎯 今日重点任务", "- [ ] 最近任务"}
		if diff := cmp.Diff(want, lines); diff != "" {
			t.Errorf("donor copy mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("Force Overwrites From Donor", func(t *testing.T) {
		storage := newMemStorage()
		uc := newTestUseCase(storage)
		seed(storage, "daily-plans/2025/08/31.md", "# old content\n")

		out, err := uc.Create(ctx, plan.CreateInput{Force: true})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if !out.Created {
			t.Errorf("expected created=true, got %+v", out)
		}
		// Today's own file is the only same-month .md, so it donates to
		// itself; the title still gets normalized.
		if lines := storage.files[out.Path]; lines[0] != "# 📅 今日计划" {
			t.Errorf("title not rewritten, got %q", lines[0])
		}
	})
}

func first(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return lines[0]
}
