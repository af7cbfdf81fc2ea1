package tools

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"daily-plan-assistant/internal/agent"
	"daily-plan-assistant/internal/plan"
	"daily-plan-assistant/internal/plan/document"
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

// mockPlanUseCase implements plan.UseCase with function fields.
type mockPlanUseCase struct {
	resolveToday  func(ctx context.Context) (plan.TodayOutput, error)
	create        func(ctx context.Context, input plan.CreateInput) (plan.CreateOutput, error)
	read          func(ctx context.Context, input plan.ReadInput) (plan.ReadOutput, error)
	setTaskStatus func(ctx context.Context, input plan.SetStatusInput) (plan.SetStatusOutput, error)
	addTask       func(ctx context.Context, input plan.AddTaskInput) (plan.AddTaskOutput, error)
	appendNote    func(ctx context.Context, input plan.AppendNoteInput) (plan.AppendNoteOutput, error)
	rollover      func(ctx context.Context, input plan.RolloverInput) (plan.RolloverOutput, error)
}

func (m *mockPlanUseCase) ResolveToday(ctx context.Context) (plan.TodayOutput, error) {
	return m.resolveToday(ctx)
}
func (m *mockPlanUseCase) Create(ctx context.Context, input plan.CreateInput) (plan.CreateOutput, error) {
	return m.create(ctx, input)
}
func (m *mockPlanUseCase) Read(ctx context.Context, input plan.ReadInput) (plan.ReadOutput, error) {
	return m.read(ctx, input)
}
func (m *mockPlanUseCase) SetTaskStatus(ctx context.Context, input plan.SetStatusInput) (plan.SetStatusOutput, error) {
	return m.setTaskStatus(ctx, input)
}
func (m *mockPlanUseCase) AddTask(ctx context.Context, input plan.AddTaskInput) (plan.AddTaskOutput, error) {
	return m.addTask(ctx, input)
}
func (m *mockPlanUseCase) AppendNote(ctx context.Context, input plan.AppendNoteInput) (plan.AppendNoteOutput, error) {
	return m.appendNote(ctx, input)
}
func (m *mockPlanUseCase) Rollover(ctx context.Context, input plan.RolloverInput) (plan.RolloverOutput, error) {
	return m.rollover(ctx, input)
}

func TestCurrentTimeTool(t *testing.T) {
	tool := NewCurrentTimeTool(&mockLogger{}, time.UTC)
	tool.now = func() time.Time {
		return time.Date(2025, 8, 31, 15, 4, 5, 0, time.UTC)
	}

	result, err := tool.Execute(context.Background(), nil)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	output := result.(CurrentTimeOutput)
	if output.CurrentTime != "2025-08-31 15:04:05" {
		t.Errorf("current_time = %q", output.CurrentTime)
	}
	if output.Timezone != "UTC" {
		t.Errorf("timezone = %q", output.Timezone)
	}
	if output.Timestamp != time.Date(2025, 8, 31, 15, 4, 5, 0, time.UTC).Unix() {
		t.Errorf("timestamp = %d", output.Timestamp)
	}
}

func TestWeatherTool(t *testing.T) {
	tool := NewWeatherTool(&mockLogger{})

	t.Run("default city", func(t *testing.T) {
		result, err := tool.Execute(context.Background(), map[string]interface{}{})
		if err != nil {
			t.Fatalf("Execute: %v", err)
		}
		if result.(WeatherOutput).City != "北京" {
			t.Errorf("city = %q, want 北京", result.(WeatherOutput).City)
		}
	})

	t.Run("explicit city", func(t *testing.T) {
		result, err := tool.Execute(context.Background(), map[string]interface{}{"city": "上海"})
		if err != nil {
			t.Fatalf("Execute: %v", err)
		}
		output := result.(WeatherOutput)
		if output.City != "上海" || output.Condition == "" {
			t.Errorf("output = %+v", output)
		}
	})
}

func TestCalculateTool(t *testing.T) {
	tool := NewCalculateTool(&mockLogger{})

	result, err := tool.Execute(context.Background(), map[string]interface{}{"expression": "2+3*4"})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if result.(CalculateOutput).Result != 14 {
		t.Errorf("result = %v, want 14", result.(CalculateOutput).Result)
	}

	if _, err := tool.Execute(context.Background(), map[string]interface{}{"expression": "import os"}); err == nil {
		t.Error("non-arithmetic input must be rejected")
	}
}

func TestTranslateTool(t *testing.T) {
	tool := NewTranslateTool(&mockLogger{})

	t.Run("dictionary hit", func(t *testing.T) {
		result, err := tool.Execute(context.Background(), map[string]interface{}{"text": "你好"})
		if err != nil {
			t.Fatalf("Execute: %v", err)
		}
		output := result.(TranslateOutput)
		if output.Translated != "Hello" || output.TargetLanguage != "en" {
			t.Errorf("output = %+v", output)
		}
	})

	t.Run("passthrough is marked", func(t *testing.T) {
		result, err := tool.Execute(context.Background(), map[string]interface{}{"text": "早上好", "target_lang": "fr"})
		if err != nil {
			t.Fatalf("Execute: %v", err)
		}
		output := result.(TranslateOutput)
		if output.Translated != "[早上好] (模拟翻译)" || output.TargetLanguage != "fr" {
			t.Errorf("output = %+v", output)
		}
	})
}

func TestFileInfoTool(t *testing.T) {
	tool := NewFileInfoTool(&mockLogger{})

	t.Run("missing file is an answer", func(t *testing.T) {
		result, err := tool.Execute(context.Background(), map[string]interface{}{"file_path": "no/such/file.md"})
		if err != nil {
			t.Fatalf("Execute: %v", err)
		}
		output := result.(FileInfoOutput)
		if output.Exists || output.FilePath != "no/such/file.md" {
			t.Errorf("output = %+v", output)
		}
	})
}

func TestPlanTools(t *testing.T) {
	ctx := context.Background()

	t.Run("plan_add_task defaults status to todo", func(t *testing.T) {
		var gotInput plan.AddTaskInput
		uc := &mockPlanUseCase{
			addTask: func(ctx context.Context, input plan.AddTaskInput) (plan.AddTaskOutput, error) {
				gotInput = input
				return plan.AddTaskOutput{Inserted: true, Line: 7}, nil
			},
		}
		tool := NewAddTaskTool(&mockLogger{}, uc)

		result, err := tool.Execute(ctx, map[string]interface{}{
			"section_title_prefix": "🎯",
			"task_text":            "新任务",
		})
		if err != nil {
			t.Fatalf("Execute: %v", err)
		}
		if gotInput.Status != "todo" || gotInput.SectionPrefix != "🎯" {
			t.Errorf("usecase got %+v", gotInput)
		}
		if result.(AddTaskOutput).Line != 7 {
			t.Errorf("result = %+v", result)
		}
	})

	t.Run("plan_read_day flattens document tasks", func(t *testing.T) {
		uc := &mockPlanUseCase{
			read: func(ctx context.Context, input plan.ReadInput) (plan.ReadOutput, error) {
				return plan.ReadOutput{
					Exists: true,
					Path:   "daily-plans/2025/08/31.md",
					Sections: []plan.SectionView{{
						Title: "## 🎯 今日重点任务",
						Tasks: []document.Task{{
							LineIndex:  4,
							Mark:       "[>]",
							Status:     document.StatusInProgress,
							Text:       "跑步",
							Subsection: "### 锻炼",
						}},
					}},
				}, nil
			},
		}
		tool := NewReadDayTool(&mockLogger{}, uc)

		result, err := tool.Execute(ctx, map[string]interface{}{})
		if err != nil {
			t.Fatalf("Execute: %v", err)
		}
		want := ReadDayOutput{
			Exists: true,
			Path:   "daily-plans/2025/08/31.md",
			Sections: []ReadDaySection{{
				Title: "## 🎯 今日重点任务",
				Tasks: []ReadDayTask{{
					Text:       "跑步",
					Status:     "in_progress",
					Mark:       "[>]",
					LineIndex:  4,
					Subsection: "### 锻炼",
				}},
			}},
		}
		if diff := cmp.Diff(want, result.(ReadDayOutput)); diff != "" {
			t.Errorf("output mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("plan_rollover forwards optional path", func(t *testing.T) {
		var gotInput plan.RolloverInput
		uc := &mockPlanUseCase{
			rollover: func(ctx context.Context, input plan.RolloverInput) (plan.RolloverOutput, error) {
				gotInput = input
				return plan.RolloverOutput{Moved: 2, NewFilePath: "daily-plans/2025/09/01.md"}, nil
			},
		}
		tool := NewRolloverTool(&mockLogger{}, uc)

		result, err := tool.Execute(ctx, map[string]interface{}{"path": "daily-plans/2025/08/30.md"})
		if err != nil {
			t.Fatalf("Execute: %v", err)
		}
		if gotInput.Path != "daily-plans/2025/08/30.md" {
			t.Errorf("usecase got %+v", gotInput)
		}
		if result.(RolloverOutput).Moved != 2 {
			t.Errorf("result = %+v", result)
		}
	})
}

func TestRegisterAll(t *testing.T) {
	r := agent.NewRegistry(&mockLogger{})
	if err := RegisterAll(r, &mockLogger{}, &mockPlanUseCase{}, time.UTC); err != nil {
		t.Fatalf("RegisterAll: %v", err)
	}

	want := []string{
		"current_time", "weather", "calculate", "translate_text",
		"file_info", "list_directory",
		"plan_today_path", "plan_create_today", "plan_read_day",
		"plan_add_task", "plan_set_task_status", "plan_append_note",
		"plan_rollover",
	}
	if diff := cmp.Diff(want, r.Names()); diff != "" {
		t.Errorf("registered names mismatch (-want +got):\n%s", diff)
	}
}
