package tools

import (
	"context"

	"daily-plan-assistant/internal/agent"
	"daily-plan-assistant/internal/plan"
	pkgLog "daily-plan-assistant/pkg/log"
)

// The plan tools are thin delegations into plan.UseCase so an LLM can
// drive the same operations the HTTP API exposes. Argument names follow
// the function-calling catalog, not the REST field names.

func stringArg(args map[string]interface{}, key string) string {
	value, _ := args[key].(string)
	return value
}

func boolArg(args map[string]interface{}, key string) bool {
	value, _ := args[key].(bool)
	return value
}

func optionalPathProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Optional explicit day file path; today's file when omitted",
	}
}

// --- plan_today_path ---

type TodayPathTool struct {
	l  pkgLog.Logger
	uc plan.UseCase
}

func NewTodayPathTool(l pkgLog.Logger, uc plan.UseCase) *TodayPathTool {
	return &TodayPathTool{l: l, uc: uc}
}

func (t *TodayPathTool) Name() string {
	return "plan_today_path"
}

func (t *TodayPathTool) Description() string {
	return "Resolve today's plan file path and whether it exists. Never creates the file."
}

func (t *TodayPathTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type":       "object",
		"properties": map[string]interface{}{},
		"required":   []string{},
	}
}

type TodayPathOutput struct {
	Date   string `json:"date"`
	Path   string `json:"path"`
	Exists bool   `json:"exists"`
}

func (t *TodayPathTool) Execute(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	output, err := t.uc.ResolveToday(ctx)
	if err != nil {
		return nil, err
	}
	return TodayPathOutput{Date: output.Date, Path: output.Path, Exists: output.Exists}, nil
}

// --- plan_create_today ---

type CreateTodayTool struct {
	l  pkgLog.Logger
	uc plan.UseCase
}

func NewCreateTodayTool(l pkgLog.Logger, uc plan.UseCase) *CreateTodayTool {
	return &CreateTodayTool{l: l, uc: uc}
}

func (t *CreateTodayTool) Name() string {
	return "plan_create_today"
}

func (t *CreateTodayTool) Description() string {
	return "Create today's plan file from the most recent same-month file or the built-in template. Skipped when the file exists unless force is set."
}

func (t *CreateTodayTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"force": map[string]interface{}{
				"type":        "boolean",
				"description": "Overwrite an existing file",
				"default":     false,
			},
		},
		"required": []string{},
	}
}

type CreateTodayOutput struct {
	Created bool   `json:"created"`
	Path    string `json:"path"`
	Source  string `json:"source,omitempty"`
	Reason  string `json:"reason,omitempty"`
}

func (t *CreateTodayTool) Execute(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	output, err := t.uc.Create(ctx, plan.CreateInput{Force: boolArg(args, "force")})
	if err != nil {
		return nil, err
	}
	return CreateTodayOutput{
		Created: output.Created,
		Path:    output.Path,
		Source:  output.Source,
		Reason:  output.Reason,
	}, nil
}

// --- plan_read_day ---

type ReadDayTool struct {
	l  pkgLog.Logger
	uc plan.UseCase
}

func NewReadDayTool(l pkgLog.Logger, uc plan.UseCase) *ReadDayTool {
	return &ReadDayTool{l: l, uc: uc}
}

func (t *ReadDayTool) Name() string {
	return "plan_read_day"
}

func (t *ReadDayTool) Description() string {
	return "Read a plan file (today by default) as structured sections with their checklist tasks."
}

func (t *ReadDayTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"path": optionalPathProperty(),
		},
		"required": []string{},
	}
}

type ReadDayTask struct {
	Text       string `json:"text"`
	Status     string `json:"status"`
	Mark       string `json:"mark"`
	LineIndex  int    `json:"line_index"`
	Subsection string `json:"subsection,omitempty"`
}

type ReadDaySection struct {
	Title string        `json:"title"`
	Tasks []ReadDayTask `json:"tasks"`
}

type ReadDayOutput struct {
	Exists   bool             `json:"exists"`
	Path     string           `json:"path"`
	Sections []ReadDaySection `json:"sections"`
}

func (t *ReadDayTool) Execute(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	output, err := t.uc.Read(ctx, plan.ReadInput{Path: stringArg(args, "path")})
	if err != nil {
		return nil, err
	}

	sections := make([]ReadDaySection, 0, len(output.Sections))
	for _, sec := range output.Sections {
		tasks := make([]ReadDayTask, 0, len(sec.Tasks))
		for _, task := range sec.Tasks {
			tasks = append(tasks, ReadDayTask{
				Text:       task.Text,
				Status:     string(task.Status),
				Mark:       task.Mark,
				LineIndex:  task.LineIndex,
				Subsection: task.Subsection,
			})
		}
		sections = append(sections, ReadDaySection{Title: sec.Title, Tasks: tasks})
	}
	return ReadDayOutput{Exists: output.Exists, Path: output.Path, Sections: sections}, nil
}

// --- plan_add_task ---

type AddTaskTool struct {
	l  pkgLog.Logger
	uc plan.UseCase
}

func NewAddTaskTool(l pkgLog.Logger, uc plan.UseCase) *AddTaskTool {
	return &AddTaskTool{l: l, uc: uc}
}

func (t *AddTaskTool) Name() string {
	return "plan_add_task"
}

func (t *AddTaskTool) Description() string {
	return "Append a checklist task to the first section whose title starts with the given prefix."
}

func (t *AddTaskTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"section_title_prefix": map[string]interface{}{
				"type":        "string",
				"description": "Section title prefix, e.g. '🎯' or '今日重点任务'",
			},
			"task_text": map[string]interface{}{
				"type":        "string",
				"description": "Task text",
			},
			"status": map[string]interface{}{
				"type":        "string",
				"description": "todo|done|partial|cancelled|in_progress|need_help",
				"default":     "todo",
			},
			"path": optionalPathProperty(),
		},
		"required": []string{"section_title_prefix", "task_text"},
	}
}

type AddTaskOutput struct {
	Inserted bool `json:"inserted"`
	Line     int  `json:"line"`
}

func (t *AddTaskTool) Execute(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	status := stringArg(args, "status")
	if status == "" {
		status = "todo"
	}
	output, err := t.uc.AddTask(ctx, plan.AddTaskInput{
		SectionPrefix: stringArg(args, "section_title_prefix"),
		Text:          stringArg(args, "task_text"),
		Status:        status,
		Path:          stringArg(args, "path"),
	})
	if err != nil {
		return nil, err
	}
	return AddTaskOutput{Inserted: output.Inserted, Line: output.Line}, nil
}

// --- plan_set_task_status ---

type SetTaskStatusTool struct {
	l  pkgLog.Logger
	uc plan.UseCase
}

func NewSetTaskStatusTool(l pkgLog.Logger, uc plan.UseCase) *SetTaskStatusTool {
	return &SetTaskStatusTool{l: l, uc: uc}
}

func (t *SetTaskStatusTool) Name() string {
	return "plan_set_task_status"
}

func (t *SetTaskStatusTool) Description() string {
	return "Set the status of the first task whose text matches exactly."
}

func (t *SetTaskStatusTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"task_text": map[string]interface{}{
				"type":        "string",
				"description": "Exact task text to match",
			},
			"status": map[string]interface{}{
				"type":        "string",
				"description": "todo|done|partial|cancelled|in_progress|need_help",
			},
			"path": optionalPathProperty(),
		},
		"required": []string{"task_text", "status"},
	}
}

type SetTaskStatusOutput struct {
	Updated   bool   `json:"updated"`
	Line      int    `json:"line"`
	NewStatus string `json:"new_status"`
}

func (t *SetTaskStatusTool) Execute(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	output, err := t.uc.SetTaskStatus(ctx, plan.SetStatusInput{
		Text:   stringArg(args, "task_text"),
		Status: stringArg(args, "status"),
		Path:   stringArg(args, "path"),
	})
	if err != nil {
		return nil, err
	}
	return SetTaskStatusOutput{Updated: output.Updated, Line: output.Line, NewStatus: output.NewStatus}, nil
}

// --- plan_append_note ---

type AppendNoteTool struct {
	l  pkgLog.Logger
	uc plan.UseCase
}

func NewAppendNoteTool(l pkgLog.Logger, uc plan.UseCase) *AppendNoteTool {
	return &AppendNoteTool{l: l, uc: uc}
}

func (t *AppendNoteTool) Name() string {
	return "plan_append_note"
}

func (t *AppendNoteTool) Description() string {
	return "Append a plain bulleted note line to the end of a section."
}

func (t *AppendNoteTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"section_title_prefix": map[string]interface{}{
				"type":        "string",
				"description": "Section title prefix",
			},
			"note_line": map[string]interface{}{
				"type":        "string",
				"description": "Note content",
			},
			"path": optionalPathProperty(),
		},
		"required": []string{"section_title_prefix", "note_line"},
	}
}

type AppendNoteOutput struct {
	Appended bool `json:"appended"`
	Line     int  `json:"line"`
}

func (t *AppendNoteTool) Execute(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	output, err := t.uc.AppendNote(ctx, plan.AppendNoteInput{
		SectionPrefix: stringArg(args, "section_title_prefix"),
		Line:          stringArg(args, "note_line"),
		Path:          stringArg(args, "path"),
	})
	if err != nil {
		return nil, err
	}
	return AppendNoteOutput{Appended: output.Appended, Line: output.Line}, nil
}

// --- plan_rollover ---

type RolloverTool struct {
	l  pkgLog.Logger
	uc plan.UseCase
}

func NewRolloverTool(l pkgLog.Logger, uc plan.UseCase) *RolloverTool {
	return &RolloverTool{l: l, uc: uc}
}

func (t *RolloverTool) Name() string {
	return "plan_rollover"
}

func (t *RolloverTool) Description() string {
	return "Copy incomplete tasks into tomorrow's priority section as fresh todos. The source file is never changed."
}

func (t *RolloverTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"path": optionalPathProperty(),
		},
		"required": []string{},
	}
}

type RolloverOutput struct {
	Moved       int    `json:"moved"`
	NewFilePath string `json:"new_file_path"`
}

func (t *RolloverTool) Execute(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	output, err := t.uc.Rollover(ctx, plan.RolloverInput{Path: stringArg(args, "path")})
	if err != nil {
		return nil, err
	}
	return RolloverOutput{Moved: output.Moved, NewFilePath: output.NewFilePath}, nil
}

// Verify interface compliance
var (
	_ agent.Tool = (*TodayPathTool)(nil)
	_ agent.Tool = (*CreateTodayTool)(nil)
	_ agent.Tool = (*ReadDayTool)(nil)
	_ agent.Tool = (*AddTaskTool)(nil)
	_ agent.Tool = (*SetTaskStatusTool)(nil)
	_ agent.Tool = (*AppendNoteTool)(nil)
	_ agent.Tool = (*RolloverTool)(nil)
)
