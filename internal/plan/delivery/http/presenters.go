package http

import (
	"daily-plan-assistant/internal/plan"
)

// --- Request DTOs ---

type createReq struct {
	Force bool `json:"force"`
}

func (r createReq) toInput() plan.CreateInput {
	return plan.CreateInput{Force: r.Force}
}

type readReq struct {
	Path string `form:"path"`
}

func (r readReq) toInput() plan.ReadInput {
	return plan.ReadInput{Path: r.Path}
}

type setStatusReq struct {
	Text   string `json:"text"   binding:"required"`
	Status string `json:"status" binding:"required"`
	Path   string `json:"path"`
}

func (r setStatusReq) toInput() plan.SetStatusInput {
	return plan.SetStatusInput{Text: r.Text, Status: r.Status, Path: r.Path}
}

type addTaskReq struct {
	Section string `json:"section" binding:"required"`
	Text    string `json:"text"    binding:"required"`
	Status  string `json:"status"`
	Path    string `json:"path"`
}

func (r addTaskReq) toInput() plan.AddTaskInput {
	status := r.Status
	if status == "" {
		status = "todo"
	}
	return plan.AddTaskInput{
		SectionPrefix: r.Section,
		Text:          r.Text,
		Status:        status,
		Path:          r.Path,
	}
}

type appendNoteReq struct {
	Section string `json:"section" binding:"required"`
	Line    string `json:"line"    binding:"required"`
	Path    string `json:"path"`
}

func (r appendNoteReq) toInput() plan.AppendNoteInput {
	return plan.AppendNoteInput{SectionPrefix: r.Section, Line: r.Line, Path: r.Path}
}

type rolloverReq struct {
	Path string `json:"path"`
}

func (r rolloverReq) toInput() plan.RolloverInput {
	return plan.RolloverInput{Path: r.Path}
}

// --- Response DTOs ---

type todayResp struct {
	Date   string `json:"date"`
	Path   string `json:"path"`
	Exists bool   `json:"exists"`
}

func (h *handler) newTodayResp(out plan.TodayOutput) todayResp {
	return todayResp{Date: out.Date, Path: out.Path, Exists: out.Exists}
}

type createResp struct {
	Created bool   `json:"created"`
	Path    string `json:"path"`
	Source  string `json:"source,omitempty"`
	Reason  string `json:"reason,omitempty"`
}

func (h *handler) newCreateResp(out plan.CreateOutput) createResp {
	return createResp{Created: out.Created, Path: out.Path, Source: out.Source, Reason: out.Reason}
}

type taskResp struct {
	LineIndex  int    `json:"line_index"`
	Raw        string `json:"raw"`
	StatusMark string `json:"status_mark"`
	Status     string `json:"status"`
	Text       string `json:"text"`
	Section    string `json:"section"`
	Subsection string `json:"subsection,omitempty"`
}

type sectionResp struct {
	Title string     `json:"title"`
	Range [2]int     `json:"range"`
	Tasks []taskResp `json:"tasks"`
}

type readResp struct {
	Exists   bool          `json:"exists"`
	Path     string        `json:"path"`
	Sections []sectionResp `json:"sections"`
}

func (h *handler) newReadResp(out plan.ReadOutput) readResp {
	sections := make([]sectionResp, len(out.Sections))
	for i, sec := range out.Sections {
		tasks := make([]taskResp, len(sec.Tasks))
		for j, task := range sec.Tasks {
			tasks[j] = taskResp{
				LineIndex:  task.LineIndex,
				Raw:        task.Raw,
				StatusMark: task.Mark,
				Status:     string(task.Status),
				Text:       task.Text,
				Section:    task.Section,
				Subsection: task.Subsection,
			}
		}
		sections[i] = sectionResp{Title: sec.Title, Range: sec.Range, Tasks: tasks}
	}
	return readResp{Exists: out.Exists, Path: out.Path, Sections: sections}
}

type setStatusResp struct {
	Updated   bool   `json:"updated"`
	Line      int    `json:"line"`
	NewStatus string `json:"new_status"`
}

func (h *handler) newSetStatusResp(out plan.SetStatusOutput) setStatusResp {
	return setStatusResp{Updated: out.Updated, Line: out.Line, NewStatus: out.NewStatus}
}

type addTaskResp struct {
	Inserted bool `json:"inserted"`
	Line     int  `json:"line"`
}

func (h *handler) newAddTaskResp(out plan.AddTaskOutput) addTaskResp {
	return addTaskResp{Inserted: out.Inserted, Line: out.Line}
}

type appendNoteResp struct {
	Appended bool `json:"appended"`
	Line     int  `json:"line"`
}

func (h *handler) newAppendNoteResp(out plan.AppendNoteOutput) appendNoteResp {
	return appendNoteResp{Appended: out.Appended, Line: out.Line}
}

type rolloverResp struct {
	Moved       int    `json:"moved"`
	NewFilePath string `json:"new_file_path"`
}

func (h *handler) newRolloverResp(out plan.RolloverOutput) rolloverResp {
	return rolloverResp{Moved: out.Moved, NewFilePath: out.NewFilePath}
}
