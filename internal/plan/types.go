package plan

import "daily-plan-assistant/internal/plan/document"

// SectionView is one parsed section with its nested tasks, as returned by
// Read. Line ranges are positions in the file at read time.
type SectionView struct {
	Title string
	Range [2]int
	Tasks []document.Task
}

// --- UseCase Inputs ---

// Inputs carrying a Path operate on that file; an empty Path means today's
// resolved file.

type CreateInput struct {
	Force bool
}

type ReadInput struct {
	Path string
}

type SetStatusInput struct {
	Text   string
	Status string
	Path   string
}

type AddTaskInput struct {
	SectionPrefix string
	Text          string
	Status        string
	Path          string
}

type AppendNoteInput struct {
	SectionPrefix string
	Line          string
	Path          string
}

type RolloverInput struct {
	Path string
}

// --- UseCase Outputs ---

type TodayOutput struct {
	Date   string
	Path   string
	Exists bool
}

type CreateOutput struct {
	Created bool
	Path    string
	// Source names where the content came from: a donor file path or
	// "fallback". Reason is set instead when nothing was created.
	Source string
	Reason string
}

type ReadOutput struct {
	Exists   bool
	Path     string
	Sections []SectionView
}

type SetStatusOutput struct {
	Updated   bool
	Line      int
	NewStatus string
}

type AddTaskOutput struct {
	Inserted bool
	Line     int
}

type AppendNoteOutput struct {
	Appended bool
	Line     int
}

type RolloverOutput struct {
	Moved       int
	NewFilePath string
}
