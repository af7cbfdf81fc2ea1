package plan

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Today-file resolution and creation
	ResolveToday(ctx context.Context) (TodayOutput, error)
	Create(ctx context.Context, input CreateInput) (CreateOutput, error)

	// Task registry
	Read(ctx context.Context, input ReadInput) (ReadOutput, error)
	SetTaskStatus(ctx context.Context, input SetStatusInput) (SetStatusOutput, error)
	AddTask(ctx context.Context, input AddTaskInput) (AddTaskOutput, error)
	AppendNote(ctx context.Context, input AppendNoteInput) (AppendNoteOutput, error)

	// Rollover
	Rollover(ctx context.Context, input RolloverInput) (RolloverOutput, error)
}
