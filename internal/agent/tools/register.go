package tools

import (
	"time"

	"daily-plan-assistant/internal/agent"
	"daily-plan-assistant/internal/plan"
	pkgLog "daily-plan-assistant/pkg/log"
)

// RegisterAll wires the full tool set into the registry: the utility
// demos first, then one tool per plan operation.
func RegisterAll(r *agent.Registry, l pkgLog.Logger, planUC plan.UseCase, loc *time.Location) error {
	all := []agent.Tool{
		NewCurrentTimeTool(l, loc),
		NewWeatherTool(l),
		NewCalculateTool(l),
		NewTranslateTool(l),
		NewFileInfoTool(l),
		NewListDirectoryTool(l),
		NewTodayPathTool(l, planUC),
		NewCreateTodayTool(l, planUC),
		NewReadDayTool(l, planUC),
		NewAddTaskTool(l, planUC),
		NewSetTaskStatusTool(l, planUC),
		NewAppendNoteTool(l, planUC),
		NewRolloverTool(l, planUC),
	}
	for _, tool := range all {
		if err := r.Register(tool); err != nil {
			return err
		}
	}
	return nil
}
