package tools

import (
	"context"
	"time"

	"daily-plan-assistant/internal/agent"
	pkgLog "daily-plan-assistant/pkg/log"
)

type CurrentTimeTool struct {
	l   pkgLog.Logger
	loc *time.Location
	now func() time.Time
}

func NewCurrentTimeTool(l pkgLog.Logger, loc *time.Location) *CurrentTimeTool {
	if loc == nil {
		loc = time.Local
	}
	return &CurrentTimeTool{
		l:   l,
		loc: loc,
		now: time.Now,
	}
}

func (t *CurrentTimeTool) Name() string {
	return "current_time"
}

func (t *CurrentTimeTool) Description() string {
	return "Get the current local time with unix timestamp and timezone."
}

func (t *CurrentTimeTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type":       "object",
		"properties": map[string]interface{}{},
		"required":   []string{},
	}
}

type CurrentTimeOutput struct {
	CurrentTime string `json:"current_time"`
	Timestamp   int64  `json:"timestamp"`
	Timezone    string `json:"timezone"`
}

func (t *CurrentTimeTool) Execute(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	now := t.now().In(t.loc)
	return CurrentTimeOutput{
		CurrentTime: now.Format("2006-01-02 15:04:05"),
		Timestamp:   now.Unix(),
		Timezone:    t.loc.String(),
	}, nil
}

// Verify interface compliance
var _ agent.Tool = (*CurrentTimeTool)(nil)
