package tools

import (
	"context"
	"fmt"

	"daily-plan-assistant/internal/agent"
	"daily-plan-assistant/pkg/arith"
	pkgLog "daily-plan-assistant/pkg/log"
)

type CalculateTool struct {
	l pkgLog.Logger
}

func NewCalculateTool(l pkgLog.Logger) *CalculateTool {
	return &CalculateTool{l: l}
}

func (t *CalculateTool) Name() string {
	return "calculate"
}

func (t *CalculateTool) Description() string {
	return "Evaluate an arithmetic expression with +, -, *, /, decimals and parentheses."
}

func (t *CalculateTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"expression": map[string]interface{}{
				"type":        "string",
				"description": "Arithmetic expression, e.g. 2+3*4",
			},
		},
		"required": []string{"expression"},
	}
}

type CalculateOutput struct {
	Expression string  `json:"expression"`
	Result     float64 `json:"result"`
}

func (t *CalculateTool) Execute(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	expression, _ := args["expression"].(string)

	result, err := arith.Eval(expression)
	if err != nil {
		return nil, fmt.Errorf("calculate %q: %w", expression, err)
	}
	return CalculateOutput{
		Expression: expression,
		Result:     result,
	}, nil
}

// Verify interface compliance
var _ agent.Tool = (*CalculateTool)(nil)
