package tools

import (
	"context"

	"daily-plan-assistant/internal/agent"
	pkgLog "daily-plan-assistant/pkg/log"
)

const defaultCity = "北京"

type WeatherTool struct {
	l pkgLog.Logger
}

func NewWeatherTool(l pkgLog.Logger) *WeatherTool {
	return &WeatherTool{l: l}
}

func (t *WeatherTool) Name() string {
	return "weather"
}

func (t *WeatherTool) Description() string {
	return "Get canned weather conditions for a city. No external API is called."
}

func (t *WeatherTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"city": map[string]interface{}{
				"type":        "string",
				"description": "City name",
				"default":     defaultCity,
			},
		},
		"required": []string{},
	}
}

type WeatherOutput struct {
	City        string `json:"city"`
	Temperature string `json:"temperature"`
	Condition   string `json:"condition"`
	Humidity    string `json:"humidity"`
	Wind        string `json:"wind"`
}

func (t *WeatherTool) Execute(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	city, _ := args["city"].(string)
	if city == "" {
		city = defaultCity
	}
	return WeatherOutput{
		City:        city,
		Temperature: "22°C",
		Condition:   "晴天",
		Humidity:    "65%",
		Wind:        "东北风 3级",
	}, nil
}

// Verify interface compliance
var _ agent.Tool = (*WeatherTool)(nil)
