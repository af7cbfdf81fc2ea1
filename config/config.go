package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Daily Plan Assistant specifics
	Plan PlanConfig
	Chat ChatConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// PlanConfig controls where day files live and which wall clock decides
// what "today" means.
type PlanConfig struct {
	RootDir  string
	Timezone string
}

// ChatConfig configures the OpenAI-compatible upstream and the local
// conversation log.
type ChatConfig struct {
	BaseURL         string
	APIKey          string
	Model           string
	SystemPrompt    string
	HistoryWindow   int
	LogPath         string
	MaxTokens       int
	StreamMaxTokens int
	RateLimitPerMin int
	Timeout         string
	StreamTimeout   string
}

// defaultSystemPrompt frames the assistant as a personal secretary that
// helps plan, review and summarize the user's day.
const defaultSystemPrompt = "你是用户的私人秘书、好友与老师，语气温和、主动、负责。" +
	"当用户谈到计划/进度时，帮助规划、检查与总结；" +
	"必要时提出2-3条可执行的建议，并确认是否要将更改写入今日计划。"

// Load loads configuration using Viper. When configFile is empty,
// config.yaml is searched in ./config, ., /etc/app/
func Load(configFile string) (*Config, error) {
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath("./config")
		viper.AddConfigPath(".")
		viper.AddConfigPath("/etc/app/")
	}

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Plan
	cfg.Plan.RootDir = viper.GetString("plan.root_dir")
	cfg.Plan.Timezone = viper.GetString("plan.timezone")

	// Chat
	cfg.Chat.BaseURL = viper.GetString("chat.base_url")
	cfg.Chat.APIKey = expandEnvVar(viper.GetString("chat.api_key"))
	cfg.Chat.Model = viper.GetString("chat.model")
	cfg.Chat.SystemPrompt = viper.GetString("chat.system_prompt")
	cfg.Chat.HistoryWindow = viper.GetInt("chat.history_window")
	cfg.Chat.LogPath = viper.GetString("chat.log_path")
	cfg.Chat.MaxTokens = viper.GetInt("chat.max_tokens")
	cfg.Chat.StreamMaxTokens = viper.GetInt("chat.stream_max_tokens")
	cfg.Chat.RateLimitPerMin = viper.GetInt("chat.rate_limit_per_min")
	cfg.Chat.Timeout = viper.GetString("chat.timeout")
	cfg.Chat.StreamTimeout = viper.GetString("chat.stream_timeout")

	// Flat env aliases for the common deployment knobs
	if key := viper.GetString("openai_api_key"); key != "" {
		cfg.Chat.APIKey = key
	}
	if baseURL := viper.GetString("openai_base_url"); baseURL != "" {
		cfg.Chat.BaseURL = baseURL
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("plan.root_dir", "daily-plans")
	viper.SetDefault("plan.timezone", "")

	viper.SetDefault("chat.base_url", "https://api.openai.com/v1")
	viper.SetDefault("chat.api_key", "${OPENAI_API_KEY}")
	viper.SetDefault("chat.model", "gpt-4o-mini")
	viper.SetDefault("chat.system_prompt", defaultSystemPrompt)
	viper.SetDefault("chat.history_window", 50)
	viper.SetDefault("chat.log_path", "logs/chat_history.jsonl")
	viper.SetDefault("chat.max_tokens", 300)
	viper.SetDefault("chat.stream_max_tokens", 600)
	viper.SetDefault("chat.rate_limit_per_min", 60)
	viper.SetDefault("chat.timeout", "60s")
	viper.SetDefault("chat.stream_timeout", "300s")
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if resolved := viper.GetString(envVar); resolved != "" {
			return resolved
		}
		return os.Getenv(envVar)
	}

	return value
}
