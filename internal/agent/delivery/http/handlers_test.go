package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"daily-plan-assistant/internal/agent"
)

func init() {
	gin.SetMode(gin.TestMode)
}

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

// echoTool returns its arguments back.
type echoTool struct{}

func (t *echoTool) Name() string        { return "echo" }
func (t *echoTool) Description() string { return "Echo the arguments back." }
func (t *echoTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"value": map[string]interface{}{"type": "string"},
		},
		"required": []string{"value"},
	}
}
func (t *echoTool) Execute(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	return map[string]interface{}{"echo": args["value"]}, nil
}

func newTestRouter(t *testing.T) *gin.Engine {
	registry := agent.NewRegistry(&mockLogger{})
	if err := registry.Register(&echoTool{}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	router := gin.New()
	h := New(&mockLogger{}, registry)
	RegisterRoutes(router.Group("/api/v1/tools"), h)
	RegisterCompletionRoutes(router.Group("/v1"), h)
	return router
}

func TestListToolsHandler(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/tools", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	var body struct {
		Data listToolsResp `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body.Data.Count != 1 || len(body.Data.Tools) != 1 {
		t.Fatalf("unexpected catalog %+v", body.Data)
	}
	if body.Data.Tools[0]["type"] != "function" {
		t.Errorf("entry type = %v", body.Data.Tools[0]["type"])
	}
}

func TestExecuteToolHandler(t *testing.T) {
	t.Run("Runs A Registered Tool", func(t *testing.T) {
		router := newTestRouter(t)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/tools/execute",
			strings.NewReader(`{"name":"echo","arguments":{"value":"你好"}}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
		}
		if !strings.Contains(w.Body.String(), `"echo":"你好"`) {
			t.Errorf("body missing echoed value: %s", w.Body.String())
		}
	})

	t.Run("Unknown Tool Maps To 404", func(t *testing.T) {
		router := newTestRouter(t)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/tools/execute",
			strings.NewReader(`{"name":"nope","arguments":{}}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", w.Code)
		}
		if !strings.Contains(w.Body.String(), "tool_not_found") {
			t.Errorf("body missing discriminant: %s", w.Body.String())
		}
	})

	t.Run("Schema Violation Maps To 400", func(t *testing.T) {
		router := newTestRouter(t)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/tools/execute",
			strings.NewReader(`{"name":"echo","arguments":{}}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
		if !strings.Contains(w.Body.String(), "invalid_arguments") {
			t.Errorf("body missing discriminant: %s", w.Body.String())
		}
	})
}

func TestChatCompletionsHandler(t *testing.T) {
	t.Run("Tool Calls Are Executed", func(t *testing.T) {
		router := newTestRouter(t)

		body := `{
			"model": "gpt-4o-mini",
			"messages": [{
				"role": "assistant",
				"content": "",
				"tool_calls": [{
					"id": "call_1",
					"type": "function",
					"function": {"name": "echo", "arguments": "{\"value\":\"hi\"}"}
				}]
			}],
			"tools": [{"type": "function"}]
		}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/chat/completions", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
		}
		var resp completionResp
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if !strings.HasPrefix(resp.ID, "chatcmpl-") {
			t.Errorf("id = %q", resp.ID)
		}
		if len(resp.Choices) != 1 || resp.Choices[0].FinishReason != "tool_calls" {
			t.Fatalf("choices = %+v", resp.Choices)
		}
		if len(resp.ToolResults) != 1 || resp.ToolResults[0].ToolCallID != "call_1" {
			t.Fatalf("tool results = %+v", resp.ToolResults)
		}
		if !strings.Contains(resp.ToolResults[0].Content, `"echo":"hi"`) {
			t.Errorf("tool result content = %q", resp.ToolResults[0].Content)
		}
	})

	t.Run("Unknown Tool Becomes An Error Result", func(t *testing.T) {
		router := newTestRouter(t)

		body := `{
			"model": "gpt-4o-mini",
			"messages": [{
				"role": "assistant",
				"content": "",
				"tool_calls": [{
					"id": "call_2",
					"type": "function",
					"function": {"name": "nope", "arguments": "{}"}
				}]
			}]
		}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/chat/completions", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
		}
		var resp completionResp
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if len(resp.ToolResults) != 1 || !strings.Contains(resp.ToolResults[0].Content, "error") {
			t.Fatalf("tool results = %+v", resp.ToolResults)
		}
	})

	t.Run("No Tool Calls Yields A Greeting", func(t *testing.T) {
		router := newTestRouter(t)

		body := `{"model":"gpt-4o-mini","messages":[{"role":"user","content":"hi"}]}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/chat/completions", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
		}
		var resp completionResp
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if len(resp.Choices) != 1 || resp.Choices[0].FinishReason != "stop" {
			t.Fatalf("choices = %+v", resp.Choices)
		}
		if !strings.Contains(resp.Choices[0].Message.Content, "echo") {
			t.Errorf("greeting should list tool names: %q", resp.Choices[0].Message.Content)
		}
	})
}
