package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"daily-plan-assistant/pkg/response"
)

const serverName = "daily-plan-assistant"

// ListTools godoc
// @Summary     List available tools
// @Description Returns the registered tools in OpenAI tools format.
// @Tags        Agent
// @Produce     json
// @Success     200 {object} listToolsResp
// @Router      /api/v1/tools [GET]
func (h *handler) ListTools(c *gin.Context) {
	catalog := h.registry.Catalog()
	response.OK(c, listToolsResp{
		Tools: catalog,
		Count: len(catalog),
	})
}

// ExecuteTool godoc
// @Summary     Execute a tool by name
// @Description Validates the arguments against the tool's parameter schema and runs it.
// @Tags        Agent
// @Accept      json
// @Produce     json
// @Param       body body executeReq true "Tool name and arguments"
// @Success     200 {object} executeResp
// @Failure     400 {object} response.Resp "Invalid arguments"
// @Failure     404 {object} response.Resp "Unknown tool"
// @Router      /api/v1/tools/execute [POST]
func (h *handler) ExecuteTool(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processExecuteReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	result, err := h.registry.Execute(ctx, req.Name, req.Arguments)
	if err != nil {
		h.l.Errorf(ctx, "registry.Execute %s: %v", req.Name, err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, executeResp{Name: req.Name, Result: result})
}

// ChatCompletions godoc
// @Summary     OpenAI-compatible completion endpoint with tool dispatch
// @Description When the last message carries tool_calls, each is executed against the registry and the response finishes with tool_calls; otherwise a greeting listing the available tools is returned.
// @Tags        Agent
// @Accept      json
// @Produce     json
// @Param       body body completionReq true "OpenAI-format chat completion request"
// @Success     200 {object} completionResp
// @Router      /v1/chat/completions [POST]
func (h *handler) ChatCompletions(c *gin.Context) {
	req, err := h.processCompletionReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	resp := completionResp{
		ID:      "chatcmpl-" + uuid.NewString(),
		Object:  "chat.completion",
		Created: time.Now().Unix(),
		Model:   req.Model,
		Usage:   completionUsage{PromptTokens: 100, CompletionTokens: 50, TotalTokens: 150},
	}

	if len(req.Messages) > 0 {
		last := req.Messages[len(req.Messages)-1]
		if len(last.ToolCalls) > 0 {
			resp.ToolResults = h.executeToolCalls(c, last.ToolCalls)
			resp.Choices = []completionChoice{{
				Index: 0,
				Message: completionMessage{
					Role:      "assistant",
					Content:   "工具调用完成",
					ToolCalls: last.ToolCalls,
				},
				FinishReason: "tool_calls",
			}}
			c.JSON(http.StatusOK, resp)
			return
		}
	}

	greeting := fmt.Sprintf("你好！我是%s。我可以帮助你使用以下工具：%s",
		serverName, strings.Join(h.registry.Names(), ", "))
	resp.Choices = []completionChoice{{
		Index:        0,
		Message:      completionMessage{Role: "assistant", Content: greeting},
		FinishReason: "stop",
	}}
	c.JSON(http.StatusOK, resp)
}

// executeToolCalls runs each requested call against the registry. A
// failed call becomes an error payload in its result instead of failing
// the whole completion.
func (h *handler) executeToolCalls(c *gin.Context, calls []toolCall) []toolResult {
	results := make([]toolResult, 0, len(calls))
	for _, call := range calls {
		results = append(results, toolResult{
			ToolCallID: call.ID,
			Role:       "tool",
			Content:    h.runToolCall(c, call),
		})
	}
	return results
}

func (h *handler) runToolCall(c *gin.Context, call toolCall) string {
	ctx := c.Request.Context()

	var args map[string]interface{}
	if call.Function.Arguments != "" {
		if err := json.Unmarshal([]byte(call.Function.Arguments), &args); err != nil {
			h.l.Warnf(ctx, "tool call %s: bad arguments: %v", call.Function.Name, err)
			return errorContent(fmt.Sprintf("无法解析参数: %v", err))
		}
	}

	result, err := h.registry.Execute(ctx, call.Function.Name, args)
	if err != nil {
		h.l.Errorf(ctx, "tool call %s: %v", call.Function.Name, err)
		return errorContent(fmt.Sprintf("工具执行失败: %v", err))
	}

	payload, err := json.Marshal(result)
	if err != nil {
		return errorContent(fmt.Sprintf("无法序列化结果: %v", err))
	}
	return string(payload)
}

func errorContent(message string) string {
	payload, _ := json.Marshal(map[string]string{"error": message})
	return string(payload)
}
