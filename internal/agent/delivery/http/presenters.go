package http

// --- Tool catalog ---

type listToolsResp struct {
	Tools []map[string]interface{} `json:"tools"`
	Count int                      `json:"count"`
}

type executeReq struct {
	Name      string                 `json:"name" binding:"required"`
	Arguments map[string]interface{} `json:"arguments"`
}

type executeResp struct {
	Name   string      `json:"name"`
	Result interface{} `json:"result"`
}

// --- OpenAI-compatible completion surface ---

type completionReq struct {
	Model       string              `json:"model" binding:"required"`
	Messages    []completionMessage `json:"messages" binding:"required"`
	Tools       []interface{}       `json:"tools"`
	ToolChoice  string              `json:"tool_choice"`
	MaxTokens   int                 `json:"max_tokens"`
	Temperature float64             `json:"temperature"`
}

type completionMessage struct {
	Role      string     `json:"role"`
	Content   string     `json:"content"`
	ToolCalls []toolCall `json:"tool_calls,omitempty"`
}

type toolCall struct {
	ID       string           `json:"id"`
	Type     string           `json:"type"`
	Function toolCallFunction `json:"function"`
}

// toolCallFunction carries arguments as the raw JSON string OpenAI
// clients send, decoded only at execution time.
type toolCallFunction struct {
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

type completionResp struct {
	ID          string             `json:"id"`
	Object      string             `json:"object"`
	Created     int64              `json:"created"`
	Model       string             `json:"model"`
	Choices     []completionChoice `json:"choices"`
	Usage       completionUsage    `json:"usage"`
	ToolResults []toolResult       `json:"tool_results,omitempty"`
}

type completionChoice struct {
	Index        int               `json:"index"`
	Message      completionMessage `json:"message"`
	FinishReason string            `json:"finish_reason"`
}

type completionUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

type toolResult struct {
	ToolCallID string `json:"tool_call_id"`
	Role       string `json:"role"`
	Content    string `json:"content"`
}
