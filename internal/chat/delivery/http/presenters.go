package http

import (
	"daily-plan-assistant/internal/chat"
	"daily-plan-assistant/internal/model"
)

// --- Requests ---

type sendReq struct {
	Message string `json:"message" binding:"required"`
}

func (req sendReq) toInput() chat.SendInput {
	return chat.SendInput{Message: req.Message}
}

func (req sendReq) toStreamInput() chat.StreamInput {
	return chat.StreamInput{Message: req.Message}
}

type historyReq struct {
	Limit  int  `form:"limit"`
	Before *int `form:"before"`
}

const defaultHistoryLimit = 50

func (req historyReq) toInput() chat.HistoryInput {
	limit := req.Limit
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	return chat.HistoryInput{Limit: limit, Before: req.Before}
}

// --- Responses ---

type usageResp struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

type sendResp struct {
	Reply string    `json:"reply"`
	Usage usageResp `json:"usage"`
}

func (h *handler) newSendResp(o chat.SendOutput) sendResp {
	return sendResp{
		Reply: o.Reply,
		Usage: usageResp{
			PromptTokens:     o.Usage.PromptTokens,
			CompletionTokens: o.Usage.CompletionTokens,
			TotalTokens:      o.Usage.TotalTokens,
		},
	}
}

type historyItemResp struct {
	Timestamp string `json:"timestamp"`
	Role      string `json:"role"`
	Content   string `json:"content"`
}

type historyResp struct {
	History    []historyItemResp `json:"history"`
	NextBefore *int              `json:"next_before"`
	Total      int               `json:"total"`
}

func (h *handler) newHistoryResp(o chat.HistoryOutput) historyResp {
	items := make([]historyItemResp, 0, len(o.History))
	for _, m := range o.History {
		items = append(items, newHistoryItemResp(m))
	}
	return historyResp{
		History:    items,
		NextBefore: o.NextBefore,
		Total:      o.Total,
	}
}

func newHistoryItemResp(m model.ChatMessage) historyItemResp {
	return historyItemResp{
		Timestamp: m.Timestamp,
		Role:      m.Role,
		Content:   m.Content,
	}
}

// --- SSE events ---

type streamDeltaEvent struct {
	Delta string `json:"delta"`
}

type streamErrorEvent struct {
	Error string `json:"error"`
}
