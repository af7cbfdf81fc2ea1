package http

import (
	"encoding/json"
	"fmt"

	"github.com/gin-gonic/gin"

	"daily-plan-assistant/pkg/response"
)

// Send godoc
// @Summary     Send a chat message
// @Description Forwards one user message to the completion API with the conversation history as context and returns the full reply.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body sendReq true "User message"
// @Success     200 {object} sendResp
// @Failure     400 {object} response.Resp "Empty message"
// @Failure     502 {object} response.Resp "Upstream completion failed"
// @Router      /api/v1/chat [POST]
func (h *handler) Send(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSendReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Send(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Send: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newSendResp(output))
}

// Stream godoc
// @Summary     Stream a chat reply
// @Description Forwards one user message and streams the reply as server-sent events. Each event is a JSON object with a delta field; the stream ends with a [DONE] sentinel.
// @Tags        Chat
// @Accept      json
// @Produce     text/event-stream
// @Param       body body sendReq true "User message"
// @Success     200 {string} string "SSE stream"
// @Failure     400 {object} response.Resp "Empty message"
// @Router      /api/v1/chat/stream [POST]
func (h *handler) Stream(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSendReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	_, err = h.uc.Stream(ctx, req.toStreamInput(), func(chunk string) error {
		return h.writeEvent(c, streamDeltaEvent{Delta: chunk})
	})
	if err != nil {
		h.l.Errorf(ctx, "uc.Stream: %v", err)
		// Headers are already out, so the failure rides the stream itself.
		h.writeEvent(c, streamErrorEvent{Error: err.Error()})
	}

	fmt.Fprint(c.Writer, "data: [DONE]\n\n")
	c.Writer.Flush()
}

// History godoc
// @Summary     Read the conversation history
// @Description Pages backwards over persisted user and assistant turns. The before cursor from next_before continues to the next older page.
// @Tags        Chat
// @Produce     json
// @Param       limit  query int false "Page size (default 50)"
// @Param       before query int false "Exclusive upper bound from a previous page"
// @Success     200 {object} historyResp
// @Router      /api/v1/chat/history [GET]
func (h *handler) History(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processHistoryReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.History(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.History: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newHistoryResp(output))
}

// writeEvent marshals one SSE data event and flushes it immediately so
// deltas reach the client as they arrive.
func (h *handler) writeEvent(c *gin.Context, event any) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(c.Writer, "data: %s\n\n", payload); err != nil {
		return err
	}
	c.Writer.Flush()
	return nil
}
