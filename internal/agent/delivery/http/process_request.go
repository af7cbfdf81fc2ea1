package http

import (
	"github.com/gin-gonic/gin"
)

// processExecuteReq binds the tool execution request body.
func (h *handler) processExecuteReq(c *gin.Context) (executeReq, error) {
	var req executeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processCompletionReq binds an OpenAI-format chat completion request.
func (h *handler) processCompletionReq(c *gin.Context) (completionReq, error) {
	var req completionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
