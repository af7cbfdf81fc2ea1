package http

import (
	"github.com/gin-gonic/gin"
)

// processCreateReq binds the create day request body. An empty body means
// force=false.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if c.Request.ContentLength == 0 {
		return req, nil
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processReadReq binds the read day query parameters.
func (h *handler) processReadReq(c *gin.Context) (readReq, error) {
	var req readReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processSetStatusReq binds the status update request body.
func (h *handler) processSetStatusReq(c *gin.Context) (setStatusReq, error) {
	var req setStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processAddTaskReq binds the add task request body.
func (h *handler) processAddTaskReq(c *gin.Context) (addTaskReq, error) {
	var req addTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processAppendNoteReq binds the append note request body.
func (h *handler) processAppendNoteReq(c *gin.Context) (appendNoteReq, error) {
	var req appendNoteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processRolloverReq binds the rollover request body; the body is optional.
func (h *handler) processRolloverReq(c *gin.Context) (rolloverReq, error) {
	var req rolloverReq
	if c.Request.ContentLength == 0 {
		return req, nil
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
