package http

import (
	"github.com/gin-gonic/gin"

	"daily-plan-assistant/pkg/response"
)

// Today godoc
// @Summary     Resolve today's plan file
// @Description Returns today's canonical plan file path and whether it exists. Never creates the file.
// @Tags        Plan
// @Produce     json
// @Success     200 {object} todayResp
// @Router      /api/v1/plan/today [GET]
func (h *handler) Today(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ResolveToday(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.ResolveToday: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newTodayResp(output))
}

// Create godoc
// @Summary     Create today's plan file
// @Description Creates today's file from the most recent same-month file, or the embedded template. No-op when the file exists unless force is set.
// @Tags        Plan
// @Accept      json
// @Produce     json
// @Param       body body createReq false "Creation options"
// @Success     200 {object} createResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/plan/days [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newCreateResp(output))
}

// Read godoc
// @Summary     Read a plan file as structured sections
// @Description Parses the target day file (today when path is omitted) into sections with their checklist tasks.
// @Tags        Plan
// @Produce     json
// @Param       path query string false "Explicit day file path"
// @Success     200 {object} readResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/plan/days [GET]
func (h *handler) Read(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processReadReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Read(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Read: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newReadResp(output))
}

// SetStatus godoc
// @Summary     Update a task's status
// @Description Finds the first task whose text matches exactly and rewrites its status mark.
// @Tags        Plan
// @Accept      json
// @Produce     json
// @Param       body body setStatusReq true "Task text and new status"
// @Success     200 {object} setStatusResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/plan/tasks/status [PUT]
func (h *handler) SetStatus(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSetStatusReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.SetTaskStatus(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.SetTaskStatus: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newSetStatusResp(output))
}

// AddTask godoc
// @Summary     Add a task to a section
// @Description Inserts a new checklist line after the last non-blank line of the first section matching the title prefix.
// @Tags        Plan
// @Accept      json
// @Produce     json
// @Param       body body addTaskReq true "Section prefix, task text, optional status"
// @Success     200 {object} addTaskResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/plan/tasks [POST]
func (h *handler) AddTask(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAddTaskReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.AddTask(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.AddTask: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newAddTaskResp(output))
}

// AppendNote godoc
// @Summary     Append a note line to a section
// @Description Inserts a plain bulleted line with no status mark, using the same insertion point as task insertion.
// @Tags        Plan
// @Accept      json
// @Produce     json
// @Param       body body appendNoteReq true "Section prefix and note line"
// @Success     200 {object} appendNoteResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/plan/notes [POST]
func (h *handler) AppendNote(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAppendNoteReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.AppendNote(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.AppendNote: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newAppendNoteResp(output))
}

// Rollover godoc
// @Summary     Roll incomplete tasks into tomorrow's file
// @Description Copies todo/partial/in_progress tasks into tomorrow's priority section as fresh todos. The source file is never mutated.
// @Tags        Plan
// @Accept      json
// @Produce     json
// @Param       body body rolloverReq false "Optional explicit source path"
// @Success     200 {object} rolloverResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/plan/rollover [POST]
func (h *handler) Rollover(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRolloverReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Rollover(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Rollover: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newRolloverResp(output))
}
