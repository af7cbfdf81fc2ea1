package http

import (
	"github.com/gin-gonic/gin"

	"daily-plan-assistant/internal/plan"
	"daily-plan-assistant/pkg/log"
)

// Handler is the public interface for the plan HTTP delivery layer.
type Handler interface {
	Today(c *gin.Context)
	Create(c *gin.Context)
	Read(c *gin.Context)
	SetStatus(c *gin.Context)
	AddTask(c *gin.Context)
	AppendNote(c *gin.Context)
	Rollover(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc plan.UseCase
}

// New creates a new HTTP handler for the plan domain.
func New(l log.Logger, uc plan.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
