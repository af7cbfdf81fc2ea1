package http

import (
	"github.com/gin-gonic/gin"

	"daily-plan-assistant/internal/agent"
	"daily-plan-assistant/pkg/log"
)

// Handler is the public interface for the agent HTTP delivery layer.
type Handler interface {
	ListTools(c *gin.Context)
	ExecuteTool(c *gin.Context)
	ChatCompletions(c *gin.Context)
}

type handler struct {
	l        log.Logger
	registry *agent.Registry
}

// New creates a new HTTP handler for the agent tool surface.
func New(l log.Logger, registry *agent.Registry) *handler {
	return &handler{
		l:        l,
		registry: registry,
	}
}
