package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the tool catalog endpoints on the given group.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	rg.GET("", h.ListTools)
	rg.POST("/execute", h.ExecuteTool)
}

// RegisterCompletionRoutes mounts the OpenAI-compatible completion
// endpoint; it lives under /v1, outside the service's own API prefix,
// so off-the-shelf OpenAI clients can point at it directly.
func RegisterCompletionRoutes(rg *gin.RouterGroup, h Handler) {
	rg.POST("/chat/completions", h.ChatCompletions)
}
