package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the chat endpoints on the given router group.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	rg.POST("", h.Send)
	rg.POST("/stream", h.Stream)
	rg.GET("/history", h.History)
}
