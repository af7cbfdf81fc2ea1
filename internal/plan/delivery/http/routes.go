package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	rg.GET("/today", h.Today)
	rg.POST("/days", h.Create)
	rg.GET("/days", h.Read)
	rg.PUT("/tasks/status", h.SetStatus)
	rg.POST("/tasks", h.AddTask)
	rg.POST("/notes", h.AppendNote)
	rg.POST("/rollover", h.Rollover)
}
