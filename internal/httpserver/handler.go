package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	agentHTTP "daily-plan-assistant/internal/agent/delivery/http"
	chatHTTP "daily-plan-assistant/internal/chat/delivery/http"
	planHTTP "daily-plan-assistant/internal/plan/delivery/http"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(srv.mw.RequestID())
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1")

	planHTTP.RegisterRoutes(api.Group("/plan"), srv.planHandler)
	srv.l.Infof(ctx, "Plan domain registered at /api/v1/plan")

	if srv.chatHandler != nil {
		chat := api.Group("/chat")
		chat.Use(srv.mw.RateLimit(srv.chatRateLimitPerMin))
		chatHTTP.RegisterRoutes(chat, srv.chatHandler)
		srv.l.Infof(ctx, "Chat domain registered at /api/v1/chat")
	} else {
		srv.l.Warn(ctx, "Chat handler not configured, skipping chat routes")
	}

	if srv.agentHandler != nil {
		agentHTTP.RegisterRoutes(api.Group("/tools"), srv.agentHandler)
		agentHTTP.RegisterCompletionRoutes(srv.gin.Group("/v1"), srv.agentHandler)
		srv.l.Infof(ctx, "Agent tool surface registered at /api/v1/tools and /v1/chat/completions")
	} else {
		srv.l.Warn(ctx, "Agent handler not configured, skipping tool routes")
	}

	return nil
}
