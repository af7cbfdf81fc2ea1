package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	agentHTTP "daily-plan-assistant/internal/agent/delivery/http"
	chatHTTP "daily-plan-assistant/internal/chat/delivery/http"
	"daily-plan-assistant/internal/middleware"
	planHTTP "daily-plan-assistant/internal/plan/delivery/http"
	"daily-plan-assistant/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	mw middleware.Middleware

	// Plan domain
	planHandler planHTTP.Handler

	// Chat domain; nil when no API key is configured
	chatHandler         chatHTTP.Handler
	chatRateLimitPerMin int

	// Agent tool surface
	agentHandler agentHTTP.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	Middleware middleware.Middleware

	PlanHandler planHTTP.Handler

	ChatHandler         chatHTTP.Handler
	ChatRateLimitPerMin int

	AgentHandler agentHTTP.Handler
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                   logger,
		gin:                 gin.Default(),
		port:                cfg.Port,
		mode:                cfg.Mode,
		environment:         cfg.Environment,
		mw:                  cfg.Middleware,
		planHandler:         cfg.PlanHandler,
		chatHandler:         cfg.ChatHandler,
		chatRateLimitPerMin: cfg.ChatRateLimitPerMin,
		agentHandler:        cfg.AgentHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.planHandler == nil {
		return errors.New("plan handler is required")
	}
	return nil
}
