package api

import (
	"github.com/gin-gonic/gin"

	"github.com/PaulaAdelKamal/samsung-smartthings-mcp/pkg/api/handlers"
	"github.com/PaulaAdelKamal/samsung-smartthings-mcp/pkg/gateway"
)

// Router holds the Gin engine and dependencies
type Router struct {
	engine     *gin.Engine
	controller gateway.Controller
	audit      handlers.AuditReader
}

// NewRouter creates a new API router. audit may be nil, in which case the
// audit endpoint is not registered.
func NewRouter(controller gateway.Controller, audit handlers.AuditReader) *Router {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()
	SetupMiddleware(engine)

	router := &Router{
		engine:     engine,
		controller: controller,
		audit:      audit,
	}

	router.setupRoutes()

	return router
}

// setupRoutes configures all API routes
func (r *Router) setupRoutes() {
	// Health check at root
	healthHandler := handlers.NewHealthHandler()
	r.engine.GET("/health", healthHandler.Health)

	// API v1 routes
	v1 := r.engine.Group("/api/v1")
	{
		v1.GET("/health", healthHandler.Health)

		devicesHandler := handlers.NewDevicesHandler(r.controller)
		controlHandler := handlers.NewControlHandler(r.controller)
		devices := v1.Group("/devices")
		{
			devices.GET("", devicesHandler.ListDevices)
			devices.GET("/tvs", devicesHandler.ListTVDevices)
			devices.GET("/:id", devicesHandler.GetDevice)
			devices.GET("/:id/status", devicesHandler.GetStatus)

			devices.POST("/:id/power", controlHandler.SetPower)
			devices.POST("/:id/volume", controlHandler.SetVolume)
			devices.POST("/:id/mute", controlHandler.SetMute)
			devices.POST("/:id/channel", controlHandler.SetChannel)
			devices.POST("/:id/input", controlHandler.SetInput)
		}

		if r.audit != nil {
			auditHandler := handlers.NewAuditHandler(r.audit)
			v1.GET("/audit", auditHandler.RecentCommands)
		}
	}
}

// Engine exposes the underlying Gin engine, mainly for tests.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
