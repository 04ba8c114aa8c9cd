package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/interfaces/http/routes"
)

// SetupRoutes installs the middleware stack and mounts the API surface
// under /api.
func (c *Container) SetupRoutes() {
	c.engine.Use(middleware.Logger(c.log))
	c.engine.Use(middleware.Recovery())
	c.engine.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))

	c.engine.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := c.engine.Group("/api")
	api.Use(c.authMiddleware.ResolvePrincipal())

	routes.SetupAuthRoutes(api, &routes.AuthRouteConfig{
		AuthHandler: c.authHandler,
		RateLimiter: c.rateLimiter,
	})
	routes.SetupTicketRoutes(api, &routes.TicketRouteConfig{
		TicketHandler: c.ticketHandler,
	})
	routes.SetupUserRoutes(api, &routes.UserRouteConfig{
		UserHandler: c.userHandler,
	})
	routes.SetupNotificationRoutes(api, &routes.NotificationRouteConfig{
		NotificationHandler: c.notificationHandler,
	})
	routes.SetupKnowledgeRoutes(api, &routes.KnowledgeRouteConfig{
		KnowledgeHandler: c.knowledgeHandler,
	})
}

// Engine exposes the underlying Gin engine for the HTTP server and tests.
func (c *Container) Engine() *gin.Engine {
	return c.engine
}
