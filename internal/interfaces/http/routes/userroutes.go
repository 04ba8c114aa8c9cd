package routes

import (
	"github.com/gin-gonic/gin"

	"helpdesk/internal/interfaces/http/handlers"
)

type UserRouteConfig struct {
	UserHandler *handlers.UserHandler
}

func SetupUserRoutes(api *gin.RouterGroup, config *UserRouteConfig) {
	// Current principal, used by the frontend session bootstrap.
	api.GET("/user", config.UserHandler.GetCurrentUser)

	users := api.Group("/users")
	{
		users.POST("", config.UserHandler.CreateUser)
		users.GET("", config.UserHandler.ListUsers)
		users.GET("/:id", config.UserHandler.GetUser)
		users.PUT("/:id", config.UserHandler.UpdateUser)
		users.DELETE("/:id", config.UserHandler.DeleteUser)
	}
}
