package routes

import (
	"github.com/gin-gonic/gin"

	"helpdesk/internal/interfaces/http/handlers"
	"helpdesk/internal/interfaces/http/middleware"
)

type AuthRouteConfig struct {
	AuthHandler *handlers.AuthHandler
	RateLimiter *middleware.RateLimiter
}

func SetupAuthRoutes(api *gin.RouterGroup, config *AuthRouteConfig) {
	auth := api.Group("/auth")
	{
		auth.POST("/login", config.RateLimiter.Limit(), config.AuthHandler.Login)
		auth.POST("/signup", config.RateLimiter.Limit(), config.AuthHandler.Signup)
		auth.POST("/verify-email", config.AuthHandler.VerifyEmail)
		auth.POST("/forgot-password", config.RateLimiter.Limit(), config.AuthHandler.ForgotPassword)
		auth.POST("/verify-reset-code", config.AuthHandler.VerifyResetCode)
		auth.POST("/reset-password", config.AuthHandler.ResetPassword)
	}
}
