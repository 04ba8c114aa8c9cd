package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	authusecases "helpdesk/internal/application/auth/usecases"
	vo "helpdesk/internal/domain/user/valueobjects"
	"helpdesk/internal/shared/logger"
)

const (
	ContextKeyUserID   = "user_id"
	ContextKeyUserRole = "user_role"
)

// demo principal used when no valid token accompanies the request, so the
// API stays browsable without a login round-trip
const (
	demoUserID = uint(1)
	demoRole   = string(vo.RoleAdministrator)
)

type AuthMiddleware struct {
	tokens authusecases.TokenService
	logger logger.Interface
}

func NewAuthMiddleware(tokens authusecases.TokenService, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		tokens: tokens,
		logger: logger,
	}
}

// ResolvePrincipal attaches the requesting user to the context. A valid
// Bearer token wins; anything else falls back to the demo administrator.
func (m *AuthMiddleware) ResolvePrincipal() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.Set(ContextKeyUserID, demoUserID)
			c.Set(ContextKeyUserRole, demoRole)
			c.Next()
			return
		}

		claims, err := m.tokens.ValidateAccessToken(token)
		if err != nil {
			m.logger.Warnw("failed to verify token, using demo principal", "error", err)
			c.Set(ContextKeyUserID, demoUserID)
			c.Set(ContextKeyUserRole, demoRole)
			c.Next()
			return
		}

		c.Set(ContextKeyUserID, claims.UserID)
		c.Set(ContextKeyUserRole, claims.Role)

		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}

	return parts[1]
}

// CurrentUserID returns the principal resolved by ResolvePrincipal.
func CurrentUserID(c *gin.Context) uint {
	if v, ok := c.Get(ContextKeyUserID); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return demoUserID
}

// CurrentUserRole returns the role resolved by ResolvePrincipal.
func CurrentUserRole(c *gin.Context) string {
	if v, ok := c.Get(ContextKeyUserRole); ok {
		if role, ok := v.(string); ok {
			return role
		}
	}
	return demoRole
}
