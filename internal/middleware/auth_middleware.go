package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ncc-portal/backend/internal/app/models"
	"github.com/ncc-portal/backend/internal/app/models/dto"
	"github.com/ncc-portal/backend/internal/pkg/auth"
	"github.com/ncc-portal/backend/internal/pkg/logger"
)

// AuthCookieName is the cookie checked when no Authorization header is present.
const AuthCookieName = "auth-token"

const identityKey = "identity"

// Identity is the verified caller identity threaded through the request
// context. Handlers read it via CurrentIdentity instead of re-parsing tokens.
type Identity struct {
	UserID int64
	Email  string
	Role   models.Role
}

// IsAdmin reports whether the caller holds the admin role.
func (id Identity) IsAdmin() bool {
	return id.Role == models.RoleAdmin
}

// CurrentIdentity returns the identity set by JWTAuth, if any.
func CurrentIdentity(c *gin.Context) (Identity, bool) {
	v, exists := c.Get(identityKey)
	if !exists {
		return Identity{}, false
	}
	id, ok := v.(Identity)
	return id, ok
}

// AuthMiddleware performs session extraction and role checks
type AuthMiddleware struct {
	jwtService *auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
	}
}

// extractToken locates a bearer token: Authorization header first, then the
// auth cookie. First match wins; empty string means no token present.
func extractToken(c *gin.Context) string {
	if header := c.GetHeader("Authorization"); header != "" {
		if token, ok := auth.ExtractBearerToken(header); ok {
			return token
		}
	}
	if cookie, err := c.Cookie(AuthCookieName); err == nil && cookie != "" {
		return cookie
	}
	return ""
}

// JWTAuth validates the bearer token and stores the caller identity in the
// context. Every failure yields the same 401 body; the reason is only logged.
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			abortUnauthorized(c)
			return
		}

		claims, err := m.jwtService.ValidateToken(token)
		if err != nil {
			logger.Debug().Err(err).Str("path", c.Request.URL.Path).Msg("Rejected token")
			abortUnauthorized(c)
			return
		}

		c.Set(identityKey, Identity{
			UserID: claims.UserID,
			Email:  claims.Email,
			Role:   models.Role(claims.Role),
		})

		c.Next()
	}
}

// AdminRequired rejects any caller whose verified role is not admin.
// Runs after JWTAuth. Non-admins get the same 401 as unauthenticated callers.
func (m *AuthMiddleware) AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := CurrentIdentity(c)
		if !ok || !identity.IsAdmin() {
			abortUnauthorized(c)
			return
		}
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse("Unauthorized"))
}
