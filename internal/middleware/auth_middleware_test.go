package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ncc-portal/backend/internal/app/models"
	"github.com/ncc-portal/backend/internal/pkg/auth"
)

func newTestRouter(t *testing.T) (*gin.Engine, *auth.JWTService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExpiry: time.Hour,
		TokenIssuer: "test",
	})
	m := NewAuthMiddleware(jwtService)

	router := gin.New()
	protected := router.Group("/protected")
	protected.Use(m.JWTAuth())
	protected.GET("", func(c *gin.Context) {
		identity, _ := CurrentIdentity(c)
		c.JSON(http.StatusOK, gin.H{"email": identity.Email, "role": string(identity.Role)})
	})

	admin := router.Group("/admin")
	admin.Use(m.JWTAuth(), m.AdminRequired())
	admin.GET("", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return router, jwtService
}

func tokenFor(t *testing.T, jwtService *auth.JWTService, id int64, email string, role models.Role) string {
	t.Helper()
	token, err := jwtService.GenerateToken(&models.User{ID: id, Email: email, Role: role})
	require.NoError(t, err)
	return token
}

func TestJWTAuthBearerHeader(t *testing.T) {
	router, jwtService := newTestRouter(t)
	token := tokenFor(t, jwtService, 1, "student@example.com", models.RoleStudent)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "student@example.com")
}

func TestJWTAuthCookieFallback(t *testing.T) {
	router, jwtService := newTestRouter(t)
	token := tokenFor(t, jwtService, 1, "student@example.com", models.RoleStudent)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: AuthCookieName, Value: token})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestJWTAuthHeaderWinsOverCookie(t *testing.T) {
	router, jwtService := newTestRouter(t)
	headerToken := tokenFor(t, jwtService, 1, "header@example.com", models.RoleStudent)
	cookieToken := tokenFor(t, jwtService, 2, "cookie@example.com", models.RoleStudent)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+headerToken)
	req.AddCookie(&http.Cookie{Name: AuthCookieName, Value: cookieToken})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "header@example.com")
}

func TestJWTAuthRejectsUniformly(t *testing.T) {
	router, _ := newTestRouter(t)

	tests := []struct {
		name    string
		prepare func(*http.Request)
	}{
		{name: "no credentials", prepare: func(*http.Request) {}},
		{name: "malformed header", prepare: func(r *http.Request) { r.Header.Set("Authorization", "Token abc") }},
		{name: "garbage token", prepare: func(r *http.Request) { r.Header.Set("Authorization", "Bearer nope") }},
		{name: "garbage cookie", prepare: func(r *http.Request) {
			r.AddCookie(&http.Cookie{Name: AuthCookieName, Value: "nope"})
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			tt.prepare(req)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.JSONEq(t, `{"error":"Unauthorized"}`, rec.Body.String())
		})
	}
}

func TestAdminRequired(t *testing.T) {
	router, jwtService := newTestRouter(t)

	adminToken := tokenFor(t, jwtService, 1, "admin@ncc.edu", models.RoleAdmin)
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	// Students get the same 401 as unauthenticated callers
	studentToken := tokenFor(t, jwtService, 2, "student@example.com", models.RoleStudent)
	req = httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+studentToken)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Unauthorized"}`, rec.Body.String())
}
