package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	appctx "pulseboard/internal/core/context"
)

type stubValidator struct {
	user *appctx.UserContext
	err  error
}

func (s *stubValidator) ValidateToken(string) (*appctx.UserContext, error) {
	return s.user, s.err
}

func authTestRouter(v JWTValidator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(ErrorHandler())
	router.Use(Auth(v))
	router.GET("/me", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": appctx.GetUserID(c.Request.Context())})
	})
	return router
}

func TestAuthValidToken(t *testing.T) {
	router := authTestRouter(&stubValidator{user: &appctx.UserContext{UserID: "user-42"}})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-42")
}

func TestAuthMissingHeader(t *testing.T) {
	router := authTestRouter(&stubValidator{user: &appctx.UserContext{UserID: "user-42"}})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMalformedHeader(t *testing.T) {
	router := authTestRouter(&stubValidator{user: &appctx.UserContext{UserID: "user-42"}})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Token abc")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthInvalidToken(t *testing.T) {
	router := authTestRouter(&stubValidator{err: errors.New("expired")})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func roleTestRouter(v JWTValidator, required ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(ErrorHandler())
	router.Use(Auth(v))
	router.GET("/reports", RequireRole(required...), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return router
}

func TestRequireRoleAllowed(t *testing.T) {
	router := roleTestRouter(&stubValidator{
		user: &appctx.UserContext{UserID: "user-42", Roles: []string{"dashboard:viewer"}},
	}, "dashboard:viewer")

	req := httptest.NewRequest(http.MethodGet, "/reports", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRoleAnyOfSeveral(t *testing.T) {
	router := roleTestRouter(&stubValidator{
		user: &appctx.UserContext{UserID: "user-42", Roles: []string{"hr:manager"}},
	}, "dashboard:viewer", "hr:manager")

	req := httptest.NewRequest(http.MethodGet, "/reports", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRoleForbidden(t *testing.T) {
	router := roleTestRouter(&stubValidator{
		user: &appctx.UserContext{UserID: "user-42", Roles: []string{"warehouse:clerk"}},
	}, "dashboard:viewer")

	req := httptest.NewRequest(http.MethodGet, "/reports", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "FORBIDDEN")
	assert.Contains(t, w.Body.String(), "dashboard:viewer")
}

func TestRequireRoleWithoutUser(t *testing.T) {
	// RequireRole placed before Auth populated the context.
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(ErrorHandler())
	router.GET("/reports", RequireRole("dashboard:viewer"), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/reports", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
