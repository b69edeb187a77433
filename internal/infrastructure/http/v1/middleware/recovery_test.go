package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"pulseboard/internal/core/apperror"
)

func recoveryTestRouter(handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Recovery())
	router.Use(ErrorHandler())
	router.GET("/reports", handler)
	return router
}

func TestRecoveryRendersInternalError(t *testing.T) {
	router := recoveryTestRouter(func(c *gin.Context) {
		panic("nil dereference in aggregation")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/reports", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), apperror.CodeInternal)
	assert.Contains(t, w.Body.String(), "Internal server error")
}

func TestRecoveryDoesNotLeakPanicValue(t *testing.T) {
	router := recoveryTestRouter(func(c *gin.Context) {
		panic("secret connection string")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/reports", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "secret connection string")
}

func TestRecoveryPassesThroughWithoutPanic(t *testing.T) {
	router := recoveryTestRouter(func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/reports", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}
