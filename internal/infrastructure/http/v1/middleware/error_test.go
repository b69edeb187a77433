package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pulseboard/internal/core/apperror"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(ErrorHandler())
	return router
}

func TestErrorHandlerAppError(t *testing.T) {
	router := newTestRouter()
	router.GET("/boom", func(c *gin.Context) {
		_ = c.Error(apperror.NewInvalidDate("date_from", "01/15/2024"))
		c.Abort()
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, apperror.CodeInvalidDate, body["code"])

	details, ok := body["details"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "date_from", details["field"])
	assert.Equal(t, "01/15/2024", details["value"])
}

func TestErrorHandlerUnknownError(t *testing.T) {
	router := newTestRouter()
	router.GET("/boom", func(c *gin.Context) {
		_ = c.Error(plainError("sql: connection reset"))
		c.Abort()
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, apperror.CodeInternal, body["code"])
	// Internal details must never leak to the client
	assert.NotContains(t, w.Body.String(), "connection reset")
}

func TestErrorHandlerNoError(t *testing.T) {
	router := newTestRouter()
	router.GET("/ok", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

type plainError string

func (e plainError) Error() string { return string(e) }
