package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func TestRequestIDGenerated(t *testing.T) {
	engine := gin.New()
	engine.Use(RequestID())

	var fromCtx string
	engine.GET("/ping", func(c *gin.Context) {
		fromCtx = RequestIDFromContext(c.Request.Context())
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.NotEmpty(t, fromCtx)
	assert.Equal(t, fromCtx, w.Header().Get(HeaderXRequestID))
}

func TestRequestIDHonorsCallerHeader(t *testing.T) {
	engine := gin.New()
	engine.Use(RequestID())

	var fromCtx, fromGin string
	engine.GET("/ping", func(c *gin.Context) {
		fromCtx = RequestIDFromContext(c.Request.Context())
		fromGin = c.GetString(ContextRequestID)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(HeaderXRequestID, "caller-supplied-id")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, "caller-supplied-id", fromCtx)
	assert.Equal(t, "caller-supplied-id", fromGin)
	assert.Equal(t, "caller-supplied-id", w.Header().Get(HeaderXRequestID))
}

func TestRequestIDFromContextMissing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)

	assert.Empty(t, RequestIDFromContext(req.Context()))
}
