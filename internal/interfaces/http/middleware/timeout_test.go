package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/arumaroma/storefront-backend/internal/config"
)

func timeoutRouter(cfg config.ServerConfig, handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Timeout(cfg))
	router.GET("/slow", handler)
	return router
}

func TestTimeoutPassesFastRequests(t *testing.T) {
	router := timeoutRouter(config.ServerConfig{WriteTimeout: time.Second}, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/slow", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestTimeoutAbortsSlowRequests(t *testing.T) {
	router := timeoutRouter(config.ServerConfig{WriteTimeout: 20 * time.Millisecond}, func(c *gin.Context) {
		select {
		case <-c.Request.Context().Done():
		case <-time.After(time.Second):
		}
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/slow", nil))
	assert.Equal(t, http.StatusRequestTimeout, rec.Code)
	assert.Contains(t, rec.Body.String(), "Request timeout")
}

func TestTimeoutZeroConfigFallsBack(t *testing.T) {
	router := timeoutRouter(config.ServerConfig{}, func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/slow", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
