package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/arumaroma/storefront-backend/internal/config"
)

// Timeout bounds each request by the server write timeout so a slow
// upstream, usually the remote catalog fetch, cannot hold a worker
// past the deadline the client already gave up at.
func Timeout(cfg config.ServerConfig) gin.HandlerFunc {
	budget := cfg.WriteTimeout
	if budget <= 0 {
		budget = 30 * time.Second
	}

	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), budget)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)

		done := make(chan struct{})
		go func() {
			defer close(done)
			c.Next()
		}()

		select {
		case <-done:
		case <-ctx.Done():
			c.JSON(http.StatusRequestTimeout, gin.H{
				"error": "Request timeout",
			})
			c.Abort()
		}
	}
}
