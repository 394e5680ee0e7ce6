package server

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/nmeilick/juration/common"
)

const (
	// RequestIDHeader is the header key for request ID
	RequestIDHeader = "X-Request-ID"

	requestIDKey = "requestID"
)

// RequestIDMiddleware adds a unique request ID to each request
func (s *Server) RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.New().String()
		c.Request.Header.Set(RequestIDHeader, requestID)

		// Set the request ID in the context for handlers to use
		c.Set(requestIDKey, requestID)
		c.Writer.Header().Set(RequestIDHeader, requestID)

		// Add Server header with app name and version unless disabled
		if !s.Config.Listen.DisableServerHeader {
			c.Writer.Header().Set("Server", fmt.Sprintf("%s/%s", common.AppName, common.Version))
		}

		c.Next()
	}
}

// NoCacheMiddleware keeps conversion results out of shared caches
func NoCacheMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Cache-Control", "no-store, max-age=0")
		c.Writer.Header().Set("X-Content-Type-Options", "nosniff")
		c.Next()
	}
}
