package restapi

import (
	"net/http"
	"time"

	"wallet_intel/internal/domain/entity"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const addressParam = "address"

// ZapLoggerMiddleware logs one line per request once the handler chain finished.
func ZapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		switch status := c.Writer.Status(); {
		case status >= http.StatusInternalServerError:
			logger.Error("Request failed", fields...)
		case status >= http.StatusBadRequest:
			logger.Warn("Request rejected", fields...)
		default:
			logger.Info("Request served", fields...)
		}
	}
}

// RequireStacksAddress rejects requests whose :address does not start with SP or SM.
func RequireStacksAddress() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !entity.HasStacksPrefix(c.Param(addressParam)) {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid Stacks address"})
			return
		}
		c.Next()
	}
}
