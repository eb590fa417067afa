package middleware

import (
	"restaurantapi/internal/pkg/metrics"
	"restaurantapi/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	ContextUserID = "user_id"
	ContextRole   = "role"
)

// reject stops the chain before any later handler runs.
func reject(c *gin.Context, gate string, status int, code, message string) {
	metrics.GateRejections.WithLabelValues(gate, code).Inc()
	zap.L().Warn("request rejected",
		zap.String("gate", gate),
		zap.String("code", code),
		zap.Int("status", status),
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.Int64("user_id", c.GetInt64(ContextUserID)),
		zap.String("request_id", requestID(c)),
	)
	response.Abort(c, status, code, message)
}
