package middleware

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Recovery converts a panic into a logged error and hands the response to
// onPanic, which is expected to write the error envelope.
func Recovery(log *zap.Logger, onPanic gin.HandlerFunc) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered any) {
		log.Error("panic recovered",
			zap.Any("panic", recovered),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Stack("stack"),
		)
		onPanic(c)
	})
}
