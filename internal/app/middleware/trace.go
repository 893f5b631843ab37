package middleware

import (
	"time"

	"supportapi/internal/pkg/logger"

	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const TraceIDHeader = "X-Trace-Id"

// AttachTraceID puts a trace id on the request context so every log
// line emitted while serving the request can be correlated. An incoming
// header wins over a fresh id.
func AttachTraceID() gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := c.GetHeader(TraceIDHeader)
		if traceID == "" {
			traceID = uuid.New().String()
		}

		ctx := logger.WithTraceID(c.Request.Context(), traceID)
		c.Request = c.Request.WithContext(ctx)
		c.Writer.Header().Set(TraceIDHeader, traceID)

		start := time.Now()
		c.Next()

		logger.CtxInfo(ctx, "Request served",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("latency", time.Since(start)),
		)
	}
}
