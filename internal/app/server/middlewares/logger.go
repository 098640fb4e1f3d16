package middlewares

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/areed15ev/shipping-calculator/pkg/logger"
)

// Logger 请求日志中间件
// 为每个请求生成 trace_id 并注入 Request Context，
// 后续服务与任务发布沿用同一 trace_id 做全链路追踪
func Logger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := c.GetHeader("X-Request-ID")
		if traceID == "" {
			traceID = uuid.New().String()
		}

		ctx := context.WithValue(c.Request.Context(), "trace_id", traceID)
		c.Request = c.Request.WithContext(ctx)
		c.Header("X-Request-ID", traceID)

		start := time.Now()
		c.Next()

		log.Infof(ctx, "%s %s status=%d cost=%s client=%s",
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			time.Since(start),
			c.ClientIP(),
		)
	}
}
