package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/areed15ev/shipping-calculator/pkg/ginx"
	"github.com/areed15ev/shipping-calculator/pkg/logger"
)

// ErrorHandler 统一错误处理中间件
// 捕获 panic 与 handler 挂到 gin.Context 上的错误，统一转成响应包
func ErrorHandler(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Errorf(c.Request.Context(), "Panic recovered: %v", r)
				c.Abort()
				ginx.Error(c, http.StatusInternalServerError, "internal server error")
			}
		}()

		c.Next()

		if len(c.Errors) > 0 && !c.Writer.Written() {
			err := c.Errors.Last()
			log.Errorf(c.Request.Context(), "Request failed: %v", err)
			ginx.InternalError(c, err.Error())
		}
	}
}
