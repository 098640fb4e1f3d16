package routers

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/areed15ev/shipping-calculator/internal/app/server/handlers/quote"
	"github.com/areed15ev/shipping-calculator/internal/app/server/middlewares"
	"github.com/areed15ev/shipping-calculator/pkg/logger"
)

// SetupRoutes 配置所有路由，使用 Route Group 分类
func SetupRoutes(quoteHandler *quote.QuoteHandler, log logger.Logger) *gin.Engine {
	r := gin.New()

	r.Use(middlewares.CORS())
	r.Use(middlewares.Logger(log))
	r.Use(middlewares.ErrorHandler(log))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "apiserver",
			"message": "Service is running",
		})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/api/v1")
	{
		quotes := v1.Group("/quotes")
		{
			quotes.POST("", quoteHandler.Create)
			quotes.POST("/batch", quoteHandler.CreateBatch)
		}

		v1.GET("/carriers", quoteHandler.ListCarriers)
		v1.GET("/cartons", quoteHandler.ListCartons)
	}

	return r
}
