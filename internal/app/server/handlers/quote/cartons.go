package quote

import (
	"github.com/gin-gonic/gin"

	"github.com/areed15ev/shipping-calculator/internal/app/domains/apimodel/response"
	"github.com/areed15ev/shipping-calculator/pkg/ginx"
)

// ListCartons 预设箱型列表接口
// GET /api/v1/cartons
func (h *QuoteHandler) ListCartons(c *gin.Context) {
	ginx.Success(c, response.FromCartonPresets(h.quoteService.ListCartons()))
}
