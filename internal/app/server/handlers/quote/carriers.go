package quote

import (
	"github.com/gin-gonic/gin"

	"github.com/areed15ev/shipping-calculator/internal/app/domains/apimodel/response"
	"github.com/areed15ev/shipping-calculator/pkg/ginx"
)

// ListCarriers 承运商列表接口
// GET /api/v1/carriers
func (h *QuoteHandler) ListCarriers(c *gin.Context) {
	ginx.Success(c, response.FromCarrierSpecs(h.quoteService.ListCarriers()))
}
