package quote

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/areed15ev/shipping-calculator/internal/app/domains/apimodel/request"
	"github.com/areed15ev/shipping-calculator/internal/app/domains/apimodel/response"
	quotecore "github.com/areed15ev/shipping-calculator/internal/quote"
	"github.com/areed15ev/shipping-calculator/pkg/ginx"
)

// Create 报价对比接口
// POST /api/v1/quotes
func (h *QuoteHandler) Create(c *gin.Context) {
	var req request.CreateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	in, err := req.ToQuoteInput(h.quoteService.Engine())
	if err != nil {
		ginx.BadRequest(c, err.Error())
		return
	}

	data, err := h.quoteService.CreateQuote(c.Request.Context(), in, req.FxRate)
	if err != nil {
		if errors.Is(err, quotecore.ErrInvalidPairCount) {
			ginx.BadRequest(c, err.Error())
			return
		}
		h.logger.Errorf(c.Request.Context(), "Create quote failed: %v", err)
		ginx.InternalError(c, err.Error())
		return
	}

	ginx.Success(c, response.FromQuoteResult(data))
}
