package quote

import (
	"github.com/areed15ev/shipping-calculator/internal/app/domains/services/svbatch"
	"github.com/areed15ev/shipping-calculator/internal/app/domains/services/svquote"
	"github.com/areed15ev/shipping-calculator/pkg/logger"
)

// QuoteHandler 报价 HTTP 处理器
type QuoteHandler struct {
	quoteService *svquote.QuoteService
	batchService *svbatch.BatchService
	logger       logger.Logger
}

// NewQuoteHandler 创建报价处理器实例
func NewQuoteHandler(quoteService *svquote.QuoteService, batchService *svbatch.BatchService, log logger.Logger) *QuoteHandler {
	return &QuoteHandler{
		quoteService: quoteService,
		batchService: batchService,
		logger:       log,
	}
}
