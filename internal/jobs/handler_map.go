package jobs

import (
	"github.com/areed15ev/shipping-calculator/internal/jobs/common"
	"github.com/areed15ev/shipping-calculator/internal/jobs/handlers/shipquote"
	"github.com/areed15ev/shipping-calculator/internal/model"
)

// HandlerMap 路由表（ActionType → Handler 映射）
var HandlerMap = map[string]common.HandlerServProc{
	model.ActionTypeShipmentQuote: shipquote.NewQuoteHandler,
}
