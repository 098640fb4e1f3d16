package quote

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/areed15ev/shipping-calculator/internal/app/domains/apimodel/request"
	"github.com/areed15ev/shipping-calculator/internal/app/domains/apimodel/response"
	"github.com/areed15ev/shipping-calculator/pkg/ginx"
)

// CreateBatch godoc
// @Summary      批量报价
// @Description  提交一批货件异步计算报价，worker 算完后推送结果到 Redis 频道
// @Description
// @Description  wait 参数（Smart Wait）：
// @Description  - wait>0：最多等待 wait 秒，等到结果直接返回 200
// @Description  - 未等到或未指定：返回 code=3001 与结果频道，调用方自行订阅
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        wait query int false "等待结果秒数"
// @Param        request body request.BatchQuoteRequest true "批量报价请求"
// @Success      200 {object} ginx.Response{data=response.BatchQuoteResponse} "报价完成"
// @Failure      400 {object} ginx.Response "参数错误"
// @Failure      500 {object} ginx.Response "服务器错误"
// @Router       /quotes/batch [post]
func (h *QuoteHandler) CreateBatch(c *gin.Context) {
	waitSeconds := 0
	if waitStr := c.Query("wait"); waitStr != "" {
		if w, err := strconv.Atoi(waitStr); err == nil && w > 0 {
			waitSeconds = w
		}
	}

	var req request.BatchQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	data := req.ToBusinessData(req.BatchID)
	outcome, err := h.batchService.SubmitBatch(c.Request.Context(), data, waitSeconds)
	if err != nil {
		h.logger.Errorf(c.Request.Context(), "Submit batch failed: %v", err)
		ginx.InternalError(c, err.Error())
		return
	}

	if outcome.Callback != nil {
		ginx.Success(c, response.FromBatchCallback(outcome.Callback))
		return
	}

	ginx.Processing(c, outcome.BatchID, outcome.ResultChannel)
}
