package shipquote

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/areed15ev/shipping-calculator/internal/business"
	"github.com/areed15ev/shipping-calculator/internal/framework"
	"github.com/areed15ev/shipping-calculator/internal/jobs/common"
	"github.com/areed15ev/shipping-calculator/internal/model"
	"github.com/areed15ev/shipping-calculator/pkg/errorutil"
)

// QuoteHandler 批量报价 Handler
type QuoteHandler struct {
	ctx     context.Context
	meta    *common.Meta
	deps    *common.HandlerDeps
	jobData *model.BatchQuoteBusinessData
}

// NewQuoteHandler 创建批量报价 Handler
// 解析标准化 Job 消息中的业务数据
func NewQuoteHandler(ctx context.Context, meta *common.Meta, payload interface{}, deps *common.HandlerDeps) (common.HandlerServ, error) {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal payload failed: %w", err)
	}

	var bizData model.BatchQuoteBusinessData
	if err := json.Unmarshal(payloadBytes, &bizData); err != nil {
		return nil, fmt.Errorf("unmarshal business data failed: %w", err)
	}

	// 批次 ID 缺省时回落到消息的业务 ID
	if bizData.BatchID == "" {
		bizData.BatchID = meta.ID
	}
	if bizData.BatchID == "" {
		return nil, fmt.Errorf("batch_id is required")
	}
	if len(bizData.Shipments) == 0 {
		return nil, fmt.Errorf("shipments cannot be empty")
	}

	return &QuoteHandler{
		ctx:     ctx,
		meta:    meta,
		deps:    deps,
		jobData: &bizData,
	}, nil
}

// GetProcess 处理批量报价请求
func (h *QuoteHandler) GetProcess() *common.Response {
	result := common.NewBatchResult()

	processFuncs := []framework.ProcessorFunc{
		h.preCheck,
		h.process,
	}
	preProcessor := framework.NewPreProcessor(processFuncs)
	err := preProcessor.Run(h.ctx)

	resp := &common.Response{}
	resp.WrapResponse(result, h.meta, err)
	if err == nil {
		result.Data = map[string]interface{}{
			"batch_id":       h.jobData.BatchID,
			"shipment_count": len(h.jobData.Shipments),
		}
	}

	return resp
}

// preCheck 依赖检查
// 装配缺失属于部署问题，重投无意义
func (h *QuoteHandler) preCheck(ctx context.Context) error {
	if h.deps == nil || h.deps.Engine == nil || h.deps.Publisher == nil {
		return errorutil.NonRetriable("handler dependencies not initialized")
	}
	if h.deps.CallbackQueue == "" {
		return errorutil.NonRetriable("callback queue not configured")
	}
	return nil
}

// process 业务处理逻辑
func (h *QuoteHandler) process(ctx context.Context) error {
	svc := business.NewBatchQuoteService(h.deps.Engine, h.deps.Publisher, h.deps.CallbackQueue)
	return svc.ExecuteBatch(ctx, h.meta.RequestID, h.jobData)
}
