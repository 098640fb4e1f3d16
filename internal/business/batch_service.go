package business

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/areed15ev/shipping-calculator/internal/model"
	"github.com/areed15ev/shipping-calculator/internal/quote"
	"github.com/areed15ev/shipping-calculator/pkg/errorutil"
)

// CallbackPublisher 回调消息发布接口
type CallbackPublisher interface {
	Publish(queue string, data []byte, ttl, delay uint32) error
}

// BatchQuoteService 批量报价服务（仅负责报价计算，不涉及存储）
// 职责：逐票计算报价 → 汇总批次状态 → 发送回调到 callback 队列
type BatchQuoteService struct {
	engine        *quote.Engine
	publisher     CallbackPublisher
	callbackQueue string
}

// NewBatchQuoteService 创建批量报价服务实例
func NewBatchQuoteService(
	engine *quote.Engine,
	publisher CallbackPublisher,
	callbackQueue string,
) *BatchQuoteService {
	return &BatchQuoteService{
		engine:        engine,
		publisher:     publisher,
		callbackQueue: callbackQueue,
	}
}

// ExecuteBatch 执行批量报价并发送回调
// 单票失败不中断批次，失败信息记录在对应结果条目里；
// 返回 error 表示回调未能送达（可由队列重试，重算是幂等的）
func (s *BatchQuoteService) ExecuteBatch(ctx context.Context, requestID string, req *model.BatchQuoteBusinessData) error {
	results := make([]model.ShipmentQuoteResult, 0, len(req.Shipments))
	failed := 0

	for i := range req.Shipments {
		result := s.quoteShipment(&req.Shipments[i], req.FxRate)
		if result.Status == model.ShipmentStatusFailed {
			failed++
		}
		results = append(results, result)
	}

	callback := model.BatchQuoteCallback{
		RequestID:   requestID,
		BatchID:     req.BatchID,
		Results:     results,
		ProcessedAt: time.Now().Unix(),
	}

	switch {
	case len(results) == 0:
		callback.Status = model.CallbackStatusFailed
		callback.Error = "batch contains no shipments"
	case failed == 0:
		callback.Status = model.CallbackStatusSuccess
	case failed == len(results):
		callback.Status = model.CallbackStatusFailed
		callback.Error = fmt.Sprintf("all %d shipments failed", failed)
	default:
		callback.Status = model.CallbackStatusPartial
	}

	callbackJSON, err := json.Marshal(callback)
	if err != nil {
		return errorutil.NonRetriableWithDetails("marshal callback failed", err.Error())
	}

	// ttl=0 表示永不过期, delay=0 表示立即可用
	if err := s.publisher.Publish(s.callbackQueue, callbackJSON, 0, 0); err != nil {
		return errorutil.RetriableWithDetails("publish callback failed", err.Error())
	}

	return nil
}

// quoteShipment 单票货件报价
func (s *BatchQuoteService) quoteShipment(in *model.ShipmentInput, fxRate float64) model.ShipmentQuoteResult {
	result := model.ShipmentQuoteResult{Reference: in.Reference}

	mode, err := quote.ParseCartonMode(in.Carton.Mode)
	if err != nil {
		result.Status = model.ShipmentStatusFailed
		result.Error = err.Error()
		return result
	}

	carton := s.engine.ResolveCarton(mode, in.Carton.PresetPairs, quote.CartonDimensions{
		LengthCm: in.Carton.LengthCm,
		WidthCm:  in.Carton.WidthCm,
		HeightCm: in.Carton.HeightCm,
	})

	res, err := s.engine.Quote(quote.Input{
		PairCount:      in.PairCount,
		ActualWeightKg: in.ActualWeightKg,
		Carton:         carton,
	})
	if err != nil {
		result.Status = model.ShipmentStatusFailed
		result.Error = err.Error()
		return result
	}

	result.Status = model.ShipmentStatusQuoted
	result.Quote = model.QuoteResultFromEngine(res, fxRate)
	return result
}
