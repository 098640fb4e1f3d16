package svbatch

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/areed15ev/shipping-calculator/internal/app/domains/modules/mdbatch"
	"github.com/areed15ev/shipping-calculator/internal/model"
	"github.com/areed15ev/shipping-calculator/pkg/logger"
	"github.com/areed15ev/shipping-calculator/pkg/metrics"
)

// BatchDispatcher 批次任务分发与结果等待（由 mdbatch.BatchModule 实现）
type BatchDispatcher interface {
	PublishBatchJob(ctx context.Context, requestID string, data model.BatchQuoteBusinessData) error
	WaitForBatchResult(ctx context.Context, batchID string, timeout time.Duration) (*model.BatchQuoteCallback, error)
}

// BatchOutcome 批次提交结果
// Callback 仅在 Smart Wait 等到结果时非空；否则调用方凭 ResultChannel 自行订阅
type BatchOutcome struct {
	BatchID       string
	ResultChannel string
	Callback      *model.BatchQuoteCallback
}

// BatchService 批量报价提交服务
type BatchService struct {
	dispatcher     BatchDispatcher
	logger         logger.Logger
	maxWaitSeconds int
}

// NewBatchService 创建批量报价提交服务实例
// maxWaitSeconds 限制 Smart Wait 的等待上限，防止调用方长时间占用连接
func NewBatchService(dispatcher BatchDispatcher, log logger.Logger, maxWaitSeconds int) *BatchService {
	return &BatchService{
		dispatcher:     dispatcher,
		logger:         log,
		maxWaitSeconds: maxWaitSeconds,
	}
}

// SubmitBatch 提交批量报价
// 1. 补齐批次 ID（调用方未指定时生成）
// 2. 发布任务到队列
// 3. Smart Wait（可选，等待 worker 推送的结果）
func (s *BatchService) SubmitBatch(ctx context.Context, data model.BatchQuoteBusinessData, waitSeconds int) (*BatchOutcome, error) {
	if s.maxWaitSeconds > 0 && waitSeconds > s.maxWaitSeconds {
		waitSeconds = s.maxWaitSeconds
	}

	if data.BatchID == "" {
		data.BatchID = uuid.New().String()
	}

	requestID := uuid.New().String()
	if v, ok := ctx.Value("trace_id").(string); ok && v != "" {
		requestID = v
	}

	if err := s.dispatcher.PublishBatchJob(ctx, requestID, data); err != nil {
		return nil, err
	}
	metrics.BatchJobsTotal.WithLabelValues("published").Inc()

	s.logger.Infof(ctx, "Batch quote job published: batch_id=%s, shipments=%d",
		data.BatchID, len(data.Shipments))

	outcome := &BatchOutcome{
		BatchID:       data.BatchID,
		ResultChannel: mdbatch.ResultChannel(data.BatchID),
	}

	if waitSeconds > 0 {
		timeout := time.Duration(waitSeconds) * time.Second
		callback, err := s.dispatcher.WaitForBatchResult(ctx, data.BatchID, timeout)
		if err != nil {
			// 超时或订阅失败不算提交失败，调用方可继续订阅结果频道
			s.logger.Warnf(ctx, "Wait for batch result failed: batch_id=%s, error=%v", data.BatchID, err)
			return outcome, nil
		}
		outcome.Callback = callback
	}

	return outcome, nil
}
