package svcallback

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/areed15ev/shipping-calculator/internal/app/domains/modules/mdbatch"
	"github.com/areed15ev/shipping-calculator/internal/model"
	"github.com/areed15ev/shipping-calculator/pkg/logger"
	"github.com/areed15ev/shipping-calculator/pkg/metrics"
)

// ResultNotifier 结果通知发布接口（由 redis.PubSubClient 实现）
type ResultNotifier interface {
	Publish(ctx context.Context, channel string, message string) error
}

// CallbackService 回调处理服务
// 职责：
// 1. 处理 worker 发送的批次回调
// 2. 发送 Redis PubSub 通知（Smart Wait 的唤醒信号）
type CallbackService struct {
	notifier ResultNotifier
	logger   logger.Logger
}

// NewCallbackService 创建回调服务实例
func NewCallbackService(notifier ResultNotifier, log logger.Logger) *CallbackService {
	return &CallbackService{
		notifier: notifier,
		logger:   log,
	}
}

// HandleCallback 处理批次回调
// 通知是结果送达的唯一通道，发布失败返回 error 让队列重投
func (s *CallbackService) HandleCallback(ctx context.Context, callback *model.BatchQuoteCallback) error {
	s.logger.Infof(ctx, "Processing batch callback: batch_id=%s, status=%s, results=%d",
		callback.BatchID, callback.Status, len(callback.Results))

	if callback.BatchID == "" {
		// 没有批次 ID 就没有目标频道，消息无法处理
		return fmt.Errorf("callback missing batch_id")
	}

	payload, err := json.Marshal(callback)
	if err != nil {
		return fmt.Errorf("marshal callback notification failed: %w", err)
	}

	channel := mdbatch.ResultChannel(callback.BatchID)
	if err := s.notifier.Publish(ctx, channel, string(payload)); err != nil {
		return fmt.Errorf("publish to redis failed: %w", err)
	}

	metrics.BatchJobsTotal.WithLabelValues(callback.Status).Inc()
	s.logger.Infof(ctx, "Batch result notification sent: batch_id=%s, channel=%s",
		callback.BatchID, channel)

	return nil
}
