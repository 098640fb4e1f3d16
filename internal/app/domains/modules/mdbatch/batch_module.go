package mdbatch

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/areed15ev/shipping-calculator/internal/model"
	"github.com/areed15ev/shipping-calculator/pkg/infra/redis"
	"github.com/areed15ev/shipping-calculator/pkg/lmstfy"
)

// ResultChannel 批次结果通知频道（业务约定：quote:result:{batchID}）
func ResultChannel(batchID string) string {
	return fmt.Sprintf("quote:result:%s", batchID)
}

// BatchModule 批量报价模块
// 职责：
// 1. 组装 Lmstfy 与 Redis 客户端
// 2. 持有批量报价的消息格式与频道命名规则
type BatchModule struct {
	lmstfyClient *lmstfy.Client
	redisClient  *redis.PubSubClient
	queueName    string
}

// NewBatchModule 创建批量报价模块实例
func NewBatchModule(lmstfyClient *lmstfy.Client, redisClient *redis.PubSubClient, queueName string) *BatchModule {
	return &BatchModule{
		lmstfyClient: lmstfyClient,
		redisClient:  redisClient,
		queueName:    queueName,
	}
}

// PublishBatchJob 发布批量报价任务到队列
// 消息携带计算所需的全部数据，worker 不回查任何存储
func (m *BatchModule) PublishBatchJob(ctx context.Context, requestID string, data model.BatchQuoteBusinessData) error {
	job := model.BatchQuoteJob{
		Payload: model.BatchQuotePayload{
			Data: model.BatchQuoteJobData{
				RequestID:  requestID,
				OrgID:      "0",
				ActionType: model.ActionTypeShipmentQuote,
				ID:         data.BatchID,
				Data:       data,
			},
		},
	}

	payload, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("marshal batch job failed: %w", err)
	}

	// ttl=0 永不过期，delay=0 立即可消费
	if err := m.lmstfyClient.Publish(m.queueName, payload, 0, 0); err != nil {
		return fmt.Errorf("publish batch job failed: %w", err)
	}

	return nil
}

// WaitForBatchResult 等待批次结果（Smart Wait）
// worker 算完后把回调推到批次独立频道，这里订阅等待到超时为止
func (m *BatchModule) WaitForBatchResult(ctx context.Context, batchID string, timeout time.Duration) (*model.BatchQuoteCallback, error) {
	payload, err := m.redisClient.Subscribe(ctx, ResultChannel(batchID), timeout)
	if err != nil {
		return nil, err
	}

	var callback model.BatchQuoteCallback
	if err := json.Unmarshal([]byte(payload), &callback); err != nil {
		return nil, fmt.Errorf("unmarshal batch callback failed: %w", err)
	}

	return &callback, nil
}
