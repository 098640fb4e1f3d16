package consumer

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/areed15ev/shipping-calculator/internal/app/domains/services/svcallback"
	"github.com/areed15ev/shipping-calculator/internal/model"
	"github.com/areed15ev/shipping-calculator/pkg/lmstfy"
	"github.com/areed15ev/shipping-calculator/pkg/logger"
)

// CallbackConsumer 回调消费者
// 职责：
// 1. 从 lmstfy 队列消费 worker 发来的批次回调
// 2. 解析消息并调用 CallbackService 处理
// 3. 确认消息（ACK）
type CallbackConsumer struct {
	lmstfyClient    *lmstfy.Client
	callbackService *svcallback.CallbackService
	queueName       string
	logger          logger.Logger

	timeout      time.Duration // 拉取消息超时
	ttr          time.Duration // Time-To-Run
	pollInterval time.Duration // 出错后的退避间隔
}

// Config 消费者配置
type Config struct {
	QueueName    string
	Timeout      time.Duration
	TTR          time.Duration
	PollInterval time.Duration
}

// NewCallbackConsumer 创建回调消费者实例
func NewCallbackConsumer(
	lmstfyClient *lmstfy.Client,
	callbackService *svcallback.CallbackService,
	config *Config,
	log logger.Logger,
) *CallbackConsumer {
	return &CallbackConsumer{
		lmstfyClient:    lmstfyClient,
		callbackService: callbackService,
		queueName:       config.QueueName,
		timeout:         config.Timeout,
		ttr:             config.TTR,
		pollInterval:    config.PollInterval,
		logger:          log,
	}
}

// Start 启动消费循环，阻塞直到 ctx 取消
func (c *CallbackConsumer) Start(ctx context.Context) error {
	c.logger.Infof(ctx, "Callback consumer started: queue=%s, timeout=%s, ttr=%s",
		c.queueName, c.timeout, c.ttr)

	for {
		select {
		case <-ctx.Done():
			c.logger.Infof(ctx, "Callback consumer stopped")
			return ctx.Err()
		default:
			if err := c.consumeOne(ctx); err != nil {
				c.logger.Errorf(ctx, "Failed to consume callback: %v", err)
				time.Sleep(c.pollInterval)
			}
		}
	}
}

// consumeOne 消费一条消息
func (c *CallbackConsumer) consumeOne(ctx context.Context) error {
	msg, err := c.lmstfyClient.Consume(c.queueName, c.timeout, c.ttr)
	if err != nil {
		return fmt.Errorf("consume message failed: %w", err)
	}

	// 超时未拉到消息，继续等待
	if msg == nil {
		return nil
	}

	c.logger.Infof(ctx, "Received callback message: job_id=%s", msg.ID)

	callback, err := c.parseMessage(msg.Data)
	if err != nil {
		c.logger.Errorf(ctx, "Failed to parse callback: job_id=%s, error=%v", msg.ID, err)
		// 解析失败的消息重投也不会变好，直接 ACK 丢弃
		_ = c.lmstfyClient.Ack(c.queueName, msg.ID)
		return err
	}

	ctx = context.WithValue(ctx, "trace_id", callback.RequestID)
	ctx = context.WithValue(ctx, "batch_id", callback.BatchID)

	if err := c.callbackService.HandleCallback(ctx, callback); err != nil {
		// 处理失败不 ACK，等 TTR 到期重投
		c.logger.Errorf(ctx, "Failed to handle callback: job_id=%s, error=%v", msg.ID, err)
		return err
	}

	if err := c.lmstfyClient.Ack(c.queueName, msg.ID); err != nil {
		c.logger.Errorf(ctx, "Failed to ack callback: job_id=%s, error=%v", msg.ID, err)
		return err
	}

	c.logger.Infof(ctx, "Callback message processed: job_id=%s", msg.ID)
	return nil
}

// parseMessage 解析并校验回调消息
func (c *CallbackConsumer) parseMessage(data []byte) (*model.BatchQuoteCallback, error) {
	var callback model.BatchQuoteCallback
	if err := json.Unmarshal(data, &callback); err != nil {
		return nil, fmt.Errorf("unmarshal callback failed: %w", err)
	}

	if callback.BatchID == "" {
		return nil, fmt.Errorf("batch_id is required")
	}
	if callback.Status == "" {
		return nil, fmt.Errorf("status is required")
	}

	return &callback, nil
}
