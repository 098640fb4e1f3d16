package model

// BatchQuoteCallback 批量报价回调消息（标准化）
// 用于 worker → apiserver callback consumer 的消息传递，
// 同时作为 Smart Wait 的 Redis 通知负载
type BatchQuoteCallback struct {
	RequestID   string                `json:"request_id"`        // 对应请求的 request_id（链路追踪）
	BatchID     string                `json:"batch_id"`          // 批次 ID
	Status      string                `json:"status"`            // SUCCESS / PARTIAL / FAILED
	Results     []ShipmentQuoteResult `json:"results,omitempty"` // 每票货件的报价结果
	Error       string                `json:"error,omitempty"`   // 批次级错误信息
	ProcessedAt int64                 `json:"processed_at"`      // 处理时间戳（Unix timestamp）
}

// 回调状态常量
const (
	CallbackStatusSuccess = "SUCCESS" // 全部货件报价成功
	CallbackStatusPartial = "PARTIAL" // 部分货件报价失败
	CallbackStatusFailed  = "FAILED"  // 全部货件报价失败
)
