package response

// BatchQuoteResponse 批量报价结果响应（DTO）
// Smart Wait 等到结果时返回，与 Redis 频道里的通知内容一致
type BatchQuoteResponse struct {
	BatchID     string                    `json:"batch_id"`
	Status      string                    `json:"status" example:"SUCCESS"`
	Results     []*ShipmentResultResponse `json:"results"`
	Error       string                    `json:"error,omitempty"`
	ProcessedAt int64                     `json:"processed_at"`
}

// ShipmentResultResponse 批次中单票货件的结果
type ShipmentResultResponse struct {
	Reference string         `json:"reference,omitempty"`
	Status    string         `json:"status" example:"QUOTED"`
	Quote     *QuoteResponse `json:"quote,omitempty"`
	Error     string         `json:"error,omitempty"`
}
