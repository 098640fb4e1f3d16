package model

// ActionTypeShipmentQuote 批量报价任务的路由键
const ActionTypeShipmentQuote = "shipment_quote"

// BatchQuoteJob 批量报价任务消息（标准化）
// 用于 apiserver → worker 的消息传递
type BatchQuoteJob struct {
	Payload BatchQuotePayload `json:"payload"`
}

// BatchQuotePayload Job 负载
type BatchQuotePayload struct {
	Data BatchQuoteJobData `json:"data"`
}

// BatchQuoteJobData Job 数据层
type BatchQuoteJobData struct {
	// 元信息
	RequestID  string `json:"request_id"`  // 请求 ID（全链路追踪）
	OrgID      string `json:"org_id"`      // 组织 ID（MVP 固定为 "0"）
	ActionType string `json:"action_type"` // 动作类型，固定值 "shipment_quote"
	ID         string `json:"id"`          // 批次 ID

	// 业务数据
	Data BatchQuoteBusinessData `json:"data"`
}

// BatchQuoteBusinessData 批量报价业务数据
// 包含 worker 计算报价所需的全部数据，不依赖其他存储
type BatchQuoteBusinessData struct {
	BatchID   string          `json:"batch_id"`
	FxRate    float64         `json:"fx_rate,omitempty"` // 人民币兑美元除数，0 表示不换算
	Shipments []ShipmentInput `json:"shipments"`
}

// ShipmentInput 单票货件输入
type ShipmentInput struct {
	Reference      string      `json:"reference,omitempty"` // 调用方自定义标识
	PairCount      int         `json:"pair_count"`
	ActualWeightKg float64     `json:"actual_weight_kg"`
	Carton         CartonInput `json:"carton"`
}

// CartonInput 纸箱输入：预设箱型按双数取，自定义箱型给三边尺寸
type CartonInput struct {
	Mode        string  `json:"mode"` // preset / custom
	PresetPairs int     `json:"preset_pairs,omitempty"`
	LengthCm    float64 `json:"length_cm,omitempty"`
	WidthCm     float64 `json:"width_cm,omitempty"`
	HeightCm    float64 `json:"height_cm,omitempty"`
}
