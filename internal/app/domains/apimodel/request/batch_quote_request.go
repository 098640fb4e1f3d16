package request

// BatchQuoteRequest 批量报价请求
// 提交后异步计算，结果通过 Redis 频道通知；wait 参数可等待结果（Smart Wait）
type BatchQuoteRequest struct {
	BatchID   string      `json:"batch_id" binding:"omitempty,max=64" example:"batch-20260301-001"`
	FxRate    float64     `json:"fx_rate" binding:"omitempty,gt=0" example:"7.2"`
	Shipments []*Shipment `json:"shipments" binding:"required,min=1,dive,required"`
}

// Shipment 批量报价中的单票货件
type Shipment struct {
	Reference      string  `json:"reference" binding:"omitempty,max=64" example:"SHIP-001"`
	PairCount      int     `json:"pair_count" binding:"required,min=1" example:"2"`
	ActualWeightKg float64 `json:"actual_weight_kg" binding:"gte=0" example:"3.2"`
	Carton         *Carton `json:"carton" binding:"required"`
}
