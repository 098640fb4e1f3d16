package model

// ShipmentQuoteResult 单票货件的报价结果
type ShipmentQuoteResult struct {
	Reference string           `json:"reference,omitempty"`
	Status    string           `json:"status"` // QUOTED / FAILED
	Quote     *QuoteResultData `json:"quote,omitempty"`
	Error     string           `json:"error,omitempty"`
}

// 货件结果状态常量
const (
	ShipmentStatusQuoted = "QUOTED"
	ShipmentStatusFailed = "FAILED"
)

// QuoteResultData 报价结果容器
type QuoteResultData struct {
	Rows []QuoteRowData `json:"rows"`
	Best *QuoteRowData  `json:"best,omitempty"` // 最低价行，所有行都超范围时缺省
}

// QuoteRowData 单个承运商的报价行
type QuoteRowData struct {
	Carrier        string   `json:"carrier"`
	BilledWeightKg *float64 `json:"billed_weight_kg,omitempty"` // 按双计费承运商缺省
	CostRmb        *float64 `json:"cost_rmb,omitempty"`         // 超范围时缺省
	CostUsd        *float64 `json:"cost_usd,omitempty"`         // 仅在给定汇率时出现
	OutOfRange     bool     `json:"out_of_range"`
	Note           string   `json:"note,omitempty"`
}
