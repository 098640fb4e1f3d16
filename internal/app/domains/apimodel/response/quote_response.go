package response

// CurrencyCNY 报价金额币种
const CurrencyCNY = "CNY"

// QuoteResponse 报价对比响应（DTO）
type QuoteResponse struct {
	Currency string              `json:"currency" example:"CNY"`
	Rows     []*QuoteRowResponse `json:"rows"`
	Best     *QuoteRowResponse   `json:"best,omitempty"`
}

// QuoteRowResponse 单个承运商的报价行
type QuoteRowResponse struct {
	Carrier        string   `json:"carrier" example:"UPS Fast"`
	BilledWeightKg *float64 `json:"billed_weight_kg,omitempty" example:"3.5"`
	CostRmb        *float64 `json:"cost_rmb,omitempty" example:"510"`
	CostUsd        *float64 `json:"cost_usd,omitempty" example:"70.83"`
	OutOfRange     bool     `json:"out_of_range"`
	Note           string   `json:"note,omitempty"`
}
