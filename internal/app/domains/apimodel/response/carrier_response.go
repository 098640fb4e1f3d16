package response

// CarrierResponse 承运商信息（DTO）
type CarrierResponse struct {
	Name        string           `json:"name" example:"UPS Fast"`
	Kind        string           `json:"kind" example:"dim"`
	DimDivisor  float64          `json:"dim_divisor,omitempty" example:"6000"`
	CapKg       float64          `json:"cap_kg,omitempty" example:"20"`
	TierCount   int              `json:"tier_count,omitempty" example:"40"`
	MaxTierKg   float64          `json:"max_tier_kg,omitempty" example:"20"`
	PriceMinRmb int              `json:"price_min_rmb,omitempty" example:"150"`
	PriceMaxRmb int              `json:"price_max_rmb,omitempty" example:"2490"`
	Formula     *FormulaResponse `json:"formula,omitempty"`
}

// FormulaResponse 按双计价公式
type FormulaResponse struct {
	CoefficientA float64 `json:"coefficient_a" example:"100"`
	CoefficientB float64 `json:"coefficient_b" example:"64"`
}

// CartonResponse 预设箱型（DTO）
type CartonResponse struct {
	Pairs     int     `json:"pairs" example:"2"`
	LengthCm  float64 `json:"length_cm" example:"37.0"`
	WidthCm   float64 `json:"width_cm" example:"27.0"`
	HeightCm  float64 `json:"height_cm" example:"14.5"`
	VolumeCm3 float64 `json:"volume_cm3" example:"14485.5"`
}
