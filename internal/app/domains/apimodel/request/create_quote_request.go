package request

// CreateQuoteRequest 同步报价请求
type CreateQuoteRequest struct {
	PairCount      int     `json:"pair_count" binding:"required,min=1" example:"2"`
	ActualWeightKg float64 `json:"actual_weight_kg" binding:"gte=0" example:"3.2"`
	Carton         *Carton `json:"carton" binding:"required"`
	FxRate         float64 `json:"fx_rate" binding:"omitempty,gt=0" example:"7.2"`
}

// Carton 纸箱规格
// preset 模式按双数查预设箱型表，preset_pairs 缺省时取货件双数；
// custom 模式直接使用三边尺寸
type Carton struct {
	Mode        string  `json:"mode" binding:"required,oneof=preset custom" example:"preset"`
	PresetPairs int     `json:"preset_pairs" binding:"omitempty,min=1" example:"2"`
	LengthCm    float64 `json:"length_cm" binding:"omitempty,gt=0" example:"37.0"`
	WidthCm     float64 `json:"width_cm" binding:"omitempty,gt=0" example:"27.0"`
	HeightCm    float64 `json:"height_cm" binding:"omitempty,gt=0" example:"14.5"`
}
