package quote

import "fmt"

// 配置装配：启动时允许用配置整体替换内置承运商/箱型常量，
// 复用构造校验，服务开始对外后不再变更。

// TierSetting 配置中的价格档
type TierSetting struct {
	CeilingKg float64 `mapstructure:"ceiling_kg" json:"ceiling_kg"`
	PriceRmb  int     `mapstructure:"price_rmb" json:"price_rmb"`
}

// CarrierSetting 配置中的承运商定义
type CarrierSetting struct {
	Name         string        `mapstructure:"name" json:"name"`
	Kind         string        `mapstructure:"kind" json:"kind"` // dim / per_pair
	DimDivisor   float64       `mapstructure:"dim_divisor" json:"dim_divisor"`
	CapKg        float64       `mapstructure:"cap_kg" json:"cap_kg"`
	Tiers        []TierSetting `mapstructure:"tiers" json:"tiers"`
	CoefficientA float64       `mapstructure:"coefficient_a" json:"coefficient_a"`
	CoefficientB float64       `mapstructure:"coefficient_b" json:"coefficient_b"`
}

// CartonSetting 配置中的预设箱型
type CartonSetting struct {
	Pairs    int     `mapstructure:"pairs" json:"pairs"`
	LengthCm float64 `mapstructure:"length_cm" json:"length_cm"`
	WidthCm  float64 `mapstructure:"width_cm" json:"width_cm"`
	HeightCm float64 `mapstructure:"height_cm" json:"height_cm"`
}

// BuildEngine 由配置构建引擎；carriers/cartons 为空时使用内置常量
func BuildEngine(carriers []CarrierSetting, cartons []CartonSetting) (*Engine, error) {
	specs := DefaultCarriers()
	if len(carriers) > 0 {
		specs = make([]CarrierSpec, 0, len(carriers))
		for _, cs := range carriers {
			spec, err := cs.toSpec()
			if err != nil {
				return nil, err
			}
			specs = append(specs, spec)
		}
	}

	presets := DefaultCartonPresets()
	if len(cartons) > 0 {
		presets = make(CartonPresets, len(cartons))
		for _, c := range cartons {
			if c.Pairs < 1 {
				return nil, fmt.Errorf("carton pairs must be at least 1, got %d", c.Pairs)
			}
			presets[c.Pairs] = CartonDimensions{
				LengthCm: c.LengthCm,
				WidthCm:  c.WidthCm,
				HeightCm: c.HeightCm,
			}
		}
	}

	return NewEngine(specs, presets)
}

func (cs CarrierSetting) toSpec() (CarrierSpec, error) {
	kind, err := ParseCarrierKind(cs.Kind)
	if err != nil {
		return CarrierSpec{}, fmt.Errorf("carrier %q: %w", cs.Name, err)
	}

	spec := CarrierSpec{Name: cs.Name, Kind: kind}

	if cs.CapKg > 0 {
		capHalf, err := halfKilosExact(cs.CapKg)
		if err != nil {
			return CarrierSpec{}, fmt.Errorf("carrier %q cap: %w", cs.Name, err)
		}
		spec.CapKg = capHalf
	}

	switch kind {
	case KindDIM:
		spec.DimDivisor = cs.DimDivisor
		tiers := make([]RateTier, 0, len(cs.Tiers))
		for _, t := range cs.Tiers {
			tiers = append(tiers, RateTier{CeilingKg: t.CeilingKg, PriceRmb: t.PriceRmb})
		}
		table, err := NewRateTable(tiers)
		if err != nil {
			return CarrierSpec{}, fmt.Errorf("carrier %q: %w", cs.Name, err)
		}
		spec.Table = table
	case KindPerPair:
		spec.Formula = Formula{CoefficientA: cs.CoefficientA, CoefficientB: cs.CoefficientB}
	}

	return spec, nil
}
