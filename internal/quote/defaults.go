package quote

// DefaultDimDivisor 默认泡重系数（国际快递通用 6000）
const DefaultDimDivisor = 6000

// affineTiers 生成首重+续重等差价目：首档 0.5kg 价 firstRmb，此后每 0.5kg 加 addRmb
func affineTiers(firstRmb, addRmb int, maxKg float64) []RateTier {
	steps := int(CeilToHalfKg(maxKg))
	tiers := make([]RateTier, 0, steps)
	for i := 1; i <= steps; i++ {
		tiers = append(tiers, RateTier{
			CeilingKg: HalfKilos(i).Kg(),
			PriceRmb:  firstRmb + addRmb*(i-1),
		})
	}
	return tiers
}

func mustTable(tiers []RateTier) *RateTable {
	t, err := NewRateTable(tiers)
	if err != nil {
		panic(err)
	}
	return t
}

// DefaultCarriers 内置承运商（声明顺序即对比展示顺序）
//   - UPS Fast：泡重系数 6000，首重 150 续重 60，上限 20kg（3.5kg 档 510 元）
//   - UPS Slow：泡重系数 6000，首重 90 续重 45，上限 20kg（3.5kg 档 360 元）
//   - EMS：按双计费，单双费用 = 100×均重 + 64，总实重上限 15kg
func DefaultCarriers() []CarrierSpec {
	return []CarrierSpec{
		{
			Name:       "UPS Fast",
			Kind:       KindDIM,
			DimDivisor: DefaultDimDivisor,
			Table:      mustTable(affineTiers(150, 60, 20)),
			CapKg:      CeilToHalfKg(20),
		},
		{
			Name:       "UPS Slow",
			Kind:       KindDIM,
			DimDivisor: DefaultDimDivisor,
			Table:      mustTable(affineTiers(90, 45, 20)),
			CapKg:      CeilToHalfKg(20),
		},
		{
			Name:    "EMS",
			Kind:    KindPerPair,
			Formula: Formula{CoefficientA: 100, CoefficientB: 64},
			CapKg:   CeilToHalfKg(15),
		},
	}
}

// DefaultCartonPresets 1~10 双预设箱型（随双数递增）
func DefaultCartonPresets() CartonPresets {
	return CartonPresets{
		1:  {LengthCm: 35, WidthCm: 23, HeightCm: 13},
		2:  {LengthCm: 37, WidthCm: 27, HeightCm: 14.5},
		3:  {LengthCm: 43, WidthCm: 31, HeightCm: 15},
		4:  {LengthCm: 47, WidthCm: 33, HeightCm: 17},
		5:  {LengthCm: 49, WidthCm: 35, HeightCm: 19},
		6:  {LengthCm: 53, WidthCm: 37, HeightCm: 20},
		7:  {LengthCm: 55, WidthCm: 39, HeightCm: 22},
		8:  {LengthCm: 57, WidthCm: 41, HeightCm: 23},
		9:  {LengthCm: 59, WidthCm: 43, HeightCm: 24},
		10: {LengthCm: 60, WidthCm: 45, HeightCm: 25},
	}
}

// DefaultEngine 由内置常量装配的引擎
func DefaultEngine() *Engine {
	e, err := NewEngine(DefaultCarriers(), DefaultCartonPresets())
	if err != nil {
		panic(err)
	}
	return e
}
