package quote

import (
	"fmt"
	"sort"
)

// RateTier 价格档：计费重不超过 CeilingKg 时按 PriceRmb 计价
// 档位区间为左开右闭：(上一档上限, 本档上限]
type RateTier struct {
	CeilingKg float64
	PriceRmb  int
}

type rateTier struct {
	ceiling HalfKilos
	price   int
}

// RateTable 承运商价格表，构造时排序校验，构造后只读
type RateTable struct {
	tiers []rateTier
}

// NewRateTable 构造价格表
// 校验：非空、档位上限落在 0.5kg 网格、价格为正、上限不重复；内部按上限升序存放
func NewRateTable(tiers []RateTier) (*RateTable, error) {
	if len(tiers) == 0 {
		return nil, fmt.Errorf("rate table requires at least one tier")
	}

	converted := make([]rateTier, 0, len(tiers))
	for _, t := range tiers {
		ceiling, err := halfKilosExact(t.CeilingKg)
		if err != nil {
			return nil, fmt.Errorf("tier ceiling: %w", err)
		}
		if ceiling <= 0 {
			return nil, fmt.Errorf("tier ceiling must be positive, got %.3f kg", t.CeilingKg)
		}
		if t.PriceRmb <= 0 {
			return nil, fmt.Errorf("tier %.1f kg: price must be positive, got %d", t.CeilingKg, t.PriceRmb)
		}
		converted = append(converted, rateTier{ceiling: ceiling, price: t.PriceRmb})
	}

	sort.Slice(converted, func(i, j int) bool { return converted[i].ceiling < converted[j].ceiling })

	for i := 1; i < len(converted); i++ {
		if converted[i].ceiling == converted[i-1].ceiling {
			return nil, fmt.Errorf("duplicate tier ceiling %.1f kg", converted[i].ceiling.Kg())
		}
	}

	return &RateTable{tiers: converted}, nil
}

// Lookup 查价：取能覆盖 billed 的最小档位上限对应的价格
// 超出全部档位返回 ok=false（超范围是正常业务结果，不是错误）
// 扫描全部档位取最小命中，不依赖底层存储有序
func (t *RateTable) Lookup(billed HalfKilos) (priceRmb int, ok bool) {
	best := HalfKilos(-1)
	price := 0
	for _, tier := range t.tiers {
		if tier.ceiling >= billed && (best < 0 || tier.ceiling < best) {
			best = tier.ceiling
			price = tier.price
		}
	}
	if best < 0 {
		return 0, false
	}
	return price, true
}

// MaxCeilingKg 最大档位上限（公斤）
func (t *RateTable) MaxCeilingKg() float64 {
	max := HalfKilos(0)
	for _, tier := range t.tiers {
		if tier.ceiling > max {
			max = tier.ceiling
		}
	}
	return max.Kg()
}

// Len 档位数量
func (t *RateTable) Len() int {
	return len(t.tiers)
}

// PriceRangeRmb 全部档位的最低与最高价格（元）
func (t *RateTable) PriceRangeRmb() (min, max int) {
	for i, tier := range t.tiers {
		if i == 0 || tier.price < min {
			min = tier.price
		}
		if tier.price > max {
			max = tier.price
		}
	}
	return min, max
}

// Tiers 返回档位副本（升序），用于展示
func (t *RateTable) Tiers() []RateTier {
	out := make([]RateTier, 0, len(t.tiers))
	for _, tier := range t.tiers {
		out = append(out, RateTier{CeilingKg: tier.ceiling.Kg(), PriceRmb: tier.price})
	}
	return out
}
