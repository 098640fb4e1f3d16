// Package quote 实现多承运商国际快递报价引擎：
// 泡重计费承运商由计费重量查阶梯价格表，按双计费承运商走线性公式，
// 汇总各承运商报价行并选出最低价。全部计算为纯函数，金额一律为人民币。
package quote

import (
	"errors"
	"fmt"
)

// Row 单个承运商的报价行，一次计算产出后不再修改
type Row struct {
	Carrier        string
	BilledWeightKg *float64 // 按双计费承运商没有计费重量，为 nil
	CostRmb        *float64 // 超出可计价范围时为 nil
	Note           string
}

// OutOfRange 本行是否超出该承运商可计价范围
func (r *Row) OutOfRange() bool {
	return r.CostRmb == nil
}

// Result 报价对比结果
// Rows 按承运商声明顺序排列；Best 指向最低价行，全部超范围时为 nil
type Result struct {
	Rows []Row
	Best *Row
}

// Input 一次报价计算的输入，箱型已由调用方解析完成
type Input struct {
	PairCount      int
	ActualWeightKg float64
	Carton         CartonDimensions
}

// ErrInvalidPairCount 双数小于 1
var ErrInvalidPairCount = errors.New("pair count must be at least 1")

// Engine 报价引擎
// 承运商与预设箱型在构造时装配校验，此后只读，可被任意多个调用方并发使用
type Engine struct {
	carriers []CarrierSpec
	presets  CartonPresets
}

// NewEngine 构造报价引擎，校验每个承运商规格与预设箱型表
func NewEngine(carriers []CarrierSpec, presets CartonPresets) (*Engine, error) {
	if len(carriers) == 0 {
		return nil, fmt.Errorf("at least one carrier is required")
	}

	names := make(map[string]bool, len(carriers))
	for i := range carriers {
		if err := carriers[i].validate(); err != nil {
			return nil, err
		}
		if names[carriers[i].Name] {
			return nil, fmt.Errorf("duplicate carrier name %q", carriers[i].Name)
		}
		names[carriers[i].Name] = true
	}

	if len(presets) == 0 {
		return nil, fmt.Errorf("carton presets are required")
	}
	if _, ok := presets[1]; !ok {
		return nil, fmt.Errorf("carton presets must define the 1-pair carton (preset fallback target)")
	}

	// 拷贝后持有，调用方修改原切片不影响引擎
	cs := make([]CarrierSpec, len(carriers))
	copy(cs, carriers)
	ps := make(CartonPresets, len(presets))
	for k, v := range presets {
		ps[k] = v
	}

	return &Engine{carriers: cs, presets: ps}, nil
}

// ResolveCarton 解析箱型（预设查表或自定义直通）
func (e *Engine) ResolveCarton(mode CartonMode, presetPairs int, custom CartonDimensions) CartonDimensions {
	return e.presets.Resolve(mode, presetPairs, custom)
}

// Carriers 承运商规格副本（声明顺序），用于展示
func (e *Engine) Carriers() []CarrierSpec {
	out := make([]CarrierSpec, len(e.carriers))
	copy(out, e.carriers)
	return out
}

// Presets 预设箱型表副本，用于展示
func (e *Engine) Presets() CartonPresets {
	out := make(CartonPresets, len(e.presets))
	for k, v := range e.presets {
		out[k] = v
	}
	return out
}

// Quote 对全部承运商计算报价并选出最低价
// 行序与承运商声明顺序一致；同价取先声明者；各承运商独立计算，
// 单个承运商超范围不影响其余承运商
func (e *Engine) Quote(in Input) (*Result, error) {
	if in.PairCount < 1 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidPairCount, in.PairCount)
	}

	volume := in.Carton.VolumeCm3()

	rows := make([]Row, 0, len(e.carriers))
	for _, c := range e.carriers {
		switch c.Kind {
		case KindPerPair:
			rows = append(rows, perPairRow(c, in))
		default:
			rows = append(rows, dimRow(c, in.ActualWeightKg, volume))
		}
	}

	result := &Result{Rows: rows}

	bestIdx := -1
	for i := range result.Rows {
		if result.Rows[i].CostRmb == nil {
			continue
		}
		if bestIdx < 0 || *result.Rows[i].CostRmb < *result.Rows[bestIdx].CostRmb {
			bestIdx = i
		}
	}
	if bestIdx >= 0 {
		result.Best = &result.Rows[bestIdx]
	}

	return result, nil
}

// dimRow 泡重承运商报价行
func dimRow(c CarrierSpec, actualKg, volumeCm3 float64) Row {
	billed := BilledWeight(actualKg, c.DimDivisor, volumeCm3)
	billedKg := billed.Kg()
	row := Row{Carrier: c.Name, BilledWeightKg: &billedKg}

	// 显式上限优先于价格表覆盖范围
	if c.CapKg > 0 && billed > c.CapKg {
		row.Note = fmt.Sprintf("billed %.1f kg exceeds %.1f kg limit", billedKg, c.CapKg.Kg())
		return row
	}

	price, ok := c.Table.Lookup(billed)
	if !ok {
		row.Note = fmt.Sprintf("billed %.1f kg beyond table max %.1f kg", billedKg, c.Table.MaxCeilingKg())
		return row
	}

	cost := float64(price)
	row.CostRmb = &cost
	row.Note = fmt.Sprintf("dim %.3f kg, billed %.1f kg", DimWeightKg(volumeCm3, c.DimDivisor), billedKg)
	return row
}

// perPairRow 按双计费承运商报价行
// 上限按总实重判断，这是该承运商唯一使用的重量
func perPairRow(c CarrierSpec, in Input) Row {
	row := Row{Carrier: c.Name}

	if c.CapKg > 0 && in.ActualWeightKg > c.CapKg.Kg()+roundEps {
		row.Note = fmt.Sprintf("actual %.2f kg exceeds %.1f kg limit", in.ActualWeightKg, c.CapKg.Kg())
		return row
	}

	avg := in.ActualWeightKg / float64(in.PairCount)
	perPair := c.Formula.PerPairCostRmb(avg)
	total := float64(in.PairCount) * perPair
	row.CostRmb = &total
	row.Note = fmt.Sprintf("%d pairs x %.2f RMB (avg %.3f kg/pair)", in.PairCount, perPair, avg)
	return row
}
