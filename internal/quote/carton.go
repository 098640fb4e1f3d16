package quote

import (
	"fmt"
	"sort"
)

// CartonMode 箱型来源
type CartonMode int

const (
	// CartonPreset 按双数查预设箱型表
	CartonPreset CartonMode = iota
	// CartonCustom 使用调用方提供的自定义尺寸
	CartonCustom
)

// String 箱型来源的字符串标识
func (m CartonMode) String() string {
	switch m {
	case CartonPreset:
		return "preset"
	case CartonCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// ParseCartonMode 解析箱型来源标识
func ParseCartonMode(s string) (CartonMode, error) {
	switch s {
	case "preset":
		return CartonPreset, nil
	case "custom":
		return CartonCustom, nil
	default:
		return 0, fmt.Errorf("unknown carton mode %q", s)
	}
}

// CartonDimensions 纸箱尺寸（厘米）
type CartonDimensions struct {
	LengthCm float64
	WidthCm  float64
	HeightCm float64
}

// VolumeCm3 体积（cm³），每次由当前尺寸现算，不缓存
func (d CartonDimensions) VolumeCm3() float64 {
	return d.LengthCm * d.WidthCm * d.HeightCm
}

// CartonPresets 按双数预设的箱型表
type CartonPresets map[int]CartonDimensions

// Resolve 解析箱型
// 预设模式查表，双数不在表内时回退 1 双箱型（永不失败）；自定义模式原样返回
func (p CartonPresets) Resolve(mode CartonMode, presetPairs int, custom CartonDimensions) CartonDimensions {
	if mode == CartonCustom {
		return custom
	}
	if dims, ok := p[presetPairs]; ok {
		return dims
	}
	return p[1]
}

// Pairs 返回已定义的双数（升序），用于展示
func (p CartonPresets) Pairs() []int {
	pairs := make([]int, 0, len(p))
	for k := range p {
		pairs = append(pairs, k)
	}
	sort.Ints(pairs)
	return pairs
}
