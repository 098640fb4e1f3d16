package quote

import "fmt"

// CarrierKind 承运商计价方式
type CarrierKind int

const (
	// KindDIM 泡重计费：计费重量查价格表
	KindDIM CarrierKind = iota
	// KindPerPair 按双计费：线性公式直接计价，没有计费重量概念
	KindPerPair
)

// String 计价方式的字符串标识（配置与接口中使用）
func (k CarrierKind) String() string {
	switch k {
	case KindDIM:
		return "dim"
	case KindPerPair:
		return "per_pair"
	default:
		return "unknown"
	}
}

// ParseCarrierKind 解析计价方式标识
func ParseCarrierKind(s string) (CarrierKind, error) {
	switch s {
	case "dim":
		return KindDIM, nil
	case "per_pair":
		return KindPerPair, nil
	default:
		return 0, fmt.Errorf("unknown carrier kind %q", s)
	}
}

// Formula 按双计价公式：单双费用 = CoefficientA×平均单双重量 + CoefficientB
type Formula struct {
	CoefficientA float64
	CoefficientB float64
}

// PerPairCostRmb 单双费用（元）
func (f Formula) PerPairCostRmb(avgKgPerPair float64) float64 {
	return f.CoefficientA*avgKgPerPair + f.CoefficientB
}

// CarrierSpec 承运商规格
// 进程启动时定义一次，运行期只读
type CarrierSpec struct {
	Name       string
	Kind       CarrierKind
	DimDivisor float64    // 泡重系数（仅 KindDIM）
	Table      *RateTable // 价格表（仅 KindDIM）
	Formula    Formula    // 计价公式（仅 KindPerPair）
	CapKg      HalfKilos  // 计费重量上限，0 表示不设上限
}

func (s *CarrierSpec) validate() error {
	if s.Name == "" {
		return fmt.Errorf("carrier name is required")
	}
	switch s.Kind {
	case KindDIM:
		if s.DimDivisor <= 0 {
			return fmt.Errorf("carrier %s: dim divisor must be positive", s.Name)
		}
		if s.Table == nil {
			return fmt.Errorf("carrier %s: rate table is required", s.Name)
		}
	case KindPerPair:
		if s.Formula.CoefficientA == 0 && s.Formula.CoefficientB == 0 {
			return fmt.Errorf("carrier %s: formula coefficients are required", s.Name)
		}
	default:
		return fmt.Errorf("carrier %s: unknown kind %d", s.Name, s.Kind)
	}
	if s.CapKg < 0 {
		return fmt.Errorf("carrier %s: cap must be non-negative", s.Name)
	}
	return nil
}
