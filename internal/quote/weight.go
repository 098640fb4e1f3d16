package quote

import (
	"fmt"
	"math"
)

// HalfKilos 半公斤整数单位的重量（1 = 0.5kg）
// 计费重量与档位上限都用该单位表示，档位比较走整数，浮点容差只出现在进位一处
type HalfKilos int

// Kg 转换为公斤
func (h HalfKilos) Kg() float64 {
	return float64(h) / 2
}

// roundEps 进位边界容差：3.0*2 在浮点下可能略小于 6，减去容差再取 ceil 不会多进一档
const roundEps = 1e-9

// CeilToHalfKg 将原始重量向上取整到 0.5kg 粒度
// 恰好落在 0.5 边界的值不进位：3.0 → 3.0，3.01 → 3.5，0 → 0
func CeilToHalfKg(rawKg float64) HalfKilos {
	if rawKg <= 0 {
		return 0
	}
	return HalfKilos(math.Ceil(rawKg*2 - roundEps))
}

// halfKilosExact 校验 kg 恰好落在 0.5kg 网格上并转换
func halfKilosExact(kg float64) (HalfKilos, error) {
	h := CeilToHalfKg(kg)
	if math.Abs(h.Kg()-kg) > roundEps {
		return 0, fmt.Errorf("%.3f kg is not on the 0.5 kg grid", kg)
	}
	return h, nil
}

// DimWeightKg 体积重（公斤）= 体积(cm³) / 泡重系数
func DimWeightKg(volumeCm3, dimDivisor float64) float64 {
	return volumeCm3 / dimDivisor
}

// BilledWeight 计费重量：max(实重, 体积重) 向上取 0.5kg
// 对任意非负有限输入总有确定结果
func BilledWeight(actualKg, dimDivisor, volumeCm3 float64) HalfKilos {
	raw := math.Max(actualKg, DimWeightKg(volumeCm3, dimDivisor))
	return CeilToHalfKg(raw)
}
