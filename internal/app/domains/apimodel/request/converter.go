package request

import (
	"github.com/areed15ev/shipping-calculator/internal/model"
	"github.com/areed15ev/shipping-calculator/internal/quote"
)

// ToQuoteInput 将 Request DTO 转换为引擎输入
// 箱型在此处解析完成，引擎只接收最终尺寸
func (r *CreateQuoteRequest) ToQuoteInput(engine *quote.Engine) (quote.Input, error) {
	carton, err := resolveCarton(engine, r.Carton, r.PairCount)
	if err != nil {
		return quote.Input{}, err
	}

	return quote.Input{
		PairCount:      r.PairCount,
		ActualWeightKg: r.ActualWeightKg,
		Carton:         carton,
	}, nil
}

// ToBusinessData 将批量请求转换为任务负载
// 箱型不在此处解析，worker 侧持有同一份预设表
func (r *BatchQuoteRequest) ToBusinessData(batchID string) model.BatchQuoteBusinessData {
	shipments := make([]model.ShipmentInput, 0, len(r.Shipments))
	for _, s := range r.Shipments {
		shipments = append(shipments, model.ShipmentInput{
			Reference:      s.Reference,
			PairCount:      s.PairCount,
			ActualWeightKg: s.ActualWeightKg,
			Carton:         toCartonInput(s.Carton, s.PairCount),
		})
	}

	return model.BatchQuoteBusinessData{
		BatchID:   batchID,
		FxRate:    r.FxRate,
		Shipments: shipments,
	}
}

func resolveCarton(engine *quote.Engine, dto *Carton, pairCount int) (quote.CartonDimensions, error) {
	mode, err := quote.ParseCartonMode(dto.Mode)
	if err != nil {
		return quote.CartonDimensions{}, err
	}

	presetPairs := dto.PresetPairs
	if presetPairs == 0 {
		presetPairs = pairCount
	}

	return engine.ResolveCarton(mode, presetPairs, quote.CartonDimensions{
		LengthCm: dto.LengthCm,
		WidthCm:  dto.WidthCm,
		HeightCm: dto.HeightCm,
	}), nil
}

func toCartonInput(dto *Carton, pairCount int) model.CartonInput {
	presetPairs := dto.PresetPairs
	if presetPairs == 0 {
		presetPairs = pairCount
	}

	return model.CartonInput{
		Mode:        dto.Mode,
		PresetPairs: presetPairs,
		LengthCm:    dto.LengthCm,
		WidthCm:     dto.WidthCm,
		HeightCm:    dto.HeightCm,
	}
}
