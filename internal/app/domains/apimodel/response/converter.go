package response

import (
	"sort"

	"github.com/areed15ev/shipping-calculator/internal/model"
	"github.com/areed15ev/shipping-calculator/internal/quote"
)

// FromQuoteResult 从报价结果转换为响应 DTO
func FromQuoteResult(data *model.QuoteResultData) *QuoteResponse {
	resp := &QuoteResponse{
		Currency: CurrencyCNY,
		Rows:     make([]*QuoteRowResponse, 0, len(data.Rows)),
	}

	for i := range data.Rows {
		resp.Rows = append(resp.Rows, fromQuoteRow(&data.Rows[i]))
	}
	if data.Best != nil {
		resp.Best = fromQuoteRow(data.Best)
	}

	return resp
}

// FromBatchCallback 从批次回调转换为响应 DTO
func FromBatchCallback(cb *model.BatchQuoteCallback) *BatchQuoteResponse {
	resp := &BatchQuoteResponse{
		BatchID:     cb.BatchID,
		Status:      cb.Status,
		Results:     make([]*ShipmentResultResponse, 0, len(cb.Results)),
		Error:       cb.Error,
		ProcessedAt: cb.ProcessedAt,
	}

	for i := range cb.Results {
		r := &cb.Results[i]
		item := &ShipmentResultResponse{
			Reference: r.Reference,
			Status:    r.Status,
			Error:     r.Error,
		}
		if r.Quote != nil {
			item.Quote = FromQuoteResult(r.Quote)
		}
		resp.Results = append(resp.Results, item)
	}

	return resp
}

// FromCarrierSpecs 从承运商规格转换为响应 DTO（保持声明顺序）
func FromCarrierSpecs(specs []quote.CarrierSpec) []*CarrierResponse {
	out := make([]*CarrierResponse, 0, len(specs))
	for i := range specs {
		out = append(out, fromCarrierSpec(&specs[i]))
	}
	return out
}

// FromCartonPresets 从预设箱型表转换为响应 DTO（按双数升序）
func FromCartonPresets(presets quote.CartonPresets) []*CartonResponse {
	out := make([]*CartonResponse, 0, len(presets))
	for pairs, dims := range presets {
		out = append(out, &CartonResponse{
			Pairs:     pairs,
			LengthCm:  dims.LengthCm,
			WidthCm:   dims.WidthCm,
			HeightCm:  dims.HeightCm,
			VolumeCm3: dims.VolumeCm3(),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Pairs < out[j].Pairs })
	return out
}

func fromQuoteRow(row *model.QuoteRowData) *QuoteRowResponse {
	return &QuoteRowResponse{
		Carrier:        row.Carrier,
		BilledWeightKg: row.BilledWeightKg,
		CostRmb:        row.CostRmb,
		CostUsd:        row.CostUsd,
		OutOfRange:     row.OutOfRange,
		Note:           row.Note,
	}
}

func fromCarrierSpec(spec *quote.CarrierSpec) *CarrierResponse {
	resp := &CarrierResponse{
		Name:  spec.Name,
		Kind:  spec.Kind.String(),
		CapKg: spec.CapKg.Kg(),
	}

	switch spec.Kind {
	case quote.KindDIM:
		resp.DimDivisor = spec.DimDivisor
		if spec.Table != nil {
			resp.TierCount = spec.Table.Len()
			resp.MaxTierKg = spec.Table.MaxCeilingKg()
			resp.PriceMinRmb, resp.PriceMaxRmb = spec.Table.PriceRangeRmb()
		}
	case quote.KindPerPair:
		resp.Formula = &FormulaResponse{
			CoefficientA: spec.Formula.CoefficientA,
			CoefficientB: spec.Formula.CoefficientB,
		}
	}

	return resp
}
