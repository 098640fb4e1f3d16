package model

import (
	"math"

	"github.com/areed15ev/shipping-calculator/internal/quote"
)

// QuoteResultFromEngine 引擎结果转换为传输结构
// fxRate 为人民币兑美元除数（usd = rmb / fxRate），仅作展示换算，不参与比价
func QuoteResultFromEngine(res *quote.Result, fxRate float64) *QuoteResultData {
	out := &QuoteResultData{Rows: make([]QuoteRowData, 0, len(res.Rows))}

	for i := range res.Rows {
		out.Rows = append(out.Rows, rowFromEngine(&res.Rows[i], fxRate))
	}

	if res.Best != nil {
		for i := range res.Rows {
			if res.Best == &res.Rows[i] {
				best := out.Rows[i]
				out.Best = &best
				break
			}
		}
	}

	return out
}

func rowFromEngine(r *quote.Row, fxRate float64) QuoteRowData {
	out := QuoteRowData{
		Carrier:    r.Carrier,
		OutOfRange: r.OutOfRange(),
		Note:       r.Note,
	}

	if r.BilledWeightKg != nil {
		billed := *r.BilledWeightKg
		out.BilledWeightKg = &billed
	}

	if r.CostRmb != nil {
		rmb := round2(*r.CostRmb)
		out.CostRmb = &rmb
		if fxRate > 0 {
			usd := round2(*r.CostRmb / fxRate)
			out.CostUsd = &usd
		}
	}

	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
