package model

import (
	"math"
	"testing"

	"github.com/areed15ev/shipping-calculator/internal/quote"
)

func TestQuoteResultFromEngine(t *testing.T) {
	e := quote.DefaultEngine()
	res, err := e.Quote(quote.Input{
		PairCount:      2,
		ActualWeightKg: 3.2,
		Carton:         e.ResolveCarton(quote.CartonPreset, 2, quote.CartonDimensions{}),
	})
	if err != nil {
		t.Fatalf("Quote: %v", err)
	}

	data := QuoteResultFromEngine(res, 7.2)

	if len(data.Rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(data.Rows))
	}

	fast := data.Rows[0]
	if fast.Carrier != "UPS Fast" || fast.CostRmb == nil || *fast.CostRmb != 510 {
		t.Fatalf("unexpected first row: %+v", fast)
	}
	if fast.CostUsd == nil || math.Abs(*fast.CostUsd-70.83) > 1e-9 {
		t.Fatalf("UPS Fast usd = %v, want 70.83", fast.CostUsd)
	}
	if fast.OutOfRange {
		t.Fatalf("UPS Fast should be in range")
	}

	ems := data.Rows[2]
	if ems.BilledWeightKg != nil {
		t.Fatalf("per-pair row must not carry billed weight")
	}
	if ems.CostRmb == nil || *ems.CostRmb != 448 {
		t.Fatalf("EMS rmb = %v, want 448", ems.CostRmb)
	}

	if data.Best == nil || data.Best.Carrier != "UPS Slow" {
		t.Fatalf("best = %+v, want UPS Slow", data.Best)
	}
	if data.Best.CostUsd == nil || *data.Best.CostUsd != 50 {
		t.Fatalf("best usd = %v, want 50", data.Best.CostUsd)
	}
}

func TestQuoteResultFromEngineNoFx(t *testing.T) {
	e := quote.DefaultEngine()
	res, err := e.Quote(quote.Input{
		PairCount:      1,
		ActualWeightKg: 1,
		Carton:         e.ResolveCarton(quote.CartonPreset, 1, quote.CartonDimensions{}),
	})
	if err != nil {
		t.Fatalf("Quote: %v", err)
	}

	data := QuoteResultFromEngine(res, 0)
	for _, row := range data.Rows {
		if row.CostUsd != nil {
			t.Fatalf("usd must be absent without a rate, got %v for %s", *row.CostUsd, row.Carrier)
		}
	}
}

func TestQuoteResultFromEngineOutOfRange(t *testing.T) {
	e := quote.DefaultEngine()
	res, err := e.Quote(quote.Input{
		PairCount:      2,
		ActualWeightKg: 25,
		Carton:         e.ResolveCarton(quote.CartonPreset, 2, quote.CartonDimensions{}),
	})
	if err != nil {
		t.Fatalf("Quote: %v", err)
	}

	data := QuoteResultFromEngine(res, 7.2)
	if data.Best != nil {
		t.Fatalf("best must be absent when all rows are out of range")
	}
	for _, row := range data.Rows {
		if !row.OutOfRange || row.CostRmb != nil || row.CostUsd != nil {
			t.Fatalf("row should be out of range with absent costs: %+v", row)
		}
	}
}
