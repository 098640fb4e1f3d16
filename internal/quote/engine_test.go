package quote

import (
	"errors"
	"math"
	"reflect"
	"strings"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

// 两双鞋、2号纸箱、实重 3.2kg 的基准场景
func benchmarkInput(t *testing.T, e *Engine) Input {
	t.Helper()
	return Input{
		PairCount:      2,
		ActualWeightKg: 3.2,
		Carton:         e.ResolveCarton(CartonPreset, 2, CartonDimensions{}),
	}
}

func TestQuoteDefaultCarriers(t *testing.T) {
	e := DefaultEngine()
	res, err := e.Quote(benchmarkInput(t, e))
	if err != nil {
		t.Fatalf("Quote: %v", err)
	}
	if len(res.Rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(res.Rows))
	}

	// 行序与承运商声明顺序一致
	wantOrder := []string{"UPS Fast", "UPS Slow", "EMS"}
	for i, want := range wantOrder {
		if res.Rows[i].Carrier != want {
			t.Fatalf("row %d carrier = %q, want %q", i, res.Rows[i].Carrier, want)
		}
	}

	fast := res.Rows[0]
	if fast.BilledWeightKg == nil || *fast.BilledWeightKg != 3.5 {
		t.Fatalf("UPS Fast billed weight = %v, want 3.5", fast.BilledWeightKg)
	}
	if fast.CostRmb == nil || *fast.CostRmb != 510 {
		t.Fatalf("UPS Fast cost = %v, want 510", fast.CostRmb)
	}

	slow := res.Rows[1]
	if slow.BilledWeightKg == nil || *slow.BilledWeightKg != 3.5 {
		t.Fatalf("UPS Slow billed weight = %v, want 3.5", slow.BilledWeightKg)
	}
	if slow.CostRmb == nil || *slow.CostRmb != 360 {
		t.Fatalf("UPS Slow cost = %v, want 360", slow.CostRmb)
	}

	ems := res.Rows[2]
	if ems.BilledWeightKg != nil {
		t.Fatalf("per-pair carrier must not report a billed weight, got %v", *ems.BilledWeightKg)
	}
	if ems.CostRmb == nil || !almostEqual(*ems.CostRmb, 448) {
		t.Fatalf("EMS cost = %v, want 448", ems.CostRmb)
	}
	if !strings.Contains(ems.Note, "224.00") {
		t.Fatalf("per-pair note should expose the per-pair cost, got %q", ems.Note)
	}
	if !strings.Contains(ems.Note, "2 pairs") {
		t.Fatalf("per-pair note should expose the pair count, got %q", ems.Note)
	}

	if res.Best == nil {
		t.Fatalf("expected a best row")
	}
	if res.Best.Carrier != "UPS Slow" || !almostEqual(*res.Best.CostRmb, 360) {
		t.Fatalf("best = %q %v, want UPS Slow 360", res.Best.Carrier, res.Best.CostRmb)
	}
}

func TestQuoteDimNoteContents(t *testing.T) {
	e := DefaultEngine()
	res, err := e.Quote(benchmarkInput(t, e))
	if err != nil {
		t.Fatalf("Quote: %v", err)
	}

	// 泡重按 长×宽×高/6000 推导，备注里保留三位小数
	note := res.Rows[0].Note
	if !strings.Contains(note, "2.414") {
		t.Fatalf("dim note should contain the dim weight, got %q", note)
	}
	if !strings.Contains(note, "3.5") {
		t.Fatalf("dim note should contain the billed weight, got %q", note)
	}
}

func TestQuoteAllCarriersOutOfRange(t *testing.T) {
	e := DefaultEngine()
	in := Input{
		PairCount:      2,
		ActualWeightKg: 25,
		Carton:         e.ResolveCarton(CartonPreset, 2, CartonDimensions{}),
	}
	res, err := e.Quote(in)
	if err != nil {
		t.Fatalf("Quote: %v", err)
	}

	for _, row := range res.Rows {
		if !row.OutOfRange() {
			t.Fatalf("carrier %q should be out of range at 25kg, got cost %v", row.Carrier, row.CostRmb)
		}
		if row.Note == "" {
			t.Fatalf("carrier %q out-of-range row should carry a note", row.Carrier)
		}
	}
	if res.Best != nil {
		t.Fatalf("expected no best row, got %q", res.Best.Carrier)
	}

	// 超范围的分段计价承运商仍给出计费重量
	if res.Rows[0].BilledWeightKg == nil || *res.Rows[0].BilledWeightKg != 25 {
		t.Fatalf("UPS Fast billed weight = %v, want 25", res.Rows[0].BilledWeightKg)
	}
}

func TestQuotePartialOutOfRange(t *testing.T) {
	// 16kg：EMS 上限 15kg 超范围，UPS 两档仍可计价
	e := DefaultEngine()
	in := Input{
		PairCount:      2,
		ActualWeightKg: 16,
		Carton:         e.ResolveCarton(CartonPreset, 2, CartonDimensions{}),
	}
	res, err := e.Quote(in)
	if err != nil {
		t.Fatalf("Quote: %v", err)
	}

	if res.Rows[0].CostRmb == nil || *res.Rows[0].CostRmb != 2010 {
		t.Fatalf("UPS Fast cost = %v, want 2010", res.Rows[0].CostRmb)
	}
	if res.Rows[1].CostRmb == nil || *res.Rows[1].CostRmb != 1485 {
		t.Fatalf("UPS Slow cost = %v, want 1485", res.Rows[1].CostRmb)
	}
	if !res.Rows[2].OutOfRange() {
		t.Fatalf("EMS should be out of range at 16kg total")
	}
	if res.Best == nil || res.Best.Carrier != "UPS Slow" {
		t.Fatalf("best should be UPS Slow, got %+v", res.Best)
	}
}

func TestQuoteCapPrecedesTableExtent(t *testing.T) {
	// 价格表到 30kg 但显式上限 20kg：25kg 仍判超范围
	capped := CarrierSpec{
		Name:       "Capped",
		Kind:       KindDIM,
		DimDivisor: 6000,
		Table:      mustTestTable(t, affineTiers(100, 50, 30)),
		CapKg:      CeilToHalfKg(20),
	}
	e, err := NewEngine([]CarrierSpec{capped}, DefaultCartonPresets())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}

	res, err := e.Quote(Input{PairCount: 1, ActualWeightKg: 25, Carton: CartonDimensions{10, 10, 10}})
	if err != nil {
		t.Fatalf("Quote: %v", err)
	}
	if !res.Rows[0].OutOfRange() {
		t.Fatalf("cap should override table extent, got cost %v", res.Rows[0].CostRmb)
	}
	if !strings.Contains(res.Rows[0].Note, "20.0") {
		t.Fatalf("out-of-range note should name the limit, got %q", res.Rows[0].Note)
	}
	if res.Best != nil {
		t.Fatalf("expected no best row")
	}

	// 上限以内正常查表
	res, err = e.Quote(Input{PairCount: 1, ActualWeightKg: 19.8, Carton: CartonDimensions{10, 10, 10}})
	if err != nil {
		t.Fatalf("Quote: %v", err)
	}
	if res.Rows[0].CostRmb == nil || *res.Rows[0].CostRmb != 100+50*39 {
		t.Fatalf("cost at 20kg = %v, want %d", res.Rows[0].CostRmb, 100+50*39)
	}
}

func TestQuoteTieBreakFirstDeclared(t *testing.T) {
	alpha := CarrierSpec{Name: "Alpha", Kind: KindDIM, DimDivisor: 6000,
		Table: mustTestTable(t, []RateTier{{CeilingKg: 5, PriceRmb: 200}})}
	beta := CarrierSpec{Name: "Beta", Kind: KindDIM, DimDivisor: 6000,
		Table: mustTestTable(t, []RateTier{{CeilingKg: 5, PriceRmb: 200}})}

	e, err := NewEngine([]CarrierSpec{alpha, beta}, DefaultCartonPresets())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}

	in := Input{PairCount: 1, ActualWeightKg: 1, Carton: CartonDimensions{10, 10, 10}}
	for i := 0; i < 10; i++ {
		res, err := e.Quote(in)
		if err != nil {
			t.Fatalf("Quote: %v", err)
		}
		if res.Best == nil || res.Best.Carrier != "Alpha" {
			t.Fatalf("tie must resolve to first declared carrier, got %+v", res.Best)
		}
	}
}

func TestQuoteIdempotent(t *testing.T) {
	e := DefaultEngine()
	in := benchmarkInput(t, e)

	first, err := e.Quote(in)
	if err != nil {
		t.Fatalf("Quote: %v", err)
	}
	second, err := e.Quote(in)
	if err != nil {
		t.Fatalf("Quote: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("identical inputs produced different results:\n%+v\n%+v", first, second)
	}
}

func TestQuoteInvalidPairCount(t *testing.T) {
	e := DefaultEngine()
	carton := e.ResolveCarton(CartonPreset, 1, CartonDimensions{})

	for _, pc := range []int{0, -3} {
		_, err := e.Quote(Input{PairCount: pc, ActualWeightKg: 1, Carton: carton})
		if !errors.Is(err, ErrInvalidPairCount) {
			t.Fatalf("PairCount=%d: err = %v, want ErrInvalidPairCount", pc, err)
		}
	}
}

func TestQuoteZeroWeight(t *testing.T) {
	// 实重与体积都为零时计费重量为 0，仍落在首档
	e := DefaultEngine()
	res, err := e.Quote(Input{PairCount: 1, ActualWeightKg: 0, Carton: CartonDimensions{}})
	if err != nil {
		t.Fatalf("Quote: %v", err)
	}
	if res.Rows[0].CostRmb == nil || *res.Rows[0].CostRmb != 150 {
		t.Fatalf("UPS Fast zero-weight cost = %v, want first tier 150", res.Rows[0].CostRmb)
	}
	if res.Rows[1].CostRmb == nil || *res.Rows[1].CostRmb != 90 {
		t.Fatalf("UPS Slow zero-weight cost = %v, want first tier 90", res.Rows[1].CostRmb)
	}
}

func TestQuoteBestAliasesRow(t *testing.T) {
	e := DefaultEngine()
	res, err := e.Quote(benchmarkInput(t, e))
	if err != nil {
		t.Fatalf("Quote: %v", err)
	}
	if res.Best != &res.Rows[1] {
		t.Fatalf("best should alias the winning row")
	}
}

func TestNewEngineValidation(t *testing.T) {
	presets := DefaultCartonPresets()
	table := mustTestTable(t, []RateTier{{CeilingKg: 1, PriceRmb: 10}})

	tests := []struct {
		name     string
		carriers []CarrierSpec
		presets  CartonPresets
	}{
		{"no carriers", nil, presets},
		{"duplicate carrier name", []CarrierSpec{
			{Name: "X", Kind: KindDIM, DimDivisor: 6000, Table: table},
			{Name: "X", Kind: KindDIM, DimDivisor: 6000, Table: table},
		}, presets},
		{"dim carrier without table", []CarrierSpec{
			{Name: "X", Kind: KindDIM, DimDivisor: 6000},
		}, presets},
		{"dim carrier without divisor", []CarrierSpec{
			{Name: "X", Kind: KindDIM, Table: table},
		}, presets},
		{"unnamed carrier", []CarrierSpec{
			{Kind: KindDIM, DimDivisor: 6000, Table: table},
		}, presets},
		{"no presets", []CarrierSpec{
			{Name: "X", Kind: KindDIM, DimDivisor: 6000, Table: table},
		}, nil},
		{"presets missing single-pair entry", []CarrierSpec{
			{Name: "X", Kind: KindDIM, DimDivisor: 6000, Table: table},
		}, CartonPresets{2: {37, 27, 14.5}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewEngine(tt.carriers, tt.presets); err == nil {
				t.Fatalf("expected construction error")
			}
		})
	}
}
