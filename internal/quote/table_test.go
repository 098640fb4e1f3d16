package quote

import "testing"

func mustTestTable(t *testing.T, tiers []RateTier) *RateTable {
	t.Helper()
	tbl, err := NewRateTable(tiers)
	if err != nil {
		t.Fatalf("NewRateTable: %v", err)
	}
	return tbl
}

func TestRateTableLookup(t *testing.T) {
	tbl := mustTestTable(t, []RateTier{
		{CeilingKg: 0.5, PriceRmb: 20},
		{CeilingKg: 1.0, PriceRmb: 30},
		{CeilingKg: 1.5, PriceRmb: 38},
		{CeilingKg: 2.0, PriceRmb: 45},
	})

	tests := []struct {
		name      string
		billed    HalfKilos
		wantPrice int
		wantOK    bool
	}{
		{"zero takes first tier", 0, 20, true},
		{"first ceiling included", 1, 20, true},
		{"exact interior ceiling included", 2, 30, true},
		{"between ceilings takes next tier", 3, 38, true},
		{"top ceiling included", 4, 45, true},
		{"beyond top is out of range", 5, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			price, ok := tbl.Lookup(tt.billed)
			if ok != tt.wantOK || price != tt.wantPrice {
				t.Fatalf("Lookup(%d) = %d, %v, want %d, %v",
					tt.billed, price, ok, tt.wantPrice, tt.wantOK)
			}
		})
	}
}

func TestRateTableUnsortedInput(t *testing.T) {
	// 乱序声明的档位查价结果与有序声明一致
	tbl := mustTestTable(t, []RateTier{
		{CeilingKg: 2.0, PriceRmb: 45},
		{CeilingKg: 0.5, PriceRmb: 20},
		{CeilingKg: 1.5, PriceRmb: 38},
		{CeilingKg: 1.0, PriceRmb: 30},
	})

	if price, ok := tbl.Lookup(3); !ok || price != 38 {
		t.Fatalf("Lookup(3) = %d, %v, want 38, true", price, ok)
	}

	tiers := tbl.Tiers()
	for i := 1; i < len(tiers); i++ {
		if tiers[i].CeilingKg <= tiers[i-1].CeilingKg {
			t.Fatalf("tiers not strictly ascending: %v", tiers)
		}
	}
}

func TestRateTableMaxCeilingKg(t *testing.T) {
	tbl := mustTestTable(t, []RateTier{
		{CeilingKg: 0.5, PriceRmb: 20},
		{CeilingKg: 1.0, PriceRmb: 30},
	})
	if got := tbl.MaxCeilingKg(); got != 1.0 {
		t.Fatalf("MaxCeilingKg() = %v, want 1.0", got)
	}
	if tbl.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", tbl.Len())
	}
	if min, max := tbl.PriceRangeRmb(); min != 20 || max != 30 {
		t.Fatalf("PriceRangeRmb() = %d..%d, want 20..30", min, max)
	}
}

func TestNewRateTableValidation(t *testing.T) {
	tests := []struct {
		name  string
		tiers []RateTier
	}{
		{"empty table", nil},
		{"off-grid ceiling", []RateTier{{CeilingKg: 0.3, PriceRmb: 10}}},
		{"zero ceiling", []RateTier{{CeilingKg: 0, PriceRmb: 10}}},
		{"negative ceiling", []RateTier{{CeilingKg: -0.5, PriceRmb: 10}}},
		{"zero price", []RateTier{{CeilingKg: 0.5, PriceRmb: 0}}},
		{"negative price", []RateTier{{CeilingKg: 0.5, PriceRmb: -3}}},
		{"duplicate ceiling", []RateTier{{CeilingKg: 0.5, PriceRmb: 10}, {CeilingKg: 0.5, PriceRmb: 12}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewRateTable(tt.tiers); err == nil {
				t.Fatalf("expected construction error")
			}
		})
	}
}
