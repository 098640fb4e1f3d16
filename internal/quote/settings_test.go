package quote

import "testing"

func TestBuildEngineFromSettings(t *testing.T) {
	carriers := []CarrierSetting{
		{
			Name:       "ACME Air",
			Kind:       "dim",
			DimDivisor: 5000,
			CapKg:      10,
			Tiers: []TierSetting{
				{CeilingKg: 0.5, PriceRmb: 25},
				{CeilingKg: 1.0, PriceRmb: 40},
			},
		},
		{
			Name:         "Postal",
			Kind:         "per_pair",
			CapKg:        12,
			CoefficientA: 80,
			CoefficientB: 30,
		},
	}
	cartons := []CartonSetting{
		{Pairs: 1, LengthCm: 30, WidthCm: 20, HeightCm: 10},
		{Pairs: 2, LengthCm: 40, WidthCm: 25, HeightCm: 12},
	}

	e, err := BuildEngine(carriers, cartons)
	if err != nil {
		t.Fatalf("BuildEngine: %v", err)
	}

	specs := e.Carriers()
	if len(specs) != 2 {
		t.Fatalf("expected 2 carriers, got %d", len(specs))
	}
	if specs[0].Name != "ACME Air" || specs[0].Kind != KindDIM || specs[0].DimDivisor != 5000 {
		t.Fatalf("unexpected first carrier: %+v", specs[0])
	}
	if specs[0].CapKg.Kg() != 10 {
		t.Fatalf("first carrier cap = %v, want 10", specs[0].CapKg.Kg())
	}
	if specs[1].Kind != KindPerPair || specs[1].Formula.CoefficientA != 80 {
		t.Fatalf("unexpected second carrier: %+v", specs[1])
	}
	if len(e.Presets()) != 2 {
		t.Fatalf("expected 2 presets, got %d", len(e.Presets()))
	}
}

func TestBuildEngineDefaults(t *testing.T) {
	// 空配置回退到内置承运商与箱型
	e, err := BuildEngine(nil, nil)
	if err != nil {
		t.Fatalf("BuildEngine: %v", err)
	}
	if len(e.Carriers()) != 3 || len(e.Presets()) != 10 {
		t.Fatalf("expected built-in defaults, got %d carriers %d presets",
			len(e.Carriers()), len(e.Presets()))
	}
}

func TestBuildEngineRejectsBadSettings(t *testing.T) {
	tests := []struct {
		name     string
		carriers []CarrierSetting
		cartons  []CartonSetting
	}{
		{"unknown kind", []CarrierSetting{{Name: "X", Kind: "teleport"}}, nil},
		{"off-grid tier", []CarrierSetting{{
			Name: "X", Kind: "dim", DimDivisor: 6000,
			Tiers: []TierSetting{{CeilingKg: 0.3, PriceRmb: 10}},
		}}, nil},
		{"off-grid cap", []CarrierSetting{{
			Name: "X", Kind: "dim", DimDivisor: 6000, CapKg: 9.7,
			Tiers: []TierSetting{{CeilingKg: 0.5, PriceRmb: 10}},
		}}, nil},
		{"cartons without single-pair entry", nil, []CartonSetting{
			{Pairs: 2, LengthCm: 40, WidthCm: 25, HeightCm: 12},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := BuildEngine(tt.carriers, tt.cartons); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}
