package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/areed15ev/shipping-calculator/internal/model"
	"github.com/areed15ev/shipping-calculator/internal/quote"
	"github.com/areed15ev/shipping-calculator/pkg/config"
)

var (
	configPath = flag.String("config", "", "配置文件路径（缺省使用内置承运商与箱型）")
	fxRate     = flag.Float64("fx", 7.2, "人民币兑美元汇率（展示换算）")
	casesPath  = flag.String("cases", "", "额外测试用例 JSON 路径")
)

// TestCase 测试用例结构
type TestCase struct {
	Name           string  `json:"name"`
	PairCount      int     `json:"pair_count"`
	ActualWeightKg float64 `json:"actual_weight_kg"`
	PresetPairs    int     `json:"preset_pairs"`

	// 期望值：ExpectBest 为空表示期望全部承运商超范围
	ExpectBest     string             `json:"expect_best"`
	ExpectCostRmb  *float64           `json:"expect_cost_rmb"`
	ExpectRowCosts map[string]float64 `json:"expect_row_costs,omitempty"` // 指定承运商的期望费用
}

func main() {
	flag.Parse()

	fmt.Println("========================================")
	fmt.Println("  FastTest - 报价引擎快速验证工具")
	fmt.Println("========================================")

	// 1. 装配引擎
	engine := quote.DefaultEngine()
	if *configPath != "" {
		cfg, err := config.Load(*configPath)
		if err != nil {
			fmt.Printf("❌ Failed to load config: %v\n", err)
			os.Exit(1)
		}
		engine, err = cfg.BuildEngine()
		if err != nil {
			fmt.Printf("❌ Failed to build engine: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("✅ Config loaded: %s\n", cfg.App.Name)
	} else {
		fmt.Println("✅ Using built-in carriers and cartons")
	}
	fmt.Printf("✅ Carriers: %d, fx rate: %.2f\n", len(engine.Carriers()), *fxRate)

	// 2. 组装测试用例
	testCases := builtinCases()
	if *casesPath != "" {
		extra, err := loadTestCases(*casesPath)
		if err != nil {
			fmt.Printf("❌ Failed to load test cases: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("✅ Loaded %d extra test cases from %s\n", len(extra), *casesPath)
		testCases = append(testCases, extra...)
	}

	// 3. 执行测试用例
	fmt.Println("\n========================================")
	fmt.Println("  Running Test Cases")
	fmt.Println("========================================")

	successCount := 0
	failureCount := 0

	for i, tc := range testCases {
		fmt.Printf("\n[Test %d/%d] %s: pairs=%d, weight=%.2fkg\n",
			i+1, len(testCases), tc.Name, tc.PairCount, tc.ActualWeightKg)
		fmt.Println("----------------------------------------")

		startTime := time.Now()
		err := runTestCase(engine, tc, *fxRate)
		duration := time.Since(startTime)

		if err != nil {
			fmt.Printf("❌ FAILED: %v\n", err)
			fmt.Printf("⏱️  Duration: %v\n", duration)
			failureCount++
		} else {
			fmt.Printf("✅ PASSED\n")
			fmt.Printf("⏱️  Duration: %v\n", duration)
			successCount++
		}
	}

	// 4. 输出测试汇总
	fmt.Println("\n========================================")
	fmt.Println("  Test Summary")
	fmt.Println("========================================")
	fmt.Printf("Total: %d\n", len(testCases))
	fmt.Printf("Passed: %d ✅\n", successCount)
	fmt.Printf("Failed: %d ❌\n", failureCount)

	if failureCount > 0 {
		os.Exit(1)
	}
}

// builtinCases 内置用例，覆盖泡重、按双、上限与全超范围场景
func builtinCases() []TestCase {
	cost := func(v float64) *float64 { return &v }
	return []TestCase{
		{Name: "standard 2-pair shipment", PairCount: 2, ActualWeightKg: 3.2, PresetPairs: 2,
			ExpectBest: "UPS Slow", ExpectCostRmb: cost(360),
			ExpectRowCosts: map[string]float64{"UPS Fast": 510, "EMS": 448}},
		{Name: "light single-pair shipment", PairCount: 1, ActualWeightKg: 0.4, PresetPairs: 1,
			ExpectBest: "EMS", ExpectCostRmb: cost(104)},
		{Name: "heavy 16kg shipment", PairCount: 2, ActualWeightKg: 16, PresetPairs: 2,
			ExpectBest: "UPS Slow", ExpectCostRmb: cost(1485)},
		{Name: "bulk ten-pair shipment", PairCount: 10, ActualWeightKg: 12, PresetPairs: 10,
			ExpectBest: "UPS Slow", ExpectCostRmb: cost(1125)},
		{Name: "over-cap 25kg shipment", PairCount: 2, ActualWeightKg: 25, PresetPairs: 2,
			ExpectBest: ""},
		{Name: "zero weight shipment", PairCount: 1, ActualWeightKg: 0, PresetPairs: 1,
			ExpectBest: "EMS", ExpectCostRmb: cost(64)},
	}
}

// loadTestCases 从 JSON 文件加载测试用例
func loadTestCases(path string) ([]TestCase, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read testcase file: %w", err)
	}

	var testCases []TestCase
	if err := json.Unmarshal(data, &testCases); err != nil {
		return nil, fmt.Errorf("failed to unmarshal testcase: %w", err)
	}

	return testCases, nil
}

// findRow 按承运商名取结果行
func findRow(rows []model.QuoteRowData, carrier string) *model.QuoteRowData {
	for i := range rows {
		if rows[i].Carrier == carrier {
			return &rows[i]
		}
	}
	return nil
}

// runTestCase 执行单个用例并校验期望值
func runTestCase(engine *quote.Engine, tc TestCase, fx float64) error {
	presetPairs := tc.PresetPairs
	if presetPairs == 0 {
		presetPairs = tc.PairCount
	}
	carton := engine.ResolveCarton(quote.CartonPreset, presetPairs, quote.CartonDimensions{})

	res, err := engine.Quote(quote.Input{
		PairCount:      tc.PairCount,
		ActualWeightKg: tc.ActualWeightKg,
		Carton:         carton,
	})
	if err != nil {
		return fmt.Errorf("quote failed: %w", err)
	}

	data := model.QuoteResultFromEngine(res, fx)
	for _, row := range data.Rows {
		if row.OutOfRange {
			fmt.Printf("    - %-10s OUT OF RANGE  %s\n", row.Carrier, row.Note)
			continue
		}
		line := fmt.Sprintf("    - %-10s ¥%.2f", row.Carrier, *row.CostRmb)
		if row.CostUsd != nil {
			line += fmt.Sprintf(" ($%.2f)", *row.CostUsd)
		}
		if row.BilledWeightKg != nil {
			line += fmt.Sprintf("  billed=%.1fkg", *row.BilledWeightKg)
		}
		fmt.Println(line)
	}

	for carrier, want := range tc.ExpectRowCosts {
		row := findRow(data.Rows, carrier)
		if row == nil {
			return fmt.Errorf("carrier %s missing from result", carrier)
		}
		if row.OutOfRange || row.CostRmb == nil {
			return fmt.Errorf("carrier %s out of range, want cost %.2f", carrier, want)
		}
		if math.Abs(*row.CostRmb-want) > 1e-6 {
			return fmt.Errorf("carrier %s cost = %.2f, want %.2f", carrier, *row.CostRmb, want)
		}
	}

	if tc.ExpectBest == "" {
		if data.Best != nil {
			return fmt.Errorf("expected all carriers out of range, got best %s", data.Best.Carrier)
		}
		fmt.Println("  ✓ All carriers out of range as expected")
		return nil
	}

	if data.Best == nil {
		return fmt.Errorf("expected best %s, all carriers out of range", tc.ExpectBest)
	}
	if data.Best.Carrier != tc.ExpectBest {
		return fmt.Errorf("best carrier = %s, want %s", data.Best.Carrier, tc.ExpectBest)
	}
	if tc.ExpectCostRmb != nil && math.Abs(*data.Best.CostRmb-*tc.ExpectCostRmb) > 1e-6 {
		return fmt.Errorf("best cost = %.2f, want %.2f", *data.Best.CostRmb, *tc.ExpectCostRmb)
	}

	fmt.Printf("  ✓ Best: %s ¥%.2f\n", data.Best.Carrier, *data.Best.CostRmb)
	return nil
}
