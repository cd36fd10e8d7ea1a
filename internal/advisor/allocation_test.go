package advisor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allocationSum(allocation map[string]float64) float64 {
	total := 0.0
	for _, v := range allocation {
		total += v
	}
	return total
}

func TestBuildPlanAllocationInvariants(t *testing.T) {
	engine := NewEngine()

	risks := []string{"low", "medium", "high"}
	goals := []string{
		"retirement", "passive_income", "capital_growth",
		"children_education", "wealth_preservation", "emergency_fund",
	}
	preferenceSets := [][]string{
		nil,
		{"stocks"},
		{"gold", "bonds"},
		{"stocks", "real_estate", "gold"},
		{"real_estate", "gold", "stocks", "crowdfunding", "sukuk", "bonds"},
	}

	for _, risk := range risks {
		for _, goal := range goals {
			for _, prefs := range preferenceSets {
				plan := engine.BuildPlan(risk, goal, prefs, "long", "en")

				sum := allocationSum(plan.Allocation)
				assert.InDelta(t, 100.0, sum, 0.2,
					"risk=%s goal=%s prefs=%v sum=%f", risk, goal, prefs, sum)

				for asset, pct := range plan.Allocation {
					assert.GreaterOrEqual(t, pct, 0.0,
						"risk=%s goal=%s prefs=%v asset=%s", risk, goal, prefs, asset)
				}
			}
		}
	}
}

func TestEmptyPreferencesKeepBaseTable(t *testing.T) {
	engine := NewEngine()

	for strategy, base := range baseStrategies {
		var risk string
		switch strategy {
		case "conservative":
			risk = "low"
		case "balanced":
			risk = "medium"
		case "aggressive":
			risk = "high"
		}

		// capital_growth carries no allocation multipliers, so the plan
		// must reproduce the base table.
		plan := engine.BuildPlan(risk, "capital_growth", nil, "long", "en")

		require.Len(t, plan.Allocation, len(base))
		for asset, pct := range base {
			assert.InDelta(t, pct, plan.Allocation[asset], 0.05,
				"strategy=%s asset=%s", strategy, asset)
		}
	}
}

func TestWorkedExampleBalancedGrowth(t *testing.T) {
	engine := NewEngine()

	plan := engine.BuildPlan("medium", "capital_growth",
		[]string{"stocks", "real_estate", "gold"}, "long", "en")

	assert.Equal(t, "balanced", plan.Strategy)

	// Boosting stocks/real_estate/gold by 20% and reducing bonds/sukuk
	// proportionally, then renormalizing, yields this table.
	expected := map[string]float64{
		"stocks":      43.1,
		"real_estate": 27.0,
		"gold":        10.8,
		"bonds":       11.5,
		"sukuk":       7.6,
	}
	require.Len(t, plan.Allocation, len(expected))
	for asset, pct := range expected {
		assert.InDelta(t, pct, plan.Allocation[asset], 0.1, "asset=%s", asset)
	}

	// Blended return must land in the balanced band scaled by the
	// medium risk factor.
	assert.GreaterOrEqual(t, plan.ExpectedAnnualReturn, 5.0*0.9)
	assert.LessOrEqual(t, plan.ExpectedAnnualReturn, 10.0*0.9)
	assert.InDelta(t, 6.6, plan.ExpectedAnnualReturn, 0.1)
}

func TestUnknownGoalIsNoOpForAllocation(t *testing.T) {
	engine := NewEngine()

	known := engine.BuildPlan("medium", "capital_growth", nil, "long", "en")
	unknown := engine.BuildPlan("medium", "day_trading", nil, "long", "en")

	assert.Equal(t, known.Allocation, unknown.Allocation)
}

func TestGoalMultipliersShiftAllocation(t *testing.T) {
	engine := NewEngine()

	base := engine.BuildPlan("low", "capital_growth", nil, "long", "en")
	preserved := engine.BuildPlan("low", "wealth_preservation", nil, "long", "en")

	// wealth_preservation multiplies gold by 1.4 and cuts stocks to 0.7,
	// so gold gains share and stocks lose it.
	assert.Greater(t, preserved.Allocation["gold"], base.Allocation["gold"])
	assert.Less(t, preserved.Allocation["stocks"], base.Allocation["stocks"])
}

func TestExpectedReturnRiskScaling(t *testing.T) {
	tests := []struct {
		risk   string
		factor float64
	}{
		{"low", 0.8},
		{"medium", 0.9},
		{"high", 1.0},
	}

	allocation := map[string]float64{"stocks": 50, "bonds": 50}
	// 0.5*9.0 + 0.5*4.0 = 6.5 before scaling
	for _, tt := range tests {
		t.Run(tt.risk, func(t *testing.T) {
			got := expectedReturn(allocation, tt.risk)
			assert.InDelta(t, round1(6.5*tt.factor), got, 0.001)
		})
	}
}

func TestExpectedReturnUnknownRiskDefaultsToMedium(t *testing.T) {
	allocation := map[string]float64{"stocks": 100}
	assert.InDelta(t, round1(9.0*0.9), expectedReturn(allocation, "extreme"), 0.001)
}

func TestReviewFrequency(t *testing.T) {
	assert.Equal(t, "Every 12 months", ReviewFrequency("conservative"))
	assert.Equal(t, "Every 6 months", ReviewFrequency("balanced"))
	assert.Equal(t, "Every 3 months", ReviewFrequency("aggressive"))
	assert.Equal(t, "Every 6 months", ReviewFrequency("unheard_of"))
}

func TestPlanNarrativeLocalized(t *testing.T) {
	engine := NewEngine()

	en := engine.BuildPlan("medium", "capital_growth", nil, "long", "en")
	ar := engine.BuildPlan("medium", "capital_growth", nil, "long", "ar")
	de := engine.BuildPlan("medium", "capital_growth", nil, "long", "de")

	assert.NotEmpty(t, en.Rationale)
	assert.NotEmpty(t, ar.Rationale)
	assert.NotEqual(t, en.Rationale, ar.Rationale)
	// Unknown locale falls back to English.
	assert.Equal(t, en.Rationale, de.Rationale)
	assert.Equal(t, en.PersonalizedTips, de.PersonalizedTips)
}
