package advisor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tharagrowth-api/internal/models"
)

func TestStrategyFor(t *testing.T) {
	tests := []struct {
		risk string
		want string
	}{
		{"low", "conservative"},
		{"medium", "balanced"},
		{"high", "aggressive"},
		{"", "balanced"},
		{"yolo", "balanced"},
	}

	for _, tt := range tests {
		t.Run(tt.risk, func(t *testing.T) {
			assert.Equal(t, tt.want, StrategyFor(tt.risk))
		})
	}
}

func TestCreateProfileBudgetTiers(t *testing.T) {
	p := NewProfiler()

	tests := []struct {
		budgetUSD float64
		wantType  string
	}{
		{5_000, "medium_capital_growth_starter"},
		{9_999, "medium_capital_growth_starter"},
		{10_000, "medium_capital_growth_intermediate"},
		{99_999, "medium_capital_growth_intermediate"},
		{100_000, "medium_capital_growth_advanced"},
		{2_500_000, "medium_capital_growth_advanced"},
	}

	input := models.UserInput{
		Currency:        "USD",
		Goal:            "capital_growth",
		RiskAppetite:    "medium",
		InvestmentTypes: []string{"stocks"},
	}

	for _, tt := range tests {
		profile := p.CreateProfile(input, tt.budgetUSD)
		assert.Equal(t, tt.wantType, profile.Type, "budget=%f", tt.budgetUSD)
	}
}

func TestCreateProfileFields(t *testing.T) {
	p := NewProfiler()

	input := models.UserInput{
		Budget:          183_500,
		Currency:        "AED",
		Goal:            "passive_income",
		RiskAppetite:    "low",
		InvestmentTypes: []string{"bonds", "sukuk"},
	}

	profile := p.CreateProfile(input, 50_000)

	require.NotEmpty(t, profile.ID)
	assert.Equal(t, "low", profile.RiskTolerance)
	assert.Equal(t, "passive_income", profile.InvestmentGoal)
	assert.Equal(t, 50_000.0, profile.BudgetUSD)
	assert.Equal(t, "AED", profile.Currency)
	assert.Equal(t, "safety_first", profile.AllocationStrategy)
	assert.Equal(t, [2]float64{3, 6}, profile.ExpectedReturnRange)
	// passive_income overrides the template horizon and liquidity.
	assert.Equal(t, "medium", profile.TimeHorizon)
	assert.Equal(t, "medium", profile.LiquidityPreference)
	assert.False(t, profile.CreatedAt.IsZero())
}

func TestGoalAdjustmentFallsBackToCapitalGrowth(t *testing.T) {
	p := NewProfiler()

	input := models.UserInput{
		Currency:        "USD",
		Goal:            "world_domination",
		RiskAppetite:    "medium",
		InvestmentTypes: []string{"stocks"},
	}

	profile := p.CreateProfile(input, 20_000)

	// capital_growth defaults: long horizon, low liquidity.
	assert.Equal(t, "long", profile.TimeHorizon)
	assert.Equal(t, "low", profile.LiquidityPreference)
}

func TestQuickStartTypes(t *testing.T) {
	assert.Equal(t, []string{"bonds", "sukuk", "gold"}, QuickStartTypes("low"))
	assert.Equal(t, []string{"real_estate", "stocks", "gold"}, QuickStartTypes("medium"))
	assert.Equal(t, []string{"stocks", "crowdfunding", "real_estate"}, QuickStartTypes("high"))
	assert.Equal(t, []string{"real_estate", "stocks", "gold"}, QuickStartTypes("unknown"))
}

func TestQuickStartTypesReturnsCopy(t *testing.T) {
	types := QuickStartTypes("low")
	types[0] = "mutated"
	assert.Equal(t, []string{"bonds", "sukuk", "gold"}, QuickStartTypes("low"))
}
