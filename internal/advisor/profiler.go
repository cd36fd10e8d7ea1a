package advisor

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"tharagrowth-api/internal/models"
)

type profileTemplate struct {
	RiskTolerance      string
	AllocationStrategy string
	ExpectedReturn     [2]float64
	TimeHorizon        string
	LiquidityNeeds     string
}

var profileTemplates = map[string]profileTemplate{
	"conservative": {
		RiskTolerance:      "low",
		AllocationStrategy: "safety_first",
		ExpectedReturn:     [2]float64{3, 6},
		TimeHorizon:        "medium_to_long",
		LiquidityNeeds:     "high",
	},
	"balanced": {
		RiskTolerance:      "medium",
		AllocationStrategy: "balanced_growth",
		ExpectedReturn:     [2]float64{5, 10},
		TimeHorizon:        "medium_to_long",
		LiquidityNeeds:     "medium",
	},
	"aggressive": {
		RiskTolerance:      "high",
		AllocationStrategy: "growth_focused",
		ExpectedReturn:     [2]float64{8, 15},
		TimeHorizon:        "long",
		LiquidityNeeds:     "low",
	},
}

type goalAdjustment struct {
	TimeHorizon    string
	Liquidity      string
	GrowthEmphasis float64
	SafetyEmphasis float64
	IncomeEmphasis float64
}

var goalAdjustments = map[string]goalAdjustment{
	"retirement": {
		TimeHorizon:    "long",
		Liquidity:      "low",
		GrowthEmphasis: 0.7,
		SafetyEmphasis: 0.3,
	},
	"passive_income": {
		TimeHorizon:    "medium",
		Liquidity:      "medium",
		IncomeEmphasis: 0.8,
		GrowthEmphasis: 0.2,
	},
	"capital_growth": {
		TimeHorizon:    "long",
		Liquidity:      "low",
		GrowthEmphasis: 0.9,
		SafetyEmphasis: 0.1,
	},
	"children_education": {
		TimeHorizon:    "medium",
		Liquidity:      "medium",
		GrowthEmphasis: 0.6,
		SafetyEmphasis: 0.4,
	},
	"wealth_preservation": {
		TimeHorizon:    "long",
		Liquidity:      "high",
		SafetyEmphasis: 0.8,
		GrowthEmphasis: 0.2,
	},
	"emergency_fund": {
		TimeHorizon:    "short",
		Liquidity:      "high",
		SafetyEmphasis: 0.9,
		GrowthEmphasis: 0.1,
	},
}

var quickStartDefaults = map[string][]string{
	"low":    {"bonds", "sukuk", "gold"},
	"medium": {"real_estate", "stocks", "gold"},
	"high":   {"stocks", "crowdfunding", "real_estate"},
}

// StrategyFor maps risk appetite to an allocation strategy. Unknown
// input degrades to balanced.
func StrategyFor(riskAppetite string) string {
	switch riskAppetite {
	case "low":
		return "conservative"
	case "medium":
		return "balanced"
	case "high":
		return "aggressive"
	default:
		return "balanced"
	}
}

// GoalAdjustmentFor returns the profile adjustments for a goal, falling
// back to capital_growth for unrecognized goals.
func GoalAdjustmentFor(goal string) goalAdjustment {
	if adj, ok := goalAdjustments[goal]; ok {
		return adj
	}
	return goalAdjustments["capital_growth"]
}

// QuickStartTypes returns the default preferred investment types for a
// quick-start submission at the given risk level.
func QuickStartTypes(riskAppetite string) []string {
	defaults, ok := quickStartDefaults[riskAppetite]
	if !ok {
		defaults = quickStartDefaults["medium"]
	}
	out := make([]string, len(defaults))
	copy(out, defaults)
	return out
}

// Profiler derives InvestmentProfiles from validated user input. It
// never fails: unknown enum values degrade to safe defaults.
type Profiler struct{}

func NewProfiler() *Profiler {
	return &Profiler{}
}

// CreateProfile builds the read-only profile snapshot for one request.
// budgetUSD is the budget already converted to the reference currency.
func (p *Profiler) CreateProfile(input models.UserInput, budgetUSD float64) models.InvestmentProfile {
	template := profileTemplates[StrategyFor(input.RiskAppetite)]
	adjustment := GoalAdjustmentFor(input.Goal)

	return models.InvestmentProfile{
		ID:                  uuid.NewString(),
		Type:                profileType(input.RiskAppetite, input.Goal, budgetUSD),
		RiskTolerance:       input.RiskAppetite,
		InvestmentGoal:      input.Goal,
		BudgetUSD:           budgetUSD,
		Currency:            input.Currency,
		PreferredTypes:      input.InvestmentTypes,
		AllocationStrategy:  template.AllocationStrategy,
		ExpectedReturnRange: template.ExpectedReturn,
		TimeHorizon:         adjustment.TimeHorizon,
		LiquidityPreference: adjustment.Liquidity,
		CreatedAt:           time.Now(),
	}
}

// profileType composes the analytics label from risk, goal and budget
// tier. Display only; it does not feed the allocation math.
func profileType(risk, goal string, budgetUSD float64) string {
	var tier string
	switch {
	case budgetUSD < 10_000:
		tier = "starter"
	case budgetUSD < 100_000:
		tier = "intermediate"
	default:
		tier = "advanced"
	}

	return fmt.Sprintf("%s_%s_%s", risk, goal, tier)
}
