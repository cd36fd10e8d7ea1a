package advisor

import (
	"math"
	"time"

	"tharagrowth-api/internal/models"
)

// Base allocation tables per strategy. Each sums to 100.
var baseStrategies = map[string]map[string]float64{
	"conservative": {
		"bonds":       50,
		"sukuk":       20,
		"real_estate": 15,
		"gold":        10,
		"stocks":      5,
	},
	"balanced": {
		"stocks":      40,
		"real_estate": 25,
		"bonds":       15,
		"sukuk":       10,
		"gold":        10,
	},
	"aggressive": {
		"stocks":       60,
		"real_estate":  20,
		"crowdfunding": 10,
		"gold":         7,
		"bonds":        3,
	},
}

// Goal-specific multipliers applied after preference boosting. Goals
// without an entry (capital_growth, unknown values) leave the table
// untouched.
var goalMultipliers = map[string]map[string]float64{
	"passive_income": {
		"real_estate": 1.3,
		"sukuk":       1.2,
		"bonds":       1.2,
		"stocks":      0.8,
	},
	"retirement": {
		"stocks":       1.2,
		"real_estate":  1.1,
		"bonds":        1.1,
		"crowdfunding": 0.7,
	},
	"children_education": {
		"bonds":       1.3,
		"sukuk":       1.2,
		"real_estate": 1.1,
		"stocks":      0.9,
	},
	"wealth_preservation": {
		"gold":         1.4,
		"bonds":        1.3,
		"sukuk":        1.2,
		"stocks":       0.7,
		"crowdfunding": 0.5,
	},
	"emergency_fund": {
		"bonds":       1.5,
		"sukuk":       1.3,
		"gold":        1.2,
		"stocks":      0.3,
		"real_estate": 0.5,
	},
}

// Historical average annual returns per asset class, percent.
var assetReturns = map[string]float64{
	"stocks":       9.0,
	"real_estate":  7.5,
	"crowdfunding": 12.0,
	"gold":         5.5,
	"bonds":        4.0,
	"sukuk":        4.5,
}

var riskFactors = map[string]float64{
	"low":    0.8,
	"medium": 0.9,
	"high":   1.0,
}

var reviewFrequencies = map[string]string{
	"conservative": "Every 12 months",
	"balanced":     "Every 6 months",
	"aggressive":   "Every 3 months",
}

const boostFactor = 1.2

// Engine builds allocation plans from the fixed rule tables. Stateless
// and safe for concurrent use.
type Engine struct{}

func NewEngine() *Engine {
	return &Engine{}
}

// BuildPlan produces the normalized allocation, blended expected return
// and localized narrative for one request.
func (e *Engine) BuildPlan(riskAppetite, goal string, preferredTypes []string, timeHorizon, locale string) models.AllocationPlan {
	strategy := StrategyFor(riskAppetite)

	allocation := make(map[string]float64, len(baseStrategies[strategy]))
	for asset, pct := range baseStrategies[strategy] {
		allocation[asset] = pct
	}

	adjustForPreferences(allocation, preferredTypes)
	adjustForGoal(allocation, goal)

	return models.AllocationPlan{
		Allocation:           allocation,
		Strategy:             strategy,
		ExpectedAnnualReturn: expectedReturn(allocation, riskAppetite),
		Rationale:            Rationale(strategy, locale),
		PersonalizedTips:     Tips(strategy, locale),
		RiskLevel:            riskAppetite,
		TimeHorizon:          timeHorizon,
		ReviewFrequency:      ReviewFrequency(strategy),
		GeneratedAt:          time.Now(),
	}
}

// ReviewFrequency returns the recommended portfolio review cadence.
func ReviewFrequency(strategy string) string {
	if freq, ok := reviewFrequencies[strategy]; ok {
		return freq
	}
	return "Every 6 months"
}

// adjustForPreferences boosts user-preferred asset classes by 20% of
// their current value and reduces the others proportionally, then
// renormalizes to 100. The reduction is computed from pre-boost
// percentages rather than the post-boost total; the renormalization at
// the end is authoritative. Empty preferences leave the table untouched.
func adjustForPreferences(allocation map[string]float64, preferred []string) {
	if len(preferred) == 0 {
		return
	}

	preferredSet := make(map[string]bool, len(preferred))
	for _, p := range preferred {
		preferredSet[p] = true
	}

	totalBoost := 0.0
	for asset := range allocation {
		if preferredSet[asset] {
			boost := allocation[asset] * (boostFactor - 1)
			allocation[asset] += boost
			totalBoost += boost
		}
	}

	if totalBoost > 0 {
		for asset, value := range allocation {
			if !preferredSet[asset] {
				reduction := (value / 100) * totalBoost
				allocation[asset] = math.Max(0, value-reduction)
			}
		}
	}

	normalize(allocation)
}

// adjustForGoal applies goal multipliers to the entries present in the
// table and renormalizes. Asset classes named by the multiplier table
// but absent from the allocation are silently ignored.
func adjustForGoal(allocation map[string]float64, goal string) {
	for asset, factor := range goalMultipliers[goal] {
		if _, ok := allocation[asset]; ok {
			allocation[asset] *= factor
		}
	}

	normalize(allocation)
}

// normalize scales the table so its entries sum to 100, rounding each
// entry to one decimal.
func normalize(allocation map[string]float64) {
	total := 0.0
	for _, value := range allocation {
		total += value
	}
	if total <= 0 {
		return
	}

	for asset, value := range allocation {
		allocation[asset] = round1(value / total * 100)
	}
}

// expectedReturn blends the historical asset-class averages by the final
// allocation weights and scales by the risk factor.
func expectedReturn(allocation map[string]float64, riskLevel string) float64 {
	weighted := 0.0
	for asset, pct := range allocation {
		if avg, ok := assetReturns[asset]; ok {
			weighted += avg * pct / 100
		}
	}

	factor, ok := riskFactors[riskLevel]
	if !ok {
		factor = 0.9
	}

	return round1(weighted * factor)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
