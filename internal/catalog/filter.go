package catalog

import (
	"math"
	"sort"

	"tharagrowth-api/internal/models"
)

// Five-level ordinal risk scale. "Compatible" means the absolute level
// difference is at most one band.
var riskLevels = map[string]int{
	"very_low":  1,
	"low":       2,
	"medium":    3,
	"high":      4,
	"very_high": 5,
}

// Ranking bonus favoring lower-risk entries.
var riskBonus = map[string]float64{
	"very_low":  1.0,
	"low":       0.8,
	"medium":    0.6,
	"high":      0.4,
	"very_high": 0.2,
}

// Fixed display rates for the converted minimum-investment figure; a
// display convenience independent of the live exchange collaborator.
var displayRates = map[string]float64{
	"AED": 3.67,
	"SAR": 3.75,
	"EUR": 0.85,
	"GBP": 0.73,
}

const maxRecommendations = 8

// RiskCompatible reports whether two risk levels are within one band of
// each other on the five-level scale. Unknown levels read as medium.
func RiskCompatible(a, b string) bool {
	return abs(riskLevelOf(a)-riskLevelOf(b)) <= 1
}

func riskLevelOf(level string) int {
	if v, ok := riskLevels[level]; ok {
		return v
	}
	return riskLevels["medium"]
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Score is the ranking score for an entry: expected return plus the
// risk-level bonus.
func Score(e *Entry) float64 {
	bonus, ok := riskBonus[e.RiskLevel]
	if !ok {
		bonus = riskBonus["medium"]
	}
	return e.ExpectedReturn + bonus
}

// RecommendationsFor scans the preferred asset classes and returns the
// affordable, risk-compatible entries localized for display, ranked by
// (score, expected return) descending and capped at 8.
func (c *Catalog) RecommendationsFor(preferredTypes []string, riskTolerance string, budgetUSD float64, displayCurrency, loc string) []models.Recommendation {
	recommendations := make([]models.Recommendation, 0, maxRecommendations)

	for _, assetType := range preferredTypes {
		for _, entry := range c.byCategory[assetType] {
			if budgetUSD < entry.MinimumInvestmentUSD {
				continue
			}
			if !RiskCompatible(riskTolerance, entry.RiskLevel) {
				continue
			}
			recommendations = append(recommendations, c.format(entry, loc, displayCurrency))
		}
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		if recommendations[i].RiskCompatibilityScore != recommendations[j].RiskCompatibilityScore {
			return recommendations[i].RiskCompatibilityScore > recommendations[j].RiskCompatibilityScore
		}
		return recommendations[i].ExpectedReturn > recommendations[j].ExpectedReturn
	})

	if len(recommendations) > maxRecommendations {
		recommendations = recommendations[:maxRecommendations]
	}

	return recommendations
}

// FeaturedRealEstate returns the top real estate projects for the
// homepage payload.
func (c *Catalog) FeaturedRealEstate(loc string) []models.Recommendation {
	entries := c.byCategory["real_estate"]
	if len(entries) > 3 {
		entries = entries[:3]
	}

	featured := make([]models.Recommendation, 0, len(entries))
	for _, entry := range entries {
		featured = append(featured, c.format(entry, loc, "USD"))
	}
	return featured
}

// ByID returns a single localized entry.
func (c *Catalog) ByID(id, loc string) (models.Recommendation, bool) {
	entry, ok := c.byID[id]
	if !ok {
		return models.Recommendation{}, false
	}
	return c.format(entry, loc, "USD"), true
}

// ByCategory returns all localized entries of one asset class.
func (c *Catalog) ByCategory(category, loc string) []models.Recommendation {
	entries := c.byCategory[category]
	out := make([]models.Recommendation, 0, len(entries))
	for _, entry := range entries {
		out = append(out, c.format(entry, loc, "USD"))
	}
	return out
}

// format projects an entry into a display Recommendation: localized
// text, ranking score, and a converted minimum when the display currency
// is not the reference currency.
func (c *Catalog) format(e *Entry, loc, displayCurrency string) models.Recommendation {
	rec := models.Recommendation{
		ID:                     e.ID,
		Category:               e.Category,
		Name:                   e.Name.In(loc),
		Description:            e.Description.In(loc),
		Features:               e.Features.In(loc),
		Type:                   e.Type,
		Symbol:                 e.Symbol,
		Market:                 e.Market,
		Sector:                 e.Sector,
		Location:               e.Location,
		InvestmentPeriod:       e.InvestmentPeriod,
		PaymentPlan:            e.PaymentPlan.In(loc),
		Developer:              e.Developer,
		Maturity:               e.Maturity,
		AnalystRating:          e.AnalystRating,
		Liquidity:              e.Liquidity,
		ExpectedReturn:         e.ExpectedReturn,
		RentalYield:            e.RentalYield,
		DividendYield:          e.DividendYield,
		RiskLevel:              e.RiskLevel,
		MinimumInvestmentUSD:   e.MinimumInvestmentUSD,
		RiskCompatibilityScore: Score(e),
	}

	if displayCurrency != "USD" {
		rate, ok := displayRates[displayCurrency]
		if !ok {
			rate = 1.0
		}
		rec.MinimumInvestmentLocal = math.Round(e.MinimumInvestmentUSD*rate*100) / 100
		rec.DisplayCurrency = displayCurrency
	}

	return rec
}
