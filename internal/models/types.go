package models

import (
	"fmt"
	"time"
)

// Fixed option lists for form validation.
var (
	SupportedCurrencies = []string{"AED", "SAR", "USD", "EUR", "GBP"}

	InvestmentGoals = []string{
		"retirement",
		"passive_income",
		"capital_growth",
		"children_education",
		"wealth_preservation",
		"emergency_fund",
	}

	RiskAppetites = []string{"low", "medium", "high"}

	InvestmentTypes = []string{
		"real_estate",
		"gold",
		"stocks",
		"crowdfunding",
		"sukuk",
		"bonds",
	}
)

const (
	MinBudget = 100
	MaxBudget = 10_000_000
)

// UserInput represents the submitted advisory request. Immutable once
// validated.
type UserInput struct {
	Budget          float64  `json:"budget" form:"budget"`
	Currency        string   `json:"currency" form:"currency"`
	Goal            string   `json:"goal" form:"goal"`
	RiskAppetite    string   `json:"risk_appetite" form:"risk_appetite"`
	InvestmentTypes []string `json:"investment_types" form:"investment_types"`
	QuickStart      bool     `json:"quick_start" form:"quick_start"`
}

// Validate returns field-level validation messages. An empty map means
// the input is valid. A quick-start submission may omit investment types;
// they are filled from risk-level defaults before analysis.
func (u UserInput) Validate() map[string]string {
	errs := make(map[string]string)

	if u.Budget < MinBudget || u.Budget > MaxBudget {
		errs["budget"] = fmt.Sprintf("budget must be between %d and %d", MinBudget, MaxBudget)
	}
	if !contains(SupportedCurrencies, u.Currency) {
		errs["currency"] = "unsupported currency"
	}
	if !contains(InvestmentGoals, u.Goal) {
		errs["goal"] = "unknown investment goal"
	}
	if !contains(RiskAppetites, u.RiskAppetite) {
		errs["risk_appetite"] = "risk appetite must be low, medium or high"
	}
	if len(u.InvestmentTypes) == 0 && !u.QuickStart {
		errs["investment_types"] = "select at least one investment type"
	}
	for _, t := range u.InvestmentTypes {
		if !contains(InvestmentTypes, t) {
			errs["investment_types"] = fmt.Sprintf("unknown investment type %q", t)
			break
		}
	}

	return errs
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

// InvestmentProfile is the derived, read-only snapshot of a user's
// investment posture. Built once per request.
type InvestmentProfile struct {
	ID                  string    `json:"id"`
	Type                string    `json:"type"`
	RiskTolerance       string    `json:"risk_tolerance"`
	InvestmentGoal      string    `json:"investment_goal"`
	BudgetUSD           float64   `json:"budget_usd"`
	Currency            string    `json:"currency"`
	PreferredTypes      []string  `json:"preferred_investments"`
	AllocationStrategy  string    `json:"allocation_strategy"`
	ExpectedReturnRange [2]float64 `json:"expected_return_range"`
	TimeHorizon         string    `json:"time_horizon"`
	LiquidityPreference string    `json:"liquidity_preference"`
	CreatedAt           time.Time `json:"created_at"`
}

// AllocationPlan is the normalized allocation table plus derived figures.
// The allocation always sums to 100 (within rounding tolerance) and
// carries no negative entries.
type AllocationPlan struct {
	Allocation           map[string]float64 `json:"allocation"`
	Strategy             string             `json:"strategy"`
	ExpectedAnnualReturn float64            `json:"expected_annual_return"`
	Rationale            string             `json:"rationale"`
	PersonalizedTips     string             `json:"personalized_tips"`
	RiskLevel            string             `json:"risk_level"`
	TimeHorizon          string             `json:"time_horizon"`
	ReviewFrequency      string             `json:"review_frequency"`
	GeneratedAt          time.Time          `json:"generated_at"`
}

// Recommendation is a catalog entry localized and enriched for display.
type Recommendation struct {
	ID                     string   `json:"id"`
	Category               string   `json:"category"`
	Name                   string   `json:"name"`
	Description            string   `json:"description,omitempty"`
	Features               []string `json:"features,omitempty"`
	Type                   string   `json:"type,omitempty"`
	Symbol                 string   `json:"symbol,omitempty"`
	Market                 string   `json:"market,omitempty"`
	Sector                 string   `json:"sector,omitempty"`
	Location               string   `json:"location,omitempty"`
	InvestmentPeriod       string   `json:"investment_period,omitempty"`
	PaymentPlan            string   `json:"payment_plan,omitempty"`
	Developer              string   `json:"developer,omitempty"`
	Maturity               string   `json:"maturity,omitempty"`
	AnalystRating          string   `json:"analyst_rating,omitempty"`
	Liquidity              string   `json:"liquidity,omitempty"`
	ExpectedReturn         float64  `json:"expected_return"`
	RentalYield            float64  `json:"rental_yield,omitempty"`
	DividendYield          float64  `json:"dividend_yield,omitempty"`
	RiskLevel              string   `json:"risk_level"`
	MinimumInvestmentUSD   float64  `json:"minimum_investment_usd"`
	RiskCompatibilityScore float64  `json:"risk_compatibility_score"`
	MinimumInvestmentLocal float64  `json:"minimum_investment_local,omitempty"`
	DisplayCurrency        string   `json:"display_currency,omitempty"`
}

// AnalysisResult is the full response payload for one advisory request,
// kept transiently in session storage for the results view.
type AnalysisResult struct {
	Input           UserInput         `json:"user_data"`
	Profile         InvestmentProfile `json:"profile"`
	Plan            AllocationPlan    `json:"recommendations"`
	Opportunities   []Recommendation  `json:"opportunities"`
	Timestamp       time.Time         `json:"timestamp"`
}

// GoldPrice holds per-gram spot figures in the three display currencies.
type GoldPrice struct {
	PerGramUSD float64   `json:"price_per_gram_usd"`
	PerGramAED float64   `json:"price_per_gram_aed"`
	PerGramSAR float64   `json:"price_per_gram_sar"`
	Timestamp  time.Time `json:"timestamp"`
	Note       string    `json:"note,omitempty"`
}

// StockQuote is a single regional stock quote.
type StockQuote struct {
	Symbol        string    `json:"symbol"`
	Name          string    `json:"name"`
	Market        string    `json:"market"`
	Price         float64   `json:"price"`
	Currency      string    `json:"currency"`
	Change        string    `json:"change"`
	ChangePercent string    `json:"change_percent"`
	Volume        string    `json:"volume"`
	Timestamp     time.Time `json:"timestamp"`
}

// NewsArticle is a localized financial news item.
type NewsArticle struct {
	Title     string    `json:"title"`
	Summary   string    `json:"summary"`
	Source    string    `json:"source"`
	Category  string    `json:"category"`
	Timestamp time.Time `json:"timestamp"`
}

// Conversion is the result of an ad-hoc currency conversion.
type Conversion struct {
	OriginalAmount    float64   `json:"original_amount"`
	OriginalCurrency  string    `json:"original_currency"`
	ConvertedAmount   float64   `json:"converted_amount"`
	ConvertedCurrency string    `json:"converted_currency"`
	ExchangeRate      float64   `json:"exchange_rate"`
	Timestamp         time.Time `json:"timestamp"`
}

// ErrorResponse represents API error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code"`
}

// ValidationErrorResponse carries field-level validation messages.
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
	Code   int               `json:"code"`
}
