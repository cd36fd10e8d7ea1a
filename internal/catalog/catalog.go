// Package catalog holds the static investment opportunity catalog and
// the profile-based opportunity filter. The catalog is loaded once from
// embedded YAML at process start and immutable thereafter.
package catalog

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"tharagrowth-api/internal/locale"
)

//go:embed catalog.yaml
var catalogYAML []byte

// LocalText is a locale-keyed text field. The default locale entry is
// mandatory in catalog data.
type LocalText map[string]string

// In returns the text for a locale, falling back to the default locale.
func (t LocalText) In(loc string) string {
	if v, ok := t[loc]; ok {
		return v
	}
	return t[locale.Default]
}

// LocalList is a locale-keyed list field with default-locale fallback.
type LocalList map[string][]string

func (l LocalList) In(loc string) []string {
	if v, ok := l[loc]; ok {
		return v
	}
	return l[locale.Default]
}

// Entry is one investable opportunity. Read-only after load.
type Entry struct {
	ID                   string    `yaml:"id"`
	Category             string    `yaml:"-"`
	Name                 LocalText `yaml:"name"`
	Description          LocalText `yaml:"description"`
	Features             LocalList `yaml:"features"`
	PaymentPlan          LocalText `yaml:"payment_plan"`
	Type                 string    `yaml:"type"`
	Symbol               string    `yaml:"symbol"`
	Market               string    `yaml:"market"`
	Sector               string    `yaml:"sector"`
	Location             string    `yaml:"location"`
	Developer            string    `yaml:"developer"`
	Maturity             string    `yaml:"maturity"`
	AnalystRating        string    `yaml:"analyst_rating"`
	Liquidity            string    `yaml:"liquidity"`
	InvestmentPeriod     string    `yaml:"investment_period"`
	ExpectedReturn       float64   `yaml:"expected_return"`
	RentalYield          float64   `yaml:"rental_yield"`
	DividendYield        float64   `yaml:"dividend_yield"`
	RiskLevel            string    `yaml:"risk_level"`
	MinimumInvestmentUSD float64   `yaml:"minimum_investment_usd"`
}

// Catalog indexes the static opportunity data by category and ID.
type Catalog struct {
	byCategory map[string][]*Entry
	byID       map[string]*Entry
}

// Load parses the embedded catalog data. Called once at startup.
func Load() (*Catalog, error) {
	var raw map[string][]*Entry
	if err := yaml.Unmarshal(catalogYAML, &raw); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	c := &Catalog{
		byCategory: raw,
		byID:       make(map[string]*Entry),
	}

	for category, entries := range raw {
		for _, e := range entries {
			e.Category = category
			if e.ID == "" {
				return nil, fmt.Errorf("catalog entry in %s missing id", category)
			}
			if _, dup := c.byID[e.ID]; dup {
				return nil, fmt.Errorf("duplicate catalog id %s", e.ID)
			}
			if e.Name.In(locale.Default) == "" {
				return nil, fmt.Errorf("catalog entry %s missing default-locale name", e.ID)
			}
			c.byID[e.ID] = e
		}
	}

	return c, nil
}

// Categories returns the asset classes present in the catalog.
func (c *Catalog) Categories() []string {
	out := make([]string, 0, len(c.byCategory))
	for category := range c.byCategory {
		out = append(out, category)
	}
	return out
}
