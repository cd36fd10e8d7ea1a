package services

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"tharagrowth-api/internal/models"
	"tharagrowth-api/pkg/exchangerate"
)

// Static rates used when the live provider is unreachable.
var fallbackRates = map[string]float64{
	"USD_AED": 3.67,
	"USD_SAR": 3.75,
	"USD_EUR": 0.85,
	"USD_GBP": 0.73,
	"AED_SAR": 1.02,
	"AED_USD": 0.27,
	"SAR_USD": 0.27,
	"EUR_USD": 1.18,
	"GBP_USD": 1.37,
}

var majorCurrencies = []string{"AED", "SAR", "EUR", "GBP"}

// ExchangeService exposes currency conversion with a cached-with-TTL,
// live-then-static-fallback contract. None of its methods fail.
type ExchangeService struct {
	rates *KeyedSource[float64]
	log   zerolog.Logger
}

func NewExchangeService(client *exchangerate.Client, ttl time.Duration, log zerolog.Logger) *ExchangeService {
	s := &ExchangeService{log: log}

	s.rates = NewKeyedSource[float64](
		"exchange_rates",
		ttl,
		func(ctx context.Context, key string) (float64, error) {
			from, to, _ := strings.Cut(key, "_")
			return client.GetRate(ctx, from, to)
		},
		s.fallbackRate,
		log,
	)

	return s
}

// Rate returns the conversion rate between two currencies.
func (s *ExchangeService) Rate(ctx context.Context, from, to string) float64 {
	if from == to {
		return 1.0
	}
	return s.rates.Get(ctx, from+"_"+to)
}

// Convert converts an amount between currencies.
func (s *ExchangeService) Convert(ctx context.Context, amount float64, from, to string) models.Conversion {
	rate := s.Rate(ctx, from, to)

	return models.Conversion{
		OriginalAmount:    amount,
		OriginalCurrency:  from,
		ConvertedAmount:   round2(amount * rate),
		ConvertedCurrency: to,
		ExchangeRate:      rate,
		Timestamp:         time.Now(),
	}
}

// ToUSD converts an amount to the reference currency.
func (s *ExchangeService) ToUSD(ctx context.Context, amount float64, currency string) float64 {
	if currency == "USD" {
		return amount
	}
	return round2(amount * s.Rate(ctx, currency, "USD"))
}

// MajorRates returns the USD rate for each major regional currency.
func (s *ExchangeService) MajorRates(ctx context.Context) map[string]float64 {
	rates := make(map[string]float64, len(majorCurrencies))
	for _, currency := range majorCurrencies {
		rates[currency] = s.Rate(ctx, "USD", currency)
	}
	return rates
}

// RefreshMajorRates re-fetches the rates the homepage and market snapshot
// rely on. Called by the background warmer.
func (s *ExchangeService) RefreshMajorRates(ctx context.Context) {
	for _, currency := range majorCurrencies {
		s.rates.Refresh(ctx, "USD_"+currency)
	}
}

// fallbackRate looks up the static table, trying the reverse pair when
// the direct one is absent. Unknown pairs degrade to 1.0.
func (s *ExchangeService) fallbackRate(key string) float64 {
	if rate, ok := fallbackRates[key]; ok {
		return rate
	}

	from, to, _ := strings.Cut(key, "_")
	if rate, ok := fallbackRates[to+"_"+from]; ok {
		return 1.0 / rate
	}

	s.log.Warn().Str("pair", key).Msg("no exchange rate available, defaulting to 1.0")
	return 1.0
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
