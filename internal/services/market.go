package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"tharagrowth-api/internal/models"
	"tharagrowth-api/pkg/goldprice"
)

const gramsPerTroyOunce = 31.1035

// Display conversion used for the per-gram gold figures; independent of
// the live exchange-rate collaborator.
const (
	usdToAED = 3.67
	usdToSAR = 3.75
)

// MarketService serves gold and stock market data with a 15 minute cache
// and static fallbacks. Stock quotes are representative regional data; a
// production deployment would plug regional exchange feeds in here.
type MarketService struct {
	gold   *Source[models.GoldPrice]
	stocks *Source[[]models.StockQuote]
}

func NewMarketService(goldClient *goldprice.Client, ttl time.Duration, log zerolog.Logger) *MarketService {
	return &MarketService{
		gold: NewSource[models.GoldPrice](
			"gold_price",
			ttl,
			func(ctx context.Context) (models.GoldPrice, error) {
				perOunce, err := goldClient.SpotPriceOunce(ctx)
				if err != nil {
					return models.GoldPrice{}, err
				}
				perGram := round2(perOunce / gramsPerTroyOunce)
				return models.GoldPrice{
					PerGramUSD: perGram,
					PerGramAED: round2(perGram * usdToAED),
					PerGramSAR: round2(perGram * usdToSAR),
					Timestamp:  time.Now(),
				}, nil
			},
			fallbackGoldPrice,
			log,
		),
		stocks: NewSource[[]models.StockQuote](
			"active_stocks",
			ttl,
			func(ctx context.Context) ([]models.StockQuote, error) {
				return activeStocks(), nil
			},
			activeStocks,
			log,
		),
	}
}

// GoldPrice returns the current per-gram gold price.
func (s *MarketService) GoldPrice(ctx context.Context) models.GoldPrice {
	return s.gold.Get(ctx)
}

// ActiveStocks returns quotes for the tracked regional stocks.
func (s *MarketService) ActiveStocks(ctx context.Context) []models.StockQuote {
	return s.stocks.Get(ctx)
}

// Refresh re-fetches both data sets. Called by the background warmer.
func (s *MarketService) Refresh(ctx context.Context) {
	s.gold.Refresh(ctx)
	s.stocks.Refresh(ctx)
}

func fallbackGoldPrice() models.GoldPrice {
	return models.GoldPrice{
		PerGramUSD: 65.50,
		PerGramAED: 240.35,
		PerGramSAR: 245.63,
		Timestamp:  time.Now(),
		Note:       "Fallback pricing - live data unavailable",
	}
}

func activeStocks() []models.StockQuote {
	now := time.Now()
	return []models.StockQuote{
		{
			Symbol:        "EMAAR",
			Name:          "Emaar Properties",
			Market:        "DFM",
			Price:         7.85,
			Currency:      "AED",
			Change:        "+0.15",
			ChangePercent: "+1.95%",
			Volume:        "2.1M",
			Timestamp:     now,
		},
		{
			Symbol:        "2222",
			Name:          "Saudi Aramco",
			Market:        "Tadawul",
			Price:         28.45,
			Currency:      "SAR",
			Change:        "+0.35",
			ChangePercent: "+1.25%",
			Volume:        "5.2M",
			Timestamp:     now,
		},
		{
			Symbol:        "2010",
			Name:          "SABIC",
			Market:        "Tadawul",
			Price:         89.20,
			Currency:      "SAR",
			Change:        "-1.80",
			ChangePercent: "-1.98%",
			Volume:        "1.8M",
			Timestamp:     now,
		},
		{
			Symbol:        "ADCB",
			Name:          "Abu Dhabi Commercial Bank",
			Market:        "ADX",
			Price:         9.12,
			Currency:      "AED",
			Change:        "+0.08",
			ChangePercent: "+0.89%",
			Volume:        "3.4M",
			Timestamp:     now,
		},
	}
}
