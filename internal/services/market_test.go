package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tharagrowth-api/pkg/goldprice"
)

func TestGoldPriceLive(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"price": 2073.5}`))
	}))
	t.Cleanup(srv.Close)

	s := NewMarketService(goldprice.NewClient([]string{srv.URL}, 2*time.Second), time.Minute, zerolog.Nop())
	gold := s.GoldPrice(context.Background())

	// 2073.5 / 31.1035 per gram
	assert.InDelta(t, 66.66, gold.PerGramUSD, 0.01)
	assert.InDelta(t, gold.PerGramUSD*3.67, gold.PerGramAED, 0.01)
	assert.InDelta(t, gold.PerGramUSD*3.75, gold.PerGramSAR, 0.01)
	assert.Empty(t, gold.Note)
}

func TestGoldPriceFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	t.Cleanup(srv.Close)

	s := NewMarketService(goldprice.NewClient([]string{srv.URL}, 2*time.Second), time.Minute, zerolog.Nop())
	gold := s.GoldPrice(context.Background())

	assert.Equal(t, 65.50, gold.PerGramUSD)
	assert.Equal(t, 240.35, gold.PerGramAED)
	assert.Equal(t, 245.63, gold.PerGramSAR)
	assert.NotEmpty(t, gold.Note)
}

func TestGoldPriceSecondProviderWins(t *testing.T) {
	down := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(down.Close)
	up := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"spot": 1990.0}`))
	}))
	t.Cleanup(up.Close)

	s := NewMarketService(goldprice.NewClient([]string{down.URL, up.URL}, 2*time.Second), time.Minute, zerolog.Nop())
	gold := s.GoldPrice(context.Background())

	assert.InDelta(t, 63.98, gold.PerGramUSD, 0.01)
}

func TestActiveStocks(t *testing.T) {
	s := NewMarketService(goldprice.NewClient(nil, time.Second), time.Minute, zerolog.Nop())

	stocks := s.ActiveStocks(context.Background())

	require.Len(t, stocks, 4)
	symbols := make([]string, 0, len(stocks))
	for _, q := range stocks {
		symbols = append(symbols, q.Symbol)
		assert.False(t, q.Timestamp.IsZero())
	}
	assert.ElementsMatch(t, []string{"EMAAR", "2222", "2010", "ADCB"}, symbols)
}

func TestNewsLocalesAndFallback(t *testing.T) {
	s := NewNewsService(time.Minute, zerolog.Nop())
	ctx := context.Background()

	en := s.FinancialNews(ctx, "en")
	ar := s.FinancialNews(ctx, "ar")
	fr := s.FinancialNews(ctx, "fr")
	de := s.FinancialNews(ctx, "de")

	require.Len(t, en, 3)
	require.Len(t, ar, 3)
	require.Len(t, fr, 3)

	assert.NotEqual(t, en[0].Title, ar[0].Title)
	assert.NotEqual(t, en[0].Title, fr[0].Title)
	// Unknown locale falls back to English.
	assert.Equal(t, en[0].Title, de[0].Title)

	for _, article := range en {
		assert.False(t, article.Timestamp.IsZero())
	}
}
