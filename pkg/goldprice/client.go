package goldprice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client fetches the gold spot price, trying a list of provider URLs in
// order. Providers disagree on response shape, so the price is extracted
// from a handful of known layouts.
type Client struct {
	urls       []string
	httpClient *http.Client
}

func NewClient(urls []string, timeout time.Duration) *Client {
	return &Client{
		urls: urls,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// SpotPriceOunce returns the gold price per troy ounce in USD from the
// first provider that answers with a parseable payload.
func (c *Client) SpotPriceOunce(ctx context.Context) (float64, error) {
	var lastErr error

	for _, url := range c.urls {
		price, err := c.fetchOne(ctx, url)
		if err != nil {
			lastErr = err
			continue
		}
		return price, nil
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("no gold price providers configured")
	}
	return 0, lastErr
}

func (c *Client) fetchOne(ctx context.Context, url string) (float64, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return 0, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("gold API %s returned status %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, err
	}

	price, ok := extractPrice(body)
	if !ok {
		return 0, fmt.Errorf("unrecognized gold price payload from %s", url)
	}

	return price, nil
}

// extractPrice handles the known provider layouts: a bare number,
// {"price": n}, {"spot": n} and {"data": {"price": n}}.
func extractPrice(body []byte) (float64, bool) {
	var bare float64
	if err := json.Unmarshal(body, &bare); err == nil {
		return bare, true
	}

	var payload struct {
		Price float64 `json:"price"`
		Spot  float64 `json:"spot"`
		Data  struct {
			Price float64 `json:"price"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return 0, false
	}

	switch {
	case payload.Price > 0:
		return payload.Price, true
	case payload.Spot > 0:
		return payload.Spot, true
	case payload.Data.Price > 0:
		return payload.Data.Price, true
	}

	return 0, false
}
