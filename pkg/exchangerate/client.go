package exchangerate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client fetches live rates from an exchangerate-api.com style endpoint:
// GET {base}/{currency} returns {"base": "...", "rates": {"AED": 3.67, ...}}.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type latestResponse struct {
	Base  string             `json:"base"`
	Rates map[string]float64 `json:"rates"`
}

// GetRate returns the conversion rate from one currency to another.
func (c *Client) GetRate(ctx context.Context, from, to string) (float64, error) {
	url := fmt.Sprintf("%s/%s", c.baseURL, from)

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
		return 0, fmt.Errorf("exchange rate API returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, err
	}

	var latest latestResponse
	if err := json.Unmarshal(body, &latest); err != nil {
		return 0, err
	}

	rate, ok := latest.Rates[to]
	if !ok {
		return 0, fmt.Errorf("no rate for %s in %s response", to, from)
	}

	return rate, nil
}
