package calendarific

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const (
	DefaultBaseURL = "https://calendarific.com/api/v2/holidays"
	DefaultCountry = "US"
	defaultTimeout = 30 * time.Second
)

// Client is the Calendarific holiday API client.
type Client struct {
	apiKey     string
	baseURL    string
	country    string
	httpClient *http.Client
}

// New creates a new Calendarific client.
func New(apiKey string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("calendarific API key is required")
	}

	return &Client{
		apiKey:     apiKey,
		baseURL:    DefaultBaseURL,
		country:    DefaultCountry,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}, nil
}

// WithBaseURL overrides the holidays endpoint.
func (c *Client) WithBaseURL(baseURL string) *Client {
	if baseURL != "" {
		c.baseURL = baseURL
	}
	return c
}

// WithCountry sets the ISO-3166 country code (default "US").
func (c *Client) WithCountry(country string) *Client {
	if country != "" {
		c.country = country
	}
	return c
}

// WithHTTPClient replaces the underlying HTTP client.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	if hc != nil {
		c.httpClient = hc
	}
	return c
}

// Country returns the configured country code.
func (c *Client) Country() string {
	return c.country
}

// Holidays fetches every holiday of year. The envelope is returned as long as
// the body is JSON, whatever the HTTP status; checking Meta.Code is up to
// the caller.
func (c *Client) Holidays(ctx context.Context, year int) (*Envelope, error) {
	q := url.Values{}
	q.Set("api_key", c.apiKey)
	q.Set("country", c.country)
	q.Set("year", strconv.Itoa(year))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call Calendarific API: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read Calendarific response: %w", err)
	}

	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("Calendarific API returned status: %d, body: %s", resp.StatusCode, string(raw))
		}
		return nil, fmt.Errorf("failed to unmarshal Calendarific response: %w", err)
	}

	return &env, nil
}
