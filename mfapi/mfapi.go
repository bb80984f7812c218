// Package mfapi fetches Indian mutual fund NAV histories from the api.mfapi.in service.
package mfapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/mfolio"
	"github.com/etnz/mfolio/date"
	"github.com/shopspring/decimal"
	"golang.org/x/time/rate"
)

const (
	DefaultBaseURL   = "https://api.mfapi.in"
	DefaultTimeout   = 30 * time.Second
	DefaultRateLimit = 5 // requests per second
)

// Client reads scheme NAVs. It implements mfolio.PriceProvider.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	currency   string
}

// ClientOption configures the client
type ClientOption func(*Client)

// WithBaseURL sets the base URL
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithRateLimit sets the rate limit
func WithRateLimit(requestsPerSecond int) ClientOption {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond)
	}
}

// WithTimeout sets the HTTP timeout
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithDailyCache caches responses in dir for the day. An empty dir means the system temp dir.
func WithDailyCache(dir string) ClientOption {
	return func(c *Client) {
		if dir == "" {
			dir = os.TempDir()
		}
		c.httpClient.Transport = &diskCache{base: http.DefaultTransport, dir: dir}
	}
}

// WithCurrency sets the currency NAVs are quoted in.
func WithCurrency(currency string) ClientOption {
	return func(c *Client) {
		c.currency = currency
	}
}

// NewClient creates a new client. No API key is required.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		limiter:  rate.NewLimiter(rate.Limit(DefaultRateLimit), DefaultRateLimit),
		currency: mfolio.DefaultCurrency,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// schemeResponse is the payload of /mf/{code} and /mf/{code}/latest.
type schemeResponse struct {
	Meta struct {
		FundHouse  string `json:"fund_house"`
		SchemeName string `json:"scheme_name"`
	} `json:"meta"`
	Data []struct {
		Date string `json:"date"`
		NAV  string `json:"nav"`
	} `json:"data"`
	Status string `json:"status"`
}

// Scheme identifies a mutual fund scheme.
type Scheme struct {
	Code int    `json:"schemeCode"`
	Name string `json:"schemeName"`
}

// PriceSeries fetches the full NAV history of scheme code id.
func (c *Client) PriceSeries(ctx context.Context, id string) (*mfolio.PriceSeries, error) {
	var resp schemeResponse
	if err := c.get(ctx, "/mf/"+url.PathEscape(id), &resp); err != nil {
		return nil, err
	}
	if len(resp.Data) == 0 {
		return nil, fmt.Errorf("scheme %q: no NAV data", id)
	}

	series := mfolio.NewPriceSeries(id, resp.Meta.SchemeName, c.currency)
	// Data is served newest first: append from the end to keep the history chronological.
	for i := len(resp.Data) - 1; i >= 0; i-- {
		point := resp.Data[i]
		on, err := date.ParseDMY(point.Date)
		if err != nil {
			return nil, fmt.Errorf("scheme %q: %w", id, err)
		}
		nav, err := decimal.NewFromString(point.NAV)
		if err != nil {
			return nil, fmt.Errorf("scheme %q: invalid NAV %q on %s: %w", id, point.NAV, on, err)
		}
		series.Append(on, nav)
	}
	return series, nil
}

// Latest fetches only the latest NAV of scheme code id.
func (c *Client) Latest(ctx context.Context, id string) (name string, on date.Date, nav decimal.Decimal, err error) {
	var obj any
	if err = c.get(ctx, "/mf/"+url.PathEscape(id)+"/latest", &obj); err != nil {
		return
	}
	if name, err = lookupString(obj, "$.meta.scheme_name"); err != nil {
		return
	}
	var s string
	if s, err = lookupString(obj, "$.data[0].date"); err != nil {
		return
	}
	if on, err = date.ParseDMY(s); err != nil {
		return
	}
	if s, err = lookupString(obj, "$.data[0].nav"); err != nil {
		return
	}
	nav, err = decimal.NewFromString(s)
	return
}

// Search returns the schemes whose name matches query.
func (c *Client) Search(ctx context.Context, query string) ([]Scheme, error) {
	var schemes []Scheme
	if err := c.get(ctx, "/mf/search?q="+url.QueryEscape(query), &schemes); err != nil {
		return nil, err
	}
	return schemes, nil
}

// lookupString extracts a single string (or number) value at path.
func lookupString(obj any, path string) (string, error) {
	v, err := jsonpath.Get(path, obj)
	if err != nil {
		return "", fmt.Errorf("error parsing %q: %w", path, err)
	}
	// jsonpath is never clear about wheter it returns a list of 1 answer, or a single answer.
	if list, ok := v.([]any); ok && len(list) > 0 {
		v = list[0]
	}
	switch s := v.(type) {
	case string:
		return s, nil
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64), nil
	default:
		return "", fmt.Errorf("error parsing %q: not a string %v", path, v)
	}
}

// get performs a rate limited GET request and decodes the JSON response into data.
func (c *Client) get(ctx context.Context, path string, data any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("cannot http GET %v%v: %v", req.URL.Host, req.URL.Path, resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(data); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

var _ mfolio.PriceProvider = (*Client)(nil)
