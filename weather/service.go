// Package weather is the one concrete consumer of the endpoint/exchange
// core: current weather by free-form query.
package weather

import (
	"context"
	"net/http"

	"github.com/tenkiya/tenki-go/config"
	"github.com/tenkiya/tenki-go/endpoint"
	"github.com/tenkiya/tenki-go/exchange"
)

// Service fetches the current weather for a query (city name, postal code,
// "lat,lon"). Hand this interface to callers; they never see requests.
type Service interface {
	Current(ctx context.Context, query string) (*Report, error)
}

// Client implements Service against a weatherapi.com-style API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

var _ Service = (*Client)(nil)

func NewClient(httpClient *http.Client, baseURL, apiKey string) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		apiKey:     apiKey,
	}
}

// NewClientFromConfig resolves the base URL and API key from configuration.
// Lookup failures degrade to an empty string rather than aborting; the
// request then fails downstream with an invalid URL or a non-2xx status,
// which is the intended surfacing point.
func NewClientFromConfig(httpClient *http.Client, cfg *config.Config) *Client {
	baseURL, err := cfg.Value(config.KeyAPIHost)
	if err != nil {
		baseURL = ""
	}
	apiKey, err := cfg.Value(config.KeyAPIKey)
	if err != nil {
		apiKey = ""
	}
	return NewClient(httpClient, baseURL, apiKey)
}

// WithAPIKey returns a copy of the client using the given key.
func (c *Client) WithAPIKey(apiKey string) *Client {
	return NewClient(c.httpClient, c.baseURL, apiKey)
}

func (c *Client) Current(ctx context.Context, query string) (*Report, error) {
	return c.CurrentWith(ctx, query)
}

// CurrentWith is Current with extra query parameters attached, e.g.
// aqi=yes or lang=fr, which the upstream API accepts on the same endpoint.
func (c *Client) CurrentWith(ctx context.Context, query string, extra ...endpoint.Field) (*Report, error) {
	fields := []endpoint.Field{
		{Name: "q", Value: endpoint.String(query)},
		{Name: "key", Value: endpoint.String(c.apiKey)},
	}
	fields = append(fields, extra...)

	e := &endpoint.Endpoint{
		Method:  endpoint.GET,
		BaseURL: c.baseURL,
		Path:    "/v1/current.json",
		Header:  map[string]string{"Content-Type": "application/json"},
		Body:    endpoint.Query(fields...),
	}

	report, err := exchange.Execute[Report](ctx, c.httpClient, e)
	if err != nil {
		return nil, err
	}
	return &report, nil
}
