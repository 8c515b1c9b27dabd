package skyscanner

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"faregrid/internal/ratelimit"
)

const DefaultBaseURL = "https://partners.api.skyscanner.net/apiservices/v3/"

// ClientError wraps a transport or decoding failure with the endpoint that
// produced it.
type ClientError struct {
	Endpoint string
	Err      error
}

func (e *ClientError) Error() string {
	return e.Endpoint + ": " + e.Err.Error()
}

func (e *ClientError) Unwrap() error {
	return e.Err
}

type ClientConfig struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
	Limiter    *ratelimit.EndpointLimiter
}

// Client is a stateless typed wrapper around the live-search partner API.
// It is safe for concurrent use.
type Client struct {
	baseURL *url.URL
	apiKey  string
	http    *http.Client
	limiter *ratelimit.EndpointLimiter
}

func NewClient(cfg ClientConfig) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("api key is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL: base,
		apiKey:  cfg.APIKey,
		http:    httpClient,
		limiter: cfg.Limiter,
	}, nil
}

type createSearchRequest struct {
	Query Query `json:"query"`
}

// CreateSearch starts a search session. The returned snapshot carries the
// session token needed for subsequent polls.
func (c *Client) CreateSearch(ctx context.Context, q Query) (*SearchResponse, error) {
	var out SearchResponse
	err := c.call(ctx, ratelimit.EndpointCreate, http.MethodPost,
		"flights/live/search/create", createSearchRequest{Query: q}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// PollSearch fetches the current snapshot of an in-progress session.
func (c *Client) PollSearch(ctx context.Context, sessionToken string) (*SearchResponse, error) {
	var out SearchResponse
	err := c.call(ctx, ratelimit.EndpointPoll, http.MethodPost,
		"flights/live/search/poll/"+url.PathEscape(sessionToken), nil, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetMarkets(ctx context.Context, locale string) (*Markets, error) {
	var out Markets
	err := c.call(ctx, ratelimit.EndpointCulture, http.MethodGet,
		"culture/markets/"+url.PathEscape(locale), nil, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetLocales(ctx context.Context) (*Locales, error) {
	var out Locales
	err := c.call(ctx, ratelimit.EndpointCulture, http.MethodGet, "culture/locales", nil, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) call(ctx context.Context, endpoint, method, path string, body, out any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx, endpoint); err != nil {
			return &ClientError{Endpoint: endpoint, Err: err}
		}
	}

	target, err := c.baseURL.Parse(path)
	if err != nil {
		return &ClientError{Endpoint: endpoint, Err: err}
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return &ClientError{Endpoint: endpoint, Err: err}
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, target.String(), reader)
	if err != nil {
		return &ClientError{Endpoint: endpoint, Err: err}
	}
	req.Header.Set("x-api-key", c.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &ClientError{Endpoint: endpoint, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &ClientError{
			Endpoint: endpoint,
			Err:      fmt.Errorf("status %d: %s", resp.StatusCode, string(snippet)),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &ClientError{Endpoint: endpoint, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}
