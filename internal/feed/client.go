package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"sports-ticker/internal/config"
)

const (
	defaultBaseURL     = "https://site.api.espn.com/apis/site/v2"
	defaultHTTPTimeout = 10 * time.Second
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// ClientConfig controls how the client reaches the upstream scoreboard API.
type ClientConfig struct {
	BaseURL    string
	HTTPClient *http.Client
}

// Client fetches one league's scoreboard and decodes it into raw events.
// Transport timeouts live here; the scheduling loop owns no timeout layer.
type Client struct {
	baseURL    string
	httpClient httpDoer
}

// NewClient constructs a scoreboard client with the provided configuration.
func NewClient(cfg ClientConfig) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
	}
}

// Scoreboard retrieves the current scoreboard for one league. Any transport,
// status, or decode failure is returned as an error; the caller decides what
// a failed league means for the rest of the run.
func (c *Client) Scoreboard(ctx context.Context, league config.League) ([]Event, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.scoreboardURL(league), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("feed: unexpected status %d for %s: %s", resp.StatusCode, league.Name, strings.TrimSpace(string(body)))
	}

	var payload scoreboardResponse
	if decodeErr := json.NewDecoder(resp.Body).Decode(&payload); decodeErr != nil {
		return nil, fmt.Errorf("feed: decoding %s scoreboard: %w", league.Name, decodeErr)
	}

	return payload.Events, nil
}

func (c *Client) scoreboardURL(league config.League) string {
	if league.FeedURL != "" {
		return league.FeedURL
	}
	return fmt.Sprintf("%s/sports/%s/%s/scoreboard", c.baseURL, league.Sport, league.Slug)
}

func resolveHTTPClient(client *http.Client) httpDoer {
	if client != nil {
		return client
	}
	return &http.Client{Timeout: defaultHTTPTimeout}
}

func normalizeBaseURL(raw string) string {
	if raw == "" {
		raw = defaultBaseURL
	}
	return strings.TrimSuffix(raw, "/")
}
