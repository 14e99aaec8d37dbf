package mealdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ytget/meal-maker/internal/model"
)

// API defaults
const (
	DefaultBaseURL = "https://www.themealdb.com/api/json/v1"
	DefaultAPIKey  = "1"
	DefaultTimeout = 15 * time.Second
)

// Endpoints and parameters
const (
	SearchEndpoint = "search.php"
	RandomEndpoint = "random.php"
	SearchParam    = "s"
)

// Operation names used in FetchError
const (
	OpSearch = "search"
	OpRandom = "random"
)

// Request constants
const (
	UserAgent        = "meal-maker/1.0"
	MaxResponseBytes = 2 << 20
)

// Client fetches recipes from TheMealDB
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a new API client. Empty values fall back to defaults.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}
	if strings.TrimSpace(apiKey) == "" {
		apiKey = DefaultAPIKey
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		apiKey:     strings.TrimSpace(apiKey),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// SetHTTPClient replaces the underlying HTTP client
func (c *Client) SetHTTPClient(client *http.Client) {
	if client != nil {
		c.httpClient = client
	}
}

// SearchURL returns the search endpoint URL for term
func (c *Client) SearchURL(term string) string {
	q := url.Values{}
	q.Set(SearchParam, term)
	return c.endpoint(SearchEndpoint) + "?" + q.Encode()
}

// RandomURL returns the random endpoint URL
func (c *Client) RandomURL() string {
	return c.endpoint(RandomEndpoint)
}

// SearchByName returns the first meal matching term
func (c *Client) SearchByName(ctx context.Context, term string) (*model.Recipe, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, ErrEmptyQuery
	}

	return c.fetchFirst(ctx, OpSearch, c.SearchURL(term))
}

// Random returns one random meal
func (c *Client) Random(ctx context.Context) (*model.Recipe, error) {
	return c.fetchFirst(ctx, OpRandom, c.RandomURL())
}

// fetchFirst performs one GET and returns the first meal of the envelope
func (c *Client) fetchFirst(ctx context.Context, op, rawURL string) (*model.Recipe, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &FetchError{Op: op, URL: rawURL, Err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set("User-Agent", UserAgent)
	req.Header.Set("Accept", "application/json")

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &FetchError{Op: op, URL: rawURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{Op: op, URL: rawURL, StatusCode: resp.StatusCode, Err: fmt.Errorf("unexpected status %s", resp.Status)}
	}

	var env envelope
	if err := json.NewDecoder(io.LimitReader(resp.Body, MaxResponseBytes)).Decode(&env); err != nil {
		return nil, &FetchError{Op: op, URL: rawURL, StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to decode response: %w", err)}
	}

	log.Printf("MealDB %s completed in %s: %d meal(s)", op, time.Since(started).Round(time.Millisecond), len(env.Meals))

	if len(env.Meals) == 0 || env.Meals[0] == nil {
		return nil, ErrNotFound
	}

	return env.Meals[0].toRecipe(), nil
}

// endpoint joins base URL, API key and endpoint name
func (c *Client) endpoint(name string) string {
	return c.baseURL + "/" + url.PathEscape(c.apiKey) + "/" + name
}
