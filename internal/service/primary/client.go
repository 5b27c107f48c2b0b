package primary

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"TokenScope/internal/domain/models"
	drepo "TokenScope/internal/domain/repository"
	xhttp "TokenScope/pkg/http"
)

const (
	DefaultBaseURL = "https://api.tokenscope.io/v1"
	DefaultTimeout = 30 * time.Second
)

// ErrMissingData is returned when a successful reply carries no data.
var ErrMissingData = errors.New("response has no data")

// envelope is the primary API's response wrapper.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

// Client talks to the hosted analytics API. Every request is bounded by timeout.
type Client struct {
	baseURL string
	apiKey  string
	timeout time.Duration
	http    *xhttp.Client
}

func New(baseURL, apiKey string, timeout time.Duration, hc *xhttp.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if hc == nil {
		hc = xhttp.NewClient(xhttp.WithTimeout(timeout))
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		timeout: timeout,
		http:    hc,
	}
}

func (c *Client) Analyze(ctx context.Context, chain, address string) (*models.AnalysisResult, error) {
	return do[*models.AnalysisResult](ctx, c, xhttp.MethodGet, tokenPath("/analyze", chain, address), nil, nil)
}

func (c *Client) Signals(ctx context.Context, chain, address string) ([]models.Signal, error) {
	return do[[]models.Signal](ctx, c, xhttp.MethodGet, tokenPath("/signals", chain, address), nil, nil)
}

func (c *Client) Contract(ctx context.Context, chain, address string) (*models.ContractSecurity, error) {
	return do[*models.ContractSecurity](ctx, c, xhttp.MethodGet, tokenPath("/contract", chain, address), nil, nil)
}

func (c *Client) Search(ctx context.Context, query string) ([]models.TokenSummary, error) {
	return do[[]models.TokenSummary](ctx, c, xhttp.MethodGet, "/search", map[string][]string{"q": {query}}, nil)
}

func (c *Client) Trending(ctx context.Context, chain string, limit int) ([]models.TrendingToken, error) {
	q := map[string][]string{"limit": {strconv.Itoa(limit)}}
	if chain != "" {
		q["chain"] = []string{chain}
	}
	return do[[]models.TrendingToken](ctx, c, xhttp.MethodGet, "/trending", q, nil)
}

func (c *Client) Watchlist(ctx context.Context) ([]models.WatchlistEntry, error) {
	return do[[]models.WatchlistEntry](ctx, c, xhttp.MethodGet, "/watchlist", nil, nil)
}

func (c *Client) AddToWatchlist(ctx context.Context, entry models.WatchlistEntry) error {
	_, err := c.send(ctx, xhttp.MethodPost, "/watchlist", nil, entry)
	return err
}

func (c *Client) RemoveFromWatchlist(ctx context.Context, chain, address string) error {
	_, err := c.send(ctx, xhttp.MethodDelete, tokenPath("/watchlist", chain, address), nil, nil)
	return err
}

// do decodes the envelope's data into T. A successful reply without data
// is treated as a failure.
func do[T any](ctx context.Context, c *Client, method, path string, query map[string][]string, body interface{}) (T, error) {
	var out T
	raw, err := c.send(ctx, method, path, query, body)
	if err != nil {
		return out, err
	}
	if len(raw) == 0 || string(raw) == "null" {
		return out, fmt.Errorf("primary %s %s: %w", method, path, ErrMissingData)
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("primary %s %s: decode data: %w", method, path, err)
	}
	return out, nil
}

// send performs the request and returns the raw data of a successful envelope.
func (c *Client) send(ctx context.Context, method, path string, query map[string][]string, body interface{}) (json.RawMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var env envelope
	err := c.http.SendAndParse(ctx, &xhttp.RequestOptions{
		Method:      method,
		URL:         c.baseURL + path,
		Headers:     xhttp.BearerHeaders(c.apiKey),
		QueryParams: query,
		Body:        body,
	}, &env)
	if err != nil {
		return nil, fmt.Errorf("primary %s %s: %w", method, path, err)
	}
	if !env.Success {
		msg := env.Error
		if msg == "" {
			msg = "unsuccessful response"
		}
		return nil, fmt.Errorf("primary %s %s: %w", method, path, errors.New(msg))
	}
	return env.Data, nil
}

func tokenPath(prefix, chain, address string) string {
	return prefix + "/" + url.PathEscape(chain) + "/" + url.PathEscape(address)
}

var _ drepo.PrimaryAPI = (*Client)(nil)
