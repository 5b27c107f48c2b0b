// Package client is the public entry point of TokenScope. Every operation
// returns a Result envelope instead of an error: expected failures (upstream
// outages, unknown tokens) are reported in Result.Error.
//
// The client prefers the hosted TokenScope API. After the first failed call it
// switches permanently to rebuilding responses from DexScreener and GoPlus.
package client

import (
	"context"
	"net/http"
	"time"

	"TokenScope/internal/domain/models"
	"TokenScope/internal/domain/repository"
	internalrepo "TokenScope/internal/repository"
	"TokenScope/internal/service/dexscreener"
	"TokenScope/internal/service/goplus"
	"TokenScope/internal/service/primary"
	"TokenScope/internal/usecase"
	xhttp "TokenScope/pkg/http"
	"TokenScope/pkg/logger"
)

const (
	DefaultBaseURL       = primary.DefaultBaseURL
	DefaultTimeout       = primary.DefaultTimeout
	DefaultTrendingLimit = 20
)

// Public names for the records returned by the client.
type (
	AnalysisResult   = models.AnalysisResult
	ContractSecurity = models.ContractSecurity
	Signal           = models.Signal
	TokenSummary     = models.TokenSummary
	TrendingToken    = models.TrendingToken
	WatchlistEntry   = models.WatchlistEntry

	Metrics           = repository.Metrics
	AnalysisPublisher = repository.AnalysisPublisher
	WatchlistStore    = repository.WatchlistStore
)

// Result is the envelope every operation returns.
type Result[T any] struct {
	Success   bool      `json:"success"`
	Data      T         `json:"data,omitempty"`
	Error     string    `json:"error,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Options configures a Client. Zero values select the defaults.
type Options struct {
	APIKey  string
	BaseURL string
	// Timeout bounds each primary API request.
	Timeout time.Duration
	// FallbackTimeout bounds the concurrent DexScreener/GoPlus fetch. Defaults to Timeout.
	FallbackTimeout time.Duration

	DexScreenerURL string
	GoPlusURL      string
	HTTPClient     *http.Client

	Logger         *logger.Logger
	Metrics        Metrics
	Publisher      AnalysisPublisher
	WatchlistStore WatchlistStore
}

// Client is safe for concurrent use.
type Client struct {
	analyzer *usecase.TokenAnalyzer
	now      func() time.Time
}

// New builds a client from opts.
func New(opts Options) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.FallbackTimeout <= 0 {
		opts.FallbackTimeout = opts.Timeout
	}
	if opts.WatchlistStore == nil {
		opts.WatchlistStore = internalrepo.NewMemoryWatchlistStore()
	}

	httpOpts := []xhttp.ClientOption{xhttp.WithTimeout(opts.Timeout)}
	if opts.HTTPClient != nil {
		httpOpts = append(httpOpts, xhttp.WithHTTPClient(opts.HTTPClient))
	}
	hc := xhttp.NewClient(httpOpts...)

	uopts := []usecase.Option{
		usecase.WithFallbackTimeout(opts.FallbackTimeout),
		usecase.WithWatchlistStore(opts.WatchlistStore),
	}
	if opts.Logger != nil {
		uopts = append(uopts, usecase.WithLogger(opts.Logger))
	}
	if opts.Metrics != nil {
		uopts = append(uopts, usecase.WithMetrics(opts.Metrics))
	}
	if opts.Publisher != nil {
		uopts = append(uopts, usecase.WithPublisher(opts.Publisher))
	}

	return NewWithAnalyzer(usecase.NewTokenAnalyzer(
		primary.New(opts.BaseURL, opts.APIKey, opts.Timeout, hc),
		dexscreener.New(opts.DexScreenerURL, hc),
		goplus.New(opts.GoPlusURL, hc),
		uopts...,
	))
}

// NewWithAnalyzer wraps an already assembled analyzer.
func NewWithAnalyzer(a *usecase.TokenAnalyzer) *Client {
	return &Client{analyzer: a, now: func() time.Time { return time.Now().UTC() }}
}

// Analyzer exposes the underlying use case, e.g. for the HTTP handler.
func (c *Client) Analyzer() *usecase.TokenAnalyzer {
	return c.analyzer
}

// Analyze returns the full analysis of a token.
func (c *Client) Analyze(ctx context.Context, chain, address string) Result[*AnalysisResult] {
	res, err := c.analyzer.Analyze(ctx, chain, address)
	return wrap(c, res, err)
}

// GetSignals returns only the risk signals of a token.
func (c *Client) GetSignals(ctx context.Context, chain, address string) Result[[]Signal] {
	res, err := c.analyzer.Signals(ctx, chain, address)
	return wrap(c, res, err)
}

// GetContract returns the contract-security summary of a token.
func (c *Client) GetContract(ctx context.Context, chain, address string) Result[*ContractSecurity] {
	res, err := c.analyzer.Contract(ctx, chain, address)
	return wrap(c, res, err)
}

func (c *Client) Search(ctx context.Context, query string) Result[[]TokenSummary] {
	res, err := c.analyzer.Search(ctx, query)
	return wrap(c, res, err)
}

// GetTrending lists trending tokens; an empty chain means all chains.
func (c *Client) GetTrending(ctx context.Context, chain string) Result[[]TrendingToken] {
	res, err := c.analyzer.Trending(ctx, chain, DefaultTrendingLimit)
	return wrap(c, res, err)
}

func (c *Client) GetWatchlist(ctx context.Context) Result[[]WatchlistEntry] {
	res, err := c.analyzer.Watchlist(ctx)
	return wrap(c, res, err)
}

func (c *Client) AddToWatchlist(ctx context.Context, chain, address, note string) Result[bool] {
	err := c.analyzer.AddToWatchlist(ctx, chain, address, note)
	return wrap(c, err == nil, err)
}

func (c *Client) RemoveFromWatchlist(ctx context.Context, chain, address string) Result[bool] {
	err := c.analyzer.RemoveFromWatchlist(ctx, chain, address)
	return wrap(c, err == nil, err)
}

// IsUsingFallback reports whether the primary API has been abandoned.
func (c *Client) IsUsingFallback() bool {
	return c.analyzer.UsingFallback()
}

// Close releases the publisher, if any.
func (c *Client) Close() error {
	return c.analyzer.Close()
}

func wrap[T any](c *Client, data T, err error) Result[T] {
	r := Result[T]{Timestamp: c.now()}
	if err != nil {
		r.Error = err.Error()
		return r
	}
	r.Success = true
	r.Data = data
	return r
}
