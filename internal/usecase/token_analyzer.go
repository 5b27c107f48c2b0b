package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"TokenScope/internal/domain/models"
	drepo "TokenScope/internal/domain/repository"
	"TokenScope/internal/service/dexscreener"
	"TokenScope/internal/service/goplus"
	"TokenScope/internal/services/analysis"
	applogger "TokenScope/pkg/logger"
)

var (
	ErrTokenNotFound        = errors.New("Token not found")
	ErrContractUnavailable  = errors.New("Contract data not available")
	ErrWatchlistUnavailable = errors.New("watchlist unavailable")
)

// Option configures TokenAnalyzer.
type Option func(*TokenAnalyzer)

// TokenAnalyzer serves token analytics from the primary API, degrading to
// DexScreener + GoPlus once the primary fails.
type TokenAnalyzer struct {
	primary   drepo.PrimaryAPI
	market    drepo.MarketData
	security  drepo.SecurityScanner
	watchlist drepo.WatchlistStore
	publisher drepo.AnalysisPublisher
	metrics   drepo.Metrics
	logger    *applogger.Logger

	fallbackTimeout time.Duration
	now             func() time.Time

	ctrl *FallbackController
}

func NewTokenAnalyzer(primary drepo.PrimaryAPI, market drepo.MarketData, security drepo.SecurityScanner, opts ...Option) *TokenAnalyzer {
	a := &TokenAnalyzer{
		primary:  primary,
		market:   market,
		security: security,
		metrics:  noopMetrics{},
		logger:   applogger.Nop(),
		now:      func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(a)
	}
	a.ctrl = NewFallbackController(a.logger, a.metrics)
	return a
}

func WithLogger(l *applogger.Logger) Option {
	return func(a *TokenAnalyzer) {
		if l != nil {
			a.logger = l.With(applogger.String("component", "token_analyzer"))
		}
	}
}

func WithMetrics(m drepo.Metrics) Option {
	return func(a *TokenAnalyzer) {
		if m != nil {
			a.metrics = m
		}
	}
}

// WithPublisher forwards every successful analysis to p.
func WithPublisher(p drepo.AnalysisPublisher) Option {
	return func(a *TokenAnalyzer) { a.publisher = p }
}

// WithWatchlistStore sets the local watchlist used in fallback mode.
func WithWatchlistStore(s drepo.WatchlistStore) Option {
	return func(a *TokenAnalyzer) { a.watchlist = s }
}

// WithFallbackTimeout bounds each fallback fan-out. Zero leaves it to the transport.
func WithFallbackTimeout(d time.Duration) Option {
	return func(a *TokenAnalyzer) { a.fallbackTimeout = d }
}

func WithClock(now func() time.Time) Option {
	return func(a *TokenAnalyzer) {
		if now != nil {
			a.now = now
		}
	}
}

// UsingFallback reports whether the analyzer has given up on the primary API.
func (a *TokenAnalyzer) UsingFallback() bool {
	return a.ctrl.UsingFallback()
}

// Analyze returns the full analysis record for a token.
func (a *TokenAnalyzer) Analyze(ctx context.Context, chain, address string) (*models.AnalysisResult, error) {
	chain = normalizeChain(chain)
	res, err := performWithFallback(ctx, a.ctrl, "analyze",
		func(ctx context.Context) (*models.AnalysisResult, error) {
			return a.primary.Analyze(ctx, chain, address)
		},
		func(ctx context.Context) (*models.AnalysisResult, error) {
			return a.analyzeFallback(ctx, chain, address)
		},
	)
	if err != nil {
		return nil, err
	}

	a.metrics.RecordRiskScore(res.RiskScore)
	a.publish(ctx, res)
	return res, nil
}

// Signals returns only the risk signals for a token.
func (a *TokenAnalyzer) Signals(ctx context.Context, chain, address string) ([]models.Signal, error) {
	chain = normalizeChain(chain)
	return performWithFallback(ctx, a.ctrl, "signals",
		func(ctx context.Context) ([]models.Signal, error) {
			return a.primary.Signals(ctx, chain, address)
		},
		func(ctx context.Context) ([]models.Signal, error) {
			ctx, cancel := a.fallbackContext(ctx)
			defer cancel()
			return analysis.DeriveSignals(a.fetchSecurity(ctx, chain, address), a.now()), nil
		},
	)
}

// Contract returns the contract-security summary for a token.
func (a *TokenAnalyzer) Contract(ctx context.Context, chain, address string) (*models.ContractSecurity, error) {
	chain = normalizeChain(chain)
	return performWithFallback(ctx, a.ctrl, "contract",
		func(ctx context.Context) (*models.ContractSecurity, error) {
			return a.primary.Contract(ctx, chain, address)
		},
		func(ctx context.Context) (*models.ContractSecurity, error) {
			ctx, cancel := a.fallbackContext(ctx)
			defer cancel()
			c := analysis.ContractSummary(a.fetchSecurity(ctx, chain, address))
			if c == nil {
				return nil, ErrContractUnavailable
			}
			return c, nil
		},
	)
}

// Search looks tokens up by name, symbol or address.
func (a *TokenAnalyzer) Search(ctx context.Context, query string) ([]models.TokenSummary, error) {
	return performWithFallback(ctx, a.ctrl, "search",
		func(ctx context.Context) ([]models.TokenSummary, error) {
			return a.primary.Search(ctx, query)
		},
		func(ctx context.Context) ([]models.TokenSummary, error) {
			ctx, cancel := a.fallbackContext(ctx)
			defer cancel()
			pairs, err := a.market.SearchPairs(ctx, query)
			a.recordUpstream("dexscreener", err)
			if err != nil {
				return nil, fmt.Errorf("search: %w", err)
			}
			return summarize(pairs), nil
		},
	)
}

// Trending lists trending tokens, optionally restricted to one chain.
func (a *TokenAnalyzer) Trending(ctx context.Context, chain string, limit int) ([]models.TrendingToken, error) {
	chain = normalizeChain(chain)
	return performWithFallback(ctx, a.ctrl, "trending",
		func(ctx context.Context) ([]models.TrendingToken, error) {
			return a.primary.Trending(ctx, chain, limit)
		},
		func(ctx context.Context) ([]models.TrendingToken, error) {
			ctx, cancel := a.fallbackContext(ctx)
			defer cancel()
			boosts, err := a.market.TopBoosts(ctx)
			a.recordUpstream("dexscreener", err)
			if err != nil {
				return nil, fmt.Errorf("trending: %w", err)
			}
			return trending(boosts, chain, limit), nil
		},
	)
}

func (a *TokenAnalyzer) Watchlist(ctx context.Context) ([]models.WatchlistEntry, error) {
	return performWithFallback(ctx, a.ctrl, "watchlist",
		a.primary.Watchlist,
		func(ctx context.Context) ([]models.WatchlistEntry, error) {
			if a.watchlist == nil {
				return nil, ErrWatchlistUnavailable
			}
			return a.watchlist.List(ctx)
		},
	)
}

func (a *TokenAnalyzer) AddToWatchlist(ctx context.Context, chain, address, note string) error {
	entry := models.WatchlistEntry{
		Chain:   normalizeChain(chain),
		Address: address,
		Note:    note,
		AddedAt: a.now(),
	}
	_, err := performWithFallback(ctx, a.ctrl, "watchlist_add",
		func(ctx context.Context) (struct{}, error) {
			return struct{}{}, a.primary.AddToWatchlist(ctx, entry)
		},
		func(ctx context.Context) (struct{}, error) {
			if a.watchlist == nil {
				return struct{}{}, ErrWatchlistUnavailable
			}
			return struct{}{}, a.watchlist.Add(ctx, entry)
		},
	)
	return err
}

func (a *TokenAnalyzer) RemoveFromWatchlist(ctx context.Context, chain, address string) error {
	chain = normalizeChain(chain)
	_, err := performWithFallback(ctx, a.ctrl, "watchlist_remove",
		func(ctx context.Context) (struct{}, error) {
			return struct{}{}, a.primary.RemoveFromWatchlist(ctx, chain, address)
		},
		func(ctx context.Context) (struct{}, error) {
			if a.watchlist == nil {
				return struct{}{}, ErrWatchlistUnavailable
			}
			return struct{}{}, a.watchlist.Remove(ctx, chain, address)
		},
	)
	return err
}

// Close releases the publisher, if any.
func (a *TokenAnalyzer) Close() error {
	if a.publisher != nil {
		return a.publisher.Close()
	}
	return nil
}

// analyzeFallback fetches market and security data concurrently and merges them.
// Missing market data fails the call; missing security data only degrades it.
func (a *TokenAnalyzer) analyzeFallback(ctx context.Context, chain, address string) (*models.AnalysisResult, error) {
	ctx, cancel := a.fallbackContext(ctx)
	defer cancel()

	var (
		wg      sync.WaitGroup
		pair    *dexscreener.Pair
		pairErr error
		sec     *goplus.TokenSecurity
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		pair, pairErr = a.market.TokenPair(ctx, address)
		a.recordUpstream("dexscreener", pairErr)
	}()
	go func() {
		defer wg.Done()
		sec = a.fetchSecurity(ctx, chain, address)
	}()
	wg.Wait()

	if pairErr != nil {
		a.logger.Warn("market data fetch failed",
			applogger.String("chain", chain),
			applogger.String("address", address),
			applogger.Error(pairErr),
		)
	}
	if pair == nil {
		a.logger.Info("token not found in market data",
			applogger.String("chain", chain),
			applogger.String("address", address),
		)
		return nil, ErrTokenNotFound
	}

	return analysis.Assemble(chain, address, pair, sec, a.now()), nil
}

// fetchSecurity returns nil on any failure; security data is optional.
func (a *TokenAnalyzer) fetchSecurity(ctx context.Context, chain, address string) *goplus.TokenSecurity {
	sec, err := a.security.TokenSecurity(ctx, chain, address)
	a.recordUpstream("goplus", err)
	if err != nil {
		a.logger.Debug("security data unavailable",
			applogger.String("chain", chain),
			applogger.String("address", address),
			applogger.Error(err),
		)
		return nil
	}
	return sec
}

func (a *TokenAnalyzer) fallbackContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.fallbackTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, a.fallbackTimeout)
}

func (a *TokenAnalyzer) publish(ctx context.Context, res *models.AnalysisResult) {
	if a.publisher == nil {
		return
	}
	if err := a.publisher.PublishAnalysis(ctx, res); err != nil {
		a.logger.Warn("publish analysis failed",
			applogger.String("chain", res.Token.Chain),
			applogger.String("address", res.Token.Address),
			applogger.Error(err),
		)
	}
}

func (a *TokenAnalyzer) recordUpstream(source string, err error) {
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	a.metrics.RecordUpstream(source, outcome)
}

func normalizeChain(chain string) string {
	return strings.ToLower(strings.TrimSpace(chain))
}
