package repository

import (
	"context"
	"time"

	"TokenScope/internal/domain/models"
	"TokenScope/internal/service/dexscreener"
	"TokenScope/internal/service/goplus"
)

// PrimaryAPI is the hosted token-analytics API. Any returned error counts as a primary failure.
type PrimaryAPI interface {
	Analyze(ctx context.Context, chain, address string) (*models.AnalysisResult, error)
	Signals(ctx context.Context, chain, address string) ([]models.Signal, error)
	Contract(ctx context.Context, chain, address string) (*models.ContractSecurity, error)
	Search(ctx context.Context, query string) ([]models.TokenSummary, error)
	Trending(ctx context.Context, chain string, limit int) ([]models.TrendingToken, error)
	Watchlist(ctx context.Context) ([]models.WatchlistEntry, error)
	AddToWatchlist(ctx context.Context, entry models.WatchlistEntry) error
	RemoveFromWatchlist(ctx context.Context, chain, address string) error
}

// MarketData returns the first DEX pair for a token, or (nil, nil) when none exists.
type MarketData interface {
	TokenPair(ctx context.Context, address string) (*dexscreener.Pair, error)
	SearchPairs(ctx context.Context, query string) ([]dexscreener.Pair, error)
	TopBoosts(ctx context.Context) ([]dexscreener.Boost, error)
}

// SecurityScanner returns the raw scan for a token, or (nil, nil) when unavailable
// (including unsupported chains).
type SecurityScanner interface {
	TokenSecurity(ctx context.Context, chain, address string) (*goplus.TokenSecurity, error)
}

// WatchlistStore is the local watchlist used while the primary API is unavailable.
type WatchlistStore interface {
	List(ctx context.Context) ([]models.WatchlistEntry, error)
	Add(ctx context.Context, entry models.WatchlistEntry) error
	Remove(ctx context.Context, chain, address string) error
}

// AnalysisPublisher forwards finished analyses to downstream consumers.
type AnalysisPublisher interface {
	PublishAnalysis(ctx context.Context, res *models.AnalysisResult) error
	Close() error
}

type Metrics interface {
	RecordPrimary(operation, outcome string)
	RecordFallbackActivated(operation string)
	RecordUpstream(source, outcome string)
	RecordRiskScore(score int)
	RecordLatency(op string, d time.Duration)
}
