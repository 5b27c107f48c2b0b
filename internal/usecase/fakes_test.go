package usecase

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"TokenScope/internal/domain/models"
	"TokenScope/internal/service/dexscreener"
	"TokenScope/internal/service/goplus"
)

var errPrimaryDown = errors.New("primary: HTTP 503")

type fakePrimary struct {
	calls atomic.Int32
	err   error
	res   *models.AnalysisResult
}

func (f *fakePrimary) hit() error {
	f.calls.Add(1)
	return f.err
}

func (f *fakePrimary) Analyze(context.Context, string, string) (*models.AnalysisResult, error) {
	if err := f.hit(); err != nil {
		return nil, err
	}
	return f.res, nil
}

func (f *fakePrimary) Signals(context.Context, string, string) ([]models.Signal, error) {
	if err := f.hit(); err != nil {
		return nil, err
	}
	return f.res.Signals, nil
}

func (f *fakePrimary) Contract(context.Context, string, string) (*models.ContractSecurity, error) {
	if err := f.hit(); err != nil {
		return nil, err
	}
	return f.res.Contract, nil
}

func (f *fakePrimary) Search(context.Context, string) ([]models.TokenSummary, error) {
	return nil, f.hit()
}

func (f *fakePrimary) Trending(context.Context, string, int) ([]models.TrendingToken, error) {
	return nil, f.hit()
}

func (f *fakePrimary) Watchlist(context.Context) ([]models.WatchlistEntry, error) {
	return nil, f.hit()
}

func (f *fakePrimary) AddToWatchlist(context.Context, models.WatchlistEntry) error {
	return f.hit()
}

func (f *fakePrimary) RemoveFromWatchlist(context.Context, string, string) error {
	return f.hit()
}

type fakeMarket struct {
	calls  atomic.Int32
	pair   *dexscreener.Pair
	err    error
	pairs  []dexscreener.Pair
	boosts []dexscreener.Boost
	// started/wait let a test observe that both fallback fetches overlap.
	started chan struct{}
	wait    chan struct{}
}

func (f *fakeMarket) TokenPair(ctx context.Context, _ string) (*dexscreener.Pair, error) {
	f.calls.Add(1)
	if f.started != nil {
		close(f.started)
		select {
		case <-f.wait:
		case <-time.After(time.Second):
			return nil, errors.New("security fetch never started")
		}
	}
	return f.pair, f.err
}

func (f *fakeMarket) SearchPairs(context.Context, string) ([]dexscreener.Pair, error) {
	f.calls.Add(1)
	return f.pairs, f.err
}

func (f *fakeMarket) TopBoosts(context.Context) ([]dexscreener.Boost, error) {
	f.calls.Add(1)
	return f.boosts, f.err
}

type fakeSecurity struct {
	calls   atomic.Int32
	sec     *goplus.TokenSecurity
	err     error
	started chan struct{}
}

func (f *fakeSecurity) TokenSecurity(context.Context, string, string) (*goplus.TokenSecurity, error) {
	f.calls.Add(1)
	if f.started != nil {
		close(f.started)
	}
	return f.sec, f.err
}

type memWatchlist struct {
	mu      sync.Mutex
	entries []models.WatchlistEntry
}

func (m *memWatchlist) List(context.Context) ([]models.WatchlistEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.WatchlistEntry(nil), m.entries...), nil
}

func (m *memWatchlist) Add(_ context.Context, e models.WatchlistEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, e)
	return nil
}

func (m *memWatchlist) Remove(_ context.Context, chain, address string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := m.entries[:0]
	for _, e := range m.entries {
		if e.Chain == chain && e.Address == address {
			continue
		}
		out = append(out, e)
	}
	m.entries = out
	return nil
}

type fakePublisher struct {
	mu        sync.Mutex
	published []*models.AnalysisResult
	closed    bool
}

func (p *fakePublisher) PublishAnalysis(_ context.Context, res *models.AnalysisResult) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.published = append(p.published, res)
	return nil
}

func (p *fakePublisher) Close() error {
	p.closed = true
	return nil
}

type recordingMetrics struct {
	mu        sync.Mutex
	primary   map[string]int
	activated int
	scores    []int
}

func newRecordingMetrics() *recordingMetrics {
	return &recordingMetrics{primary: map[string]int{}}
}

func (m *recordingMetrics) RecordPrimary(op, outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.primary[op+":"+outcome]++
}

func (m *recordingMetrics) RecordFallbackActivated(string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.activated++
}

func (m *recordingMetrics) RecordUpstream(string, string) {}

func (m *recordingMetrics) RecordRiskScore(score int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scores = append(m.scores, score)
}

func (m *recordingMetrics) RecordLatency(string, time.Duration) {}
