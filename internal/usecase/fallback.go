package usecase

import (
	"context"
	"sync/atomic"
	"time"

	drepo "TokenScope/internal/domain/repository"
	applogger "TokenScope/pkg/logger"
)

// FallbackController routes calls to the primary API until its first failure,
// then permanently to the fallback path. The switch is one-way for the
// lifetime of the controller.
type FallbackController struct {
	useFallback atomic.Bool
	logger      *applogger.Logger
	metrics     drepo.Metrics
}

func NewFallbackController(l *applogger.Logger, m drepo.Metrics) *FallbackController {
	if l == nil {
		l = applogger.Nop()
	}
	if m == nil {
		m = noopMetrics{}
	}
	return &FallbackController{logger: l, metrics: m}
}

// UsingFallback reports whether the primary API has been abandoned.
func (f *FallbackController) UsingFallback() bool {
	return f.useFallback.Load()
}

func (f *FallbackController) markFailed(op string, err error) {
	if f.useFallback.CompareAndSwap(false, true) {
		f.metrics.RecordFallbackActivated(op)
		f.logger.Warn("primary api failed, switching to fallback",
			applogger.String("operation", op),
			applogger.Error(err),
		)
		return
	}
	f.logger.Debug("primary api failed", applogger.String("operation", op), applogger.Error(err))
}

// performWithFallback runs primary unless fallback mode is on; any primary error
// flips fallback mode on and the fallback result is returned instead.
func performWithFallback[T any](
	ctx context.Context,
	f *FallbackController,
	op string,
	primary func(context.Context) (T, error),
	fallback func(context.Context) (T, error),
) (T, error) {
	if !f.useFallback.Load() && primary != nil {
		start := time.Now()
		res, err := primary(ctx)
		f.metrics.RecordLatency("primary_"+op, time.Since(start))
		if err == nil {
			f.metrics.RecordPrimary(op, "success")
			return res, nil
		}
		f.metrics.RecordPrimary(op, "failure")
		f.markFailed(op, err)
	} else {
		f.metrics.RecordPrimary(op, "skipped")
	}

	start := time.Now()
	res, err := fallback(ctx)
	f.metrics.RecordLatency("fallback_"+op, time.Since(start))
	return res, err
}

type noopMetrics struct{}

func (noopMetrics) RecordPrimary(string, string)        {}
func (noopMetrics) RecordFallbackActivated(string)      {}
func (noopMetrics) RecordUpstream(string, string)       {}
func (noopMetrics) RecordRiskScore(int)                 {}
func (noopMetrics) RecordLatency(string, time.Duration) {}
