package di

import (
	"fmt"

	"TokenScope/internal/domain/repository"
	"TokenScope/internal/handler/api"
	internalrepo "TokenScope/internal/repository"
	"TokenScope/pkg/cache"
	"TokenScope/pkg/client"
	"TokenScope/pkg/config"
	pkgkafka "TokenScope/pkg/kafka"
	applogger "TokenScope/pkg/logger"
	"TokenScope/pkg/metrics"
	"TokenScope/pkg/server"
)

// ProvideLogger creates the application logger from the log section.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	l, err := applogger.New(&applogger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

// ProvideMetrics creates a Prometheus metrics recorder, or nil when metrics are disabled.
func ProvideMetrics(cfg *config.Config) repository.Metrics {
	if !cfg.Metrics.Enabled {
		return nil
	}
	return metrics.New()
}

// ProvideWatchlistCache creates the cache backing the local watchlist.
func ProvideWatchlistCache(cfg *config.Config) (cache.Service, error) {
	if cfg.Watchlist.Backend != "redis" {
		return cache.NewMemoryCache(cache.WithMemoryMaxSize(16)), nil
	}
	rc, err := cache.NewRedisCache(
		cache.WithRedisAddr(cfg.Watchlist.Redis.Addr),
		cache.WithRedisPassword(cfg.Watchlist.Redis.Password),
		cache.WithRedisDB(cfg.Watchlist.Redis.DB),
		cache.WithRedisPrefix(cfg.Watchlist.Redis.Prefix),
		cache.WithRedisPool(cfg.Watchlist.Redis.PoolSize, cfg.Watchlist.Redis.MinIdleConns, cfg.Watchlist.Redis.PoolTimeout),
	)
	if err != nil {
		return nil, fmt.Errorf("watchlist redis: %w", err)
	}
	return rc, nil
}

// ProvideWatchlistStore creates the watchlist repository.
func ProvideWatchlistStore(c cache.Service) repository.WatchlistStore {
	return internalrepo.NewCacheWatchlistStore(c)
}

// ProvideKafkaProducer creates a Kafka producer, or nil when publishing is disabled.
func ProvideKafkaProducer(cfg *config.Config) (*pkgkafka.Producer, error) {
	if !cfg.Kafka.Enabled {
		return nil, nil
	}
	producer, err := pkgkafka.NewProducer(
		pkgkafka.WithBrokers(cfg.Kafka.Brokers),
		pkgkafka.WithTopic(cfg.Kafka.Topic),
		pkgkafka.WithCompression(cfg.Kafka.Compression),
		pkgkafka.WithRequiredAcks(cfg.Kafka.RequiredAcks),
		pkgkafka.WithMaxAttempts(cfg.Kafka.MaxAttempts),
		pkgkafka.WithTimeouts(cfg.Kafka.WriteTimeout, cfg.Kafka.WriteTimeout),
		pkgkafka.WithBatchSize(cfg.Kafka.BatchSize),
		pkgkafka.WithBatchBytes(cfg.Kafka.BatchBytes),
		pkgkafka.WithBatchTimeout(cfg.Kafka.BatchTimeout),
		pkgkafka.WithAsync(cfg.Kafka.Async),
		pkgkafka.WithHashByKey(true),
	)
	if err != nil {
		return nil, fmt.Errorf("kafka producer: %w", err)
	}
	return producer, nil
}

// ProvideAnalysisPublisher creates the Kafka publisher repository.
func ProvideAnalysisPublisher(producer *pkgkafka.Producer) repository.AnalysisPublisher {
	if producer == nil {
		return nil
	}
	return internalrepo.NewKafkaAnalysisPublisher(producer)
}

// ProvideClient assembles the token client with every optional collaborator.
func ProvideClient(
	cfg *config.Config,
	l *applogger.Logger,
	m repository.Metrics,
	pub repository.AnalysisPublisher,
	store repository.WatchlistStore,
) *client.Client {
	return client.New(client.Options{
		APIKey:          cfg.API.Key,
		BaseURL:         cfg.API.BaseURL,
		Timeout:         cfg.API.Timeout,
		FallbackTimeout: cfg.Fallback.Timeout,
		DexScreenerURL:  cfg.DexScreener.BaseURL,
		GoPlusURL:       cfg.GoPlus.BaseURL,
		Logger:          l,
		Metrics:         m,
		Publisher:       pub,
		WatchlistStore:  store,
	})
}

// ProvideTokenHandler creates the HTTP handler over the client's analyzer.
func ProvideTokenHandler(l *applogger.Logger, c *client.Client) *api.TokenEchoHandler {
	return api.NewTokenEchoHandler(l, c.Analyzer())
}

// ProvideApp creates the serve-mode application.
func ProvideApp(
	cfg *config.Config,
	l *applogger.Logger,
	h *api.TokenEchoHandler,
	c *client.Client,
	wc cache.Service,
) *server.App {
	return server.New(cfg, l, h, c, wc)
}
