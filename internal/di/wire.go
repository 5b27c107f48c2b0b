//go:build wireinject
// +build wireinject

package di

import (
	"TokenScope/pkg/client"
	"TokenScope/pkg/config"
	"TokenScope/pkg/server"

	"github.com/google/wire"
)

var clientSet = wire.NewSet(
	// Infrastructure
	ProvideLogger,
	ProvideMetrics,
	ProvideWatchlistCache,
	ProvideKafkaProducer,

	// Repositories
	ProvideWatchlistStore,
	ProvideAnalysisPublisher,

	// Client
	ProvideClient,
)

// InitializeApp wires up all dependencies for serve mode.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		clientSet,
		ProvideTokenHandler,
		ProvideApp,
	)
	return &server.App{}, nil
}

// InitializeClient wires a client for one-shot CLI commands.
func InitializeClient(cfg *config.Config) (*client.Client, error) {
	wire.Build(clientSet)
	return &client.Client{}, nil
}
