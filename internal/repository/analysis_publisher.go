package repository

import (
	"context"
	"fmt"

	"TokenScope/internal/domain/models"
	"TokenScope/internal/domain/repository"
	pkgkafka "TokenScope/pkg/kafka"
)

// KafkaAnalysisPublisher writes each analysis as JSON, keyed chain:address so
// analyses of one token stay on one partition.
type KafkaAnalysisPublisher struct {
	producer *pkgkafka.Producer
}

// NewKafkaAnalysisPublisher creates a publisher over an existing producer.
func NewKafkaAnalysisPublisher(p *pkgkafka.Producer) repository.AnalysisPublisher {
	return &KafkaAnalysisPublisher{producer: p}
}

func (p *KafkaAnalysisPublisher) PublishAnalysis(ctx context.Context, res *models.AnalysisResult) error {
	if res == nil {
		return nil
	}
	key := res.Token.Chain + ":" + res.Token.Address
	if err := p.producer.Publish(ctx, []byte(key), res); err != nil {
		return fmt.Errorf("publish analysis %s: %w", key, err)
	}
	return nil
}

func (p *KafkaAnalysisPublisher) Close() error {
	return p.producer.Close()
}
