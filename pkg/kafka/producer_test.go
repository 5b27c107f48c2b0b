package kafka

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *recordingWriter) Close() error {
	w.closed = true
	return nil
}

func TestProducerPublishEncodesJSON(t *testing.T) {
	w := &recordingWriter{}
	p := NewProducerWithWriter(w, "analyses", "gzip")

	require.NoError(t, p.Publish(context.Background(), []byte("bsc:0x1"), map[string]int{"riskScore": 40}))
	require.Len(t, w.msgs, 1)
	assert.Equal(t, "bsc:0x1", string(w.msgs[0].Key))
	assert.JSONEq(t, `{"riskScore":40}`, string(w.msgs[0].Value))
	assert.Empty(t, w.msgs[0].Topic)

	require.NoError(t, p.Close())
	assert.True(t, w.closed)
}

func TestProducerPublishBatch(t *testing.T) {
	w := &recordingWriter{}
	p := NewProducerWithWriter(w, "analyses", "gzip")

	require.NoError(t, p.PublishBatch(context.Background(), nil))
	assert.Empty(t, w.msgs)

	err := p.PublishBatch(context.Background(), []Message{
		{Key: []byte("a"), Value: "raw"},
		{Key: []byte("b"), Value: []byte("bytes")},
	})
	require.NoError(t, err)
	require.Len(t, w.msgs, 2)
	assert.Equal(t, "raw", string(w.msgs[0].Value))
	assert.Equal(t, "bytes", string(w.msgs[1].Value))
}

func TestProducerPublishError(t *testing.T) {
	w := &recordingWriter{err: errors.New("broker down")}
	p := NewProducerWithWriter(w, "analyses", "gzip")
	assert.Error(t, p.Publish(context.Background(), nil, "x"))
}

func TestProducerMarshalError(t *testing.T) {
	p := NewProducerWithWriter(&recordingWriter{}, "analyses", "gzip")
	err := p.Publish(context.Background(), nil, make(chan int))
	assert.Error(t, err)
}

func TestNewProducerRequiresBrokersAndTopic(t *testing.T) {
	_, err := NewProducer(WithTopic("t"))
	assert.Error(t, err)
	_, err = NewProducer(WithBrokers([]string{"localhost:9092"}))
	assert.Error(t, err)
}

func TestNewProducerAppliesBatching(t *testing.T) {
	p, err := NewProducer(
		WithBrokers([]string{"localhost:9092"}),
		WithTopic("analyses"),
		WithBatchSize(7),
		WithBatchBytes(2048),
		WithBatchTimeout(50*time.Millisecond),
	)
	require.NoError(t, err)
	defer p.Close()

	w, ok := p.writer.(*kafka.Writer)
	require.True(t, ok)
	assert.Equal(t, "analyses", w.Topic)
	assert.Equal(t, 7, w.BatchSize)
	assert.Equal(t, int64(2048), w.BatchBytes)
	assert.Equal(t, 50*time.Millisecond, w.BatchTimeout)
	assert.IsType(t, &kafka.Hash{}, w.Balancer)

	p, err = NewProducer(WithBrokers([]string{"localhost:9092"}), WithTopic("t"))
	require.NoError(t, err)
	assert.Equal(t, "t", p.Topic())
	require.NoError(t, p.Close())
}
