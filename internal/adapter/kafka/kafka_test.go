package kafka

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/neo-impact-service/internal/domain"
)

type fakeFetcher struct {
	msgs      []kafkago.Message
	err       error
	committed []kafkago.Message
}

func (f *fakeFetcher) FetchMessage(ctx context.Context) (kafkago.Message, error) {
	if len(f.msgs) > 0 {
		msg := f.msgs[0]
		f.msgs = f.msgs[1:]
		return msg, nil
	}
	if f.err != nil {
		return kafkago.Message{}, f.err
	}
	<-ctx.Done()
	return kafkago.Message{}, ctx.Err()
}

func (f *fakeFetcher) CommitMessages(_ context.Context, msgs ...kafkago.Message) error {
	f.committed = append(f.committed, msgs...)
	return nil
}

func (f *fakeFetcher) Close() error { return nil }

func newTestReader(f *fakeFetcher) *Reader {
	return &Reader{
		reader:        f,
		flushInterval: 50 * time.Millisecond,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestMapMessageToRawEvent(t *testing.T) {
	now := time.Now()
	msg := kafkago.Message{
		Key:       []byte("99942"),
		Value:     []byte(`{"object_id":"99942"}`),
		Topic:     "impact-simulation-requests",
		Partition: 2,
		Offset:    42,
		Time:      now,
		Headers: []kafkago.Header{
			{Key: "source", Value: []byte("genmock")},
		},
	}

	raw := mapMessageToRawEvent(msg)

	assert.Equal(t, []byte("99942"), raw.Key)
	assert.JSONEq(t, `{"object_id":"99942"}`, string(raw.Value))
	assert.Equal(t, "impact-simulation-requests", raw.Topic)
	assert.Equal(t, 2, raw.Partition)
	assert.Equal(t, int64(42), raw.Offset)
	assert.Equal(t, now, raw.Timestamp)
	assert.Equal(t, "genmock", raw.Headers["source"])
}

func TestReader_ExtractBatch(t *testing.T) {
	t.Run("fills batch", func(t *testing.T) {
		f := &fakeFetcher{msgs: []kafkago.Message{{Offset: 1}, {Offset: 2}, {Offset: 3}}}
		batch, err := newTestReader(f).ExtractBatch(context.Background(), 2)
		require.NoError(t, err)
		require.Len(t, batch, 2)
		assert.Equal(t, int64(1), batch[0].Offset)
		assert.Len(t, f.msgs, 1)
	})

	t.Run("flush interval returns partial batch", func(t *testing.T) {
		f := &fakeFetcher{msgs: []kafkago.Message{{Offset: 7}}}
		batch, err := newTestReader(f).ExtractBatch(context.Background(), 10)
		require.NoError(t, err)
		assert.Len(t, batch, 1)
	})

	t.Run("idle topic", func(t *testing.T) {
		batch, err := newTestReader(&fakeFetcher{}).ExtractBatch(context.Background(), 10)
		require.NoError(t, err)
		assert.Empty(t, batch)
	})

	t.Run("fetch error", func(t *testing.T) {
		_, err := newTestReader(&fakeFetcher{err: errors.New("broker down")}).ExtractBatch(context.Background(), 10)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "fetch message")
	})

	t.Run("fetch error after messages keeps batch", func(t *testing.T) {
		f := &fakeFetcher{msgs: []kafkago.Message{{Offset: 1}}, err: errors.New("rebalance")}
		batch, err := newTestReader(f).ExtractBatch(context.Background(), 10)
		require.NoError(t, err)
		assert.Len(t, batch, 1)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := newTestReader(&fakeFetcher{}).ExtractBatch(ctx, 10)
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestReader_CommitUsesFetchedMessage(t *testing.T) {
	f := &fakeFetcher{msgs: []kafkago.Message{{Topic: "impact-simulation-requests", Partition: 1, Offset: 9}}}
	batch, err := newTestReader(f).ExtractBatch(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, batch, 1)

	require.NoError(t, batch[0].Commit(context.Background()))
	require.Len(t, f.committed, 1)
	assert.Equal(t, int64(9), f.committed[0].Offset)
}

func TestReader_CheckReadinessNoBrokers(t *testing.T) {
	r := &Reader{brokers: []string{"127.0.0.1:1"}}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	err := r.CheckReadiness(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no kafka broker reachable")
}

func TestSerializeToMessage(t *testing.T) {
	now := time.Date(2029, 4, 13, 21, 46, 0, 0, time.UTC)
	result := domain.SimulationResult{
		ID:         "6f1c2f9e-0000-4000-8000-000000000000",
		ObjectID:   "99942",
		ComputedAt: now,
		Report: domain.Report{
			Environment: domain.EnvironmentalImpactResult{Severity: domain.SeverityContinental},
		},
	}

	msg, err := serializeToMessage(result)
	require.NoError(t, err)

	assert.Equal(t, []byte("99942"), msg.Key)
	assert.Contains(t, string(msg.Value), `"severity_level":"continental"`)
	assert.Len(t, msg.Headers, 2)
	assert.Equal(t, "severity", msg.Headers[0].Key)
	assert.Equal(t, []byte("continental"), msg.Headers[0].Value)
	assert.Equal(t, "computed_at", msg.Headers[1].Key)
	assert.Equal(t, []byte(now.Format(time.RFC3339)), msg.Headers[1].Value)
}

func TestSerializeToMessage_KeyFallsBackToID(t *testing.T) {
	msg, err := serializeToMessage(domain.SimulationResult{ID: "abc"})
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), msg.Key)
}
