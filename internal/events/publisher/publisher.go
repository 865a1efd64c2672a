// Package publisher ships user events to Kafka. Publishing is asynchronous
// and best-effort: domain operations never fail or stall because the broker
// is down. Overflow drops the event and bumps a counter instead of blocking.
package publisher

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/twmb/franz-go/pkg/kadm"
	"github.com/twmb/franz-go/pkg/kerr"
	"github.com/twmb/franz-go/pkg/kgo"

	"github.com/tiyodv/freeCodeCamp/internal/events"
	"github.com/tiyodv/freeCodeCamp/internal/platform/config"
	"github.com/tiyodv/freeCodeCamp/internal/platform/metrics"
)

// producer is the slice of kgo.Client the publisher needs; tests swap in a
// fake to observe records without a broker.
type producer interface {
	Produce(ctx context.Context, r *kgo.Record, promise func(*kgo.Record, error))
	Flush(ctx context.Context) error
	Close()
}

// Publisher buffers events in a bounded channel and writes them to one topic.
type Publisher struct {
	producer producer
	topic    string
	inbox    chan events.Event
	logger   *slog.Logger
	metrics  *metrics.Metrics
}

const inboxCapacity = 4096

// New connects to the brokers and ensures the topic exists before the first
// produce. A topic-already-exists response from the cluster is fine.
func New(cfg config.Kafka, logger *slog.Logger, m *metrics.Metrics) (*Publisher, error) {
	client, err := kgo.NewClient(
		kgo.SeedBrokers(cfg.Brokers...),
		kgo.ProducerBatchMaxBytes(1 << 20),
	)
	if err != nil {
		return nil, fmt.Errorf("kafka client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	adm := kadm.NewClient(client)
	resp, err := adm.CreateTopic(ctx, 1, 1, nil, cfg.Topic)
	if err == nil {
		err = resp.Err
	}
	if err != nil && !errors.Is(err, kerr.TopicAlreadyExists) {
		client.Close()
		return nil, fmt.Errorf("ensure topic %q: %w", cfg.Topic, err)
	}

	return newWith(client, cfg.Topic, logger, m), nil
}

func newWith(p producer, topic string, logger *slog.Logger, m *metrics.Metrics) *Publisher {
	return &Publisher{
		producer: p,
		topic:    topic,
		inbox:    make(chan events.Event, inboxCapacity),
		logger:   logger,
		metrics:  m,
	}
}

// Emit enqueues an event without blocking. When the inbox is full the event
// is dropped and counted.
func (p *Publisher) Emit(event events.Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	select {
	case p.inbox <- event:
	default:
		if p.metrics != nil {
			p.metrics.EventsDropped.Inc()
		}
		p.logger.Warn("user event dropped, inbox full", "action", event.Action)
	}
}

// Run drains the inbox until ctx is cancelled, then flushes what remains.
func (p *Publisher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			p.drain(flushCtx)
			if err := p.producer.Flush(flushCtx); err != nil {
				p.logger.Warn("event flush on shutdown failed", "error", err)
			}
			p.producer.Close()
			// Cancellation is the normal shutdown path, not a failure.
			return nil
		case event := <-p.inbox:
			p.produce(ctx, event)
		}
	}
}

func (p *Publisher) drain(ctx context.Context) {
	for {
		select {
		case event := <-p.inbox:
			p.produce(ctx, event)
		default:
			return
		}
	}
}

func (p *Publisher) produce(ctx context.Context, event events.Event) {
	payload, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("marshal user event", "error", err, "action", event.Action)
		return
	}
	record := &kgo.Record{
		Topic: p.topic,
		Key:   []byte(event.UserID),
		Value: payload,
	}
	p.producer.Produce(ctx, record, func(_ *kgo.Record, err error) {
		if err != nil {
			p.logger.Warn("user event produce failed", "error", err, "action", event.Action)
		}
	})
}
