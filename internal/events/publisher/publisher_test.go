package publisher

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twmb/franz-go/pkg/kgo"

	"github.com/tiyodv/freeCodeCamp/internal/events"
)

// fakeProducer records produced records in memory.
type fakeProducer struct {
	mu      sync.Mutex
	records []*kgo.Record
	flushed bool
	closed  bool
}

func (f *fakeProducer) Produce(_ context.Context, r *kgo.Record, promise func(*kgo.Record, error)) {
	f.mu.Lock()
	f.records = append(f.records, r)
	f.mu.Unlock()
	if promise != nil {
		promise(r, nil)
	}
}

func (f *fakeProducer) Flush(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.flushed = true
	return nil
}

func (f *fakeProducer) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
}

func (f *fakeProducer) snapshot() []*kgo.Record {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*kgo.Record(nil), f.records...)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestPublisherProducesEnqueuedEvents(t *testing.T) {
	fake := &fakeProducer{}
	pub := newWith(fake, "user-events", testLogger(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- pub.Run(ctx) }()

	pub.Emit(events.Event{
		ID:     "evt-1",
		UserID: "user-1",
		Action: events.ActionSettingsUpdated,
		Detail: map[string]string{"field": "email"},
	})

	require.Eventually(t, func() bool {
		return len(fake.snapshot()) == 1
	}, time.Second, 10*time.Millisecond)

	cancel()
	require.NoError(t, <-done, "cancellation is a clean shutdown, not an error")

	records := fake.snapshot()
	require.Len(t, records, 1)
	assert.Equal(t, "user-events", records[0].Topic)
	assert.Equal(t, []byte("user-1"), records[0].Key)

	var event events.Event
	require.NoError(t, json.Unmarshal(records[0].Value, &event))
	assert.Equal(t, events.ActionSettingsUpdated, event.Action)
	assert.Equal(t, "email", event.Detail["field"])
	assert.False(t, event.Timestamp.IsZero(), "Emit stamps events missing a timestamp")

	assert.True(t, fake.flushed)
	assert.True(t, fake.closed)
}

func TestPublisherDrainsInboxOnShutdown(t *testing.T) {
	fake := &fakeProducer{}
	pub := newWith(fake, "user-events", testLogger(), nil)

	// Enqueue before Run so shutdown has something to drain.
	for i := 0; i < 5; i++ {
		pub.Emit(events.Event{ID: "evt", UserID: "user-1", Action: events.ActionChallengeCompleted})
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, pub.Run(ctx))

	assert.Len(t, fake.snapshot(), 5)
	assert.True(t, fake.flushed)
}

func TestEmitDropsWhenInboxFull(t *testing.T) {
	fake := &fakeProducer{}
	pub := newWith(fake, "user-events", testLogger(), nil)

	// No Run loop consuming; fill the inbox past capacity.
	for i := 0; i < inboxCapacity+10; i++ {
		pub.Emit(events.Event{ID: "evt", UserID: "user-1", Action: events.ActionUserCreated})
	}

	assert.Len(t, pub.inbox, inboxCapacity)
}
