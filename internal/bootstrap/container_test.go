package bootstrap

import (
	"context"
	"testing"
	"time"

	"counselling-portal-be/internal/config"
	"counselling-portal-be/internal/repository/memory"
	"counselling-portal-be/pkg/bus"
	"counselling-portal-be/pkg/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventBus_FallsBackToLocalBus(t *testing.T) {
	c := &Container{}
	defer func() {
		for _, closeFn := range c.closers {
			closeFn()
		}
	}()

	start := time.Now()
	sink, source := c.eventBus("nats://127.0.0.1:1")
	assert.Less(t, time.Since(start), 5*time.Second)

	local, ok := sink.(*bus.LocalBus)
	require.True(t, ok, "expected the in-process bus, got %T", sink)
	assert.Same(t, local, source)
	assert.Len(t, c.closers, 1)

	received := make(chan events.Event, 1)
	require.NoError(t, source.Subscribe("events.REPORT_GENERATED", "test", func(ctx context.Context, event events.Event) error {
		received <- event
		return nil
	}))
	require.NoError(t, sink.Publish(context.Background(), events.BaseEvent{Type: "REPORT_GENERATED", Data: map[string]interface{}{}}))

	select {
	case evt := <-received:
		assert.Equal(t, "REPORT_GENERATED", evt.EventType())
	case <-time.After(2 * time.Second):
		t.Fatal("event was not delivered on the local bus")
	}
}

func TestPrincipalCache_MemoryWithoutRedis(t *testing.T) {
	c := &Container{}
	cfg := &config.Config{}
	cfg.Auth.PrincipalCacheTTL = time.Minute

	_, ok := c.principalCache(cfg).(*memory.PrincipalRepository)
	assert.True(t, ok)
	assert.Empty(t, c.closers)
}
