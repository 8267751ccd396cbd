package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBusDeliversToSubscribers(t *testing.T) {
	bus := NewBus()
	ch, cancel := bus.Subscribe(TopicServerState)
	defer cancel()

	bus.Publish(TopicServerState, ServerStateDTO{Online: true, Players: 3})

	select {
	case got := <-ch:
		dto, ok := got.(ServerStateDTO)
		require.True(t, ok)
		assert.True(t, dto.Online)
		assert.Equal(t, 3, dto.Players)
	case <-time.After(time.Second):
		t.Fatal("no event delivered")
	}
}

func TestBusUnsubscribeStopsDelivery(t *testing.T) {
	bus := NewBus()
	ch, cancel := bus.Subscribe(TopicAppError)
	cancel()

	bus.Publish(TopicAppError, ErrorDTO{Source: "test"})

	_, open := <-ch
	assert.False(t, open, "channel closed after unsubscribe")
}

func TestBusPublishNeverBlocks(t *testing.T) {
	bus := NewBus()
	_, cancel := bus.Subscribe(TopicInteraction)
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < subscriberBuffer*2; i++ {
			bus.Publish(TopicInteraction, InteractionDTO{ControlID: "tag:rank:gold"})
		}
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked on a full subscriber")
	}
}
