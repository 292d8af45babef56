package sse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHubPublishReachesCompanySubscribers(t *testing.T) {
	hub := NewHub()

	ch, cleanup := hub.Subscribe("company-1")
	defer cleanup()

	hub.Publish("company-1", Event{CompanyID: "company-1", Event: "notification", Data: "hello"})

	select {
	case event := <-ch:
		assert.Equal(t, "notification", event.Event)
		assert.Equal(t, "hello", event.Data)
	case <-time.After(time.Second):
		t.Fatal("expected event was not delivered")
	}
}

func TestHubPublishIsTenantScoped(t *testing.T) {
	hub := NewHub()

	ch, cleanup := hub.Subscribe("company-1")
	defer cleanup()

	hub.Publish("company-2", Event{CompanyID: "company-2", Event: "notification"})

	select {
	case <-ch:
		t.Fatal("event leaked across tenants")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHubCleanupRemovesSubscriber(t *testing.T) {
	hub := NewHub()

	_, cleanup := hub.Subscribe("company-1")
	require.Equal(t, 1, hub.SubscriberCount("company-1"))

	cleanup()
	assert.Equal(t, 0, hub.SubscriberCount("company-1"))
}

func TestHubPublishDoesNotBlockOnFullChannel(t *testing.T) {
	hub := NewHub()

	_, cleanup := hub.Subscribe("company-1")
	defer cleanup()

	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			hub.Publish("company-1", Event{Event: "notification"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Publish blocked on a full subscriber channel")
	}
}
