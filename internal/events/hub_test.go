package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublish_DeliversToAllSubscribers(t *testing.T) {
	hub := NewHub()
	a := hub.Subscribe()
	b := hub.Subscribe()

	delivered := hub.Publish(BillSaved{BillID: "1", WriteStage: StageInterim})
	assert.Equal(t, 2, delivered)

	assert.Equal(t, "1", (<-a).BillID)
	assert.Equal(t, "1", (<-b).BillID)
}

func TestPublish_NoSubscribers(t *testing.T) {
	hub := NewHub()
	assert.Equal(t, 0, hub.Publish(BillSaved{BillID: "1"}))
}

func TestPublish_SlowSubscriberDoesNotBlock(t *testing.T) {
	hub := NewHub()
	ch := hub.Subscribe()

	// Fill the buffer without draining.
	for i := 0; i < cap(ch); i++ {
		assert.Equal(t, 1, hub.Publish(BillSaved{BillID: "x"}))
	}

	// Buffer full: the event is dropped instead of blocking.
	assert.Equal(t, 0, hub.Publish(BillSaved{BillID: "dropped"}))
}

func TestUnsubscribe_ClosesChannel(t *testing.T) {
	hub := NewHub()
	ch := hub.Subscribe()

	hub.Unsubscribe(ch)
	_, ok := <-ch
	assert.False(t, ok)

	// Double unsubscribe is safe.
	hub.Unsubscribe(ch)
	assert.Equal(t, 0, hub.Publish(BillSaved{BillID: "1"}))
}
