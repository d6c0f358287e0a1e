package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcher_PublishSubscribe(t *testing.T) {
	d := NewInMemoryDispatcher()

	var seen []Event
	d.Subscribe(EventStudentCreated, func(_ context.Context, e Event) error {
		seen = append(seen, e)
		return nil
	})

	event := Event{
		ID:        "evt-1",
		Type:      EventStudentCreated,
		StudentID: 7,
		Actor:     "admin",
		Timestamp: time.Now(),
	}
	require.NoError(t, d.Publish(context.Background(), event))
	require.Len(t, seen, 1)
	assert.Equal(t, int64(7), seen[0].StudentID)

	// Events without subscribers are dropped silently.
	require.NoError(t, d.Publish(context.Background(), Event{Type: EventStudentDeleted}))
	assert.Len(t, seen, 1)
}

func TestDispatcher_HandlerErrorDoesNotStopDelivery(t *testing.T) {
	d := NewInMemoryDispatcher()

	var calls int
	d.Subscribe(EventStudentUpdated, func(context.Context, Event) error {
		calls++
		return errors.New("first handler failed")
	})
	d.Subscribe(EventStudentUpdated, func(context.Context, Event) error {
		calls++
		return nil
	})

	require.NoError(t, d.Publish(context.Background(), Event{Type: EventStudentUpdated}))
	assert.Equal(t, 2, calls)
}
