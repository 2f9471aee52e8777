package bus

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestBasicPublishSubscribe(t *testing.T) {
	b := New()
	var got []Event
	_, err := b.Subscribe(ComponentSaved, func(e Event) error {
		got = append(got, e)
		return nil
	})
	require.NoError(t, err)

	require.NoError(t, b.Publish(Event{Type: ComponentSaved, Entity: 3, Kind: "location", Properties: []string{"location"}}))
	require.NoError(t, b.Publish(Event{Type: ComponentAdded, Entity: 3, Kind: "location"}))

	require.Len(t, got, 1)
	require.Equal(t, ComponentSaved, got[0].Type)
	require.False(t, got[0].Timestamp.IsZero())
}

func TestSubscribeAll(t *testing.T) {
	b := New()
	count := 0
	_, err := b.SubscribeAll(func(Event) error { count++; return nil })
	require.NoError(t, err)

	for _, typ := range []EventType{ComponentAdded, ComponentSaved, ComponentRemoved, EntityDestroyed} {
		require.NoError(t, b.Publish(Event{Type: typ}))
	}
	require.Equal(t, 4, count)
}

func TestUnsubscribe(t *testing.T) {
	b := New()
	count := 0
	sub, err := b.Subscribe(ComponentRemoved, func(Event) error { count++; return nil })
	require.NoError(t, err)
	require.True(t, sub.IsActive())
	require.Equal(t, ComponentRemoved, sub.EventType())
	require.NotEmpty(t, sub.ID())

	require.NoError(t, b.Publish(Event{Type: ComponentRemoved}))
	require.NoError(t, b.Unsubscribe(sub))
	require.False(t, sub.IsActive())
	require.NoError(t, b.Publish(Event{Type: ComponentRemoved}))

	require.Equal(t, 1, count)
	require.NoError(t, b.Unsubscribe(nil))
	require.Zero(t, b.GetMetrics().SubscribersActive)
}

func TestHandlerErrorsAreJoined(t *testing.T) {
	b := New()
	errA := errors.New("a")
	errB := errors.New("b")
	_, _ = b.Subscribe(ComponentSaved, func(Event) error { return errA })
	_, _ = b.SubscribeAll(func(Event) error { return errB })

	err := b.Publish(Event{Type: ComponentSaved})
	require.ErrorIs(t, err, errA)
	require.ErrorIs(t, err, errB)

	m := b.GetMetrics()
	require.Equal(t, uint64(1), m.Published)
	require.Equal(t, uint64(2), m.DeliveredHandlers)
	require.Equal(t, uint64(1), m.Errors)
	require.Equal(t, uint64(2), m.SubscribersActive)
}

func TestPublishAsyncReturnsErrorChannel(t *testing.T) {
	b := New()
	handlerErr := errors.New("fail")
	_, err := b.Subscribe(ComponentAdded, func(Event) error { return handlerErr })
	require.NoError(t, err)

	select {
	case e := <-b.PublishAsync(Event{Type: ComponentAdded}):
		require.ErrorIs(t, e, handlerErr)
	case <-time.After(time.Second):
		t.Fatal("async publish did not complete")
	}
}

func TestSubscribeNilHandler(t *testing.T) {
	_, err := New().Subscribe(ComponentAdded, nil)
	require.Error(t, err)
}
