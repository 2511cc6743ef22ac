package events

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryEventStore_Versions(t *testing.T) {
	store := NewInMemoryEventStore()
	stream := RunStream(NewRunID())

	require.NoError(t, store.AppendEvent(stream, NewEvent(RunStartedEvent, stream, RunStarted{Orders: 3})))
	require.NoError(t, store.AppendEvent(stream, NewEvent(OrderExcludedEvent, stream, OrderExcluded{OrderNumber: "A1"})))
	require.NoError(t, store.AppendEvent("other", NewEvent(RunStartedEvent, "other", RunStarted{})))

	got, err := store.ReadEvents(stream, 0)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].Version())
	assert.Equal(t, 2, got[1].Version())
	assert.Equal(t, OrderExcludedEvent, got[1].Type())

	tail, _ := store.ReadEvents(stream, 2)
	assert.Len(t, tail, 1)
	none, _ := store.ReadEvents(stream, 5)
	assert.Empty(t, none)

	all, _ := store.ReadAllEvents(1)
	assert.Len(t, all, 2)
}

func TestInMemoryEventStore_SynchronousSubscribers(t *testing.T) {
	store := NewInMemoryEventStore()
	var placed, every []string

	placedHandler := &HandlerFunc{Types: []string{OrderPlacedEvent}, Fn: func(e Event) error {
		placed = append(placed, e.Type())
		return nil
	}}
	everyHandler := &HandlerFunc{Fn: func(e Event) error {
		every = append(every, e.Type())
		return errors.New("logged and ignored")
	}}
	require.NoError(t, store.Subscribe([]string{OrderPlacedEvent}, placedHandler))
	require.NoError(t, store.Subscribe([]string{AllEvents}, everyHandler))

	require.NoError(t, store.AppendEvent("s", NewEvent(OrderPlacedEvent, "s", OrderPlaced{})))
	require.NoError(t, store.AppendEvent("s", NewEvent(OrderConflictEvent, "s", OrderConflict{})))

	assert.Equal(t, []string{OrderPlacedEvent}, placed)
	assert.Equal(t, []string{OrderPlacedEvent, OrderConflictEvent}, every)

	require.NoError(t, store.Unsubscribe(placedHandler))
	require.NoError(t, store.AppendEvent("s", NewEvent(OrderPlacedEvent, "s", OrderPlaced{})))
	assert.Len(t, placed, 1)
	assert.Len(t, every, 3)
}

func TestHandlerFunc_CanHandle(t *testing.T) {
	h := &HandlerFunc{Types: []string{RunCompletedEvent}}
	assert.True(t, h.CanHandle(RunCompletedEvent))
	assert.False(t, h.CanHandle(RunStartedEvent))
	assert.True(t, (&HandlerFunc{}).CanHandle("anything"))
}
