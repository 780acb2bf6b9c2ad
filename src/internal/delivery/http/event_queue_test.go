package http

import (
	"testing"

	"rider-client/src/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUIEventQueueDrain(t *testing.T) {
	q := NewUIEventQueue(0)
	assert.Empty(t, q.Drain())

	q.OpenOrderDetail("7")
	q.Alert("No connection")
	q.GoBack()

	events := q.Drain()
	require.Len(t, events, 3)
	assert.Equal(t, model.UIEventOpenDetail, events[0].Type)
	assert.Equal(t, "7", events[0].OrderID)
	assert.Equal(t, model.UIEventAlert, events[1].Type)
	assert.Equal(t, "No connection", events[1].Message)
	assert.Equal(t, model.UIEventGoBack, events[2].Type)
	assert.False(t, events[2].At.IsZero())

	assert.NotNil(t, q.Drain())
	assert.Empty(t, q.Drain())
}

func TestUIEventQueueDropsOldest(t *testing.T) {
	q := NewUIEventQueue(2)
	q.OpenOrderDetail("1")
	q.OpenOrderDetail("2")
	q.OpenOrderDetail("3")

	events := q.Drain()
	require.Len(t, events, 2)
	assert.Equal(t, "2", events[0].OrderID)
	assert.Equal(t, "3", events[1].OrderID)
}
