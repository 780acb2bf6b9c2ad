package http

import (
	"sync"
	"time"

	"rider-client/src/internal/model"
)

const DefaultEventQueueSize = 64

// UIEventQueue buffers navigation and alert signals until the screen layer
// polls for them. When full the oldest event is dropped.
type UIEventQueue struct {
	mu     sync.Mutex
	events []model.UIEvent
	size   int
	now    func() time.Time
}

func NewUIEventQueue(size int) *UIEventQueue {
	if size <= 0 {
		size = DefaultEventQueueSize
	}
	return &UIEventQueue{size: size, now: time.Now}
}

func (q *UIEventQueue) OpenOrderDetail(orderID string) {
	q.push(model.UIEvent{Type: model.UIEventOpenDetail, OrderID: orderID})
}

func (q *UIEventQueue) GoBack() {
	q.push(model.UIEvent{Type: model.UIEventGoBack})
}

func (q *UIEventQueue) Alert(message string) {
	q.push(model.UIEvent{Type: model.UIEventAlert, Message: message})
}

func (q *UIEventQueue) push(event model.UIEvent) {
	q.mu.Lock()
	defer q.mu.Unlock()
	event.At = q.now()
	if len(q.events) == q.size {
		q.events = q.events[1:]
	}
	q.events = append(q.events, event)
}

// Drain returns the buffered events oldest first and empties the queue.
func (q *UIEventQueue) Drain() []model.UIEvent {
	q.mu.Lock()
	defer q.mu.Unlock()
	events := q.events
	q.events = nil
	if events == nil {
		return []model.UIEvent{}
	}
	return events
}
