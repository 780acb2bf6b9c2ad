package usecase

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"rider-client/src/internal/entity"
	"rider-client/src/internal/model"
)

var testNow = time.Date(2026, 5, 12, 15, 0, 0, 0, time.UTC)

const (
	testWait = time.Second
	testTick = 2 * time.Millisecond
)

func fixedClock() time.Time { return testNow }

func order(id string, status entity.OrderStatus) entity.Order {
	return entity.Order{ID: id, OrderNo: "SO-" + id, OrderStatus: status, OrderDate: testNow.Add(-time.Hour)}
}

// fakeFetcher answers FetchRiderOrders through respond. When gate is set,
// calls for a rider listed in block wait on it.
type fakeFetcher struct {
	mu      sync.Mutex
	respond func(riderID string) ([]entity.Order, error)
	block   map[string]bool
	gate    chan struct{}
	started chan string
	calls   atomic.Int32
}

func newFakeFetcher(respond func(riderID string) ([]entity.Order, error)) *fakeFetcher {
	return &fakeFetcher{respond: respond, block: map[string]bool{}, started: make(chan string, 16)}
}

func (f *fakeFetcher) blockRider(riderID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.block[riderID] = true
	if f.gate == nil {
		f.gate = make(chan struct{})
	}
}

func (f *fakeFetcher) release() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.gate != nil {
		close(f.gate)
		f.gate = nil
	}
	f.block = map[string]bool{}
}

func (f *fakeFetcher) setRespond(respond func(riderID string) ([]entity.Order, error)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.respond = respond
}

func (f *fakeFetcher) FetchRiderOrders(ctx context.Context, riderID string) ([]entity.Order, error) {
	f.calls.Add(1)
	f.mu.Lock()
	gate := f.gate
	blocked := f.block[riderID]
	f.mu.Unlock()

	select {
	case f.started <- riderID:
	default:
	}
	if blocked && gate != nil {
		<-gate
	}

	f.mu.Lock()
	respond := f.respond
	f.mu.Unlock()
	return respond(riderID)
}

type fakeSessions struct {
	session *entity.RiderSession
}

func (f *fakeSessions) Get(ctx context.Context) (*entity.RiderSession, error) {
	return f.session, nil
}

type fakeUpdater struct {
	mu      sync.Mutex
	res     *model.StatusUpdateResponse
	err     error
	gate    chan struct{}
	started chan string
	calls   atomic.Int32
}

func (f *fakeUpdater) UpdateOrderStatus(ctx context.Context, orderID string, status entity.OrderStatus) (*model.StatusUpdateResponse, error) {
	f.calls.Add(1)
	if f.started != nil {
		f.started <- orderID
	}
	if f.gate != nil {
		<-f.gate
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	if f.res != nil {
		return f.res, nil
	}
	return &model.StatusUpdateResponse{OrderID: model.FlexString(orderID), OrderStatus: status}, nil
}

type fakeHolder struct {
	mu     sync.Mutex
	orders map[string]entity.Order
}

func newFakeHolder(orders ...entity.Order) *fakeHolder {
	h := &fakeHolder{orders: map[string]entity.Order{}}
	for _, o := range orders {
		h.orders[o.ID] = o
	}
	return h
}

func (h *fakeHolder) HeldOrder(orderID string) (entity.Order, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	o, ok := h.orders[orderID]
	return o, ok
}

func (h *fakeHolder) ApplyStatus(orderID string, status entity.OrderStatus) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	o, ok := h.orders[orderID]
	if !ok || !o.OrderStatus.CanTransitionTo(status) {
		return false
	}
	o.OrderStatus = status
	h.orders[orderID] = o
	return true
}

func (h *fakeHolder) status(orderID string) entity.OrderStatus {
	o, _ := h.HeldOrder(orderID)
	return o.OrderStatus
}

type fakeUI struct {
	mu     sync.Mutex
	opened []string
	backs  atomic.Int32
	alerts []string
}

func (f *fakeUI) OpenOrderDetail(orderID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.opened = append(f.opened, orderID)
}

func (f *fakeUI) GoBack() {
	f.backs.Add(1)
}

func (f *fakeUI) Alert(message string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.alerts = append(f.alerts, message)
}

func (f *fakeUI) alertList() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.alerts...)
}

func (f *fakeUI) openedList() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.opened...)
}

type fakePublisher struct {
	mu     sync.Mutex
	events []*model.OrderDeliveredEvent
	err    error
}

func (f *fakePublisher) SendOrderDelivered(event *model.OrderDeliveredEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, event)
	return f.err
}

func (f *fakePublisher) sent() []*model.OrderDeliveredEvent {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*model.OrderDeliveredEvent(nil), f.events...)
}
