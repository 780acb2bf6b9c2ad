package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"rider-client/src/internal/entity"
	"rider-client/src/internal/model"
	httpError "rider-client/src/pkg/http-error"
	"rider-client/src/pkg/log"
	"rider-client/src/pkg/utils"

	"github.com/google/uuid"
)

// DefaultBackDelay is how long the delivered status stays on screen before
// the detail view is left.
const DefaultBackDelay = 1200 * time.Millisecond

type StatusUpdater interface {
	UpdateOrderStatus(ctx context.Context, orderID string, status entity.OrderStatus) (*model.StatusUpdateResponse, error)
}

// OrderHolder is whatever currently holds the rider's orders on screen.
type OrderHolder interface {
	HeldOrder(orderID string) (entity.Order, bool)
	ApplyStatus(orderID string, status entity.OrderStatus) bool
}

type Navigator interface {
	OpenOrderDetail(orderID string)
	GoBack()
}

type Alerter interface {
	Alert(message string)
}

type DeliveryPublisher interface {
	SendOrderDelivered(event *model.OrderDeliveredEvent) error
}

type OrderStatusConfig struct {
	Log       log.Log
	Updater   StatusUpdater
	Holder    OrderHolder
	Navigator Navigator
	Alerter   Alerter
	Publisher DeliveryPublisher
	Session   *entity.RiderSession
	BackDelay time.Duration
	Now       func() time.Time
}

// OrderStatusMachine drives AssignedToRider -> Delivered. The local status
// changes only once the order service has acknowledged the update.
type OrderStatusMachine struct {
	log       log.Log
	updater   StatusUpdater
	holder    OrderHolder
	nav       Navigator
	alerter   Alerter
	publisher DeliveryPublisher
	session   *entity.RiderSession
	backDelay time.Duration
	now       func() time.Time

	mu        sync.Mutex
	pending   map[string]struct{}
	backTimer *time.Timer
	closed    bool
}

func NewOrderStatusMachine(cfg OrderStatusConfig) *OrderStatusMachine {
	delay := cfg.BackDelay
	if delay <= 0 {
		delay = DefaultBackDelay
	}
	clock := cfg.Now
	if clock == nil {
		clock = time.Now
	}
	return &OrderStatusMachine{
		log:       cfg.Log,
		updater:   cfg.Updater,
		holder:    cfg.Holder,
		nav:       cfg.Navigator,
		alerter:   cfg.Alerter,
		publisher: cfg.Publisher,
		session:   cfg.Session,
		backDelay: delay,
		now:       clock,
		pending:   make(map[string]struct{}),
	}
}

// MarkDelivered reports whether the order moved to Delivered. Calling it for
// an order that is not held, not AssignedToRider, or already being submitted
// does nothing and returns (false, nil).
func (m *OrderStatusMachine) MarkDelivered(ctx context.Context, orderID string) (bool, error) {
	order, ok := m.holder.HeldOrder(orderID)
	if !ok || order.OrderStatus != entity.OrderStatusAssignedToRider {
		m.log.Info("order-status", "mark delivered ignored", "MarkDelivered", fmt.Sprintf("order=%s held=%t status=%s", orderID, ok, order.OrderStatus))
		return false, nil
	}

	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return false, nil
	}
	if _, busy := m.pending[orderID]; busy {
		m.mu.Unlock()
		m.log.Info("order-status", "update already pending", "MarkDelivered", orderID)
		return false, nil
	}
	m.pending[orderID] = struct{}{}
	m.mu.Unlock()

	defer func() {
		m.mu.Lock()
		delete(m.pending, orderID)
		m.mu.Unlock()
	}()

	res, err := m.updater.UpdateOrderStatus(ctx, orderID, entity.OrderStatusDelivered)
	if err != nil {
		m.log.Error("order-status", err.Error(), "MarkDelivered", orderID)
		if m.alerter != nil {
			m.alerter.Alert(alertMessage(err))
		}
		return false, err
	}
	if res != nil && res.AlreadyApplied {
		m.log.Info("order-status", "order was already delivered on the server", "MarkDelivered", orderID)
	}

	m.holder.ApplyStatus(orderID, entity.OrderStatusDelivered)
	m.publish(order)
	m.scheduleBack()
	return true, nil
}

func (m *OrderStatusMachine) publish(order entity.Order) {
	if m.publisher == nil {
		return
	}
	event := &model.OrderDeliveredEvent{
		EventID:     uuid.NewString(),
		OrderID:     order.ID,
		OrderNo:     order.OrderNo,
		DeliveredAt: m.now(),
	}
	if m.session != nil {
		event.RiderID = m.session.UserID
	}
	if err := m.publisher.SendOrderDelivered(event); err != nil {
		m.log.Error("order-status", fmt.Sprintf("failed publish order delivered event: %v", err), "MarkDelivered", utils.ConvertString(event))
	}
}

func (m *OrderStatusMachine) scheduleBack() {
	if m.nav == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return
	}
	if m.backTimer != nil {
		m.backTimer.Stop()
	}
	m.backTimer = time.AfterFunc(m.backDelay, m.nav.GoBack)
}

// Close cancels a pending go-back and makes further calls no-ops.
func (m *OrderStatusMachine) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	if m.backTimer != nil {
		m.backTimer.Stop()
		m.backTimer = nil
	}
}

func alertMessage(err error) string {
	switch {
	case errors.Is(err, httpError.ErrNetwork):
		return "No connection. Could not mark the order as delivered, please try again."
	case errors.Is(err, httpError.ErrAuth):
		return "Your session has expired. Please log in again."
	case errors.Is(err, httpError.ErrNotFound):
		return "This order is no longer available."
	case errors.Is(err, httpError.ErrConflict):
		return "The order status changed on the server. Pull to refresh."
	}
	return "Could not mark the order as delivered, please try again."
}
