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
)

const DefaultPollInterval = 60 * time.Second

var (
	ErrControllerStopped = errors.New("order sync controller is not mounted")
	ErrRiderUnknown      = errors.New("rider id is not known yet")
)

type OrderFetcher interface {
	FetchRiderOrders(ctx context.Context, riderID string) ([]entity.Order, error)
}

type SessionReader interface {
	Get(ctx context.Context) (*entity.RiderSession, error)
}

type OrderSyncConfig struct {
	Log          log.Log
	Fetcher      OrderFetcher
	Sessions     SessionReader
	Filter       model.ViewFilter
	PollInterval time.Duration
	Now          func() time.Time
}

// OrderSyncController keeps one view's order list fresh for one rider.
//
// At most one fetch is outstanding per generation. The generation moves on
// whenever the rider changes or the controller is unmounted, and a response
// that comes back for an older generation is dropped.
type OrderSyncController struct {
	log      log.Log
	fetcher  OrderFetcher
	sessions SessionReader
	filter   model.ViewFilter
	interval time.Duration
	now      func() time.Time

	mu         sync.Mutex
	mounted    bool
	state      model.SyncState
	refreshing bool
	hasData    bool
	orders     []entity.Order
	confirmed  map[string]entity.OrderStatus
	lastErr    error
	updatedAt  time.Time
	riderID    string
	generation uint64
	inFlight   bool
	stopPoll   context.CancelFunc
}

func NewOrderSyncController(cfg OrderSyncConfig) *OrderSyncController {
	interval := cfg.PollInterval
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	clock := cfg.Now
	if clock == nil {
		clock = time.Now
	}
	return &OrderSyncController{
		log:       cfg.Log,
		fetcher:   cfg.Fetcher,
		sessions:  cfg.Sessions,
		filter:    cfg.Filter,
		interval:  interval,
		now:       clock,
		state:     model.SyncStateIdle,
		confirmed: make(map[string]entity.OrderStatus),
	}
}

// Mount attaches the controller to its screen. The rider id is read from the
// session store once here; without a session the controller stays idle until
// SetRider is called.
func (c *OrderSyncController) Mount(ctx context.Context) error {
	c.mu.Lock()
	c.mounted = true
	riderID := c.riderID
	c.mu.Unlock()

	if c.sessions != nil {
		session, err := c.sessions.Get(ctx)
		if err != nil {
			return fmt.Errorf("read session: %w", err)
		}
		if session != nil && session.UserID != "" {
			riderID = session.UserID
		}
	}
	if riderID == "" {
		c.log.Info("order-sync", "no rider session, staying idle", "Mount", string(c.filter))
		return nil
	}
	_, err := c.SetRider(ctx, riderID)
	return err
}

// Unmount stops polling and invalidates any outstanding fetch. The last
// list is kept so a later Mount has something to show.
func (c *OrderSyncController) Unmount() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mounted = false
	c.generation++
	c.inFlight = false
	c.refreshing = false
	if c.state == model.SyncStateLoading {
		c.state = c.settledState()
	}
	if c.stopPoll != nil {
		c.stopPoll()
		c.stopPoll = nil
	}
}

// SetRider points the controller at riderID. A different rider discards the
// current list, restarts polling and loads from scratch; the same rider only
// triggers a fetch if none is running and starts polling if it is not.
func (c *OrderSyncController) SetRider(ctx context.Context, riderID string) (bool, error) {
	if riderID == "" {
		return false, ErrRiderUnknown
	}

	c.mu.Lock()
	if !c.mounted {
		c.mu.Unlock()
		return false, ErrControllerStopped
	}
	trigger := model.TriggerMount
	if riderID != c.riderID {
		trigger = model.TriggerRiderChange
		c.generation++
		c.riderID = riderID
		c.inFlight = false
		c.refreshing = false
		c.hasData = false
		c.orders = nil
		c.confirmed = make(map[string]entity.OrderStatus)
		c.lastErr = nil
		c.updatedAt = time.Time{}
		c.state = model.SyncStateIdle
		c.startPollingLocked()
	} else if c.stopPoll == nil {
		c.startPollingLocked()
	}
	c.mu.Unlock()

	return c.fetch(ctx, trigger)
}

// Focus is called when the owning screen gains focus.
func (c *OrderSyncController) Focus(ctx context.Context) (bool, error) {
	return c.fetch(ctx, model.TriggerFocus)
}

// Refresh is pull-to-refresh: no full-screen loading, Refreshing is set
// while the fetch runs.
func (c *OrderSyncController) Refresh(ctx context.Context) (bool, error) {
	return c.fetch(ctx, model.TriggerPull)
}

func (c *OrderSyncController) startPollingLocked() {
	if c.stopPoll != nil {
		c.stopPoll()
	}
	pollCtx, cancel := context.WithCancel(context.Background())
	c.stopPoll = cancel
	go c.pollLoop(pollCtx, c.interval)
}

func (c *OrderSyncController) pollLoop(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if ctx.Err() != nil {
				return
			}
			if _, err := c.fetch(ctx, model.TriggerInterval); err != nil {
				c.log.Error("order-sync", "poll failed, keeping current list", string(c.filter), err.Error())
			}
		}
	}
}

// fetch runs one fetch for trigger. It reports whether the result was
// applied; a suppressed or discarded fetch returns (false, nil).
func (c *OrderSyncController) fetch(ctx context.Context, trigger model.SyncTrigger) (bool, error) {
	c.mu.Lock()
	if !c.mounted {
		c.mu.Unlock()
		return false, ErrControllerStopped
	}
	if c.riderID == "" {
		c.mu.Unlock()
		return false, ErrRiderUnknown
	}
	if c.inFlight {
		c.mu.Unlock()
		c.log.Info("order-sync", "fetch already in flight", string(trigger), string(c.filter))
		return false, nil
	}
	c.inFlight = true
	gen, riderID := c.generation, c.riderID
	if trigger.ShowsLoading() && !c.hasData {
		c.state = model.SyncStateLoading
	}
	if trigger == model.TriggerPull {
		c.refreshing = true
	}
	c.mu.Unlock()

	orders, err := c.fetcher.FetchRiderOrders(ctx, riderID)

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.generation {
		c.log.Info("order-sync", "dropping response of superseded fetch", string(trigger), riderID)
		return false, nil
	}
	c.inFlight = false
	c.refreshing = false

	if err != nil {
		c.lastErr = err
		if !c.hasData {
			c.state = model.SyncStateError
		} else {
			c.state = model.SyncStateReady
		}
		c.log.Error("order-sync", err.Error(), string(trigger), riderID)
		return true, err
	}

	c.orders = c.reconcileLocked(orders)
	c.hasData = true
	c.state = model.SyncStateReady
	c.lastErr = nil
	c.updatedAt = c.now()
	return true, nil
}

// reconcileLocked takes the fetched list as is, except that a status this
// client confirmed is not walked back by a server that has not caught up.
func (c *OrderSyncController) reconcileLocked(fetched []entity.Order) []entity.Order {
	orders := make([]entity.Order, len(fetched))
	copy(orders, fetched)
	for i := range orders {
		status, ok := c.confirmed[orders[i].ID]
		if !ok {
			continue
		}
		if orders[i].OrderStatus == status || orders[i].OrderStatus.IsTerminal() {
			delete(c.confirmed, orders[i].ID)
			continue
		}
		orders[i].OrderStatus = status
	}
	return orders
}

func (c *OrderSyncController) settledState() model.SyncState {
	switch {
	case c.hasData:
		return model.SyncStateReady
	case c.lastErr != nil:
		return model.SyncStateError
	}
	return model.SyncStateIdle
}

// HeldOrder returns a copy of the order with id as currently held.
func (c *OrderSyncController) HeldOrder(orderID string) (entity.Order, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, order := range c.orders {
		if order.ID == orderID {
			return order.Clone(), true
		}
	}
	return entity.Order{}, false
}

// ApplyStatus sets the status of a held order after the server confirmed
// it. Terminal statuses are never changed.
func (c *OrderSyncController) ApplyStatus(orderID string, status entity.OrderStatus) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.orders {
		if c.orders[i].ID != orderID {
			continue
		}
		if !c.orders[i].OrderStatus.CanTransitionTo(status) {
			return false
		}
		c.orders[i].OrderStatus = status
		c.confirmed[orderID] = status
		return true
	}
	return false
}

func (c *OrderSyncController) Snapshot() model.OrderListSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	snapshot := model.OrderListSnapshot{
		Filter:     c.filter,
		RiderID:    c.riderID,
		State:      c.state,
		Refreshing: c.refreshing,
		Orders:     ClassifyOrders(c.orders, c.filter, c.now()),
		Fatal:      c.state == model.SyncStateError,
	}
	if !c.updatedAt.IsZero() {
		updated := c.updatedAt
		snapshot.UpdatedAt = &updated
	}
	if c.lastErr != nil {
		snapshot.Error = c.lastErr.Error()
		snapshot.ErrorKind = string(httpError.KindOf(c.lastErr))
		if errors.Is(c.lastErr, httpError.ErrAuth) {
			snapshot.Fatal = true
		}
	}
	return snapshot
}

func (c *OrderSyncController) Filter() model.ViewFilter {
	return c.filter
}

func (c *OrderSyncController) RiderID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.riderID
}
