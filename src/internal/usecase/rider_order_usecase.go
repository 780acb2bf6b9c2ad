package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"rider-client/src/internal/entity"
	"rider-client/src/internal/model"
	"rider-client/src/internal/repository"
	httpError "rider-client/src/pkg/http-error"
	"rider-client/src/pkg/log"
	"rider-client/src/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type RiderOrderClient interface {
	OrderFetcher
	StatusUpdater
	FetchOrderDetail(ctx context.Context, orderID string) (*entity.Order, error)
}

// RiderOrderUseCase owns one sync controller per view for the logged-in
// rider and the status machine acting on them.
type RiderOrderUseCase struct {
	Log               log.Log
	Validate          *validator.Validate
	SessionRepository repository.SessionRepository
	OrderClient       RiderOrderClient
	Publisher         DeliveryPublisher
	Navigator         Navigator
	Alerter           Alerter
	Config            *viper.Viper

	mu          sync.Mutex
	session     *entity.RiderSession
	controllers map[model.ViewFilter]*OrderSyncController
	machine     *OrderStatusMachine
}

func NewRiderOrderUseCase(
	logger log.Log,
	validate *validator.Validate,
	sessionRepository repository.SessionRepository,
	orderClient RiderOrderClient,
	publisher DeliveryPublisher,
	navigator Navigator,
	alerter Alerter,
	cfg *viper.Viper,
) *RiderOrderUseCase {
	return &RiderOrderUseCase{
		Log:               logger,
		Validate:          validate,
		SessionRepository: sessionRepository,
		OrderClient:       orderClient,
		Publisher:         publisher,
		Navigator:         navigator,
		Alerter:           alerter,
		Config:            cfg,
	}
}

// Start builds the controllers for the stored session and mounts them.
// Calling it again for the same rider only refreshes.
func (c *RiderOrderUseCase) Start(ctx context.Context) error {
	session, err := c.SessionRepository.Get(ctx)
	if err != nil {
		return fmt.Errorf("read session: %w", err)
	}
	if session == nil {
		errObj := httpError.NewUnauthorized()
		errObj.Message = "no rider is logged in"
		return errObj
	}

	c.mu.Lock()
	if c.session == nil || c.session.UserID != session.UserID {
		c.stopLocked()
		c.build(session)
	}
	controllers := c.orderedControllers()
	c.mu.Unlock()

	for _, ctrl := range controllers {
		if err := ctrl.Mount(ctx); err != nil {
			c.Log.Error("rider-order-usecase", err.Error(), "Start", string(ctrl.Filter()))
		}
	}
	return nil
}

// Stop tears the controllers down; used on logout and shutdown.
func (c *RiderOrderUseCase) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopLocked()
}

func (c *RiderOrderUseCase) build(session *entity.RiderSession) {
	var pollInterval, backDelay = DefaultPollInterval, DefaultBackDelay
	if c.Config != nil {
		if d := c.Config.GetDuration("sync.poll_interval"); d > 0 {
			pollInterval = d
		}
		if d := c.Config.GetDuration("status.back_delay"); d > 0 {
			backDelay = d
		}
	}

	c.session = session
	c.controllers = make(map[model.ViewFilter]*OrderSyncController, 2)
	for _, filter := range []model.ViewFilter{model.ViewFilterActive, model.ViewFilterHistory} {
		c.controllers[filter] = NewOrderSyncController(OrderSyncConfig{
			Log:          c.Log,
			Fetcher:      c.OrderClient,
			Sessions:     c.SessionRepository,
			Filter:       filter,
			PollInterval: pollInterval,
		})
	}
	c.machine = NewOrderStatusMachine(OrderStatusConfig{
		Log:       c.Log,
		Updater:   c.OrderClient,
		Holder:    holderGroup(c.orderedControllers()),
		Navigator: c.Navigator,
		Alerter:   c.Alerter,
		Publisher: c.Publisher,
		Session:   session,
		BackDelay: backDelay,
	})
}

func (c *RiderOrderUseCase) stopLocked() {
	for _, ctrl := range c.controllers {
		ctrl.Unmount()
	}
	if c.machine != nil {
		c.machine.Close()
	}
	c.controllers = nil
	c.machine = nil
	c.session = nil
}

func (c *RiderOrderUseCase) orderedControllers() []*OrderSyncController {
	if c.controllers == nil {
		return nil
	}
	return []*OrderSyncController{
		c.controllers[model.ViewFilterActive],
		c.controllers[model.ViewFilterHistory],
	}
}

func (c *RiderOrderUseCase) controller(filter model.ViewFilter) (*OrderSyncController, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	ctrl, ok := c.controllers[filter]
	if !ok {
		errObj := httpError.NewUnauthorized()
		errObj.Message = "no rider is logged in"
		return nil, errObj
	}
	return ctrl, nil
}

func (c *RiderOrderUseCase) ListOrders(ctx context.Context, request *model.ListOrdersRequest) utils.Result {
	return c.withController(request, "ListOrders", nil)
}

// FocusOrders is the screen-focus trigger.
func (c *RiderOrderUseCase) FocusOrders(ctx context.Context, request *model.ListOrdersRequest) utils.Result {
	return c.withController(request, "FocusOrders", func(ctrl *OrderSyncController) (bool, error) {
		return ctrl.Focus(ctx)
	})
}

// RefreshOrders is pull-to-refresh.
func (c *RiderOrderUseCase) RefreshOrders(ctx context.Context, request *model.ListOrdersRequest) utils.Result {
	return c.withController(request, "RefreshOrders", func(ctrl *OrderSyncController) (bool, error) {
		return ctrl.Refresh(ctx)
	})
}

func (c *RiderOrderUseCase) withController(request *model.ListOrdersRequest, scope string, trigger func(*OrderSyncController) (bool, error)) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("rider-order-usecase", errObj.Message, scope, utils.ConvertString(request))
		return result
	}
	filter, err := model.ParseViewFilter(request.Filter)
	if err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = err.Error()
		result.Error = errObj
		return result
	}

	ctrl, err := c.controller(filter)
	if err != nil {
		result.Error = err
		return result
	}
	if trigger != nil {
		// fetch failures end up in the snapshot
		if _, err := trigger(ctrl); err != nil && (errors.Is(err, ErrControllerStopped) || errors.Is(err, ErrRiderUnknown)) {
			errObj := httpError.NewConflict()
			errObj.Message = err.Error()
			result.Error = errObj
			return result
		}
	}
	result.Data = ctrl.Snapshot()
	return result
}

func (c *RiderOrderUseCase) GetOrderDetail(ctx context.Context, request *model.OrderDetailRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("rider-order-usecase", errObj.Message, "GetOrderDetail", utils.ConvertString(request))
		return result
	}

	order, err := c.OrderClient.FetchOrderDetail(ctx, request.OrderID)
	if err != nil {
		c.Log.Error("rider-order-usecase", err.Error(), "GetOrderDetail", request.OrderID)
		result.Error = err
		return result
	}

	c.mu.Lock()
	holder := holderGroup(c.orderedControllers())
	c.mu.Unlock()
	if held, ok := holder.HeldOrder(order.ID); ok && held.OrderStatus.IsTerminal() && !order.OrderStatus.IsTerminal() {
		order.OrderStatus = held.OrderStatus
	}

	if c.Navigator != nil {
		c.Navigator.OpenOrderDetail(order.ID)
	}
	result.Data = order
	return result
}

func (c *RiderOrderUseCase) MarkDelivered(ctx context.Context, request *model.MarkDeliveredRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("rider-order-usecase", errObj.Message, "MarkDelivered", utils.ConvertString(request))
		return result
	}

	c.mu.Lock()
	machine := c.machine
	holder := holderGroup(c.orderedControllers())
	c.mu.Unlock()
	if machine == nil {
		errObj := httpError.NewUnauthorized()
		errObj.Message = "no rider is logged in"
		result.Error = errObj
		return result
	}

	applied, err := machine.MarkDelivered(ctx, request.OrderID)
	if err != nil {
		result.Error = err
		return result
	}

	response := model.MarkDeliveredResponse{
		OrderID: request.OrderID,
		Applied: applied,
	}
	if held, ok := holder.HeldOrder(request.OrderID); ok {
		response.OrderStatus = held.OrderStatus
	}
	result.Data = response
	return result
}

// holderGroup lets the status machine see every view's copy of an order.
type holderGroup []*OrderSyncController

func (g holderGroup) HeldOrder(orderID string) (entity.Order, bool) {
	for _, ctrl := range g {
		if order, ok := ctrl.HeldOrder(orderID); ok {
			return order, true
		}
	}
	return entity.Order{}, false
}

func (g holderGroup) ApplyStatus(orderID string, status entity.OrderStatus) bool {
	applied := false
	for _, ctrl := range g {
		if ctrl.ApplyStatus(orderID, status) {
			applied = true
		}
	}
	return applied
}
