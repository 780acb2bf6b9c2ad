package http

import (
	"rider-client/src/internal/model"
	"rider-client/src/internal/usecase"
	"rider-client/src/pkg/log"
	"rider-client/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type OrderController struct {
	Log     log.Log
	UseCase *usecase.RiderOrderUseCase
}

func NewOrderController(useCase *usecase.RiderOrderUseCase, logger log.Log) *OrderController {
	return &OrderController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *OrderController) ListOrders(ctx *fiber.Ctx) error {
	request := &model.ListOrdersRequest{
		Filter: ctx.Query("filter", string(model.ViewFilterActive)),
	}
	result := c.UseCase.ListOrders(ctx.UserContext(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "ListOrders", fiber.StatusOK, ctx)
}

func (c *OrderController) FocusOrders(ctx *fiber.Ctx) error {
	request := new(model.ListOrdersRequest)
	if err := c.parseFilter(ctx, request); err != nil {
		return utils.ResponseError(err, ctx)
	}
	result := c.UseCase.FocusOrders(ctx.UserContext(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "FocusOrders", fiber.StatusOK, ctx)
}

func (c *OrderController) RefreshOrders(ctx *fiber.Ctx) error {
	request := new(model.ListOrdersRequest)
	if err := c.parseFilter(ctx, request); err != nil {
		return utils.ResponseError(err, ctx)
	}
	result := c.UseCase.RefreshOrders(ctx.UserContext(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "RefreshOrders", fiber.StatusOK, ctx)
}

func (c *OrderController) GetOrderDetail(ctx *fiber.Ctx) error {
	request := &model.OrderDetailRequest{
		OrderID: ctx.Params("id"),
	}
	result := c.UseCase.GetOrderDetail(ctx.UserContext(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "GetOrderDetail", fiber.StatusOK, ctx)
}

func (c *OrderController) MarkDelivered(ctx *fiber.Ctx) error {
	request := &model.MarkDeliveredRequest{
		OrderID: ctx.Params("id"),
	}
	result := c.UseCase.MarkDelivered(ctx.UserContext(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "MarkDelivered", fiber.StatusOK, ctx)
}

// parseFilter accepts the filter in the query string or the JSON body.
func (c *OrderController) parseFilter(ctx *fiber.Ctx, request *model.ListOrdersRequest) error {
	if len(ctx.Body()) > 0 {
		if err := ctx.BodyParser(request); err != nil {
			c.Log.Error("OrderController.parseFilter", "Failed to parse request body", "error", err.Error())
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
	}
	if request.Filter == "" {
		request.Filter = ctx.Query("filter", string(model.ViewFilterActive))
	}
	return nil
}
