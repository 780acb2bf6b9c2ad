package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"rider-client/src/internal/entity"
	"rider-client/src/internal/model"
	"rider-client/src/internal/model/converter"
	httpError "rider-client/src/pkg/http-error"
	"rider-client/src/pkg/log"

	"github.com/go-playground/validator/v10"
)

// OrderClient issues the rider order calls. It never retries.
type OrderClient struct {
	Transport Transport
	Validate  *validator.Validate
	Log       log.Log
}

func NewOrderClient(transport Transport, validate *validator.Validate, logger log.Log) *OrderClient {
	return &OrderClient{
		Transport: transport,
		Validate:  validate,
		Log:       logger,
	}
}

// FetchRiderOrders returns the rider's orders in server order. A rider
// without orders gets an empty slice.
func (c *OrderClient) FetchRiderOrders(ctx context.Context, riderID string) ([]entity.Order, error) {
	resp, err := c.call(ctx, Request{
		Method: http.MethodGet,
		Path:   fmt.Sprintf("/rider-orders/%s", url.PathEscape(riderID)),
	})
	if err != nil {
		return nil, err
	}

	list, err := decodeOrderList(resp.Body)
	if err != nil {
		c.Log.Error("order-client", err.Error(), "FetchRiderOrders", riderID)
		return nil, validationError("order list", err)
	}
	for i := range list {
		if err := c.validate(&list[i]); err != nil {
			c.Log.Error("order-client", err.Error(), "FetchRiderOrders", riderID)
			return nil, validationError(fmt.Sprintf("order[%d]", i), err)
		}
	}
	return converter.OrdersToEntities(list), nil
}

func (c *OrderClient) FetchOrderDetail(ctx context.Context, orderID string) (*entity.Order, error) {
	resp, err := c.call(ctx, Request{
		Method: http.MethodGet,
		Path:   fmt.Sprintf("/order/%s", url.PathEscape(orderID)),
	})
	if err != nil {
		return nil, err
	}

	res, err := decodeOrder(resp.Body)
	if err != nil {
		c.Log.Error("order-client", err.Error(), "FetchOrderDetail", orderID)
		return nil, validationError("order", err)
	}
	if res == nil {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("order %s not found", orderID)
		return nil, errObj
	}
	if err := c.validate(res); err != nil {
		return nil, validationError("order", err)
	}
	order := converter.OrderToEntity(res)
	return &order, nil
}

// UpdateOrderStatus asks the service to move orderID to status. A conflict
// whose body says the order is already in status counts as success, so
// repeating the call is harmless.
func (c *OrderClient) UpdateOrderStatus(ctx context.Context, orderID string, status entity.OrderStatus) (*model.StatusUpdateResponse, error) {
	resp, err := c.Transport.Do(ctx, Request{
		Method: http.MethodPut,
		Path:   fmt.Sprintf("/order/%s/status", url.PathEscape(orderID)),
		Body:   model.UpdateOrderStatusRequest{OrderStatus: status},
	})
	if err != nil {
		return nil, asClientError(err)
	}

	// the confirmation body is optional
	var body model.StatusUpdateResponse
	if len(bytes.TrimSpace(resp.Body)) > 0 {
		if err := json.Unmarshal(resp.Body, &body); err != nil {
			c.Log.Info("order-client", "status update body is not an object", "UpdateOrderStatus", string(resp.Body))
		}
	}

	switch {
	case isSuccess(resp.StatusCode):
		if body.OrderStatus != "" && !body.OrderStatus.Satisfies(status) {
			errObj := httpError.NewConflict()
			errObj.Message = fmt.Sprintf("order %s is %s", orderID, body.OrderStatus)
			return nil, errObj
		}
	case resp.StatusCode == http.StatusConflict && body.OrderStatus.Satisfies(status):
		body.AlreadyApplied = true
	default:
		return nil, httpError.FromStatus(resp.StatusCode, body.Message)
	}

	if body.OrderID == "" {
		body.OrderID = model.FlexString(orderID)
	}
	body.OrderStatus = status
	return &body, nil
}

func (c *OrderClient) call(ctx context.Context, req Request) (*Response, error) {
	resp, err := c.Transport.Do(ctx, req)
	if err != nil {
		return nil, asClientError(err)
	}
	if !isSuccess(resp.StatusCode) {
		return nil, httpErrorFor(resp)
	}
	return resp, nil
}

func httpErrorFor(resp *Response) error {
	return httpError.FromStatus(resp.StatusCode, errorMessage(resp.Body))
}

func (c *OrderClient) validate(res *model.OrderResponse) error {
	if c.Validate == nil {
		return nil
	}
	return c.Validate.Struct(res)
}

func decodeOrderList(body []byte) ([]model.OrderResponse, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 || bytes.Equal(body, []byte("null")) {
		return []model.OrderResponse{}, nil
	}
	if body[0] == '[' {
		var list []model.OrderResponse
		if err := json.Unmarshal(body, &list); err != nil {
			return nil, err
		}
		return list, nil
	}
	var envelope model.OrderListEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, err
	}
	if envelope.Data == nil {
		return []model.OrderResponse{}, nil
	}
	return envelope.Data, nil
}

func decodeOrder(body []byte) (*model.OrderResponse, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 || bytes.Equal(body, []byte("null")) {
		return nil, nil
	}
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(body, &probe); err != nil {
		return nil, err
	}
	if _, ok := probe["data"]; ok {
		var envelope model.OrderEnvelope
		if err := json.Unmarshal(body, &envelope); err != nil {
			return nil, err
		}
		return envelope.Data, nil
	}
	var order model.OrderResponse
	if err := json.Unmarshal(body, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func errorMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	return payload.Message
}

func isSuccess(code int) bool {
	return code >= 200 && code < 300
}

// asClientError keeps typed errors and files everything else the transport
// returns under NetworkError.
func asClientError(err error) error {
	var appErr *httpError.Error
	if errors.As(err, &appErr) {
		return err
	}
	return httpError.NewNetwork(err)
}

func validationError(what string, err error) error {
	errObj := httpError.NewValidation()
	errObj.Message = fmt.Sprintf("malformed %s", what)
	errObj.Err = err
	return errObj
}
