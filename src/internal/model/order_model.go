package model

import (
	"rider-client/src/internal/entity"

	"github.com/shopspring/decimal"
)

type OrderResponse struct {
	ID              FlexString          `json:"id" validate:"required"`
	OrderNo         FlexString          `json:"orderNo"`
	OrderStatus     entity.OrderStatus  `json:"orderStatus" validate:"required"`
	OrderDate       FlexTime            `json:"orderDate"`
	DeliveryAddress string              `json:"deliveryAddress"`
	TotalAmount     decimal.Decimal     `json:"totalAmount"`
	PaymentStatus   string              `json:"paymentStatus"`
	Customer        CustomerResponse    `json:"customer"`
	OrderLines      []OrderLineResponse `json:"orderLines" validate:"dive"`
}

type CustomerResponse struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
}

type OrderLineResponse struct {
	Product  ProductResponse `json:"product"`
	Quantity int             `json:"quantity" validate:"gte=0"`
	Amount   decimal.Decimal `json:"amount"`
}

type ProductResponse struct {
	Name  string  `json:"name"`
	Image *string `json:"image"`
}

// OrderListEnvelope is the wrapped form of the rider order list.
type OrderListEnvelope struct {
	Data []OrderResponse `json:"data"`
}

type OrderEnvelope struct {
	Data *OrderResponse `json:"data"`
}

type UpdateOrderStatusRequest struct {
	OrderStatus entity.OrderStatus `json:"orderStatus"`
}

type StatusUpdateResponse struct {
	OrderID        FlexString         `json:"orderId"`
	OrderStatus    entity.OrderStatus `json:"orderStatus"`
	Message        string             `json:"message"`
	AlreadyApplied bool               `json:"-"`
}

type ListOrdersRequest struct {
	Filter string `json:"filter" validate:"required,max=20"`
}

type OrderDetailRequest struct {
	OrderID string `json:"orderId" validate:"required,max=100"`
}

type MarkDeliveredRequest struct {
	OrderID string `json:"orderId" validate:"required,max=100"`
}

type MarkDeliveredResponse struct {
	OrderID     string             `json:"orderId"`
	Applied     bool               `json:"applied"`
	OrderStatus entity.OrderStatus `json:"orderStatus,omitempty"`
}
