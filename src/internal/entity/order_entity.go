package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is a snapshot received from the order service. Only OrderStatus is
// ever changed on the client.
type Order struct {
	ID              string          `json:"id"`
	OrderNo         string          `json:"orderNo"`
	OrderStatus     OrderStatus     `json:"orderStatus"`
	OrderDate       time.Time       `json:"orderDate"`
	DeliveryAddress string          `json:"deliveryAddress"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	PaymentStatus   string          `json:"paymentStatus"`
	Customer        Customer        `json:"customer"`
	OrderLines      []OrderLine     `json:"orderLines"`
}

type Customer struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
}

type OrderLine struct {
	Product  Product         `json:"product"`
	Quantity int             `json:"quantity"`
	Amount   decimal.Decimal `json:"amount"`
}

type Product struct {
	Name  string  `json:"name"`
	Image *string `json:"image,omitempty"`
}

// Clone returns a copy that shares nothing mutable with o.
func (o Order) Clone() Order {
	c := o
	if o.OrderLines != nil {
		c.OrderLines = make([]OrderLine, len(o.OrderLines))
		copy(c.OrderLines, o.OrderLines)
	}
	return c
}

// ItemCount is the number of units across all lines.
func (o Order) ItemCount() int {
	total := 0
	for _, line := range o.OrderLines {
		total += line.Quantity
	}
	return total
}
