package converter

import (
	"encoding/json"
	"testing"
	"time"

	"rider-client/src/internal/entity"
	"rider-client/src/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const orderPayload = `{
	"id": 42,
	"orderNo": "SO-0042",
	"orderStatus": "assigned to rider",
	"orderDate": "2026-03-04T09:30:00",
	"deliveryAddress": "Jl. Merdeka 1",
	"totalAmount": 125000.50,
	"paymentStatus": "Paid",
	"customer": {"name": "Budi", "phoneNumber": "0812"},
	"orderLines": [
		{"product": {"name": "Rice", "image": null}, "quantity": 2, "amount": "50000.25"},
		{"product": {"name": "Tea", "image": "tea.png"}, "quantity": 1, "amount": 25000}
	]
}`

func TestOrderToEntity(t *testing.T) {
	var res model.OrderResponse
	require.NoError(t, json.Unmarshal([]byte(orderPayload), &res))

	order := OrderToEntity(&res)

	assert.Equal(t, "42", order.ID)
	assert.Equal(t, "SO-0042", order.OrderNo)
	assert.Equal(t, entity.OrderStatusAssignedToRider, order.OrderStatus)
	assert.True(t, time.Date(2026, 3, 4, 9, 30, 0, 0, time.Local).Equal(order.OrderDate))
	assert.True(t, decimal.RequireFromString("125000.5").Equal(order.TotalAmount))
	assert.Equal(t, "Budi", order.Customer.Name)
	require.Len(t, order.OrderLines, 2)
	assert.Nil(t, order.OrderLines[0].Product.Image)
	assert.True(t, decimal.RequireFromString("50000.25").Equal(order.OrderLines[0].Amount))
	require.NotNil(t, order.OrderLines[1].Product.Image)
	assert.Equal(t, "tea.png", *order.OrderLines[1].Product.Image)
	assert.Equal(t, 3, order.ItemCount())
}

func TestOrderToEntityWithoutLines(t *testing.T) {
	order := OrderToEntity(&model.OrderResponse{ID: "1", OrderStatus: entity.OrderStatusCancelled})
	assert.Nil(t, order.OrderLines)
	assert.Equal(t, 0, order.ItemCount())
}

func TestLoginToSession(t *testing.T) {
	session := LoginToSession(&model.LoginUserResponse{
		UserID:   "17",
		UserName: "rider17",
		Email:    "r@example.com",
		Token:    "tok",
	})
	assert.Equal(t, "17", session.UserID)
	assert.Equal(t, "rider17", session.DisplayName)
	assert.Equal(t, "tok", session.AuthToken)

	res := SessionToResponse(session)
	assert.True(t, res.Authenticated)
	assert.False(t, SessionToResponse(nil).Authenticated)
}
