package model

import "time"

type Event interface {
	GetId() string
}

type OrderDeliveredEvent struct {
	EventID     string    `json:"event_id"`
	OrderID     string    `json:"order_id"`
	OrderNo     string    `json:"order_no"`
	RiderID     string    `json:"rider_id"`
	DeliveredAt time.Time `json:"delivered_at"`
}

func (e *OrderDeliveredEvent) GetId() string {
	return e.EventID
}

// UIEvent is a navigation or alert signal for the screen layer.
type UIEvent struct {
	Type    string    `json:"type"`
	OrderID string    `json:"orderId,omitempty"`
	Message string    `json:"message,omitempty"`
	At      time.Time `json:"at"`
}

const (
	UIEventOpenDetail = "navigation.open-detail"
	UIEventGoBack     = "navigation.go-back"
	UIEventAlert      = "alert"
)
