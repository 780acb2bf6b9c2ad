package entity

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// OrderStatus is the canonical status of an order. Values the backend sends
// that are not recognised are kept verbatim.
type OrderStatus string

const (
	OrderStatusAssignedToRider OrderStatus = "AssignedToRider"
	OrderStatusCancelled       OrderStatus = "Cancelled"
	OrderStatusCompleted       OrderStatus = "Completed"
	OrderStatusDelivered       OrderStatus = "Delivered"
)

var statusAliases = map[string]OrderStatus{
	"assignedtorider": OrderStatusAssignedToRider,
	"assigned":        OrderStatusAssignedToRider,
	"cancelled":       OrderStatusCancelled,
	"canceled":        OrderStatusCancelled,
	"completed":       OrderStatusCompleted,
	"complete":        OrderStatusCompleted,
	"delivered":       OrderStatusDelivered,
}

// numeric codes observed from the backend
var statusCodes = map[int64]OrderStatus{
	5: OrderStatusCompleted,
}

// ParseOrderStatus maps a raw backend value onto the canonical enum. Case,
// spaces, underscores and dashes are ignored; numeric strings go through the
// code table.
func ParseOrderStatus(raw string) OrderStatus {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	if code, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return ParseOrderStatusCode(code)
	}
	key := strings.NewReplacer(" ", "", "_", "", "-", "").Replace(strings.ToLower(trimmed))
	if s, ok := statusAliases[key]; ok {
		return s
	}
	return OrderStatus(trimmed)
}

func ParseOrderStatusCode(code int64) OrderStatus {
	if s, ok := statusCodes[code]; ok {
		return s
	}
	return OrderStatus(strconv.FormatInt(code, 10))
}

// IsCompleted is true for the terminal states shown in History.
func (s OrderStatus) IsCompleted() bool {
	return s == OrderStatusCompleted || s == OrderStatusDelivered
}

func (s OrderStatus) IsTerminal() bool {
	return s.IsCompleted() || s == OrderStatusCancelled
}

// Satisfies reports whether a server reporting s has applied a request for
// requested. Completed and Delivered are not told apart until the backend
// settles on one of them.
func (s OrderStatus) Satisfies(requested OrderStatus) bool {
	if s == requested {
		return true
	}
	return s.IsCompleted() && requested.IsCompleted()
}

// CanTransitionTo reports whether the client may move an order from s to next.
// Terminal states are never left.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if s == next {
		return true
	}
	return !s.IsTerminal()
}

func (s *OrderStatus) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}
	if data[0] == '"' {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		*s = ParseOrderStatus(raw)
		return nil
	}
	var code json.Number
	if err := json.Unmarshal(data, &code); err != nil {
		return err
	}
	n, err := code.Int64()
	if err != nil {
		*s = OrderStatus(code.String())
		return nil
	}
	*s = ParseOrderStatusCode(n)
	return nil
}
