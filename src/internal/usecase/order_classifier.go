package usecase

import (
	"time"

	"rider-client/src/internal/entity"
	"rider-client/src/internal/model"

	"github.com/jinzhu/now"
)

// ClassifyOrders picks the orders a view shows, keeping server order and
// dropping repeated ids. It reads nothing but its arguments.
//
// Active shows every order that is not completed or delivered; a cancelled
// order only stays on the day it was placed. History shows completed and
// delivered orders.
func ClassifyOrders(orders []entity.Order, filter model.ViewFilter, at time.Time) []entity.Order {
	today := now.With(at).BeginningOfDay()
	seen := make(map[string]struct{}, len(orders))
	result := make([]entity.Order, 0, len(orders))

	for _, order := range orders {
		if _, dup := seen[order.ID]; dup {
			continue
		}
		seen[order.ID] = struct{}{}

		if includeInView(order, filter, today) {
			result = append(result, order.Clone())
		}
	}
	return result
}

func includeInView(order entity.Order, filter model.ViewFilter, today time.Time) bool {
	switch filter {
	case model.ViewFilterActive:
		if order.OrderStatus.IsCompleted() {
			return false
		}
		if order.OrderStatus == entity.OrderStatusCancelled {
			return sameDay(order.OrderDate, today)
		}
		return true
	case model.ViewFilterHistory:
		return order.OrderStatus.IsCompleted()
	}
	return false
}

func sameDay(t time.Time, today time.Time) bool {
	if t.IsZero() {
		return false
	}
	return now.With(t.In(today.Location())).BeginningOfDay().Equal(today)
}
