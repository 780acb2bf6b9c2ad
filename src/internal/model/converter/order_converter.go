package converter

import (
	"rider-client/src/internal/entity"
	"rider-client/src/internal/model"
)

func OrderToEntity(res *model.OrderResponse) entity.Order {
	order := entity.Order{
		ID:              res.ID.String(),
		OrderNo:         res.OrderNo.String(),
		OrderStatus:     res.OrderStatus,
		OrderDate:       res.OrderDate.Time,
		DeliveryAddress: res.DeliveryAddress,
		TotalAmount:     res.TotalAmount,
		PaymentStatus:   res.PaymentStatus,
		Customer: entity.Customer{
			Name:        res.Customer.Name,
			PhoneNumber: res.Customer.PhoneNumber,
		},
	}
	if len(res.OrderLines) > 0 {
		order.OrderLines = make([]entity.OrderLine, 0, len(res.OrderLines))
		for _, line := range res.OrderLines {
			order.OrderLines = append(order.OrderLines, entity.OrderLine{
				Product: entity.Product{
					Name:  line.Product.Name,
					Image: line.Product.Image,
				},
				Quantity: line.Quantity,
				Amount:   line.Amount,
			})
		}
	}
	return order
}

func OrdersToEntities(res []model.OrderResponse) []entity.Order {
	orders := make([]entity.Order, 0, len(res))
	for i := range res {
		orders = append(orders, OrderToEntity(&res[i]))
	}
	return orders
}
