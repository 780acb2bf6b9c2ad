package messaging

import (
	"rider-client/src/internal/model"
	"rider-client/src/pkg/kafka"
	"rider-client/src/pkg/log"
)

type DeliveryProducer struct {
	OrderDeliveredProducer Producer[*model.OrderDeliveredEvent]
}

func NewDeliveryProducer(producer kafka.Producer, topic string, log log.Log) *DeliveryProducer {
	return &DeliveryProducer{
		OrderDeliveredProducer: Producer[*model.OrderDeliveredEvent]{
			Producer: producer,
			Topic:    topic,
			Log:      log,
		},
	}
}

func (d *DeliveryProducer) SendOrderDelivered(event *model.OrderDeliveredEvent) error {
	return d.OrderDeliveredProducer.Send(event)
}
