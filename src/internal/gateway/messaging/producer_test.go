package messaging

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"rider-client/src/internal/model"
	"rider-client/src/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type published struct {
	topic      string
	key, value []byte
}

type fakeKafka struct {
	messages []published
	err      error
}

func (f *fakeKafka) Publish(topic string, key, value []byte) error {
	if f.err != nil {
		return f.err
	}
	f.messages = append(f.messages, published{topic: topic, key: key, value: value})
	return nil
}

func (f *fakeKafka) Close() error { return nil }

func TestSendOrderDelivered(t *testing.T) {
	kafka := &fakeKafka{}
	producer := NewDeliveryProducer(kafka, "rider-order-delivered", log.NewDiscard())
	event := &model.OrderDeliveredEvent{
		EventID:     "ev-1",
		OrderID:     "42",
		RiderID:     "r-1",
		DeliveredAt: time.Date(2026, 5, 12, 15, 0, 0, 0, time.UTC),
	}

	require.NoError(t, producer.SendOrderDelivered(event))
	require.Len(t, kafka.messages, 1)
	msg := kafka.messages[0]
	assert.Equal(t, "rider-order-delivered", msg.topic)
	assert.Equal(t, "ev-1", string(msg.key))

	var decoded model.OrderDeliveredEvent
	require.NoError(t, json.Unmarshal(msg.value, &decoded))
	assert.Equal(t, "42", decoded.OrderID)
	assert.Equal(t, "r-1", decoded.RiderID)
}

func TestSendWithoutProducerIsNoop(t *testing.T) {
	producer := NewDeliveryProducer(nil, "rider-order-delivered", log.NewDiscard())
	assert.NoError(t, producer.SendOrderDelivered(&model.OrderDeliveredEvent{EventID: "ev-1"}))
	assert.Equal(t, "rider-order-delivered", *producer.OrderDeliveredProducer.GetTopic())
}

func TestSendReturnsPublishError(t *testing.T) {
	producer := NewDeliveryProducer(&fakeKafka{err: errors.New("broker down")}, "t", log.NewDiscard())
	assert.EqualError(t, producer.SendOrderDelivered(&model.OrderDeliveredEvent{EventID: "ev-1"}), "broker down")
}
