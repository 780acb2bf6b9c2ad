package kafka

import (
	"fmt"
	"strings"
	"time"

	"rider-client/src/pkg/log"

	"github.com/IBM/sarama"
)

type Producer interface {
	Publish(topic string, key, value []byte) error
	Close() error
}

type Cfg struct {
	Brokers       string
	KafkaUsername string
	KafkaPassword string
	AppName       string
}

func (c Cfg) saramaConfig() *sarama.Config {
	conf := sarama.NewConfig()
	conf.ClientID = c.AppName
	conf.Producer.RequiredAcks = sarama.WaitForAll
	conf.Producer.Return.Successes = true
	conf.Producer.Retry.Max = 3
	conf.Producer.Retry.Backoff = 500 * time.Millisecond
	conf.Net.DialTimeout = 5 * time.Second
	conf.Net.WriteTimeout = 5 * time.Second

	if c.KafkaUsername != "" {
		conf.Net.SASL.Enable = true
		conf.Net.SASL.Mechanism = sarama.SASLTypePlaintext
		conf.Net.SASL.User = c.KafkaUsername
		conf.Net.SASL.Password = c.KafkaPassword
		conf.Net.TLS.Enable = true
	}
	return conf
}

type syncProducer struct {
	producer sarama.SyncProducer
	log      log.Log
}

func NewProducer(cfg Cfg, logger log.Log) (Producer, error) {
	brokers := strings.Split(cfg.Brokers, ",")
	p, err := sarama.NewSyncProducer(brokers, cfg.saramaConfig())
	if err != nil {
		return nil, fmt.Errorf("create kafka producer: %w", err)
	}
	return &syncProducer{producer: p, log: logger}, nil
}

func (p *syncProducer) Publish(topic string, key, value []byte) error {
	partition, offset, err := p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.ByteEncoder(key),
		Value: sarama.ByteEncoder(value),
	})
	if err != nil {
		return err
	}
	p.log.Info("kafka-producer", "message delivered", topic, fmt.Sprintf("partition=%d offset=%d", partition, offset))
	return nil
}

func (p *syncProducer) Close() error {
	return p.producer.Close()
}
