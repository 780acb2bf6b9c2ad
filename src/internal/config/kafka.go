package config

import (
	kafkaPkg "rider-client/src/pkg/kafka"
	"rider-client/src/pkg/log"

	"github.com/spf13/viper"
)

func NewKafkaConfig(viper *viper.Viper) kafkaPkg.Cfg {
	return kafkaPkg.Cfg{
		Brokers:       viper.GetString("kafka.brokers"),
		KafkaUsername: viper.GetString("kafka.username"),
		KafkaPassword: viper.GetString("kafka.password"),
		AppName:       viper.GetString("app.name"),
	}
}

// NewKafkaProducer returns nil when publishing is switched off.
func NewKafkaProducer(config *viper.Viper, log log.Log) kafkaPkg.Producer {
	if !config.GetBool("kafka.producer.enabled") {
		log.Info("kafka-config", "Kafka producer is disabled in configuration", "kafka", "")
		return nil
	}
	kafkaProducer, err := kafkaPkg.NewProducer(NewKafkaConfig(config), log)
	if err != nil {
		panic(err)
	}

	return kafkaProducer
}
