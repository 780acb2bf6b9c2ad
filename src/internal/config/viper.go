package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// NewViper loads .env when present, then config.yaml, then RIDER_* env vars.
func NewViper() *viper.Viper {
	_ = godotenv.Load()

	config := viper.New()
	config.SetConfigName("config")
	config.SetConfigType("yaml")
	config.AddConfigPath(".")
	config.AddConfigPath("./config")
	config.SetEnvPrefix("RIDER")
	config.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	config.AutomaticEnv()

	if err := config.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			panic(fmt.Errorf("fatal error config file: %w", err))
		}
	}
	return config
}

// SetDefaults registers the defaults every key falls back to.
func SetDefaults(config *viper.Viper) {
	config.SetDefault("app.name", "RIDER_CLIENT")
	config.SetDefault("log.level", "INFO")
	config.SetDefault("web.port", 8080)
	config.SetDefault("api.timeout", "15s")
	config.SetDefault("sync.poll_interval", "60s")
	config.SetDefault("status.back_delay", "1200ms")
	config.SetDefault("session.store", "memory")
	config.SetDefault("session.device_id", "default")
	config.SetDefault("session.ttl", "720h")
	config.SetDefault("kafka.producer.enabled", false)
	config.SetDefault("kafka.topic.order_delivered", "rider-order-delivered")
}
