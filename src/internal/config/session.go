package config

import (
	"fmt"

	"rider-client/src/internal/repository"
	"rider-client/src/pkg/log"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// NewSessionRepository picks the session store named by session.store.
func NewSessionRepository(config *viper.Viper, validate *validator.Validate, log log.Log) repository.SessionRepository {
	switch store := config.GetString("session.store"); store {
	case "", "memory":
		return repository.NewMemorySessionRepository(validate)
	case "redis":
		client, err := NewRedis(config)
		if err != nil {
			panic(fmt.Errorf("connect redis session store: %w", err))
		}
		log.Info("session-config", "using redis session store", "session", config.GetString("session.device_id"))
		return repository.NewRedisSessionRepository(client, validate, config.GetString("session.device_id"), config.GetDuration("session.ttl"))
	default:
		panic(fmt.Errorf("unknown session store %q", store))
	}
}
