package config

import (
	"context"

	"rider-client/src/internal/gateway/api"
	"rider-client/src/internal/repository"
	httpError "rider-client/src/pkg/http-error"
	"rider-client/src/pkg/log"

	"github.com/spf13/viper"
)

// NewTransport builds the order service transport. The tenant is read from
// viper on every call and the bearer token from the session store.
func NewTransport(config *viper.Viper, sessions repository.SessionRepository, log log.Log) *api.HTTPTransport {
	tenant := api.TenantResolverFunc(func(ctx context.Context) (string, error) {
		clientDB := config.GetString("api.client_db")
		if clientDB == "" {
			errObj := httpError.NewBadRequest()
			errObj.Message = "api.client_db is not configured"
			return "", errObj
		}
		return clientDB, nil
	})
	tokenSource := func(ctx context.Context) (string, error) {
		session, err := sessions.Get(ctx)
		if err != nil || session == nil {
			return "", err
		}
		return session.AuthToken, nil
	}
	return api.NewHTTPTransport(config.GetString("api.base_url"), config.GetDuration("api.timeout"), tenant, tokenSource, log)
}
