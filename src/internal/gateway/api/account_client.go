package api

import (
	"context"
	"encoding/json"
	"net/http"

	"rider-client/src/internal/model"
	"rider-client/src/pkg/log"

	"github.com/go-playground/validator/v10"
)

type AccountClient struct {
	Transport Transport
	Validate  *validator.Validate
	Log       log.Log
}

func NewAccountClient(transport Transport, validate *validator.Validate, logger log.Log) *AccountClient {
	return &AccountClient{
		Transport: transport,
		Validate:  validate,
		Log:       logger,
	}
}

func (c *AccountClient) Login(ctx context.Context, request *model.LoginUserRequest) (*model.LoginUserResponse, error) {
	resp, err := c.Transport.Do(ctx, Request{
		Method: http.MethodPost,
		Path:   "/Account/Login",
		Body:   request,
	})
	if err != nil {
		return nil, asClientError(err)
	}
	if !isSuccess(resp.StatusCode) {
		return nil, httpErrorFor(resp)
	}

	var res model.LoginUserResponse
	if err := json.Unmarshal(resp.Body, &res); err != nil {
		c.Log.Error("account-client", err.Error(), "Login", request.Email)
		return nil, validationError("login response", err)
	}
	if c.Validate != nil {
		if err := c.Validate.Struct(&res); err != nil {
			return nil, validationError("login response", err)
		}
	}
	return &res, nil
}
