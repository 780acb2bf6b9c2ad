package usecase

import (
	"context"
	"errors"
	"fmt"

	"rider-client/src/internal/model"
	"rider-client/src/internal/model/converter"
	"rider-client/src/internal/repository"
	httpError "rider-client/src/pkg/http-error"
	"rider-client/src/pkg/log"
	"rider-client/src/pkg/utils"

	"github.com/go-playground/validator/v10"
)

type AccountGateway interface {
	Login(ctx context.Context, request *model.LoginUserRequest) (*model.LoginUserResponse, error)
}

// RiderLifecycle is started after login and stopped on logout.
type RiderLifecycle interface {
	Start(ctx context.Context) error
	Stop()
}

type SessionUseCase struct {
	Log               log.Log
	Validate          *validator.Validate
	SessionRepository repository.SessionRepository
	AccountClient     AccountGateway
	Lifecycle         RiderLifecycle
}

func NewSessionUseCase(
	logger log.Log,
	validate *validator.Validate,
	sessionRepository repository.SessionRepository,
	accountClient AccountGateway,
	lifecycle RiderLifecycle,
) *SessionUseCase {
	return &SessionUseCase{
		Log:               logger,
		Validate:          validate,
		SessionRepository: sessionRepository,
		AccountClient:     accountClient,
		Lifecycle:         lifecycle,
	}
}

func (c *SessionUseCase) Login(ctx context.Context, request *model.LoginUserRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("session-usecase", errObj.Message, "Login", request.Email)
		return result
	}

	res, err := c.AccountClient.Login(ctx, request)
	if err != nil {
		c.Log.Error("session-usecase", err.Error(), "Login", request.Email)
		if errors.Is(err, httpError.ErrAuth) {
			errObj := httpError.NewUnauthorized()
			errObj.Message = "invalid email or password"
			result.Error = errObj
			return result
		}
		result.Error = err
		return result
	}

	session := converter.LoginToSession(res)
	if err := c.SessionRepository.Set(ctx, session); err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("failed to store session: %v", err)
		result.Error = errObj
		c.Log.Error("session-usecase", errObj.Message, "Login", session.UserID)
		return result
	}
	c.Log.Info("session-usecase", "rider logged in", "Login", session.UserID)

	if c.Lifecycle != nil {
		if err := c.Lifecycle.Start(ctx); err != nil {
			c.Log.Error("session-usecase", fmt.Sprintf("failed to start order sync: %v", err), "Login", session.UserID)
		}
	}

	result.Data = converter.SessionToResponse(session)
	return result
}

func (c *SessionUseCase) Logout(ctx context.Context) utils.Result {
	var result utils.Result

	if c.Lifecycle != nil {
		c.Lifecycle.Stop()
	}
	if err := c.SessionRepository.Clear(ctx); err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("failed to clear session: %v", err)
		result.Error = errObj
		c.Log.Error("session-usecase", errObj.Message, "Logout", "")
		return result
	}

	result.Data = &model.SessionResponse{}
	return result
}

func (c *SessionUseCase) GetProfile(ctx context.Context) utils.Result {
	var result utils.Result

	session, err := c.SessionRepository.Get(ctx)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("failed to read session: %v", err)
		result.Error = errObj
		c.Log.Error("session-usecase", errObj.Message, "GetProfile", "")
		return result
	}
	if session == nil {
		errObj := httpError.NewUnauthorized()
		errObj.Message = "no rider is logged in"
		result.Error = errObj
		return result
	}

	result.Data = converter.SessionToResponse(session)
	return result
}
