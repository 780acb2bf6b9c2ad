package http

import (
	"rider-client/src/internal/model"
	"rider-client/src/internal/usecase"
	"rider-client/src/pkg/log"
	"rider-client/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type SessionController struct {
	Log     log.Log
	UseCase *usecase.SessionUseCase
}

func NewSessionController(useCase *usecase.SessionUseCase, logger log.Log) *SessionController {
	return &SessionController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *SessionController) Login(ctx *fiber.Ctx) error {
	request := new(model.LoginUserRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("SessionController.Login", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(fiber.NewError(fiber.StatusBadRequest, err.Error()), ctx)
	}
	result := c.UseCase.Login(ctx.UserContext(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Login", fiber.StatusOK, ctx)
}

func (c *SessionController) Logout(ctx *fiber.Ctx) error {
	result := c.UseCase.Logout(ctx.UserContext())
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Logout", fiber.StatusOK, ctx)
}

func (c *SessionController) GetProfile(ctx *fiber.Ctx) error {
	result := c.UseCase.GetProfile(ctx.UserContext())
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "GetProfile", fiber.StatusOK, ctx)
}
