package middleware

import (
	"rider-client/src/internal/entity"
	"rider-client/src/internal/repository"
	httpError "rider-client/src/pkg/http-error"
	"rider-client/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

const sessionKey = "session"

// RequireSession rejects the request when no rider is logged in on this
// device and otherwise stores the session in the request locals.
func RequireSession(sessions repository.SessionRepository) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		session, err := sessions.Get(ctx.UserContext())
		if err != nil {
			errObj := httpError.NewInternalServerError()
			errObj.Message = "failed to read session"
			errObj.Err = err
			return utils.ResponseError(errObj, ctx)
		}
		if session == nil {
			errObj := httpError.NewUnauthorized()
			errObj.Message = "no rider is logged in"
			return utils.ResponseError(errObj, ctx)
		}
		ctx.Locals(sessionKey, session)
		return ctx.Next()
	}
}

func GetSession(ctx *fiber.Ctx) *entity.RiderSession {
	session, _ := ctx.Locals(sessionKey).(*entity.RiderSession)
	return session
}
