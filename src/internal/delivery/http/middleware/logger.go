package middleware

import (
	"fmt"
	"time"

	"rider-client/src/pkg/log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const HeaderRequestID = "X-Request-Id"

// NewLogger tags every request with an id and logs it once it is served.
func NewLogger() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		start := time.Now()
		requestID := ctx.Get(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		ctx.Set(HeaderRequestID, requestID)

		err := ctx.Next()

		meta := fmt.Sprintf("method=%s path=%s status=%d took=%s id=%s",
			ctx.Method(), ctx.Path(), ctx.Response().StatusCode(), time.Since(start), requestID)
		if err != nil {
			log.GetLogger().Error("http", err.Error(), "request", meta)
			return err
		}
		log.GetLogger().Info("http", "request served", "request", meta)
		return nil
	}
}
