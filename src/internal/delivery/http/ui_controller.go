package http

import (
	"rider-client/src/pkg/log"
	"rider-client/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type UIController struct {
	Log    log.Log
	Events *UIEventQueue
}

func NewUIController(events *UIEventQueue, logger log.Log) *UIController {
	return &UIController{
		Log:    logger,
		Events: events,
	}
}

func (c *UIController) DrainEvents(ctx *fiber.Ctx) error {
	return utils.Response(c.Events.Drain(), "DrainEvents", fiber.StatusOK, ctx)
}
