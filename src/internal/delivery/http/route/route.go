package route

import (
	"rider-client/src/internal/delivery/http"
	"rider-client/src/internal/delivery/http/middleware"

	"github.com/gofiber/fiber/v2"
)

type RouteConfig struct {
	App               *fiber.App
	SessionController *http.SessionController
	OrderController   *http.OrderController
	UIController      *http.UIController
	SessionMiddleware fiber.Handler
}

func (c *RouteConfig) Setup() {
	c.App.Use(middleware.NewLogger())
	c.App.Get("/health", func(ctx *fiber.Ctx) error {
		return ctx.SendString("OK")
	})
	c.SetupGuestRoute()
	c.SetupSessionRoute()
}

func (c *RouteConfig) SetupGuestRoute() {
	c.App.Post("/session/login", c.SessionController.Login)
	c.App.Get("/ui/events", c.UIController.DrainEvents)
}

func (c *RouteConfig) SetupSessionRoute() {
	c.App.Use(c.SessionMiddleware)
	c.App.Post("/session/logout", c.SessionController.Logout)
	c.App.Get("/session/profile", c.SessionController.GetProfile)
	c.App.Get("/orders", c.OrderController.ListOrders)
	c.App.Post("/orders/focus", c.OrderController.FocusOrders)
	c.App.Post("/orders/refresh", c.OrderController.RefreshOrders)
	c.App.Get("/orders/:id", c.OrderController.GetOrderDetail)
	c.App.Post("/orders/:id/deliver", c.OrderController.MarkDelivered)
}
