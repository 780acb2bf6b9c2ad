package config

import (
	"rider-client/src/internal/delivery/http"
	"rider-client/src/internal/delivery/http/middleware"
	"rider-client/src/internal/delivery/http/route"
	"rider-client/src/internal/gateway/api"
	"rider-client/src/internal/gateway/messaging"
	"rider-client/src/internal/repository"
	"rider-client/src/internal/usecase"
	kafkaPkg "rider-client/src/pkg/kafka"
	"rider-client/src/pkg/log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/spf13/viper"
)

type BootstrapConfig struct {
	App      *fiber.App
	Log      log.Log
	Validate *validator.Validate
	Config   *viper.Viper
	Producer kafkaPkg.Producer
	Sessions repository.SessionRepository

	// Transport overrides the HTTP transport built from config.
	Transport api.Transport
}

type Application struct {
	RiderOrders *usecase.RiderOrderUseCase
	Sessions    *usecase.SessionUseCase
	Events      *http.UIEventQueue
}

func Bootstrap(config *BootstrapConfig) *Application {
	transport := config.Transport
	if transport == nil {
		transport = NewTransport(config.Config, config.Sessions, config.Log)
	}

	// setup gateways
	orderClient := api.NewOrderClient(transport, config.Validate, config.Log)
	accountClient := api.NewAccountClient(transport, config.Validate, config.Log)
	deliveryProducer := messaging.NewDeliveryProducer(config.Producer, config.Config.GetString("kafka.topic.order_delivered"), config.Log)
	events := http.NewUIEventQueue(config.Config.GetInt("ui.event_buffer"))

	// setup use cases
	riderOrderUseCase := usecase.NewRiderOrderUseCase(
		config.Log,
		config.Validate,
		config.Sessions,
		orderClient,
		deliveryProducer,
		events,
		events,
		config.Config,
	)
	sessionUseCase := usecase.NewSessionUseCase(
		config.Log,
		config.Validate,
		config.Sessions,
		accountClient,
		riderOrderUseCase,
	)

	// setup controller
	sessionController := http.NewSessionController(sessionUseCase, config.Log)
	orderController := http.NewOrderController(riderOrderUseCase, config.Log)
	uiController := http.NewUIController(events, config.Log)

	routeConfig := route.RouteConfig{
		App:               config.App,
		SessionController: sessionController,
		OrderController:   orderController,
		UIController:      uiController,
		SessionMiddleware: middleware.RequireSession(config.Sessions),
	}
	routeConfig.Setup()

	return &Application{
		RiderOrders: riderOrderUseCase,
		Sessions:    sessionUseCase,
		Events:      events,
	}
}
