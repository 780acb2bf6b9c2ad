package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"rider-client/src/internal/config"
	"rider-client/src/pkg/log"
)

func main() {
	viperConfig := config.NewViper()
	config.SetDefaults(viperConfig)
	log.InitLogger(viperConfig)
	logger := log.GetLogger()

	validate := config.NewValidator(viperConfig)
	sessions := config.NewSessionRepository(viperConfig, validate, logger)
	producer := config.NewKafkaProducer(viperConfig, logger)
	app := config.NewFiber(viperConfig)
	application := config.Bootstrap(&config.BootstrapConfig{
		App:      app,
		Log:      logger,
		Validate: validate,
		Config:   viperConfig,
		Producer: producer,
		Sessions: sessions,
	})

	// resume the stored session, if any
	startCtx, cancelStart := context.WithTimeout(context.Background(), 30*time.Second)
	if err := application.RiderOrders.Start(startCtx); err != nil {
		logger.Info("main", fmt.Sprintf("order sync not started: %v", err), "main", "")
	}
	cancelStart()

	go func() {
		webPort := viperConfig.GetInt("web.port")
		if err := app.Listen(fmt.Sprintf(":%d", webPort)); err != nil {
			logger.Error("main", fmt.Sprintf("Failed to start server: %v", err), "main", "")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info("main", "Server rider-client is shutting down...", "graceful", "")

	application.RiderOrders.Stop()
	if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
		logger.Error("main", fmt.Sprintf("Error during shutdown: %v", err), "graceful", "")
	}
	if producer != nil {
		if err := producer.Close(); err != nil {
			logger.Error("main", fmt.Sprintf("Error closing kafka producer: %v", err), "graceful", "")
		}
	}
	logger.Info("main", fmt.Sprintf("Server %s stopped", viperConfig.GetString("app.name")), "graceful", "")
}
