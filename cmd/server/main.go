package main

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"github.com/batkt/sudalgaaQRBackend/internal/global"
	"github.com/batkt/sudalgaaQRBackend/internal/logger"
)

// initLogger initializes the logging system for the whole application.
// The logger reads its configuration from environment variables.
func initLogger() {
	if err := logger.Init(nil); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	logger.GetAppLogger().Info("Logger system initialized successfully")
}

// main_thread starts the Fiber server on the configured address.
func main_thread() {
	app := InitFiberApp()

	cfg := global.ServerConfig
	log := logger.GetAppLogger()

	log.WithFields(map[string]interface{}{
		"address": cfg.Address,
	}).Info("Starting Fiber server")

	if err := app.Listen(cfg.Address, fiber.ListenConfig{}); err != nil {
		log.Fatalf("Error in Fiber Listen: %v", err)
	}
}

func main() {
	initLogger()

	// Global state: config, validator, database connection, indexes
	InitGlobal()

	// Collection registry used by the domain services
	InitRegistry()

	// Seed the admin account and default settings in init mode
	InitDefaultData()

	// Run the Fiber server on the main thread
	main_thread()
}
