package main

import (
	"lagoon/config"
	"lagoon/di"
	"lagoon/shared/logger"
)

// @title Lagoon API
// @version 1.0
// @description Booking marketplace backend for tour facilities.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
