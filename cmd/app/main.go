package main

import (
	"safar/config"
	"safar/di"
	_ "safar/docs"
	"safar/shared/logger"
)

// @title Safar Travel API
// @version 1.0
// @description Backend for the Safar travel agency marketing site and back-office.
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
