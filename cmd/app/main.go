package main

import (
	"jumatrek/config"
	"jumatrek/di"
	"jumatrek/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
