package main

import (
	"xterminio/config"
	"xterminio/di"
	"xterminio/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
