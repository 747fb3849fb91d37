package main

import (
	"os"

	"github.com/DRSN-tech/inventory/internal/app"
	config "github.com/DRSN-tech/inventory/internal/cfg"
	"github.com/DRSN-tech/inventory/pkg/logger"
)

func main() {
	log := logger.NewSlogLogger()

	cfg, err := config.Load(log)
	if err != nil {
		log.Errorf(err, "failed to load config")
		os.Exit(1)
	}

	log = logger.NewSlogLoggerWithOptions(os.Stderr, cfg.Log.Level, cfg.Log.JSON)

	application := app.NewApp(cfg, log, os.Stdout)
	if err := application.Run(); err != nil {
		os.Exit(1)
	}
}
