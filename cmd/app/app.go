package main

import (
	"os"

	"github.com/DRSN-tech/dropflow/internal/app"
	config "github.com/DRSN-tech/dropflow/internal/cfg"
	"github.com/DRSN-tech/dropflow/pkg/logger"
)

//	@title			Dropflow API
//	@version		1.0
//	@description	Товары, поставщики, заказы и сводные показатели для дропшиппинга.
//	@BasePath		/api/v1
func main() {
	bootLog := logger.NewZerologLogger()

	cfg, err := config.Load(bootLog)
	if err != nil {
		bootLog.Errorf(err, "failed to load config")
		os.Exit(1)
	}

	log := logger.New(os.Stdout, cfg.Log.Level, cfg.Log.Pretty)

	application, err := app.NewApp(cfg, log)
	if err != nil {
		log.Errorf(err, "failed to initialize app")
		os.Exit(1)
	}

	if err := application.Run(); err != nil {
		os.Exit(1)
	}
}
