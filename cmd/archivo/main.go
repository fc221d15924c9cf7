package main

import (
	"flag"
	"net/http"
	"os"

	"github.com/lacentralbaja/archivo/internal/config"
	"github.com/lacentralbaja/archivo/internal/logger"
	"github.com/lacentralbaja/archivo/internal/router"
	"github.com/lacentralbaja/archivo/internal/setup"
)

func main() {
	var configFolder string
	flag.StringVar(&configFolder, "config_folder", "config", "path to folder with configs")
	flag.Parse()

	cfg := config.MustLoad(configFolder)
	logger.Initialize(cfg.Public.LogLevel, cfg.Public.LogJSON)

	deps, err := setup.SetupDependencies(cfg)
	if err != nil {
		logger.Log.Error("failed to set up dependencies", "err", err)
		os.Exit(1)
	}
	defer deps.Storage.Cleanup()

	r := router.New(deps)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	logger.Log.Info("listening", "port", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		logger.Log.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
