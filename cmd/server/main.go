package main

import (
	"context"
	"fmt"

	"github.com/pharmaciefficace/feedback/internal/adapter"
	"github.com/pharmaciefficace/feedback/internal/config"
	handlerHTTP "github.com/pharmaciefficace/feedback/internal/handler/http"
	"github.com/pharmaciefficace/feedback/internal/logger"
	"github.com/pharmaciefficace/feedback/internal/server"
	"github.com/pharmaciefficace/feedback/internal/service"
	"github.com/pharmaciefficace/feedback/internal/store"
	"github.com/pharmaciefficace/feedback/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("pharmaciefficace-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Error().Err(err).Msg("error closing storages")
		}
	}()

	directory := adapter.NewHTTPDirectoryClient(cfg.Directory, log)

	services := service.NewServices(storages, directory, *cfg, log)

	handler := handlerHTTP.NewHandler(services, log)

	srv, err := server.NewServer(handler, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	workers.NewWorkers(cfg.Workers, storages, services.SurveySessionService, log).Run()

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
