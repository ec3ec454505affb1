package main

import (
	"fmt"

	"github.com/rapozcode/webclient/internal/adapter"
	"github.com/rapozcode/webclient/internal/config"
	myHTTP "github.com/rapozcode/webclient/internal/handler/http"
	"github.com/rapozcode/webclient/internal/logger"
	"github.com/rapozcode/webclient/internal/server"
	"github.com/rapozcode/webclient/internal/service"
	"github.com/rapozcode/webclient/internal/session"
	"github.com/rapozcode/webclient/internal/workers"
	"github.com/rapozcode/webclient/web"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("rapozcode-webclient")
	cfg, err := config.GetConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	backend, err := adapter.NewHTTPBackendAdapter(cfg.Backend, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create backend adapter")
	}

	services := service.NewServices(backend)
	sessions := session.NewStore(cfg.Sessions, log)

	renderer, err := web.NewRenderer()
	if err != nil {
		log.Fatal().Err(err).Msg("parse page templates")
	}

	handler := myHTTP.NewHandler(services, sessions, renderer, cfg, log)

	srv, err := server.NewServer(handler.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server")
	}

	// An unreachable backend is not fatal here: pages render with an
	// offline banner and the poller keeps probing until it comes up.
	background := workers.NewWorkers(services, sessions, cfg, log)
	background.Run()
	defer background.Stop()

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
