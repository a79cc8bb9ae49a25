package main

import (
	"fmt"
	"strings"

	"github.com/neverov-dev/passvault/internal/adapter"
	"github.com/neverov-dev/passvault/internal/client"
	"github.com/neverov-dev/passvault/internal/config"
	"github.com/neverov-dev/passvault/internal/logger"
	"github.com/neverov-dev/passvault/internal/service"
	"github.com/neverov-dev/passvault/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("passvault-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	server := adapter.NewHTTPVaultServer(adapter.HTTPClientConfig{
		BaseURL: serverBaseURL(cfg.Adapter.HTTPAddress),
		Timeout: cfg.Adapter.RequestTimeout,
	})

	services := service.NewClientServices(server, log)
	ui := tui.New(services, log)

	app, err := client.NewApp(services, ui, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

// serverBaseURL turns a bare host:port config value into an URL; values that
// already carry a scheme pass through unchanged.
func serverBaseURL(address string) string {
	if strings.HasPrefix(address, "http://") || strings.HasPrefix(address, "https://") {
		return address
	}
	return "http://" + address
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
