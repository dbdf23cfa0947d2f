package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/shamanec/GADS-sim-provider/catalog"
	"github.com/shamanec/GADS-sim-provider/config"
	"github.com/shamanec/GADS-sim-provider/db"
	_ "github.com/shamanec/GADS-sim-provider/docs"
	"github.com/shamanec/GADS-sim-provider/logger"
	"github.com/shamanec/GADS-sim-provider/router"
	"github.com/shamanec/GADS-sim-provider/simulator"

	log "github.com/sirupsen/logrus"
)

func setLogging() {
	log.SetFormatter(&log.JSONFormatter{})
	projectLogFile, err := os.OpenFile(config.Config.ProviderFolder+"/logs/provider.log", os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0755)
	if err != nil {
		panic("Could not set log output" + err.Error())
	}
	log.SetOutput(projectLogFile)
}

func main() {
	portFlag := flag.String("port", "", "The port to run the provider on, overrides the config file")
	configFlag := flag.String("config", "./configs/provider.json", "Path to the provider config file")
	flag.Parse()

	config.SetupConfig(*configFlag)
	if *portFlag != "" {
		config.Config.Port = *portFlag
	}

	db.New(config.Config.RethinkDB)

	logger.SetupLogging(config.Config.LogLevel, config.Config.ProviderFolder)
	setLogging()

	deviceCatalog := catalog.New()
	if config.Config.CatalogFile != "" {
		if err := deviceCatalog.LoadOverlay(config.Config.CatalogFile); err != nil {
			logger.ProviderLogger.LogWarn("provider_setup", "Starting with the built-in catalog tables, could not load the overlay file - "+err.Error())
		}
		if err := deviceCatalog.Watch(config.Config.CatalogFile); err != nil {
			logger.ProviderLogger.LogError("provider_setup", "Could not watch the catalog overlay file - "+err.Error())
		}
	}

	simulator.Setup(deviceCatalog)
	// Resolving the default configuration here fails the boot when the catalog
	// has no usable OS for the default device
	logger.ProviderLogger.LogInfo("provider_setup", "Default simulator configuration: "+simulator.Default().String())

	handler := router.HandleRequests(deviceCatalog)

	fmt.Printf("Starting provider on port:%v\n", config.Config.Port)
	log.Fatal(http.ListenAndServe(":"+config.Config.Port, handler))
}
