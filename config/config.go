package config

import (
	"encoding/json"
	"io"
	"os"

	"github.com/shamanec/GADS-sim-provider/models"

	log "github.com/sirupsen/logrus"
)

var Config models.ProviderConfig

// SetupConfig reads the provider config file into the package-level Config.
// The provider cannot run without its config, so an unreadable file is fatal.
func SetupConfig(configPath string) {
	config, err := getConfigJsonData(configPath)
	if err != nil {
		panic("Could not set up the provider config from `" + configPath + "` - " + err.Error())
	}
	Config = config
}

// Get a ProviderConfig with the current configuration from the config file,
// filling in defaults for the optional fields
func getConfigJsonData(configPath string) (models.ProviderConfig, error) {
	var config models.ProviderConfig

	jsonFile, err := os.Open(configPath)
	if err != nil {
		log.WithFields(log.Fields{
			"event": "get_config_data",
		}).Error("Could not open config file: " + err.Error())
		return config, err
	}
	defer jsonFile.Close()

	bs, err := io.ReadAll(jsonFile)
	if err != nil {
		log.WithFields(log.Fields{
			"event": "get_config_data",
		}).Error("Could not read config file to byte slice: " + err.Error())
		return config, err
	}

	err = json.Unmarshal(bs, &config)
	if err != nil {
		log.WithFields(log.Fields{
			"event": "get_config_data",
		}).Error("Could not unmarshal config file: " + err.Error())
		return config, err
	}

	if config.HostAddress == "" {
		config.HostAddress = "localhost"
	}
	if config.Port == "" {
		config.Port = "10001"
	}
	if config.RethinkDB == "" {
		config.RethinkDB = "localhost:28015"
	}
	if config.ProviderFolder == "" {
		config.ProviderFolder = "."
	}
	if config.LogLevel == "" {
		config.LogLevel = "info"
	}

	return config, nil
}
