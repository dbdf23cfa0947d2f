package router

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	sh "github.com/codeskyblue/go-sh"
	"github.com/gin-gonic/gin"
	"github.com/pelletier/go-toml/v2"
	"github.com/shamanec/GADS-sim-provider/config"
	"github.com/shamanec/GADS-sim-provider/db"
	"github.com/shamanec/GADS-sim-provider/models"
	"github.com/shamanec/GADS-sim-provider/simulator"

	log "github.com/sirupsen/logrus"
)

// ConfigurationResponse is the standard reply for a simulator configuration -
// the persisted encoding, the reporting projection and the description.
type ConfigurationResponse struct {
	Configuration simulator.Configuration `json:"configuration"`
	Serializable  map[string]interface{}  `json:"serializable"`
	Description   string                  `json:"description"`
}

// StoredConfigurationResponse is the reply for a configuration read from the
// store.
type StoredConfigurationResponse struct {
	ID        string `json:"id"`
	CreatedAt int64  `json:"created_at"`
	ConfigurationResponse
}

func newConfigurationResponse(configuration simulator.Configuration) ConfigurationResponse {
	return ConfigurationResponse{
		Configuration: configuration,
		Serializable:  configuration.Serializable(),
		Description:   configuration.String(),
	}
}

type deriveRequest struct {
	Base         *simulator.Configuration `json:"base,omitempty"`
	Device       string                   `json:"device,omitempty"`
	OS           string                   `json:"os,omitempty"`
	AuxDirectory *string                  `json:"aux_directory,omitempty"`
}

// deriveFromRequest applies the requested derivations in order - device, OS,
// auxiliary directory - on top of the base configuration or the process
// default.
func deriveFromRequest(request deriveRequest) (simulator.Configuration, error) {
	configuration := simulator.Default()
	if request.Base != nil {
		configuration = *request.Base
	}

	var err error
	if request.Device != "" {
		configuration, err = configuration.WithDeviceNamed(deviceCatalog, request.Device)
		if err != nil {
			return simulator.Configuration{}, err
		}
	}
	if request.OS != "" {
		configuration, err = configuration.WithOSNamed(deviceCatalog, request.OS)
		if err != nil {
			return simulator.Configuration{}, err
		}
	}
	if request.AuxDirectory != nil {
		configuration = configuration.WithAuxiliaryDirectory(*request.AuxDirectory)
	}
	return configuration, nil
}

// @Summary      Get the default simulator configuration
// @Description  Returns the process default - the default device paired with the newest OS version supported for it
// @Tags         configuration
// @Produce      json
// @Success      200 {object} ConfigurationResponse
// @Router       /configuration/default [get]
func GetDefaultConfiguration(c *gin.Context) {
	c.JSON(http.StatusOK, newConfigurationResponse(simulator.Default()))
}

// @Summary      Derive a simulator configuration
// @Description  Applies device, OS and auxiliary directory derivations on top of the default or a supplied base configuration
// @Tags         configuration
// @Produce      json
// @Success      200 {object} ConfigurationResponse
// @Failure      400 {object} JsonErrorResponse
// @Router       /configuration/derive [post]
func DeriveConfiguration(c *gin.Context) {
	var request deriveRequest
	if err := json.NewDecoder(c.Request.Body).Decode(&request); err != nil {
		JSONError(c.Writer, "derive_configuration", "Could not decode the request body - "+err.Error(), http.StatusBadRequest)
		return
	}

	configuration, err := deriveFromRequest(request)
	if err != nil {
		JSONError(c.Writer, "derive_configuration", err.Error(), http.StatusBadRequest)
		return
	}

	c.JSON(http.StatusOK, newConfigurationResponse(configuration))
}

// @Summary      Get the device type catalog
// @Description  Returns all known device types sorted by name
// @Tags         catalog
// @Produce      json
// @Success      200 {object} []models.DeviceType
// @Failure      500 {object} JsonErrorResponse
// @Router       /catalog/devices [get]
func GetCatalogDevices(c *gin.Context) {
	responseData, err := convertToJSONString(deviceCatalog.Devices())
	if err != nil {
		JSONError(c.Writer, "get_catalog_devices", "Could not get the catalog devices", 500)
		return
	}
	fmt.Fprint(c.Writer, responseData)
}

// @Summary      Get the OS version catalog
// @Description  Returns all known OS versions, oldest first
// @Tags         catalog
// @Produce      json
// @Success      200 {object} []models.OSVersion
// @Failure      500 {object} JsonErrorResponse
// @Router       /catalog/os-versions [get]
func GetCatalogOSVersions(c *gin.Context) {
	responseData, err := convertToJSONString(deviceCatalog.OSVersions())
	if err != nil {
		JSONError(c.Writer, "get_catalog_os_versions", "Could not get the catalog OS versions", 500)
		return
	}
	fmt.Fprint(c.Writer, responseData)
}

// @Summary      Get the OS versions supported by a device
// @Description  Returns the OS versions that can run on the named device type, oldest first. Unknown names yield an empty list
// @Tags         catalog
// @Produce      json
// @Success      200 {object} []models.OSVersion
// @Router       /catalog/devices/{name}/os-versions [get]
func GetDeviceOSVersions(c *gin.Context) {
	name := c.Param("name")
	device, ok := deviceCatalog.LookupDevice(name)
	if !ok {
		device = models.DeviceType{Name: name}
	}

	c.JSON(http.StatusOK, gin.H{
		"device":      device.Name,
		"os_versions": deviceCatalog.SupportedOSVersions(device),
	})
}

// @Summary      Get the newest OS version supported by a device
// @Description  Returns the newest OS version that can run on the named device type
// @Tags         catalog
// @Produce      json
// @Success      200 {object} models.OSVersion
// @Failure      404 {object} JsonErrorResponse
// @Router       /catalog/devices/{name}/newest-os [get]
func GetDeviceNewestOS(c *gin.Context) {
	name := c.Param("name")
	device, ok := deviceCatalog.LookupDevice(name)
	if !ok {
		device = models.DeviceType{Name: name}
	}

	newest, ok := deviceCatalog.NewestAvailableOS(device)
	if !ok {
		JSONError(c.Writer, "get_newest_os", "No supported OS version for device `"+name+"`", http.StatusNotFound)
		return
	}
	c.JSON(http.StatusOK, newest)
}

// @Summary      Store a simulator configuration
// @Description  Derives a configuration the same way as the derive endpoint and stores it under a fresh ID
// @Tags         stored-configurations
// @Produce      json
// @Success      201 {object} StoredConfigurationResponse
// @Failure      400 {object} JsonErrorResponse
// @Failure      500 {object} JsonErrorResponse
// @Router       /configurations [post]
func CreateConfiguration(c *gin.Context) {
	var request deriveRequest
	if err := json.NewDecoder(c.Request.Body).Decode(&request); err != nil {
		JSONError(c.Writer, "create_configuration", "Could not decode the request body - "+err.Error(), http.StatusBadRequest)
		return
	}

	configuration, err := deriveFromRequest(request)
	if err != nil {
		JSONError(c.Writer, "create_configuration", err.Error(), http.StatusBadRequest)
		return
	}

	record := configuration.Record("")
	id, err := db.InsertConfiguration(record)
	if err != nil {
		JSONError(c.Writer, "create_configuration", "Could not store the configuration", 500)
		return
	}

	c.JSON(http.StatusCreated, StoredConfigurationResponse{
		ID:                    id,
		CreatedAt:             record.CreatedAt,
		ConfigurationResponse: newConfigurationResponse(configuration),
	})
}

// @Summary      Get the stored simulator configurations
// @Description  Returns all stored configurations. Records that no longer validate are skipped
// @Tags         stored-configurations
// @Produce      json
// @Success      200 {object} []StoredConfigurationResponse
// @Failure      500 {object} JsonErrorResponse
// @Router       /configurations [get]
func GetConfigurations(c *gin.Context) {
	records, err := db.GetConfigurations()
	if err != nil {
		JSONError(c.Writer, "get_configurations", "Could not read the stored configurations", 500)
		return
	}

	response := []StoredConfigurationResponse{}
	for _, record := range records {
		configuration, err := simulator.FromRecord(record)
		if err != nil {
			log.WithFields(log.Fields{
				"event": "get_configurations",
			}).Error("Skipping a stored configuration: " + err.Error())
			continue
		}
		response = append(response, StoredConfigurationResponse{
			ID:                    record.ID,
			CreatedAt:             record.CreatedAt,
			ConfigurationResponse: newConfigurationResponse(configuration),
		})
	}

	c.JSON(http.StatusOK, response)
}

// getStoredConfiguration reads a record by ID and rebuilds its configuration,
// writing the error response itself when that fails.
func getStoredConfiguration(c *gin.Context, event string) (models.ConfigurationRecord, simulator.Configuration, bool) {
	id := c.Param("id")

	record, err := db.GetConfiguration(id)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			JSONError(c.Writer, event, "No stored configuration with ID `"+id+"`", http.StatusNotFound)
		} else {
			JSONError(c.Writer, event, "Could not read the stored configuration", 500)
		}
		return models.ConfigurationRecord{}, simulator.Configuration{}, false
	}

	configuration, err := simulator.FromRecord(record)
	if err != nil {
		JSONError(c.Writer, event, err.Error(), 500)
		return models.ConfigurationRecord{}, simulator.Configuration{}, false
	}
	return record, configuration, true
}

// @Summary      Get a stored simulator configuration
// @Description  Returns one stored configuration by ID
// @Tags         stored-configurations
// @Produce      json
// @Success      200 {object} StoredConfigurationResponse
// @Failure      404 {object} JsonErrorResponse
// @Failure      500 {object} JsonErrorResponse
// @Router       /configurations/{id} [get]
func GetConfiguration(c *gin.Context) {
	record, configuration, ok := getStoredConfiguration(c, "get_configuration")
	if !ok {
		return
	}

	c.JSON(http.StatusOK, StoredConfigurationResponse{
		ID:                    record.ID,
		CreatedAt:             record.CreatedAt,
		ConfigurationResponse: newConfigurationResponse(configuration),
	})
}

// @Summary      Delete a stored simulator configuration
// @Description  Removes one stored configuration by ID
// @Tags         stored-configurations
// @Produce      json
// @Success      200 {object} JsonResponse
// @Failure      404 {object} JsonErrorResponse
// @Failure      500 {object} JsonErrorResponse
// @Router       /configurations/{id} [delete]
func DeleteConfiguration(c *gin.Context) {
	id := c.Param("id")

	if err := db.DeleteConfiguration(id); err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			JSONError(c.Writer, "delete_configuration", "No stored configuration with ID `"+id+"`", http.StatusNotFound)
			return
		}
		JSONError(c.Writer, "delete_configuration", "Could not delete the stored configuration", 500)
		return
	}

	SimpleJSONResponse(c.Writer, "Successfully deleted configuration with ID `"+id+"`", 200)
}

// @Summary      Get a stored configuration as a property list
// @Description  Returns the persisted plist encoding of one stored configuration
// @Tags         stored-configurations
// @Produce      xml
// @Success      200
// @Failure      404 {object} JsonErrorResponse
// @Failure      500 {object} JsonErrorResponse
// @Router       /configurations/{id}/plist [get]
func GetConfigurationPlist(c *gin.Context) {
	_, configuration, ok := getStoredConfiguration(c, "get_configuration_plist")
	if !ok {
		return
	}

	data, err := configuration.EncodePlist()
	if err != nil {
		JSONError(c.Writer, "get_configuration_plist", "Could not encode the configuration - "+err.Error(), 500)
		return
	}
	c.Data(http.StatusOK, "application/x-plist", data)
}

// launchProfile is the TOML document handed to simulator launch tooling.
type launchProfile struct {
	Simulator launchProfileSimulator `toml:"simulator"`
	Provider  launchProfileProvider  `toml:"provider"`
}

type launchProfileSimulator struct {
	Device       string `toml:"device"`
	OS           string `toml:"os"`
	Architecture string `toml:"architecture"`
	AuxDirectory string `toml:"aux-directory,omitempty"`
}

type launchProfileProvider struct {
	Host string `toml:"host"`
	Port string `toml:"port"`
}

// @Summary      Get a stored configuration as a launch profile
// @Description  Returns a TOML launch profile for one stored configuration
// @Tags         stored-configurations
// @Produce      plain
// @Success      200
// @Failure      404 {object} JsonErrorResponse
// @Failure      500 {object} JsonErrorResponse
// @Router       /configurations/{id}/profile [get]
func GetConfigurationProfile(c *gin.Context) {
	_, configuration, ok := getStoredConfiguration(c, "get_configuration_profile")
	if !ok {
		return
	}

	auxDirectory, _ := configuration.AuxiliaryDirectory()
	profile := launchProfile{
		Simulator: launchProfileSimulator{
			Device:       configuration.DeviceName(),
			OS:           configuration.OSVersionString(),
			Architecture: configuration.Architecture(),
			AuxDirectory: auxDirectory,
		},
		Provider: launchProfileProvider{
			Host: config.Config.HostAddress,
			Port: config.Config.Port,
		},
	}

	data, err := toml.Marshal(profile)
	if err != nil {
		JSONError(c.Writer, "get_configuration_profile", "Could not marshal the launch profile - "+err.Error(), 500)
		return
	}
	c.Data(http.StatusOK, "application/toml", data)
}

// @Summary      Get provider logs
// @Description  Returns the last 1000 lines of the provider log file
// @Tags         provider-logs
// @Produce      plain
// @Success      200
// @Router       /logs [get]
func GetLogs(c *gin.Context) {
	logFilePath := fmt.Sprintf("%s/logs/provider.log", config.Config.ProviderFolder)

	output, err := sh.Command("tail", "-n", "1000", logFilePath).Output()
	if err != nil {
		log.WithFields(log.Fields{
			"event": "get_provider_logs",
		}).Warning("Attempted to get provider logs but no logs available.")

		fmt.Fprint(c.Writer, "No logs available.")
		return
	}

	fmt.Fprint(c.Writer, string(output))
}
