package router

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/shamanec/GADS-sim-provider/catalog"
	"github.com/shamanec/GADS-sim-provider/config"
	"github.com/shamanec/GADS-sim-provider/models"
	"github.com/shamanec/GADS-sim-provider/simulator"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	cat := catalog.New()
	simulator.Setup(cat)
	return HandleRequests(cat)
}

func doRequest(t *testing.T, handler *gin.Engine, method, target string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	request := httptest.NewRequest(method, target, reader)
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	return recorder
}

// configurationBody mirrors ConfigurationResponse for assertions.
type configurationBody struct {
	Configuration struct {
		Device             models.DeviceType `json:"device"`
		OS                 models.OSVersion  `json:"os"`
		AuxiliaryDirectory *string           `json:"auxiliaryDirectory"`
	} `json:"configuration"`
	Serializable map[string]interface{} `json:"serializable"`
	Description  string                 `json:"description"`
}

func decodeConfigurationBody(t *testing.T, recorder *httptest.ResponseRecorder) configurationBody {
	t.Helper()
	var body configurationBody
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("could not decode the response body: %v\n%s", err, recorder.Body.String())
	}
	return body
}

func TestGetDefaultConfigurationRoute(t *testing.T) {
	handler := newTestRouter()

	recorder := doRequest(t, handler, http.MethodGet, "/configuration/default", nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, body: %s", recorder.Code, recorder.Body.String())
	}

	body := decodeConfigurationBody(t, recorder)
	if body.Serializable["device"] != "iPhone 6" {
		t.Fatalf("device = %v, want `iPhone 6`", body.Serializable["device"])
	}
	if body.Serializable["os"] != "iOS 9.3" {
		t.Fatalf("os = %v, want the newest built-in `iOS 9.3`", body.Serializable["os"])
	}
	if body.Serializable["aux_directory"] != nil {
		t.Fatalf("aux_directory = %v, want nil", body.Serializable["aux_directory"])
	}
	if body.Serializable["architecture"] != "x86_64" {
		t.Fatalf("architecture = %v, want `x86_64`", body.Serializable["architecture"])
	}
	if !strings.Contains(body.Description, "Device 'iPhone 6'") {
		t.Fatalf("description = %q", body.Description)
	}
}

func TestDeriveConfigurationRoute(t *testing.T) {
	handler := newTestRouter()

	request := []byte(`{"os": "iOS 9.0", "aux_directory": "/tmp/aux"}`)
	recorder := doRequest(t, handler, http.MethodPost, "/configuration/derive", request)
	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, body: %s", recorder.Code, recorder.Body.String())
	}

	body := decodeConfigurationBody(t, recorder)
	if body.Configuration.Device.Name != "iPhone 6" {
		t.Fatalf("device = %q, want the default `iPhone 6`", body.Configuration.Device.Name)
	}
	if body.Configuration.OS.Name != "iOS 9.0" {
		t.Fatalf("os = %q, want `iOS 9.0`", body.Configuration.OS.Name)
	}
	if body.Configuration.AuxiliaryDirectory == nil || *body.Configuration.AuxiliaryDirectory != "/tmp/aux" {
		t.Fatalf("auxiliaryDirectory = %v, want `/tmp/aux`", body.Configuration.AuxiliaryDirectory)
	}
	if body.Serializable["aux_directory"] != "/tmp/aux" {
		t.Fatalf("serializable aux_directory = %v, want `/tmp/aux`", body.Serializable["aux_directory"])
	}
}

func TestDeriveConfigurationSwitchesOSWithDevice(t *testing.T) {
	handler := newTestRouter()

	request := []byte(`{"device": "Apple TV 1080p"}`)
	recorder := doRequest(t, handler, http.MethodPost, "/configuration/derive", request)
	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, body: %s", recorder.Code, recorder.Body.String())
	}

	body := decodeConfigurationBody(t, recorder)
	if body.Configuration.Device.Name != "Apple TV 1080p" {
		t.Fatalf("device = %q", body.Configuration.Device.Name)
	}
	if body.Configuration.OS.Name != "tvOS 9.2" {
		t.Fatalf("os = %q, want the newest supported `tvOS 9.2`", body.Configuration.OS.Name)
	}
}

func TestDeriveConfigurationFromBase(t *testing.T) {
	handler := newTestRouter()

	base, err := simulator.New(
		models.DeviceType{Name: "iPad Air", Family: models.FamilyIPad, Architecture: "x86_64"},
		models.OSVersion{Name: "iOS 9.0", Families: []models.DeviceFamily{models.FamilyIPhone, models.FamilyIPad}},
		nil,
	)
	if err != nil {
		t.Fatalf("could not build the base configuration: %v", err)
	}
	baseJSON, err := json.Marshal(base)
	if err != nil {
		t.Fatalf("could not marshal the base configuration: %v", err)
	}

	request := []byte(`{"base": ` + string(baseJSON) + `, "aux_directory": "/tmp/aux"}`)
	recorder := doRequest(t, handler, http.MethodPost, "/configuration/derive", request)
	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, body: %s", recorder.Code, recorder.Body.String())
	}

	body := decodeConfigurationBody(t, recorder)
	if body.Configuration.Device.Name != "iPad Air" {
		t.Fatalf("device = %q, want the base `iPad Air`", body.Configuration.Device.Name)
	}
	if body.Configuration.OS.Name != "iOS 9.0" {
		t.Fatalf("os = %q, want the base `iOS 9.0`", body.Configuration.OS.Name)
	}
	if body.Serializable["aux_directory"] != "/tmp/aux" {
		t.Fatalf("serializable aux_directory = %v, want `/tmp/aux`", body.Serializable["aux_directory"])
	}
}

func TestDeriveConfigurationRejectsInvalidBase(t *testing.T) {
	handler := newTestRouter()

	tests := []struct {
		name string
		body string
	}{
		{name: "base without device", body: `{"base": {"os": {"name": "iOS 9.3"}}}`},
		{name: "base without os", body: `{"base": {"device": {"name": "iPhone 6"}}}`},
		{name: "malformed body", body: `{not json`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := doRequest(t, handler, http.MethodPost, "/configuration/derive", []byte(tt.body))
			if recorder.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400, body: %s", recorder.Code, recorder.Body.String())
			}
		})
	}
}

func TestCatalogRoutes(t *testing.T) {
	handler := newTestRouter()

	t.Run("devices", func(t *testing.T) {
		recorder := doRequest(t, handler, http.MethodGet, "/catalog/devices", nil)
		if recorder.Code != http.StatusOK {
			t.Fatalf("status = %d", recorder.Code)
		}
		var devices []models.DeviceType
		if err := json.Unmarshal(recorder.Body.Bytes(), &devices); err != nil {
			t.Fatalf("could not decode the device list: %v", err)
		}
		found := false
		for _, device := range devices {
			if device.Name == "iPhone 6" {
				found = true
			}
		}
		if !found {
			t.Fatal("`iPhone 6` is missing from the catalog devices")
		}
	})

	t.Run("os versions ordered oldest first", func(t *testing.T) {
		recorder := doRequest(t, handler, http.MethodGet, "/catalog/os-versions", nil)
		if recorder.Code != http.StatusOK {
			t.Fatalf("status = %d", recorder.Code)
		}
		var versions []models.OSVersion
		if err := json.Unmarshal(recorder.Body.Bytes(), &versions); err != nil {
			t.Fatalf("could not decode the OS version list: %v", err)
		}
		positions := map[string]int{}
		for i, version := range versions {
			positions[version.Name] = i
		}
		if _, ok := positions["iOS 7.1"]; !ok {
			t.Fatalf("`iOS 7.1` is missing from the OS versions: %+v", versions)
		}
		if positions["iOS 7.1"] > positions["iOS 9.3"] {
			t.Fatalf("`iOS 7.1` must come before `iOS 9.3`: %+v", versions)
		}
		if positions["watchOS 2.0"] > positions["iOS 7.1"] {
			t.Fatalf("`watchOS 2.0` must come before `iOS 7.1`: %+v", versions)
		}
	})

	t.Run("supported os versions for a device", func(t *testing.T) {
		recorder := doRequest(t, handler, http.MethodGet, "/catalog/devices/iPhone%206/os-versions", nil)
		if recorder.Code != http.StatusOK {
			t.Fatalf("status = %d", recorder.Code)
		}
		var response struct {
			Device     string             `json:"device"`
			OSVersions []models.OSVersion `json:"os_versions"`
		}
		if err := json.Unmarshal(recorder.Body.Bytes(), &response); err != nil {
			t.Fatalf("could not decode the response: %v", err)
		}
		if response.Device != "iPhone 6" {
			t.Fatalf("device = %q", response.Device)
		}
		if len(response.OSVersions) == 0 || response.OSVersions[len(response.OSVersions)-1].Name != "iOS 9.3" {
			t.Fatalf("unexpected supported versions: %+v", response.OSVersions)
		}
	})

	t.Run("unknown device degrades to an empty list", func(t *testing.T) {
		recorder := doRequest(t, handler, http.MethodGet, "/catalog/devices/FuturePhone/os-versions", nil)
		if recorder.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200 for unknown names", recorder.Code)
		}
		var response struct {
			OSVersions []models.OSVersion `json:"os_versions"`
		}
		if err := json.Unmarshal(recorder.Body.Bytes(), &response); err != nil {
			t.Fatalf("could not decode the response: %v", err)
		}
		if len(response.OSVersions) != 0 {
			t.Fatalf("unknown device must support nothing, got %+v", response.OSVersions)
		}
	})

	t.Run("newest os", func(t *testing.T) {
		recorder := doRequest(t, handler, http.MethodGet, "/catalog/devices/iPhone%206/newest-os", nil)
		if recorder.Code != http.StatusOK {
			t.Fatalf("status = %d", recorder.Code)
		}
		var newest models.OSVersion
		if err := json.Unmarshal(recorder.Body.Bytes(), &newest); err != nil {
			t.Fatalf("could not decode the response: %v", err)
		}
		if newest.Name != "iOS 9.3" {
			t.Fatalf("newest OS = %q, want `iOS 9.3`", newest.Name)
		}
	})

	t.Run("newest os for an unknown device is a 404", func(t *testing.T) {
		recorder := doRequest(t, handler, http.MethodGet, "/catalog/devices/FuturePhone/newest-os", nil)
		if recorder.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", recorder.Code)
		}
	})
}

func TestGetLogsRoute(t *testing.T) {
	handler := newTestRouter()

	previousFolder := config.Config.ProviderFolder
	t.Cleanup(func() { config.Config.ProviderFolder = previousFolder })

	t.Run("no log file", func(t *testing.T) {
		config.Config.ProviderFolder = t.TempDir()

		recorder := doRequest(t, handler, http.MethodGet, "/logs", nil)
		if recorder.Code != http.StatusOK {
			t.Fatalf("status = %d", recorder.Code)
		}
		if recorder.Body.String() != "No logs available." {
			t.Fatalf("body = %q", recorder.Body.String())
		}
	})

	t.Run("tails the provider log", func(t *testing.T) {
		folder := t.TempDir()
		config.Config.ProviderFolder = folder
		if err := os.MkdirAll(filepath.Join(folder, "logs"), 0755); err != nil {
			t.Fatalf("could not create the logs folder: %v", err)
		}
		logLine := `{"event":"provider_setup","msg":"test line"}` + "\n"
		if err := os.WriteFile(filepath.Join(folder, "logs", "provider.log"), []byte(logLine), 0644); err != nil {
			t.Fatalf("could not write the log file: %v", err)
		}

		recorder := doRequest(t, handler, http.MethodGet, "/logs", nil)
		if recorder.Code != http.StatusOK {
			t.Fatalf("status = %d", recorder.Code)
		}
		if !strings.Contains(recorder.Body.String(), "test line") {
			t.Fatalf("body = %q", recorder.Body.String())
		}
	})
}

func TestCatalogEventsWebsocket(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cat := catalog.New()
	simulator.Setup(cat)

	server := httptest.NewServer(HandleRequests(cat))
	defer server.Close()

	overlay := `{"devices-catalog": [{"name": "iPhone 7", "family": "iPhone", "architecture": "x86_64"}]}`
	path := filepath.Join(t.TempDir(), "catalog.json")
	if err := os.WriteFile(path, []byte(overlay), 0644); err != nil {
		t.Fatalf("could not write the overlay file: %v", err)
	}

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/catalog-events"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("could not connect to the catalog events websocket: %v", err)
	}
	defer conn.Close()

	// The subscription is registered by the handler after the upgrade, so
	// keep reloading until the event comes through.
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				_ = cat.LoadOverlay(path)
			}
		}
	}()

	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	var event models.CatalogEvent
	if err := conn.ReadJSON(&event); err != nil {
		t.Fatalf("no catalog event within 5s: %v", err)
	}
	if event.Type != "catalog_reloaded" {
		t.Fatalf("event type = %q", event.Type)
	}
	if event.Devices == 0 || event.OSVersions == 0 {
		t.Fatalf("event carries no catalog counts: %+v", event)
	}
}
