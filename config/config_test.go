package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "provider.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("could not write the config file: %v", err)
	}
	return path
}

func TestGetConfigJsonData(t *testing.T) {
	path := writeConfigFile(t, `{
		"host_address": "10.10.10.10",
		"port": "10002",
		"rethink_db": "localhost:32770",
		"provider_folder": "/opt/sim-provider",
		"catalog_file": "./configs/catalog.json",
		"log_level": "debug"
	}`)

	config, err := getConfigJsonData(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if config.HostAddress != "10.10.10.10" {
		t.Fatalf("host address = %q", config.HostAddress)
	}
	if config.Port != "10002" {
		t.Fatalf("port = %q", config.Port)
	}
	if config.RethinkDB != "localhost:32770" {
		t.Fatalf("rethink db = %q", config.RethinkDB)
	}
	if config.ProviderFolder != "/opt/sim-provider" {
		t.Fatalf("provider folder = %q", config.ProviderFolder)
	}
	if config.CatalogFile != "./configs/catalog.json" {
		t.Fatalf("catalog file = %q", config.CatalogFile)
	}
	if config.LogLevel != "debug" {
		t.Fatalf("log level = %q", config.LogLevel)
	}
}

func TestGetConfigJsonDataDefaults(t *testing.T) {
	path := writeConfigFile(t, `{}`)

	config, err := getConfigJsonData(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if config.HostAddress != "localhost" {
		t.Fatalf("host address = %q, want the default `localhost`", config.HostAddress)
	}
	if config.Port != "10001" {
		t.Fatalf("port = %q, want the default `10001`", config.Port)
	}
	if config.RethinkDB != "localhost:28015" {
		t.Fatalf("rethink db = %q, want the default `localhost:28015`", config.RethinkDB)
	}
	if config.ProviderFolder != "." {
		t.Fatalf("provider folder = %q, want the default `.`", config.ProviderFolder)
	}
	if config.LogLevel != "info" {
		t.Fatalf("log level = %q, want the default `info`", config.LogLevel)
	}
	if config.CatalogFile != "" {
		t.Fatalf("catalog file = %q, want no default", config.CatalogFile)
	}
}

func TestGetConfigJsonDataErrors(t *testing.T) {
	if _, err := getConfigJsonData(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected an error for a missing config file")
	}

	path := writeConfigFile(t, "{not json")
	if _, err := getConfigJsonData(path); err == nil {
		t.Fatal("expected an error for a malformed config file")
	}
}

func TestSetupConfigPanicsOnUnreadableFile(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic when the config file cannot be read")
		}
	}()
	SetupConfig(filepath.Join(t.TempDir(), "missing.json"))
}
