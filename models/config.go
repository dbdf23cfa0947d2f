package models

// ProviderConfig is the provider configuration read from the config file.
// Empty fields fall back to the built-in defaults.
type ProviderConfig struct {
	HostAddress    string `json:"host_address"`
	Port           string `json:"port"`
	RethinkDB      string `json:"rethink_db"`
	ProviderFolder string `json:"provider_folder"`
	CatalogFile    string `json:"catalog_file,omitempty"`
	LogLevel       string `json:"log_level,omitempty"`
}
