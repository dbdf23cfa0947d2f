package models

// ConfigurationRecord is the stored form of a simulator configuration. It
// carries the full device and OS descriptors so reading it back does not
// depend on the current catalog contents.
type ConfigurationRecord struct {
	ID                 string     `json:"id"`
	Device             DeviceType `json:"device"`
	OS                 OSVersion  `json:"os"`
	AuxiliaryDirectory *string    `json:"auxiliaryDirectory"`
	CreatedAt          int64      `json:"created_at"`
}

// CatalogEvent is pushed to catalog subscribers after each successful reload
// of the device/OS catalog.
type CatalogEvent struct {
	Type       string `json:"type"`
	Devices    int    `json:"devices"`
	OSVersions int    `json:"os_versions"`
	Timestamp  int64  `json:"timestamp"`
}
