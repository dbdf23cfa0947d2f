package simulator

import "github.com/shamanec/GADS-sim-provider/models"

// DeviceCatalog is the read-only source of known device types and OS
// versions the configuration derivations resolve against.
type DeviceCatalog interface {
	// LookupDevice resolves a device type by its name.
	LookupDevice(name string) (models.DeviceType, bool)
	// LookupOS resolves an OS version by its name.
	LookupOS(name string) (models.OSVersion, bool)
	// NewestAvailableOS returns the newest OS version that can run on the
	// given device type.
	NewestAvailableOS(device models.DeviceType) (models.OSVersion, bool)
	// SupportedOSVersions returns all OS versions that can run on the given
	// device type, oldest first.
	SupportedOSVersions(device models.DeviceType) []models.OSVersion
}

// IsCompatible reports whether the OS version can run on the device type.
// This single rule drives every derivation fallback.
func IsCompatible(device models.DeviceType, os models.OSVersion) bool {
	return os.SupportsFamily(device.Family)
}

// genericDeviceType builds a placeholder descriptor for a device name the
// catalog does not know, so unknown names degrade instead of failing.
func genericDeviceType(name string) models.DeviceType {
	return models.DeviceType{Name: name}
}

// genericOSVersion builds a placeholder descriptor for an OS version name the
// catalog does not know.
func genericOSVersion(name string) models.OSVersion {
	return models.OSVersion{Name: name}
}
