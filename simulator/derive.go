package simulator

import (
	"fmt"

	"github.com/shamanec/GADS-sim-provider/models"
)

// WithDevice returns a configuration simulating the given device type. The OS
// version is re-resolved in order: keep the current OS when it can run on the
// new device, otherwise switch to the newest OS the catalog supports for it,
// otherwise keep the current OS even though the pairing is unvalidated.
func (c Configuration) WithDevice(catalog DeviceCatalog, device models.DeviceType) (Configuration, error) {
	if device.Name == "" {
		return Configuration{}, fmt.Errorf("%w: withDevice requires a device type", ErrInvalidArgument)
	}
	os := c.os
	if !IsCompatible(device, os) {
		if newest, ok := catalog.NewestAvailableOS(device); ok {
			os = newest
		}
	}
	return Configuration{
		device:             device,
		os:                 os,
		auxiliaryDirectory: copyStringPtr(c.auxiliaryDirectory),
	}, nil
}

// WithDeviceNamed resolves the name through the catalog, synthesizing a
// generic device type when the name is unknown, and applies WithDevice. Only
// an empty name is an error.
func (c Configuration) WithDeviceNamed(catalog DeviceCatalog, name string) (Configuration, error) {
	device, ok := catalog.LookupDevice(name)
	if !ok {
		device = genericDeviceType(name)
	}
	return c.WithDevice(catalog, device)
}

// WithOS returns a configuration running the given OS version on the current
// device type. The OS is taken verbatim - an explicit OS choice is never
// corrected against the device family.
func (c Configuration) WithOS(os models.OSVersion) (Configuration, error) {
	if os.Name == "" {
		return Configuration{}, fmt.Errorf("%w: withOS requires an OS version", ErrInvalidArgument)
	}
	return Configuration{
		device:             c.device,
		os:                 os,
		auxiliaryDirectory: copyStringPtr(c.auxiliaryDirectory),
	}, nil
}

// WithOSNamed resolves the name through the catalog, synthesizing a generic
// OS version when the name is unknown, and applies WithOS. Only an empty name
// is an error.
func (c Configuration) WithOSNamed(catalog DeviceCatalog, name string) (Configuration, error) {
	os, ok := catalog.LookupOS(name)
	if !ok {
		os = genericOSVersion(name)
	}
	return c.WithOS(os)
}

// WithAuxiliaryDirectory returns a configuration using the given auxiliary
// working directory, replacing whatever the source had. An empty path clears
// the directory. Device and OS are untouched.
func (c Configuration) WithAuxiliaryDirectory(path string) Configuration {
	var auxiliaryDirectory *string
	if path != "" {
		auxiliaryDirectory = &path
	}
	return Configuration{
		device:             c.device,
		os:                 c.os,
		auxiliaryDirectory: auxiliaryDirectory,
	}
}
