package simulator

import (
	"fmt"
	"hash/fnv"

	"github.com/shamanec/GADS-sim-provider/models"
)

// Configuration describes a simulator session - the device type to simulate,
// the OS version to run on it and an optional auxiliary working directory.
// Values are immutable, every With derivation returns a new Configuration and
// leaves the source untouched.
type Configuration struct {
	device             models.DeviceType
	os                 models.OSVersion
	auxiliaryDirectory *string
}

// New creates a Configuration from a device type and an OS version. Both must
// carry a name. Compatibility between them is not checked here - the With
// derivations own the compatibility fallbacks.
func New(device models.DeviceType, os models.OSVersion, auxiliaryDirectory *string) (Configuration, error) {
	if device.Name == "" {
		return Configuration{}, fmt.Errorf("%w: a configuration requires a device type", ErrInvalidArgument)
	}
	if os.Name == "" {
		return Configuration{}, fmt.Errorf("%w: a configuration requires an OS version", ErrInvalidArgument)
	}
	return Configuration{
		device:             device,
		os:                 os,
		auxiliaryDirectory: copyStringPtr(auxiliaryDirectory),
	}, nil
}

func copyStringPtr(value *string) *string {
	if value == nil {
		return nil
	}
	copied := *value
	return &copied
}

// Device returns the configured device type descriptor.
func (c Configuration) Device() models.DeviceType {
	return c.device
}

// OS returns the configured OS version descriptor.
func (c Configuration) OS() models.OSVersion {
	return c.os
}

// DeviceName returns the device type name, e.g. `iPhone 6`.
func (c Configuration) DeviceName() string {
	return c.device.Name
}

// OSVersionString returns the OS version name, e.g. `iOS 9.3`.
func (c Configuration) OSVersionString() string {
	return c.os.Name
}

// Architecture returns the simulator architecture of the device type. Empty
// for generic device types synthesized from unknown names.
func (c Configuration) Architecture() string {
	return c.device.Architecture
}

// AuxiliaryDirectory returns the auxiliary working directory and whether one
// is set.
func (c Configuration) AuxiliaryDirectory() (string, bool) {
	if c.auxiliaryDirectory == nil {
		return "", false
	}
	return *c.auxiliaryDirectory, true
}

// Copy returns a duplicate of the configuration that shares no mutable state
// with the source.
func (c Configuration) Copy() Configuration {
	c.auxiliaryDirectory = copyStringPtr(c.auxiliaryDirectory)
	return c
}

// Equal reports structural equality - device name, OS version string and
// auxiliary directory. Descriptor metadata like family or architecture plays
// no part.
func (c Configuration) Equal(other Configuration) bool {
	if c.device.Name != other.device.Name {
		return false
	}
	if c.os.Name != other.os.Name {
		return false
	}
	if (c.auxiliaryDirectory == nil) != (other.auxiliaryDirectory == nil) {
		return false
	}
	if c.auxiliaryDirectory != nil && *c.auxiliaryDirectory != *other.auxiliaryDirectory {
		return false
	}
	return true
}

// Hash returns a structural hash consistent with Equal.
func (c Configuration) Hash() uint64 {
	h := fnv.New64a()
	h.Write([]byte(c.device.Name))
	h.Write([]byte{0})
	h.Write([]byte(c.os.Name))
	h.Write([]byte{0})
	if c.auxiliaryDirectory != nil {
		h.Write([]byte{1})
		h.Write([]byte(*c.auxiliaryDirectory))
	}
	return h.Sum64()
}

// String returns the human-readable description of the configuration.
func (c Configuration) String() string {
	auxiliaryDirectory := "none"
	if c.auxiliaryDirectory != nil {
		auxiliaryDirectory = *c.auxiliaryDirectory
	}
	return fmt.Sprintf("Device '%s' | OS '%s' | Aux Directory '%s' | Architecture '%s'",
		c.device.Name,
		c.os.Name,
		auxiliaryDirectory,
		c.device.Architecture)
}
