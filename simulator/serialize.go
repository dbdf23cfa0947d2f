package simulator

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shamanec/GADS-sim-provider/models"
	"howett.net/plist"
)

// Keys of the serializable representation returned by Serializable.
const (
	serializableKeyDevice       = "device"
	serializableKeyOS           = "os"
	serializableKeyAuxDirectory = "aux_directory"
	serializableKeyArchitecture = "architecture"
)

// Serializable returns the reporting projection of the configuration - device
// name, OS version string, auxiliary directory and architecture. The
// aux_directory key is always present and explicitly nil when no directory is
// set. This projection is output only, reconstructing a Configuration goes
// through the persisted encodings instead.
func (c Configuration) Serializable() map[string]interface{} {
	var auxiliaryDirectory interface{}
	if c.auxiliaryDirectory != nil {
		auxiliaryDirectory = *c.auxiliaryDirectory
	}
	return map[string]interface{}{
		serializableKeyDevice:       c.device.Name,
		serializableKeyOS:           c.os.Name,
		serializableKeyAuxDirectory: auxiliaryDirectory,
		serializableKeyArchitecture: c.device.Architecture,
	}
}

// persistedConfiguration is the storable form of a Configuration. It keeps
// the full device and OS descriptors so decoding does not depend on the
// catalog contents at read time.
type persistedConfiguration struct {
	Device             models.DeviceType `json:"device" plist:"device"`
	OS                 models.OSVersion  `json:"os" plist:"os"`
	AuxiliaryDirectory *string           `json:"auxiliaryDirectory" plist:"auxiliaryDirectory,omitempty"`
}

func (c Configuration) persisted() persistedConfiguration {
	return persistedConfiguration{
		Device:             c.device,
		OS:                 c.os,
		AuxiliaryDirectory: c.auxiliaryDirectory,
	}
}

// MarshalJSON encodes the persisted form of the configuration.
func (c Configuration) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.persisted())
}

// UnmarshalJSON decodes a persisted configuration, applying the same
// validation as New.
func (c *Configuration) UnmarshalJSON(data []byte) error {
	var persisted persistedConfiguration
	if err := json.Unmarshal(data, &persisted); err != nil {
		return err
	}
	decoded, err := New(persisted.Device, persisted.OS, persisted.AuxiliaryDirectory)
	if err != nil {
		return err
	}
	*c = decoded
	return nil
}

// EncodePlist renders the persisted form of the configuration as an XML
// property list.
func (c Configuration) EncodePlist() ([]byte, error) {
	return plist.MarshalIndent(c.persisted(), plist.XMLFormat, "\t")
}

// DecodePlist reconstructs a configuration from its property list form,
// applying the same validation as New.
func DecodePlist(data []byte) (Configuration, error) {
	var persisted persistedConfiguration
	if _, err := plist.Unmarshal(data, &persisted); err != nil {
		return Configuration{}, err
	}
	return New(persisted.Device, persisted.OS, persisted.AuxiliaryDirectory)
}

// Record converts the configuration into a storable record under the given
// ID, stamped with the current time.
func (c Configuration) Record(id string) models.ConfigurationRecord {
	return models.ConfigurationRecord{
		ID:                 id,
		Device:             c.device,
		OS:                 c.os,
		AuxiliaryDirectory: copyStringPtr(c.auxiliaryDirectory),
		CreatedAt:          time.Now().UnixMilli(),
	}
}

// FromRecord rebuilds a configuration from a stored record, applying the same
// validation as New.
func FromRecord(record models.ConfigurationRecord) (Configuration, error) {
	configuration, err := New(record.Device, record.OS, record.AuxiliaryDirectory)
	if err != nil {
		return Configuration{}, fmt.Errorf("stored configuration `%s` is not valid - %w", record.ID, err)
	}
	return configuration, nil
}
