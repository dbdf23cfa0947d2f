package simulator

import (
	"fmt"
	"sync"

	"github.com/shamanec/GADS-sim-provider/models"
)

// DefaultDeviceName is the fixed device type the default configuration
// starts from.
const DefaultDeviceName = "iPhone 6"

// DefaultProvider resolves and memoizes the default simulator configuration -
// the fixed default device paired with the newest OS version the catalog
// supports for it, no auxiliary directory. The value is computed once on
// first access and reused for the lifetime of the provider, concurrent
// accessors all get the same value.
type DefaultProvider struct {
	catalog DeviceCatalog
	once    sync.Once
	value   Configuration
}

// NewDefaultProvider creates a provider resolving the default configuration
// against the given catalog.
func NewDefaultProvider(catalog DeviceCatalog) *DefaultProvider {
	return &DefaultProvider{catalog: catalog}
}

// Configuration returns the memoized default configuration. It panics when
// the catalog has no supported OS version for the default device - a provider
// that cannot construct its default configuration must not keep running.
func (p *DefaultProvider) Configuration() Configuration {
	p.once.Do(func() {
		device, ok := p.catalog.LookupDevice(DefaultDeviceName)
		if !ok {
			device = genericDeviceType(DefaultDeviceName)
		}
		os, ok := p.catalog.NewestAvailableOS(device)
		if !ok {
			panic(fmt.Sprintf("No supported OS version in the catalog for the default device `%s`, cannot construct the default simulator configuration", DefaultDeviceName))
		}
		value, err := New(device, os, nil)
		if err != nil {
			panic("Could not construct the default simulator configuration - " + err.Error())
		}
		p.value = value
	})
	return p.value
}

// Catalog returns the catalog the provider resolves against.
func (p *DefaultProvider) Catalog() DeviceCatalog {
	return p.catalog
}

var defaults *DefaultProvider

// Setup installs the process-wide catalog and default configuration provider.
// Call it once at startup, before any of the package-level helpers.
func Setup(catalog DeviceCatalog) {
	defaults = NewDefaultProvider(catalog)
}

func provider() *DefaultProvider {
	if defaults == nil {
		panic("simulator.Setup was not called before using the default configuration")
	}
	return defaults
}

// Default returns the process-wide default configuration.
func Default() Configuration {
	return provider().Configuration()
}

// WithDevice derives from the default configuration.
func WithDevice(device models.DeviceType) (Configuration, error) {
	p := provider()
	return p.Configuration().WithDevice(p.catalog, device)
}

// WithDeviceNamed derives from the default configuration.
func WithDeviceNamed(name string) (Configuration, error) {
	p := provider()
	return p.Configuration().WithDeviceNamed(p.catalog, name)
}

// WithOS derives from the default configuration.
func WithOS(os models.OSVersion) (Configuration, error) {
	return provider().Configuration().WithOS(os)
}

// WithOSNamed derives from the default configuration.
func WithOSNamed(name string) (Configuration, error) {
	p := provider()
	return p.Configuration().WithOSNamed(p.catalog, name)
}

// WithAuxiliaryDirectory derives from the default configuration.
func WithAuxiliaryDirectory(path string) Configuration {
	return provider().Configuration().WithAuxiliaryDirectory(path)
}
