package catalog

import (
	"regexp"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/Masterminds/semver"
	"github.com/shamanec/GADS-sim-provider/models"
)

// Static is the in-memory device/OS catalog - the built-in tables, optionally
// merged with a user overlay file. All methods are safe for concurrent use
// while the overlay watcher reloads the tables.
type Static struct {
	mu          sync.RWMutex
	devices     map[string]models.DeviceType
	osVersions  map[string]models.OSVersion
	ordered     []models.OSVersion
	subscribers map[chan models.CatalogEvent]struct{}
}

// New creates a catalog with the built-in device and OS tables.
func New() *Static {
	catalog := &Static{
		subscribers: make(map[chan models.CatalogEvent]struct{}),
	}
	catalog.rebuild(nil)
	return catalog
}

// LookupDevice resolves a device type by its name.
func (c *Static) LookupDevice(name string) (models.DeviceType, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	device, ok := c.devices[name]
	return device, ok
}

// LookupOS resolves an OS version by its name.
func (c *Static) LookupOS(name string) (models.OSVersion, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	os, ok := c.osVersions[name]
	return os, ok
}

// SupportedOSVersions returns all OS versions that can run on the given
// device type, oldest first.
func (c *Static) SupportedOSVersions(device models.DeviceType) []models.OSVersion {
	c.mu.RLock()
	defer c.mu.RUnlock()

	supported := []models.OSVersion{}
	for _, os := range c.ordered {
		if os.SupportsFamily(device.Family) {
			supported = append(supported, os)
		}
	}
	return supported
}

// NewestAvailableOS returns the newest OS version that can run on the given
// device type.
func (c *Static) NewestAvailableOS(device models.DeviceType) (models.OSVersion, bool) {
	supported := c.SupportedOSVersions(device)
	if len(supported) == 0 {
		return models.OSVersion{}, false
	}
	return supported[len(supported)-1], true
}

// Devices returns all known device types sorted by name.
func (c *Static) Devices() []models.DeviceType {
	c.mu.RLock()
	defer c.mu.RUnlock()

	devices := make([]models.DeviceType, 0, len(c.devices))
	for _, device := range c.devices {
		devices = append(devices, device)
	}
	sort.Slice(devices, func(i, j int) bool {
		return devices[i].Name < devices[j].Name
	})
	return devices
}

// OSVersions returns all known OS versions, oldest first.
func (c *Static) OSVersions() []models.OSVersion {
	c.mu.RLock()
	defer c.mu.RUnlock()

	versions := make([]models.OSVersion, len(c.ordered))
	copy(versions, c.ordered)
	return versions
}

// rebuild recomputes the tables from the built-ins plus the given overlay and
// swaps them in atomically.
func (c *Static) rebuild(overlay *overlayData) {
	devices := make(map[string]models.DeviceType, len(builtinDeviceTypes))
	for _, device := range builtinDeviceTypes {
		devices[device.Name] = device
	}
	osVersions := make(map[string]models.OSVersion, len(builtinOSVersions))
	for _, os := range builtinOSVersions {
		osVersions[os.Name] = os
	}

	if overlay != nil {
		for _, device := range overlay.Devices {
			if device.Name != "" {
				devices[device.Name] = device
			}
		}
		for _, os := range overlay.OSVersions {
			if os.Name != "" {
				osVersions[os.Name] = os
			}
		}
	}

	ordered := make([]models.OSVersion, 0, len(osVersions))
	for _, os := range osVersions {
		ordered = append(ordered, os)
	}
	sortOSVersions(ordered)

	c.mu.Lock()
	c.devices = devices
	c.osVersions = osVersions
	c.ordered = ordered
	c.mu.Unlock()
}

// Subscribe registers a channel receiving an event after each successful
// catalog reload. Release it with Unsubscribe.
func (c *Static) Subscribe() chan models.CatalogEvent {
	events := make(chan models.CatalogEvent, 8)

	c.mu.Lock()
	c.subscribers[events] = struct{}{}
	c.mu.Unlock()

	return events
}

// Unsubscribe removes a channel registered with Subscribe.
func (c *Static) Unsubscribe(events chan models.CatalogEvent) {
	c.mu.Lock()
	delete(c.subscribers, events)
	c.mu.Unlock()
}

func (c *Static) notify() {
	c.mu.RLock()
	event := models.CatalogEvent{
		Type:       "catalog_reloaded",
		Devices:    len(c.devices),
		OSVersions: len(c.osVersions),
		Timestamp:  time.Now().UnixMilli(),
	}
	subscribers := make([]chan models.CatalogEvent, 0, len(c.subscribers))
	for events := range c.subscribers {
		subscribers = append(subscribers, events)
	}
	c.mu.RUnlock()

	for _, events := range subscribers {
		select {
		case events <- event:
		default:
			// Skip subscribers that stopped draining their channel
		}
	}
}

var osVersionNumberPattern = regexp.MustCompile(`[0-9][0-9.]*$`)

// versionOf extracts the comparable version from an OS name, e.g. `iOS 9.3`
// yields 9.3.0. Names without a parsable numeric tail report false.
func versionOf(name string) (*semver.Version, bool) {
	tail := osVersionNumberPattern.FindString(name)
	if tail == "" {
		return nil, false
	}
	version, err := semver.NewVersion(strings.TrimSuffix(tail, "."))
	if err != nil {
		return nil, false
	}
	return version, true
}

// sortOSVersions orders OS versions oldest first by their numeric version,
// falling back to the name. Unparsable names sort before everything else.
func sortOSVersions(versions []models.OSVersion) {
	sort.SliceStable(versions, func(i, j int) bool {
		left, leftOK := versionOf(versions[i].Name)
		right, rightOK := versionOf(versions[j].Name)
		if leftOK && rightOK {
			if left.Equal(right) {
				return versions[i].Name < versions[j].Name
			}
			return left.LessThan(right)
		}
		if leftOK != rightOK {
			return !leftOK
		}
		return versions[i].Name < versions[j].Name
	})
}
