package simulator

import (
	"sync/atomic"
	"testing"

	"github.com/shamanec/GADS-sim-provider/models"
)

// fakeCatalog is an in-memory DeviceCatalog for tests. Supported OS versions
// are keyed by device name, oldest first.
type fakeCatalog struct {
	devices     map[string]models.DeviceType
	osVersions  map[string]models.OSVersion
	supported   map[string][]models.OSVersion
	newestCalls int64
}

func (f *fakeCatalog) LookupDevice(name string) (models.DeviceType, bool) {
	device, ok := f.devices[name]
	return device, ok
}

func (f *fakeCatalog) LookupOS(name string) (models.OSVersion, bool) {
	os, ok := f.osVersions[name]
	return os, ok
}

func (f *fakeCatalog) NewestAvailableOS(device models.DeviceType) (models.OSVersion, bool) {
	atomic.AddInt64(&f.newestCalls, 1)
	supported := f.supported[device.Name]
	if len(supported) == 0 {
		return models.OSVersion{}, false
	}
	return supported[len(supported)-1], true
}

func (f *fakeCatalog) SupportedOSVersions(device models.DeviceType) []models.OSVersion {
	return f.supported[device.Name]
}

var (
	phoneAndPadFamilies = []models.DeviceFamily{models.FamilyIPhone, models.FamilyIPad}

	testIPhone6 = models.DeviceType{Name: "iPhone 6", Family: models.FamilyIPhone, Architecture: "x86_64"}
	testIPadAir = models.DeviceType{Name: "iPad Air", Family: models.FamilyIPad, Architecture: "x86_64"}
	testAppleTV = models.DeviceType{Name: "Apple TV 1080p", Family: models.FamilyAppleTV, Architecture: "x86_64"}

	testIOS90  = models.OSVersion{Name: "iOS 9.0", Families: phoneAndPadFamilies}
	testIOS93  = models.OSVersion{Name: "iOS 9.3", Families: phoneAndPadFamilies}
	testTVOS92 = models.OSVersion{Name: "tvOS 9.2", Families: []models.DeviceFamily{models.FamilyAppleTV}}
)

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{
		devices: map[string]models.DeviceType{
			testIPhone6.Name: testIPhone6,
			testIPadAir.Name: testIPadAir,
			testAppleTV.Name: testAppleTV,
		},
		osVersions: map[string]models.OSVersion{
			testIOS90.Name:  testIOS90,
			testIOS93.Name:  testIOS93,
			testTVOS92.Name: testTVOS92,
		},
		supported: map[string][]models.OSVersion{
			testIPhone6.Name: {testIOS90, testIOS93},
			testIPadAir.Name: {testIOS90, testIOS93},
			testAppleTV.Name: {testTVOS92},
		},
	}
}

func mustNew(t *testing.T, device models.DeviceType, os models.OSVersion, auxiliaryDirectory *string) Configuration {
	t.Helper()
	configuration, err := New(device, os, auxiliaryDirectory)
	if err != nil {
		t.Fatalf("could not create configuration: %v", err)
	}
	return configuration
}

func strPtr(value string) *string {
	return &value
}
