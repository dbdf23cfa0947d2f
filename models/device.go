package models

import "slices"

// DeviceFamily is the coarse classification of a device type - phone, tablet,
// TV or watch class. OS compatibility is decided on family level.
type DeviceFamily string

const (
	FamilyIPhone     DeviceFamily = "iPhone"
	FamilyIPad       DeviceFamily = "iPad"
	FamilyAppleTV    DeviceFamily = "Apple TV"
	FamilyAppleWatch DeviceFamily = "Apple Watch"
)

// DeviceType describes a simulated device model. A device type synthesized
// from a bare name carries only the name - empty family and architecture.
type DeviceType struct {
	Name         string       `json:"name" plist:"name"`
	Family       DeviceFamily `json:"family,omitempty" plist:"family,omitempty"`
	Architecture string       `json:"architecture,omitempty" plist:"architecture,omitempty"`
}

// OSVersion describes a simulator runtime version and the device families it
// can run on. An OS version synthesized from a bare name has no families.
type OSVersion struct {
	Name     string         `json:"name" plist:"name"`
	Families []DeviceFamily `json:"families,omitempty" plist:"families,omitempty"`
}

// SupportsFamily reports whether the OS version can run on devices of the
// given family.
func (o OSVersion) SupportsFamily(family DeviceFamily) bool {
	return slices.Contains(o.Families, family)
}
