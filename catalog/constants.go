package catalog

import "github.com/shamanec/GADS-sim-provider/models"

// Built-in device type table. Overlay files can add to or replace these
// entries by name.
var builtinDeviceTypes = []models.DeviceType{
	// 32-bit iPhones
	{Name: "iPhone 4s", Family: models.FamilyIPhone, Architecture: "i386"},
	{Name: "iPhone 5", Family: models.FamilyIPhone, Architecture: "i386"},
	{Name: "iPhone 5c", Family: models.FamilyIPhone, Architecture: "i386"},
	// 64-bit iPhones
	{Name: "iPhone 5s", Family: models.FamilyIPhone, Architecture: "x86_64"},
	{Name: "iPhone 6", Family: models.FamilyIPhone, Architecture: "x86_64"},
	{Name: "iPhone 6 Plus", Family: models.FamilyIPhone, Architecture: "x86_64"},
	{Name: "iPhone 6s", Family: models.FamilyIPhone, Architecture: "x86_64"},
	{Name: "iPhone 6s Plus", Family: models.FamilyIPhone, Architecture: "x86_64"},
	// iPads
	{Name: "iPad 2", Family: models.FamilyIPad, Architecture: "i386"},
	{Name: "iPad Retina", Family: models.FamilyIPad, Architecture: "i386"},
	{Name: "iPad Air", Family: models.FamilyIPad, Architecture: "x86_64"},
	{Name: "iPad Air 2", Family: models.FamilyIPad, Architecture: "x86_64"},
	{Name: "iPad Pro", Family: models.FamilyIPad, Architecture: "x86_64"},
	// TVs
	{Name: "Apple TV 1080p", Family: models.FamilyAppleTV, Architecture: "x86_64"},
	// Watches
	{Name: "Apple Watch 38mm", Family: models.FamilyAppleWatch, Architecture: "i386"},
	{Name: "Apple Watch 42mm", Family: models.FamilyAppleWatch, Architecture: "i386"},
}

var phoneAndPad = []models.DeviceFamily{models.FamilyIPhone, models.FamilyIPad}
var tvOnly = []models.DeviceFamily{models.FamilyAppleTV}
var watchOnly = []models.DeviceFamily{models.FamilyAppleWatch}

// Built-in OS version table.
var builtinOSVersions = []models.OSVersion{
	{Name: "iOS 7.1", Families: phoneAndPad},
	{Name: "iOS 8.0", Families: phoneAndPad},
	{Name: "iOS 8.1", Families: phoneAndPad},
	{Name: "iOS 8.2", Families: phoneAndPad},
	{Name: "iOS 8.3", Families: phoneAndPad},
	{Name: "iOS 8.4", Families: phoneAndPad},
	{Name: "iOS 9.0", Families: phoneAndPad},
	{Name: "iOS 9.1", Families: phoneAndPad},
	{Name: "iOS 9.2", Families: phoneAndPad},
	{Name: "iOS 9.3", Families: phoneAndPad},
	{Name: "tvOS 9.0", Families: tvOnly},
	{Name: "tvOS 9.1", Families: tvOnly},
	{Name: "tvOS 9.2", Families: tvOnly},
	{Name: "watchOS 2.0", Families: watchOnly},
	{Name: "watchOS 2.1", Families: watchOnly},
	{Name: "watchOS 2.2", Families: watchOnly},
}
