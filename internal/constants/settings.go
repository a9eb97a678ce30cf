package constants

// Settings keys as stored in the settings table
const (
	SettingZones       = "zones"
	SettingTheme       = "theme"
	SettingReference   = "reference"
	SettingWindowStart = "window_start_h"
	SettingWindowEnd   = "window_end_h"
	SettingStepMin     = "step_min"
	SettingFormat      = "format"
)

// Default settings values
const (
	DefaultTheme       = "dark"
	DefaultReference   = "Local"
	DefaultWindowStart = -1
	DefaultWindowEnd   = 2
	DefaultStepMin     = 15
	DefaultFormat      = "short"
)

// ThemeDark and ThemeLight are the recognized theme flags.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// FormatShortName and FormatLongName are the recognized format setting values.
const (
	FormatShortName = "short"
	FormatLongName  = "long"
)
