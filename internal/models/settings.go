package models

import (
	"fmt"
	"strings"

	"github.com/julianstephens/tzgrid/internal/constants"
)

// Settings represents application-wide settings
type Settings struct {
	Zones            []string `json:"zones"`             // persisted zone selection, reference zone first
	Theme            string   `json:"theme"`             // "dark" or "light"
	Reference        string   `json:"reference"`         // explicit reference zone, or "Local" for the system zone
	WindowStartHours int      `json:"window_start_h"`    // table window start offset in hours (may be negative)
	WindowEndHours   int      `json:"window_end_h"`      // table window end offset in hours
	StepMinutes      int      `json:"step_min"`          // table row step in minutes
	Format           string   `json:"format"`            // "short" or "long"
}

// MapToSettings converts a map of key-value pairs to a Settings struct.
func MapToSettings(data map[string]string) (Settings, error) {
	settings := Settings{}

	for key, value := range data {
		switch key {
		case constants.SettingZones:
			if value != "" {
				settings.Zones = strings.Split(value, ",")
			}
		case constants.SettingTheme:
			settings.Theme = value
		case constants.SettingReference:
			settings.Reference = value
		case constants.SettingWindowStart:
			if _, err := fmt.Sscanf(value, "%d", &settings.WindowStartHours); err != nil {
				return Settings{}, fmt.Errorf("parsing window_start_h: %w", err)
			}
		case constants.SettingWindowEnd:
			if _, err := fmt.Sscanf(value, "%d", &settings.WindowEndHours); err != nil {
				return Settings{}, fmt.Errorf("parsing window_end_h: %w", err)
			}
		case constants.SettingStepMin:
			if _, err := fmt.Sscanf(value, "%d", &settings.StepMinutes); err != nil {
				return Settings{}, fmt.Errorf("parsing step_min: %w", err)
			}
		case constants.SettingFormat:
			settings.Format = value
		}
	}
	return settings, nil
}

// SettingsToMap converts a Settings struct to a map of key-value pairs.
func SettingsToMap(settings Settings) map[string]string {
	return map[string]string{
		constants.SettingZones:       strings.Join(settings.Zones, ","),
		constants.SettingTheme:       settings.Theme,
		constants.SettingReference:   settings.Reference,
		constants.SettingWindowStart: fmt.Sprintf("%d", settings.WindowStartHours),
		constants.SettingWindowEnd:   fmt.Sprintf("%d", settings.WindowEndHours),
		constants.SettingStepMin:     fmt.Sprintf("%d", settings.StepMinutes),
		constants.SettingFormat:      settings.Format,
	}
}

// ApplyDefaultSettings applies default values to missing settings.
func ApplyDefaultSettings(settings *Settings) {
	if settings.Theme == "" {
		settings.Theme = constants.DefaultTheme
	}
	if settings.Reference == "" {
		settings.Reference = constants.DefaultReference
	}
	if settings.StepMinutes == 0 {
		settings.StepMinutes = constants.DefaultStepMin
	}
	if settings.WindowStartHours == 0 && settings.WindowEndHours == 0 {
		settings.WindowStartHours = constants.DefaultWindowStart
		settings.WindowEndHours = constants.DefaultWindowEnd
	}
	if settings.Format == "" {
		settings.Format = constants.DefaultFormat
	}
}
