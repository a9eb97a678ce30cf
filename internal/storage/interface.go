package storage

import "github.com/julianstephens/tzgrid/internal/models"

// Provider is the persistence boundary. The engine never touches it; the CLI
// and TUI load a Settings snapshot, pass values into the engine, and persist
// whatever comes back.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Conversion history
	AddConversion(models.Conversion) error
	ListConversions(limit int) ([]models.Conversion, error)
	ClearConversions() error

	// Utils
	ConfigPath() string
}
