package constants

// Application identity
const (
	AppName = "tzgrid"
	Version = "v0.3.1"
)

// MaxZones bounds the zone selection. The table and timeline renderers
// assume at most this many columns.
const MaxZones = 4

// DefaultHistoryLimit is how many past conversions `history` shows.
const DefaultHistoryLimit = 10

// SuggestLimit caps zone suggestions returned to the user.
const SuggestLimit = 5
