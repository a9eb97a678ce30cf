package constants

// Standard time formats used throughout the application
const (
	DateFormat     = "2006-01-02"
	TimeFormat     = "15:04"
	DateTimeFormat = "2006-01-02 15:04"

	// ShortClockFormat is the compact table rendering: numeric date plus 24h time.
	ShortClockFormat = "2006-01-02 15:04"
	// LongClockFormat spells out weekday and month for verbose output.
	LongClockFormat = "Mon, Jan 2 2006, 3:04 PM MST"
)
