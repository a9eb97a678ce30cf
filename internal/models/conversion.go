package models

import "time"

// Conversion is one recorded lookup: the raw input, the instant it resolved
// to (epoch milliseconds, zone-independent), and the zones it was shown in.
type Conversion struct {
	ID         string    `json:"id"`
	Input      string    `json:"input"`
	ResolvedMs int64     `json:"resolved_ms"`
	Zones      []string  `json:"zones"`
	CreatedAt  time.Time `json:"created_at"`
}

// Resolved returns the recorded instant.
func (c Conversion) Resolved() time.Time {
	return time.UnixMilli(c.ResolvedMs).UTC()
}
