package models

import (
	"slices"

	"github.com/julianstephens/tzgrid/internal/constants"
	"github.com/julianstephens/tzgrid/internal/convert"
	"github.com/julianstephens/tzgrid/internal/zone"
)

// Selection is the ordered, deduplicated zone selection, capacity-bounded at
// constants.MaxZones. The first entry is the reference zone used to interpret
// relative input. Add and Remove return new values; a Selection handed to the
// engine is never mutated.
type Selection []string

// Add canonicalizes input via the registry and appends it. Unknown
// identifiers and a full selection are rejected before anything reaches table
// generation. Adding an already-selected zone is a no-op.
func (s Selection) Add(input string) (Selection, error) {
	id, ok := zone.Canonical(input)
	if !ok {
		return s, convert.NewFailure(convert.KindUnknownZone, input)
	}
	if slices.Contains(s, id) {
		return s, nil
	}
	if len(s) >= constants.MaxZones {
		return s, convert.NewFailure(convert.KindSelectionFull, input)
	}
	out := make(Selection, len(s), len(s)+1)
	copy(out, s)
	return append(out, id), nil
}

// Remove drops id from the selection, matching canonically so "pst" removes
// America/Los_Angeles. Removing an absent zone is a no-op.
func (s Selection) Remove(input string) Selection {
	id, ok := zone.Canonical(input)
	if !ok {
		id = input
	}
	out := make(Selection, 0, len(s))
	for _, z := range s {
		if z != id {
			out = append(out, z)
		}
	}
	return out
}

// Reference is the contextual zone for interpreting ambiguous input: the
// first selected zone, or fallback when the selection is empty.
func (s Selection) Reference(fallback string) string {
	if len(s) > 0 {
		return s[0]
	}
	return fallback
}
