package zone

import (
	"slices"
	"testing"
	"time"
)

func TestAllZonesStableAndValid(t *testing.T) {
	first := AllZones()
	if len(first) == 0 {
		t.Fatal("AllZones() returned no identifiers")
	}

	second := AllZones()
	if !slices.Equal(first, second) {
		t.Error("AllZones() is not stable across calls")
	}

	if !slices.IsSorted(first) {
		t.Error("AllZones() is not sorted")
	}

	// Every registry identifier must validate.
	for _, z := range first {
		if !IsValid(z) {
			t.Errorf("IsValid(%q) = false for a registry identifier", z)
		}
	}
}

func TestAllZonesContainsCommonIdentifiers(t *testing.T) {
	all := AllZones()
	for _, want := range []string{"UTC", "America/New_York", "Europe/London", "Asia/Tokyo", "Pacific/Auckland"} {
		if !slices.Contains(all, want) {
			t.Errorf("AllZones() missing %q", want)
		}
	}
}

func TestResolveAlias(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{name: "lowercase est", input: "est", want: "America/New_York", ok: true},
		{name: "uppercase EST", input: "EST", want: "America/New_York", ok: true},
		{name: "daylight form maps to same zone", input: "EDT", want: "America/New_York", ok: true},
		{name: "pacific", input: "pst", want: "America/Los_Angeles", ok: true},
		{name: "mixed case with whitespace", input: "  Jst ", want: "Asia/Tokyo", ok: true},
		{name: "gmt maps to utc", input: "GMT", want: "UTC", ok: true},
		{name: "unknown abbreviation", input: "xyz", want: "", ok: false},
		{name: "empty", input: "", want: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ResolveAlias(tt.input)
			if ok != tt.ok || got != tt.want {
				t.Errorf("ResolveAlias(%q) = (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestAliasTargetsAreLoadable(t *testing.T) {
	for abbr, id := range aliases {
		if _, err := time.LoadLocation(id); err != nil {
			t.Errorf("alias %q targets unloadable zone %q: %v", abbr, id, err)
		}
		if !IsValid(id) {
			t.Errorf("alias %q targets %q which the registry rejects", abbr, id)
		}
	}
}

func TestCanonical(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{name: "exact identifier", input: "America/New_York", want: "America/New_York", ok: true},
		{name: "case-insensitive identifier", input: "america/new_york", want: "America/New_York", ok: true},
		{name: "abbreviation", input: "nzdt", want: "Pacific/Auckland", ok: true},
		{name: "whitespace trimmed", input: " UTC ", want: "UTC", ok: true},
		{name: "unknown", input: "Nowhere/Ville", want: "", ok: false},
		{name: "empty", input: "", want: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Canonical(tt.input)
			if ok != tt.ok || got != tt.want {
				t.Errorf("Canonical(%q) = (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestIsValidRejectsGarbage(t *testing.T) {
	for _, input := range []string{"Nowhere/Ville", "not a zone", ""} {
		if IsValid(input) {
			t.Errorf("IsValid(%q) = true, want false", input)
		}
	}
}
