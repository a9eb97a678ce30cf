// Package zone maintains the canonical registry of IANA time zone
// identifiers, the abbreviation alias table, and suggestion matching.
// The registry is loaded once at first use and is read-only afterwards.
package zone

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// Platform zoneinfo directories, in the order the standard library consults them.
var zoneDirs = []string{
	"/usr/share/zoneinfo",
	"/usr/share/lib/zoneinfo",
	"/usr/lib/locale/TZ",
}

var (
	loadOnce  sync.Once
	zoneList  []string
	canonical map[string]string // lowercased identifier -> canonical identifier
)

func load() {
	names := readSystemZones()
	if len(names) == 0 {
		names = append([]string(nil), fallbackZones...)
	}

	sort.Strings(names)

	canonical = make(map[string]string, len(names))
	zoneList = make([]string, 0, len(names))
	for _, name := range names {
		key := strings.ToLower(name)
		if _, dup := canonical[key]; dup {
			continue
		}
		canonical[key] = name
		zoneList = append(zoneList, name)
	}
}

// readSystemZones enumerates identifiers from the platform time zone database.
// Returns nil when no zoneinfo directory is present (e.g. minimal containers),
// in which case the embedded fallback list is used instead.
func readSystemZones() []string {
	for _, dir := range zoneDirs {
		var names []string
		root := dir
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil //nolint:nilerr // unreadable entries are skipped, not fatal
			}
			if d.IsDir() {
				return nil
			}
			rel, relErr := filepath.Rel(root, path)
			if relErr != nil {
				return nil
			}
			name := filepath.ToSlash(rel)
			if !isZoneName(name) {
				return nil
			}
			names = append(names, name)
			return nil
		})
		if err == nil && len(names) > 0 {
			return names
		}
	}
	return nil
}

// isZoneName filters out the non-zone files that live alongside zone data
// (zone.tab, leap-seconds.list, the posix/ and right/ variant trees, ...).
// Real identifiers start with an uppercase letter in every path element.
func isZoneName(name string) bool {
	if name == "" || name == "Factory" {
		return false
	}
	if strings.ContainsAny(name, ".") {
		return false
	}
	for _, part := range strings.Split(name, "/") {
		if part == "" {
			return false
		}
		c := part[0]
		if c < 'A' || c > 'Z' {
			return false
		}
	}
	return true
}

// AllZones returns every identifier the platform time zone database
// recognizes, sorted, stable for the process lifetime. The returned slice is
// shared and must not be mutated.
func AllZones() []string {
	loadOnce.Do(load)
	return zoneList
}

// Canonical resolves user input to a canonical identifier: an exact
// (case-insensitive) identifier match first, then the abbreviation table.
func Canonical(input string) (string, bool) {
	loadOnce.Do(load)
	key := strings.ToLower(strings.TrimSpace(input))
	if key == "" {
		return "", false
	}
	if id, ok := canonical[key]; ok {
		return id, true
	}
	if id, ok := aliases[key]; ok {
		return id, true
	}
	return "", false
}

// ResolveAlias performs a case-insensitive abbreviation lookup.
func ResolveAlias(input string) (string, bool) {
	id, ok := aliases[strings.ToLower(strings.TrimSpace(input))]
	return id, ok
}

// IsValid reports whether id names a registry zone, directly or via an alias.
func IsValid(id string) bool {
	_, ok := Canonical(id)
	return ok
}
