package zone

import (
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"
)

// Suggest returns at most limit candidates that contain input
// case-insensitively. Identifiers starting with the query come before those
// that merely contain it; within each group shorter identifiers come first;
// remaining ties keep registry order. Prefix matches are the strongest
// signal, and shorter names tend to be the canonical form the user meant.
//
// When nothing contains the query at all, a fuzzy pass catches typos
// ("Amercia") so the caller always has something to offer.
func Suggest(input string, candidates []string, limit int) []string {
	q := strings.ToLower(strings.TrimSpace(input))
	if q == "" || limit <= 0 {
		return nil
	}

	type match struct {
		id     string
		prefix bool
	}
	var matches []match
	for _, id := range candidates {
		idx := strings.Index(strings.ToLower(id), q)
		if idx < 0 {
			continue
		}
		matches = append(matches, match{id: id, prefix: idx == 0})
	}

	if len(matches) == 0 {
		return fuzzySuggest(q, candidates, limit)
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].prefix != matches[j].prefix {
			return matches[i].prefix
		}
		return len(matches[i].id) < len(matches[j].id)
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.id
	}
	return out
}

func fuzzySuggest(q string, candidates []string, limit int) []string {
	ranked := fuzzy.Find(q, candidates)
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	out := make([]string, 0, len(ranked))
	for _, m := range ranked {
		out = append(out, m.Str)
	}
	return out
}
