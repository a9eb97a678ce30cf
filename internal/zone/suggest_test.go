package zone

import (
	"slices"
	"strings"
	"testing"
)

func TestSuggestOrdering(t *testing.T) {
	candidates := []string{
		"Europe/Amsterdam",
		"America/New_York",
		"America/Lima",
		"Asia/Amman",
		"Pacific/Auckland",
	}

	tests := []struct {
		name  string
		input string
		limit int
		want  []string
	}{
		{
			// Prefix matches before containment, shorter before longer.
			name:  "prefix before containment",
			input: "am",
			limit: 5,
			want:  []string{"America/Lima", "America/New_York", "Asia/Amman", "Europe/Amsterdam"},
		},
		{
			name:  "limit respected",
			input: "am",
			limit: 2,
			want:  []string{"America/Lima", "America/New_York"},
		},
		{
			name:  "case-insensitive",
			input: "AUCK",
			limit: 5,
			want:  []string{"Pacific/Auckland"},
		},
		{
			name:  "empty query yields nothing",
			input: "   ",
			limit: 5,
			want:  nil,
		},
		{
			name:  "zero limit yields nothing",
			input: "am",
			limit: 0,
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Suggest(tt.input, candidates, tt.limit)
			if !slices.Equal(got, tt.want) {
				t.Errorf("Suggest(%q, _, %d) = %v, want %v", tt.input, tt.limit, got, tt.want)
			}
		})
	}
}

func TestSuggestAmerOverRegistry(t *testing.T) {
	got := Suggest("amer", AllZones(), 3)
	if len(got) == 0 || len(got) > 3 {
		t.Fatalf("Suggest(\"amer\", AllZones(), 3) returned %d results", len(got))
	}

	seenContainment := false
	for _, id := range got {
		lower := strings.ToLower(id)
		if !strings.Contains(lower, "amer") {
			t.Errorf("result %q does not contain the query", id)
		}
		if strings.HasPrefix(lower, "amer") {
			if seenContainment {
				t.Errorf("prefix match %q sorted after a containment match", id)
			}
		} else {
			seenContainment = true
		}
	}
}

func TestSuggestFuzzyFallback(t *testing.T) {
	// No identifier contains "amercia"; the fuzzy pass should still offer
	// something American.
	got := Suggest("amercia", AllZones(), 3)
	if len(got) == 0 {
		t.Fatal("expected fuzzy suggestions for a typo, got none")
	}
	for _, id := range got {
		if !IsValid(id) {
			t.Errorf("fuzzy suggestion %q is not a valid zone", id)
		}
	}
}

func TestSuggestTiesKeepRegistryOrder(t *testing.T) {
	candidates := []string{"Asia/Baku", "Asia/Baki"} // same length, same prefix
	got := Suggest("asia/bak", candidates, 5)
	want := []string{"Asia/Baku", "Asia/Baki"}
	if !slices.Equal(got, want) {
		t.Errorf("Suggest tie-break = %v, want original order %v", got, want)
	}
}
