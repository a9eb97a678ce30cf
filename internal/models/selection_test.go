package models

import (
	"slices"
	"testing"

	"github.com/julianstephens/tzgrid/internal/convert"
)

func TestSelectionAdd(t *testing.T) {
	tests := []struct {
		name    string
		start   Selection
		input   string
		want    Selection
		wantErr convert.FailureKind
		failure bool
	}{
		{
			name:  "identifier",
			start: nil,
			input: "America/New_York",
			want:  Selection{"America/New_York"},
		},
		{
			name:  "abbreviation canonicalized",
			start: nil,
			input: "pst",
			want:  Selection{"America/Los_Angeles"},
		},
		{
			name:  "duplicate is a no-op",
			start: Selection{"America/New_York"},
			input: "EST",
			want:  Selection{"America/New_York"},
		},
		{
			name:    "unknown zone rejected",
			start:   nil,
			input:   "Nowhere/Ville",
			want:    nil,
			failure: true,
			wantErr: convert.KindUnknownZone,
		},
		{
			name:    "fifth zone rejected",
			start:   Selection{"UTC", "America/New_York", "Europe/London", "Asia/Tokyo"},
			input:   "Australia/Sydney",
			want:    Selection{"UTC", "America/New_York", "Europe/London", "Asia/Tokyo"},
			failure: true,
			wantErr: convert.KindSelectionFull,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.start.Add(tt.input)
			if tt.failure {
				kind, ok := convert.KindOf(err)
				if !ok || kind != tt.wantErr {
					t.Fatalf("Add(%q) error = %v, want kind %v", tt.input, err, tt.wantErr)
				}
			} else if err != nil {
				t.Fatalf("Add(%q) error = %v", tt.input, err)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("Add(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestSelectionAddDoesNotMutateReceiver(t *testing.T) {
	original := Selection{"UTC"}
	snapshot := slices.Clone(original)

	if _, err := original.Add("Asia/Tokyo"); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(original, snapshot) {
		t.Errorf("receiver mutated: %v, want %v", original, snapshot)
	}
}

func TestSelectionRemove(t *testing.T) {
	tests := []struct {
		name  string
		start Selection
		input string
		want  Selection
	}{
		{
			name:  "by identifier",
			start: Selection{"UTC", "Asia/Tokyo"},
			input: "Asia/Tokyo",
			want:  Selection{"UTC"},
		},
		{
			name:  "by abbreviation",
			start: Selection{"UTC", "America/Los_Angeles"},
			input: "pst",
			want:  Selection{"UTC"},
		},
		{
			name:  "absent zone is a no-op",
			start: Selection{"UTC"},
			input: "Asia/Tokyo",
			want:  Selection{"UTC"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.start.Remove(tt.input)
			if !slices.Equal(got, tt.want) {
				t.Errorf("Remove(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestSelectionReference(t *testing.T) {
	if got := (Selection{"Asia/Tokyo", "UTC"}).Reference("Local"); got != "Asia/Tokyo" {
		t.Errorf("Reference() = %q, want first selected zone", got)
	}
	if got := (Selection{}).Reference("Local"); got != "Local" {
		t.Errorf("Reference() on empty selection = %q, want fallback", got)
	}
}
