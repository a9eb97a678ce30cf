// Package render turns engine output into styled terminal text. It is the
// only consumer of OffsetRow and TimelineEntry; the engine knows nothing
// about presentation.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/tzgrid/internal/constants"
	"github.com/julianstephens/tzgrid/internal/convert"
)

// Styles is the theme-resolved style set shared by the one-shot output and
// the TUI.
type Styles struct {
	Header    lipgloss.Style
	Cell      lipgloss.Style
	ZeroRow   lipgloss.Style
	Dim       lipgloss.Style
	Accent    lipgloss.Style
	Error     lipgloss.Style
	TimeMark  lipgloss.Style
	TimeBlank lipgloss.Style
}

// NewStyles builds the style set for a theme flag ("dark" or "light").
func NewStyles(theme string) Styles {
	if theme == constants.ThemeLight {
		return Styles{
			Header:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("25")),
			Cell:      lipgloss.NewStyle().Foreground(lipgloss.Color("235")),
			ZeroRow:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("162")),
			Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Accent:    lipgloss.NewStyle().Foreground(lipgloss.Color("29")),
			Error:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("124")),
			TimeMark:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("162")),
			TimeBlank: lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		}
	}
	return Styles{
		Header:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Cell:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		ZeroRow:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Accent:    lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
		Error:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
		TimeMark:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
		TimeBlank: lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	}
}

// Table renders the offset table: one column for the offset label, one per
// zone. The zero-offset row is highlighted.
func Table(zones []string, rows []convert.OffsetRow, st Styles) string {
	widths := make([]int, len(zones)+1)
	widths[0] = len("offset")
	for i, z := range zones {
		widths[i+1] = len(z)
	}
	for _, row := range rows {
		if len(row.Label) > widths[0] {
			widths[0] = len(row.Label)
		}
		for i, cell := range row.Times {
			if len(cell) > widths[i+1] {
				widths[i+1] = len(cell)
			}
		}
	}

	var b strings.Builder
	header := make([]string, len(zones)+1)
	header[0] = pad("offset", widths[0])
	for i, z := range zones {
		header[i+1] = pad(z, widths[i+1])
	}
	b.WriteString(st.Header.Render(strings.Join(header, "  ")))
	b.WriteString("\n")

	for _, row := range rows {
		cells := make([]string, len(row.Times)+1)
		cells[0] = pad(row.Label, widths[0])
		for i, cell := range row.Times {
			cells[i+1] = pad(cell, widths[i+1])
		}
		line := strings.Join(cells, "  ")
		switch {
		case row.OffsetMinutes == 0:
			b.WriteString(st.ZeroRow.Render(line))
		case row.OffsetMinutes < 0:
			b.WriteString(st.Dim.Render(line))
		default:
			b.WriteString(st.Cell.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Timeline renders the 24-column hour strip per zone, the occupied hour
// marked, with a day-rollover annotation where the zone's date differs from
// the reference date.
func Timeline(entries []convert.TimelineEntry, st Styles) string {
	nameWidth := 0
	for _, e := range entries {
		if len(e.Zone) > nameWidth {
			nameWidth = len(e.Zone)
		}
	}

	var b strings.Builder
	b.WriteString(st.Header.Render(pad("", nameWidth) + "  0     6     12    18   23"))
	b.WriteString("\n")
	for _, e := range entries {
		var strip strings.Builder
		for h := 0; h < 24; h++ {
			if h == e.Hour {
				strip.WriteString(st.TimeMark.Render("█"))
			} else {
				strip.WriteString(st.TimeBlank.Render("·"))
			}
		}
		line := st.Cell.Render(pad(e.Zone, nameWidth)) + "  " + strip.String()
		line += st.Accent.Render(fmt.Sprintf("  %02d:00", e.Hour))
		if e.Delta != convert.DaySame {
			line += st.Dim.Render(" (" + e.Delta.String() + ")")
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
