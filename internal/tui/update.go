package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/tzgrid/internal/constants"
	"github.com/julianstephens/tzgrid/internal/convert"
	"github.com/julianstephens/tzgrid/internal/logger"
	"github.com/julianstephens/tzgrid/internal/models"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Convert):
			m.convert()
			return m, nil
		case key.Matches(msg, m.keys.Format):
			if m.settings.Format == constants.FormatLongName {
				m.settings.Format = constants.FormatShortName
			} else {
				m.settings.Format = constants.FormatLongName
			}
			if m.resolved {
				m.regenerate()
			}
			return m, nil
		case key.Matches(msg, m.keys.Clear):
			m.input.SetValue("")
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// convert resolves the current input and regenerates table and timeline.
func (m *Model) convert() {
	ref := m.reference()
	refLoc, err := loadLocation(ref)
	if err != nil {
		m.errMsg = "invalid reference zone " + ref
		return
	}

	instant, err := convert.Resolve(m.input.Value(), refLoc, m.parser, time.Now())
	if err != nil {
		m.resolved = false
		m.errMsg = failureMessage(err, m.input.Value())
		return
	}

	m.instant = instant
	m.errMsg = ""
	m.resolved = true
	m.regenerate()

	if m.resolved {
		record := models.Conversion{
			Input:      m.input.Value(),
			ResolvedMs: instant.UnixMilli(),
			Zones:      m.zones(),
		}
		if err := m.store.AddConversion(record); err != nil {
			logger.Warn("failed to record conversion", "error", err)
		}
	}
}

// regenerate recomputes table and timeline from the held instant.
func (m *Model) regenerate() {
	zones := m.zones()
	window := convert.Window{
		StartHours:  m.settings.WindowStartHours,
		EndHours:    m.settings.WindowEndHours,
		StepMinutes: m.settings.StepMinutes,
	}

	rows, err := convert.Generate(m.instant, zones, window, m.format())
	if err != nil {
		m.resolved = false
		m.errMsg = failureMessage(err, "")
		return
	}
	entries, err := convert.MapTimeline(m.instant, zones, m.reference())
	if err != nil {
		m.resolved = false
		m.errMsg = err.Error()
		return
	}

	m.rows = rows
	m.entries = entries
}

func loadLocation(name string) (*time.Location, error) {
	if name == "" || name == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(name)
}

func failureMessage(err error, input string) string {
	kind, ok := convert.KindOf(err)
	if !ok {
		return err.Error()
	}
	switch kind {
	case convert.KindEmptyInput:
		return "type an expression and press enter"
	case convert.KindUnparseable:
		return "could not interpret " + input
	case convert.KindEmptyZoneSet:
		return "no zones selected"
	case convert.KindInvalidWindow:
		return "invalid window settings"
	default:
		return err.Error()
	}
}
