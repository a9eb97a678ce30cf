package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/tzgrid/internal/constants"
	"github.com/julianstephens/tzgrid/internal/convert"
	"github.com/julianstephens/tzgrid/internal/models"
	"github.com/julianstephens/tzgrid/internal/render"
	"github.com/julianstephens/tzgrid/internal/storage"
)

type Model struct {
	store    storage.Provider
	parser   convert.Parser
	settings models.Settings
	styles   render.Styles

	input textinput.Model
	keys  KeyMap
	help  help.Model

	// Last successful conversion
	instant  time.Time
	rows     []convert.OffsetRow
	entries  []convert.TimelineEntry
	resolved bool

	errMsg   string
	width    int
	height   int
	quitting bool
}

func NewModel(store storage.Provider, parser convert.Parser) (Model, error) {
	settings, err := store.GetSettings()
	if err != nil {
		return Model{}, fmt.Errorf("failed to get settings: %w", err)
	}

	ti := textinput.New()
	ti.Placeholder = "tomorrow at 3pm, next friday noon, 1767225600 ..."
	ti.Focus()
	ti.CharLimit = 120

	return Model{
		store:    store,
		parser:   parser,
		settings: settings,
		styles:   render.NewStyles(settings.Theme),
		input:    ti,
		keys:     DefaultKeyMap(),
		help:     help.New(),
	}, nil
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// zones is the effective zone list for this session.
func (m Model) zones() []string {
	if len(m.settings.Zones) > 0 {
		return m.settings.Zones
	}
	ref := m.settings.Reference
	if ref == "" {
		ref = "Local"
	}
	return []string{ref}
}

func (m Model) reference() string {
	return models.Selection(m.settings.Zones).Reference(m.settings.Reference)
}

func (m Model) format() convert.FormatKind {
	if m.settings.Format == constants.FormatLongName {
		return convert.FormatLong
	}
	return convert.FormatShort
}

// Run launches the interactive session.
func Run(store storage.Provider, parser convert.Parser) error {
	m, err := NewModel(store, parser)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
