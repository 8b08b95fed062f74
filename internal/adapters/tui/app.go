package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/graysonarts/jdexmd/internal/adapters/tui/views"
	"github.com/graysonarts/jdexmd/internal/application"
	"github.com/graysonarts/jdexmd/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewPreview ViewState = iota
	ViewHelp
)

// App is the main TUI application model
type App struct {
	state   ViewState
	preview *views.PreviewModel
	help    *views.HelpModel

	width  int
	height int
}

// NewApp creates a new TUI application
func NewApp(fs ports.Filesystem, systems []*application.Node, root, separator string) *App {
	return &App{
		state:   ViewPreview,
		preview: views.NewPreviewModel(fs, systems, root, separator),
		help:    views.NewHelpModel(),
	}
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.preview.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.preview.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.SwitchToPreviewMsg:
		a.state = ViewPreview
		return a, nil
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewPreview:
		_, cmd = a.preview.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}

	return a, cmd
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewHelp:
		return a.help.View()
	default:
		return a.preview.View()
	}
}
