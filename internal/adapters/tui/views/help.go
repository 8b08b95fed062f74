package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/graysonarts/jdexmd/internal/adapters/tui/styles"
)

// HelpKeyMap defines key bindings for the help view
type HelpKeyMap struct {
	Close key.Binding
}

var HelpKeys = HelpKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "?"),
		key.WithHelp("esc/q/?", "close"),
	),
}

// HelpModel is the model for the help view
type HelpModel struct {
	ViewState
}

// NewHelpModel creates a new help view model
func NewHelpModel() *HelpModel {
	return &HelpModel{}
}

// Init initializes the help view
func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, HelpKeys.Close) {
			return m, func() tea.Msg {
				return SwitchToPreviewMsg{}
			}
		}
	}

	return m, nil
}

// View renders the help view
func (m *HelpModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("jdexmd Help"))
	b.WriteString("\n\n")

	b.WriteString(styles.Subtitle.Render("Johnny Decimal Scaffold Generator"))
	b.WriteString("\n\n")

	// Navigation section
	b.WriteString(styles.SectionLabel.Render("Navigation"))
	b.WriteString("\n")
	b.WriteString(helpLine("j / k / ↑ / ↓", "Move up/down"))
	b.WriteString(helpLine("h / ←", "Collapse / go to parent"))
	b.WriteString(helpLine("l / → / Enter", "Expand / toggle"))
	b.WriteString("\n")

	// Actions section
	b.WriteString(styles.SectionLabel.Render("Actions"))
	b.WriteString("\n")
	b.WriteString(helpLine("y", "Copy planned path to clipboard"))
	b.WriteString("\n")

	// General section
	b.WriteString(styles.SectionLabel.Render("General"))
	b.WriteString("\n")
	b.WriteString(helpLine("?", "Toggle help"))
	b.WriteString(helpLine("q / Ctrl+C", "Quit"))
	b.WriteString("\n\n")

	// Johnny Decimal info
	b.WriteString(styles.SectionLabel.Render("Johnny Decimal Structure"))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("  System   : 00"))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("  Area     : 10-19"))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("  Category : 10"))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("  Folder   : 10.10.10"))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("  Extended : 10.10.10.X01"))
	b.WriteString("\n\n")

	// Close hint
	b.WriteString(styles.HelpDesc.Render("Press "))
	b.WriteString(styles.HelpKey.Render("esc"))
	b.WriteString(styles.HelpDesc.Render(" or "))
	b.WriteString(styles.HelpKey.Render("?"))
	b.WriteString(styles.HelpDesc.Render(" to close"))

	return styles.App.Render(b.String())
}

func helpLine(key, desc string) string {
	return "  " + styles.HelpKey.Render(padRight(key, 20)) + styles.HelpDesc.Render(desc) + "\n"
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}
