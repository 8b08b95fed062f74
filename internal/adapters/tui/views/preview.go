package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/graysonarts/jdexmd/internal/adapters/tui/styles"
	"github.com/graysonarts/jdexmd/internal/application"
	"github.com/graysonarts/jdexmd/internal/application/commands"
	"github.com/graysonarts/jdexmd/internal/ports"
)

// PreviewKeyMap defines key bindings for the preview view
type PreviewKeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Enter key.Binding
	Yank  key.Binding
	Help  key.Binding
	Quit  key.Binding
}

var PreviewKeys = PreviewKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Left: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "collapse"),
	),
	Right: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "expand"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "toggle"),
	),
	Yank: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy path"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// previewItem wraps a hierarchy node with the tree-browsing state
// the view needs: parent link, display depth, and expand flag.
type previewItem struct {
	node     *application.Node
	parent   *previewItem
	depth    int
	expanded bool
	children []*previewItem
}

// PreviewModel is the model for the plan preview view. It shows the
// resolved hierarchy as a collapsible tree with each node annotated by
// the action a run would take for it.
type PreviewModel struct {
	ViewState

	fs        ports.Filesystem
	systems   []*application.Node
	root      string
	separator string

	roots   []*previewItem
	visible []*previewItem
	actions map[*application.Node][]application.Action
	cursor  int
}

// NewPreviewModel creates a new preview model
func NewPreviewModel(fs ports.Filesystem, systems []*application.Node, root, separator string) *PreviewModel {
	return &PreviewModel{
		fs:        fs,
		systems:   systems,
		root:      root,
		separator: separator,
	}
}

// Init initializes the preview
func (m *PreviewModel) Init() tea.Cmd {
	return m.loadPlan
}

func (m *PreviewModel) loadPlan() tea.Msg {
	cmd := commands.NewPlanCommand(m.fs, m.systems, m.root)
	cmd.Separator = m.separator
	plan, err := cmd.Execute(context.Background())
	if err != nil {
		return errMsg{err}
	}
	return planLoadedMsg{plan}
}

type planLoadedMsg struct {
	plan application.Plan
}

type errMsg struct {
	err error
}

// Update handles messages for the preview
func (m *PreviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case planLoadedMsg:
		m.actions = make(map[*application.Node][]application.Action)
		for _, a := range msg.plan {
			if a.Node != nil {
				m.actions[a.Node] = append(m.actions[a.Node], a)
			}
		}
		m.buildItems()
		return m, nil

	case errMsg:
		m.SetMessage(msg.err.Error(), true)
		return m, nil

	case tea.KeyMsg:
		m.ClearMessage()

		switch {
		case key.Matches(msg, PreviewKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, PreviewKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, PreviewKeys.Down):
			if m.cursor < len(m.visible)-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, PreviewKeys.Left):
			if item := m.selectedItem(); item != nil {
				if item.expanded {
					item.expanded = false
					m.refreshVisible()
				} else if item.parent != nil {
					for i, it := range m.visible {
						if it == item.parent {
							m.cursor = i
							break
						}
					}
				}
			}
			return m, nil

		case key.Matches(msg, PreviewKeys.Right):
			if item := m.selectedItem(); item != nil && len(item.children) > 0 && !item.expanded {
				item.expanded = true
				m.refreshVisible()
			}
			return m, nil

		case key.Matches(msg, PreviewKeys.Enter):
			if item := m.selectedItem(); item != nil && len(item.children) > 0 {
				item.expanded = !item.expanded
				m.refreshVisible()
			}
			return m, nil

		case key.Matches(msg, PreviewKeys.Yank):
			if item := m.selectedItem(); item != nil {
				if path := m.itemPath(item); path != "" {
					clipboard.WriteAll(path)
					m.SetMessage(fmt.Sprintf("Copied %s", path), false)
				}
			}
			return m, nil

		case key.Matches(msg, PreviewKeys.Help):
			return m, func() tea.Msg {
				return SwitchToHelpMsg{}
			}
		}
	}

	return m, nil
}

func (m *PreviewModel) buildItems() {
	m.roots = nil
	for _, system := range m.systems {
		m.roots = append(m.roots, m.buildItem(system, nil, 0))
	}
	// Systems start expanded so the first screen shows the areas.
	for _, r := range m.roots {
		r.expanded = true
	}
	m.cursor = 0
	m.refreshVisible()
}

func (m *PreviewModel) buildItem(n *application.Node, parent *previewItem, depth int) *previewItem {
	item := &previewItem{node: n, parent: parent, depth: depth}
	for _, child := range n.Children {
		item.children = append(item.children, m.buildItem(child, item, depth+1))
	}
	return item
}

func (m *PreviewModel) refreshVisible() {
	m.visible = m.visible[:0]
	var walk func(item *previewItem)
	walk = func(item *previewItem) {
		m.visible = append(m.visible, item)
		if item.expanded {
			for _, child := range item.children {
				walk(child)
			}
		}
	}
	for _, r := range m.roots {
		walk(r)
	}
	if m.cursor >= len(m.visible) {
		m.cursor = len(m.visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *PreviewModel) selectedItem() *previewItem {
	if m.cursor >= 0 && m.cursor < len(m.visible) {
		return m.visible[m.cursor]
	}
	return nil
}

// itemPath returns the target path of the first planned action for the item.
func (m *PreviewModel) itemPath(item *previewItem) string {
	actions := m.actions[item.node]
	if len(actions) == 0 {
		return ""
	}
	return actions[0].Path
}

// View renders the preview
func (m *PreviewModel) View() string {
	if m.actions == nil && m.Message == "" {
		return "Planning..."
	}

	var b strings.Builder

	b.WriteString(styles.Title.Render("jdexmd"))
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render(fmt.Sprintf("Plan preview for %s", m.root)))
	b.WriteString("\n\n")

	for i, item := range m.visible {
		b.WriteString(m.renderItem(item, i == m.cursor))
		b.WriteString("\n")
	}

	if m.Message != "" {
		b.WriteString("\n")
		if m.MessageErr {
			b.WriteString(styles.ErrorMsg.Render(m.Message))
		} else {
			b.WriteString(styles.Success.Render(m.Message))
		}
	}

	b.WriteString("\n")
	b.WriteString(m.renderHelpLine())

	return styles.App.Render(b.String())
}

func (m *PreviewModel) renderItem(item *previewItem, selected bool) string {
	indent := strings.Repeat("  ", item.depth)

	var prefix string
	switch {
	case len(item.children) == 0:
		prefix = styles.TreeLeaf
	case item.expanded:
		prefix = styles.TreeExpanded
	default:
		prefix = styles.TreeCollapsed
	}

	text := item.node.DisplayName(m.separator)

	var style lipgloss.Style
	switch item.node.Level {
	case application.LevelSystem:
		style = styles.NodeSystem
	case application.LevelArea:
		style = styles.NodeArea
	case application.LevelCategory:
		style = styles.NodeCategory
	case application.LevelXFolder:
		style = styles.NodeXFolder
	default:
		style = styles.NodeFolder
	}

	styledText := style.Render(text)
	if selected {
		styledText = styles.NodeSelected.Render(text)
	}

	return fmt.Sprintf("%s%s%s%s", indent, styles.TreeBranch.Render(prefix), styledText, m.renderAnnotation(item))
}

func (m *PreviewModel) renderAnnotation(item *previewItem) string {
	actions := m.actions[item.node]
	if len(actions) == 0 {
		return ""
	}

	parts := make([]string, 0, len(actions))
	mutates := false
	for _, a := range actions {
		switch a.Type {
		case application.ActionCreateDir:
			parts = append(parts, "create dir")
			mutates = true
		case application.ActionWriteFile:
			if a.Content == application.ContentIndex {
				parts = append(parts, "write index")
			} else {
				parts = append(parts, "write note")
			}
			mutates = true
		case application.ActionSkip:
			parts = append(parts, a.Reason)
		}
	}

	annotation := "  " + strings.Join(parts, ", ")
	if mutates {
		return styles.ActionCreate.Render(annotation)
	}
	return styles.ActionSkip.Render(annotation)
}

func (m *PreviewModel) renderHelpLine() string {
	keys := []struct {
		key  string
		desc string
	}{
		{"j/k", "navigate"},
		{"h/l", "collapse/expand"},
		{"y", "copy path"},
		{"?", "help"},
		{"q", "quit"},
	}

	var parts []string
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s %s",
			styles.HelpKey.Render(k.key),
			styles.HelpDesc.Render(k.desc),
		))
	}

	return strings.Join(parts, styles.HelpSeparator.String())
}
