package tui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/1broseidon/zoned/internal/config"
	"github.com/1broseidon/zoned/internal/layout"
	"github.com/1broseidon/zoned/internal/store"
)

var (
	editorTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("15")).
				Background(lipgloss.Color("62")).
				Padding(0, 1)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// layoutItem implements list.Item for the layout browser.
type layoutItem struct {
	name      string
	stored    bool
	isDefault bool
}

func (i layoutItem) Title() string {
	suffix := ""
	if i.isDefault {
		suffix = " (default)"
	}
	return i.name + suffix
}

func (i layoutItem) Description() string {
	if i.stored {
		return "stored"
	}
	return "builtin"
}

func (i layoutItem) FilterValue() string { return i.name }

// model is the root bubbletea model: a layout browser that opens the edge
// editor for the selected layout.
type model struct {
	cfg     *config.Config
	layouts *store.Store

	list   list.Model
	editor *Editor

	statusText string

	width  int
	height int
}

func newModel(cfg *config.Config, layouts *store.Store) model {
	delegate := list.NewDefaultDelegate()
	delegate.SetSpacing(0)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Layouts"
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(true)
	l.DisableQuitKeybindings()

	m := model{
		cfg:     cfg,
		layouts: layouts,
		list:    l,
	}
	m.refreshItems()
	return m
}

// refreshItems rebuilds the browser listing from builtin and stored
// layouts. Stored layouts shadow builtins of the same name.
func (m *model) refreshItems() {
	stored, err := m.layouts.List()
	if err != nil {
		m.statusText = fmt.Sprintf("failed to list stored layouts: %v", err)
	}

	storedSet := make(map[string]bool, len(stored))
	var items []list.Item
	for _, id := range stored {
		storedSet[id] = true
		items = append(items, layoutItem{name: id, stored: true, isDefault: id == m.cfg.DefaultLayout})
	}
	for _, name := range m.cfg.LayoutNames() {
		if storedSet[name] {
			continue
		}
		items = append(items, layoutItem{name: name, isDefault: name == m.cfg.DefaultLayout})
	}

	m.list.SetItems(items)
}

// resolveLayout fetches a layout by name, stored layouts first.
func (m *model) resolveLayout(name string) (*layout.ZoneLayout, error) {
	if zl, err := m.layouts.Read(name); err == nil {
		return zl, nil
	}
	return m.cfg.GetLayout(name)
}

// Init implements tea.Model.
func (m model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.editor != nil {
		switch msg := msg.(type) {
		case tea.WindowSizeMsg:
			m.width = msg.Width
			m.height = msg.Height
			m.list.SetSize(msg.Width, m.contentHeight())
			var cmd tea.Cmd
			m.editor, cmd = m.editor.Update(msg)
			return m, cmd
		case editorClosedMsg:
			m.editor = nil
			if msg.saved {
				m.statusText = fmt.Sprintf("saved layout %q", msg.id)
				m.refreshItems()
			}
			return m, nil
		default:
			var cmd tea.Cmd
			m.editor, cmd = m.editor.Update(msg)
			return m, cmd
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, m.contentHeight())
		return m, nil

	case tea.KeyMsg:
		// Let the list handle keys while filtering.
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "q", "esc":
			return m, tea.Quit
		case "enter", "e":
			item, ok := m.list.SelectedItem().(layoutItem)
			if !ok {
				return m, nil
			}
			zl, err := m.resolveLayout(item.name)
			if err != nil {
				m.statusText = err.Error()
				return m, nil
			}
			m.editor = NewEditor(m.layouts, zl, m.cfg.Editor.NudgeStep)
			m.editor.width = m.width
			m.editor.height = m.contentHeight()
			return m, nil
		case "x":
			item, ok := m.list.SelectedItem().(layoutItem)
			if !ok || !item.stored {
				m.statusText = "only stored layouts can be deleted"
				return m, nil
			}
			if err := m.layouts.Delete(item.name); err != nil {
				m.statusText = err.Error()
			} else {
				m.statusText = fmt.Sprintf("deleted %q", item.name)
				m.refreshItems()
			}
			return m, nil
		case "r":
			m.refreshItems()
			m.statusText = "refreshed"
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// contentHeight returns the height available below the chrome.
func (m model) contentHeight() int {
	h := m.height - 2 // status line + help line
	if h < 1 {
		h = 1
	}
	return h
}

// View implements tea.Model.
func (m model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if m.editor != nil {
		return m.editor.View(m.width, m.height)
	}

	help := helpStyle.Render("enter: edit • x: delete stored • r: refresh • /: filter • q: quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		m.list.View(),
		statusStyle.Render(m.statusText),
		help,
	)
}

// Run starts the layout browser TUI and blocks until it exits.
func Run(cfg *config.Config, layouts *store.Store) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("tui requires an interactive terminal (stdin/stdout must be TTYs)")
	}

	p := tea.NewProgram(newModel(cfg, layouts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
