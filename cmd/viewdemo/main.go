// Command viewdemo shows the layout engine reacting to live mutations:
// the terminal is the window, the Bubble Tea update loop is the frame
// driver, and key presses mutate the tree between passes.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/grindlemire/go-view"
	"github.com/grindlemire/go-view/termview"
)

type keyMap struct {
	Quit     key.Binding
	Collapse key.Binding
	Align    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Collapse: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "collapse/restore the badge"),
		),
		Align: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "cycle badge alignment"),
		),
	}
}

type model struct {
	root  *view.Root
	badge *view.View
	keys  keyMap

	width, height int
}

func newModel() model {
	badge := view.New(
		view.WithSize(20, 5),
		view.WithAlignment(view.AlignEnd, view.AlignStart),
		view.WithMargin(view.EdgeAll(1)),
	)
	panel := view.New(view.WithMargin(view.EdgeAll(2)))
	panel.AddChild(badge)

	rootView := view.New()
	rootView.AddChild(panel)

	return model{
		root:  view.NewRoot(rootView),
		badge: badge,
		keys:  defaultKeyMap(),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		// Reserve the last row for the status line.
		m.root.SetSize(msg.Width, msg.Height-1)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Collapse):
			if m.badge.Visibility() == view.Collapsed {
				m.badge.SetVisibility(view.Visible)
			} else {
				m.badge.SetVisibility(view.Collapsed)
			}
		case key.Matches(msg, m.keys.Align):
			s := m.badge.Style()
			s.HorizontalAlignment = nextAlignment(s.HorizontalAlignment)
			m.badge.SetStyle(s)
		}
	}

	// The update loop is the frame driver: serve any pass scheduled by
	// the mutations above before rendering.
	for m.root.LayoutPending() {
		m.root.LayoutPass()
	}
	return m, nil
}

var statusStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("63")).
	Bold(true)

func (m model) View() string {
	if m.width == 0 || m.height < 2 {
		return "sizing..."
	}
	tree := termview.Render(m.root.View(), m.width, m.height-1)
	status := statusStyle.Render("q quit · c collapse badge · a cycle alignment")
	return tree + "\n" + status
}

func nextAlignment(a view.Alignment) view.Alignment {
	switch a {
	case view.AlignStart:
		return view.AlignCenter
	case view.AlignCenter:
		return view.AlignEnd
	case view.AlignEnd:
		return view.AlignStretch
	default:
		return view.AlignStart
	}
}

func main() {
	if _, err := tea.NewProgram(newModel(), tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintln(os.Stderr, "viewdemo:", err)
		os.Exit(1)
	}
}
