package menu

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/steffn/winsweep/internal/power"
	"github.com/steffn/winsweep/internal/ui"
)

// Model is the bubbletea mode selector. The digits 1/2 choose directly;
// arrows plus enter work too. Quitting before a choice aborts the run —
// nothing irreversible has happened yet at this point.
type Model struct {
	cursor  int
	chosen  bool
	aborted bool
	choice  power.Action
}

// NewModel returns a selector with the cursor on the first option.
func NewModel() Model {
	return Model{}
}

// Choice returns the selected action and whether one was made.
func (m Model) Choice() (power.Action, bool) {
	return m.choice, m.chosen
}

// Aborted reports whether the user backed out of the menu.
func (m Model) Aborted() bool {
	return m.aborted
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "esc", "ctrl+c":
		m.aborted = true
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(options)-1 {
			m.cursor++
		}

	case "enter":
		m.chosen = true
		m.choice = options[m.cursor].action
		return m, tea.Quit

	case "1", "2":
		idx := int(key.String()[0] - '1')
		m.cursor = idx
		m.chosen = true
		m.choice = options[idx].action
		return m, tea.Quit
	}

	return m, nil
}

func (m Model) View() string {
	if m.chosen || m.aborted {
		return ""
	}

	var s strings.Builder
	s.WriteString(ui.TitleStyle.Render("  Select an option") + "\n\n")

	selected := lipgloss.NewStyle().Bold(true).Foreground(ui.ColorPrimary)
	normal := lipgloss.NewStyle().Foreground(ui.ColorMuted)

	for i, opt := range options {
		line := "    "
		label := opt.label
		if i == m.cursor {
			line = "  " + ui.IconArrow + " "
			s.WriteString(selected.Render(line+"["+string(rune('1'+i))+"] "+label) + "\n")
		} else {
			s.WriteString(normal.Render(line+"["+string(rune('1'+i))+"] "+label) + "\n")
		}
	}

	s.WriteString("\n" + ui.MutedStyle.Render("  1/2 choose  "+ui.IconPipe+"  ↑/↓ move  "+ui.IconPipe+"  enter confirm  "+ui.IconPipe+"  q abort"))
	return s.String()
}
