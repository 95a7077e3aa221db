package power

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/steffn/winsweep/internal/ui"
)

// tickMsg advances the countdown by one second.
type tickMsg time.Time

// CountdownModel is the bubbletea rendition of the pre-power-action
// countdown. It cannot be cancelled: key presses are ignored, and the
// model quits by itself once the last tick has elapsed.
type CountdownModel struct {
	action    Action
	remaining int
	from      int
	interval  time.Duration
	bar       progress.Model
	fired     bool
}

// NewCountdownModel counts down from `from` at the given interval
// before the action is due.
func NewCountdownModel(action Action, from int, interval time.Duration) CountdownModel {
	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = 40
	return CountdownModel{
		action:    action,
		remaining: from,
		from:      from,
		interval:  interval,
		bar:       bar,
	}
}

// Fired reports whether the countdown ran to completion.
func (m CountdownModel) Fired() bool {
	return m.fired
}

func (m CountdownModel) doTick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m CountdownModel) Init() tea.Cmd {
	return m.doTick()
}

func (m CountdownModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tickMsg); !ok {
		// Deliberately ignore keys: no cancellation path exists here.
		return m, nil
	}

	m.remaining--
	if m.remaining <= 0 {
		m.fired = true
		return m, tea.Quit
	}
	return m, m.doTick()
}

func (m CountdownModel) View() string {
	if m.fired {
		return ""
	}

	verb := "Shutting down"
	if m.action == ActionRestart {
		verb = "Restarting"
	}

	elapsed := float64(m.from-m.remaining) / float64(m.from)

	var s strings.Builder
	s.WriteString("\n")
	s.WriteString(ui.TitleStyle.Render(fmt.Sprintf("  %s in %d s", verb, m.remaining)))
	s.WriteString("\n\n  ")
	s.WriteString(m.bar.ViewAs(elapsed))
	s.WriteString("\n")
	return s.String()
}
