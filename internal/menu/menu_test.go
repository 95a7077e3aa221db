package menu

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/steffn/winsweep/internal/power"
)

func TestParseChoice(t *testing.T) {
	testCases := []struct {
		in      string
		want    power.Action
		wantErr bool
	}{
		{"1", power.ActionShutdown, false},
		{"2", power.ActionRestart, false},
		{" 1 \r\n", power.ActionShutdown, false},
		{"3", 0, true},
		{"", 0, true},
		{"abc", 0, true},
		{"12", 0, true},
	}

	for _, tc := range testCases {
		got, err := ParseChoice(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseChoice(%q) succeeded, want error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseChoice(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseChoice(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestPromptPlainRepromptsOnInvalidInput(t *testing.T) {
	in := strings.NewReader("9\nabc\n\n2\n")
	var out bytes.Buffer

	action, err := PromptPlain(in, &out)
	if err != nil {
		t.Fatalf("PromptPlain: %v", err)
	}
	if action != power.ActionRestart {
		t.Errorf("action = %v, want restart", action)
	}

	// Three bad lines → the options were printed four times.
	if n := strings.Count(out.String(), "Select an option"); n != 4 {
		t.Errorf("prompt printed %d times, want 4", n)
	}
}

func TestPromptPlainClosedInputIsFatal(t *testing.T) {
	if _, err := PromptPlain(strings.NewReader(""), &bytes.Buffer{}); err == nil {
		t.Error("closed input did not produce an error")
	}
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestModelDigitSelection(t *testing.T) {
	m := NewModel()

	updated, _ := m.Update(keyMsg("2"))
	got := updated.(Model)

	action, chosen := got.Choice()
	if !chosen || action != power.ActionRestart {
		t.Errorf("digit 2: chosen=%v action=%v, want restart", chosen, action)
	}
}

func TestModelCursorSelection(t *testing.T) {
	m := NewModel()

	updated, _ := m.Update(keyMsg("down"))
	updated, _ = updated.(Model).Update(keyMsg("enter"))
	got := updated.(Model)

	action, chosen := got.Choice()
	if !chosen || action != power.ActionRestart {
		t.Errorf("down+enter: chosen=%v action=%v, want restart", chosen, action)
	}
}

func TestModelIgnoresOtherKeys(t *testing.T) {
	m := NewModel()

	updated, _ := m.Update(keyMsg("x"))
	got := updated.(Model)

	if _, chosen := got.Choice(); chosen {
		t.Error("unrelated key made a choice")
	}
	if got.Aborted() {
		t.Error("unrelated key aborted the menu")
	}
}

func TestModelAbort(t *testing.T) {
	m := NewModel()

	updated, _ := m.Update(keyMsg("q"))
	if !updated.(Model).Aborted() {
		t.Error("q did not abort")
	}
}
