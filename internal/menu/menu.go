// Package menu implements the shutdown/restart mode selector.
package menu

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/steffn/winsweep/internal/power"
	"github.com/steffn/winsweep/internal/ui"
)

// options are the two selectable modes, in menu order. Option i is
// chosen by typing the digit i+1.
var options = []struct {
	label  string
	action power.Action
}{
	{"Clean and shut down", power.ActionShutdown},
	{"Clean and restart", power.ActionRestart},
}

// ParseChoice maps a menu input line to a power action.
// "1" selects shutdown, "2" selects restart; anything else is invalid.
func ParseChoice(line string) (power.Action, error) {
	switch strings.TrimSpace(line) {
	case "1":
		return power.ActionShutdown, nil
	case "2":
		return power.ActionRestart, nil
	}
	return 0, fmt.Errorf("invalid choice %q: enter 1 or 2", strings.TrimSpace(line))
}

// PromptPlain runs the line-oriented selector: print both options, read
// one line, re-prompt on invalid input indefinitely. A closed input
// stream is a fatal input error, not a silent default.
func PromptPlain(in io.Reader, out io.Writer) (power.Action, error) {
	reader := bufio.NewReader(in)

	for {
		fmt.Fprintln(out, "  Select an option:")
		for i, opt := range options {
			fmt.Fprintf(out, "    [%d] %s\n", i+1, opt.label)
		}
		fmt.Fprint(out, "  > ")

		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return 0, fmt.Errorf("reading menu choice: %w", err)
		}

		action, parseErr := ParseChoice(line)
		if parseErr != nil {
			fmt.Fprintln(out, ui.ErrorStyle.Render("  "+parseErr.Error()))
			continue
		}
		return action, nil
	}
}
