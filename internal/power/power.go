// Package power issues the final shutdown or restart command.
package power

import (
	"fmt"
	"os/exec"
)

// Action is the terminal power action issued after cleanup.
type Action int

const (
	ActionShutdown Action = iota
	ActionRestart
)

// String returns the user-facing verb for the action.
func (a Action) String() string {
	if a == ActionRestart {
		return "restart"
	}
	return "shutdown"
}

// Args returns the shutdown.exe argument list for an action: forced,
// with zero OS-level delay. The visible grace period is the countdown;
// by the time this runs there is nothing left to wait for.
func (a Action) Args() []string {
	flag := "/s"
	if a == ActionRestart {
		flag = "/r"
	}
	return []string{flag, "/f", "/t", "0"}
}

// Issue executes the power action. Unlike the cleanup steps this error
// is surfaced: issuing the action is the program's entire reason for
// running.
func Issue(a Action) error {
	if err := exec.Command("shutdown.exe", a.Args()...).Run(); err != nil {
		return fmt.Errorf("shutdown.exe %s: %w", a, err)
	}
	return nil
}
