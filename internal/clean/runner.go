// Package clean executes the ordered best-effort cleanup sequence.
package clean

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/steffn/winsweep/internal/config"
	"github.com/steffn/winsweep/internal/core"
	"github.com/steffn/winsweep/internal/ui"
)

// Step is one labeled cleanup action. The total step count shown to the
// user is always derived from the step slice, never hardcoded.
type Step struct {
	Label string
	Run   func(r *Runner) error
}

// StepResult records the discarded outcome of one step. The runner
// swallows failures; the results exist for the debug trace and for
// tests that want to assert on them.
type StepResult struct {
	Label string
	Freed int64
	Err   error
}

// Runner walks an ordered step list, printing a numbered progress
// header per step and isolating every failure.
type Runner struct {
	// DryRun previews actions without deleting anything.
	DryRun bool

	// Out receives the progress lines. Defaults to os.Stdout.
	Out io.Writer

	// Styled renders progress headers through lipgloss. Off for plain
	// (non-TTY) output.
	Styled bool

	// freed accumulates bytes reclaimed by the step currently running.
	freed int64
}

// addFreed credits reclaimed bytes to the running step.
func (r *Runner) addFreed(n int64) {
	r.freed += n
}

// Execute runs every step in order. A failing step never stops the
// sequence; its error is recorded and the next step runs. The returned
// slice has one entry per step, in order.
func (r *Runner) Execute(steps []Step) []StepResult {
	out := r.Out
	if out == nil {
		out = os.Stdout
	}

	total := len(steps)
	results := make([]StepResult, 0, total)

	for i, step := range steps {
		header := fmt.Sprintf("[%d/%d] %s", i+1, total, step.Label)
		if r.Styled {
			header = ui.StepStyle.Render(header)
		}
		fmt.Fprintln(out, header)

		r.freed = 0
		err := step.Run(r)
		if err != nil {
			// Best effort: never surfaced, never fatal.
			ui.Debugf("%s: %v", step.Label, err)
		}
		results = append(results, StepResult{Label: step.Label, Freed: r.freed, Err: err})
	}

	return results
}

// ─── Deletion primitives ─────────────────────────────────────────────────────

// RemoveContents empties a directory without removing the directory
// itself. A missing directory is a no-op and is not created. Failures
// on individual entries do not stop the remaining entries.
func (r *Runner) RemoveContents(dir string) error {
	if dir == "" {
		return nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	var errs []error
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		n, delErr := core.SafeDelete(path, r.DryRun)
		r.addFreed(n)
		if delErr != nil {
			errs = append(errs, delErr)
		}
	}
	return errors.Join(errs...)
}

// RemoveGlob deletes every file or directory matching the pattern.
// No matches is a no-op; per-match failures are isolated.
func (r *Runner) RemoveGlob(pattern string) error {
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return err
	}

	var errs []error
	for _, match := range matches {
		n, delErr := core.SafeDelete(match, r.DryRun)
		r.addFreed(n)
		if delErr != nil {
			errs = append(errs, delErr)
		}
	}
	return errors.Join(errs...)
}

// cleanTarget applies both deletion primitives to a declared target.
func (r *Runner) cleanTarget(t config.CleanTarget) error {
	var errs []error
	for _, dir := range t.Dirs {
		if err := r.RemoveContents(dir); err != nil {
			errs = append(errs, err)
		}
	}
	for _, pattern := range t.Globs {
		if err := r.RemoveGlob(pattern); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
