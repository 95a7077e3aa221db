package cmd

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/shirou/gopsutil/v4/disk"

	"github.com/steffn/winsweep/internal/clean"
	"github.com/steffn/winsweep/internal/config"
	"github.com/steffn/winsweep/internal/core"
	"github.com/steffn/winsweep/internal/elevate"
	"github.com/steffn/winsweep/internal/menu"
	"github.com/steffn/winsweep/internal/power"
	"github.com/steffn/winsweep/internal/ui"
)

// countdownSeconds is the visible grace period before the power action.
const countdownSeconds = 10

// runPipeline is the full interactive run: privilege check, mode
// selection, the seven cleanup steps, and the terminal power action.
func runPipeline() error {
	printBanner()

	// ── Privilege check ──────────────────────────────────────────
	if !elevate.IsElevated() {
		fmt.Println("  Administrative rights are required; requesting elevation...")
		if err := elevate.Relaunch(); err != nil {
			return fmt.Errorf("elevation was refused: %w", err)
		}
		// The elevated child owns the run from here.
		os.Exit(0)
	}

	interactive := useTUI()

	// ── Mode selection ───────────────────────────────────────────
	action, aborted, err := selectMode(interactive)
	if err != nil {
		return err
	}
	if aborted {
		fmt.Println("  Aborted. Nothing was cleaned.")
		return nil
	}

	// ── Cleanup ──────────────────────────────────────────────────
	fmt.Println()
	runner := &clean.Runner{Styled: interactive}
	runner.Execute(clean.Steps())

	printSummary()

	// ── Countdown, then the power action ─────────────────────────
	runCountdown(action, interactive)

	if err := power.Issue(action); err != nil {
		// The one failure worth surfacing: the whole point of the run.
		return err
	}
	return nil
}

func useTUI() bool {
	return !noTUI && isatty.IsTerminal(os.Stdout.Fd())
}

func selectMode(interactive bool) (power.Action, bool, error) {
	if !interactive {
		action, err := menu.PromptPlain(os.Stdin, os.Stdout)
		return action, false, err
	}

	final, err := tea.NewProgram(menu.NewModel()).Run()
	if err != nil {
		return 0, false, fmt.Errorf("mode selection: %w", err)
	}
	m := final.(menu.Model)
	if m.Aborted() {
		return 0, true, nil
	}
	action, _ := m.Choice()
	return action, false, nil
}

func runCountdown(action power.Action, interactive bool) {
	if interactive {
		if _, err := tea.NewProgram(power.NewCountdownModel(action, countdownSeconds, time.Second)).Run(); err == nil {
			return
		}
		// TUI failed to start; fall through to the plain ticker.
	}

	label := "Shutting down in"
	if action == power.ActionRestart {
		label = "Restarting in"
	}
	power.Countdown{
		From:     countdownSeconds,
		Interval: time.Second,
		Out:      os.Stdout,
		Label:    label,
	}.Run()
}

func printBanner() {
	fmt.Println()
	fmt.Println(ui.TitleStyle.Render("  WinSweep") + ui.MutedStyle.Render("  "+appVersion))
	fmt.Println(ui.MutedStyle.Render("  " + core.WindowsVersionString()))

	if usage, err := disk.Usage(config.SystemDrive()); err == nil {
		fmt.Println(ui.MutedStyle.Render(fmt.Sprintf("  %s free of %s on %s",
			core.FormatSize(int64(usage.Free)),
			core.FormatSize(int64(usage.Total)),
			config.SystemDrive())))
	}
	fmt.Println()
}

// printSummary prints the fixed completion checklist. It reflects that
// each step ran, not whether its deletions succeeded; per-item results
// are intentionally discarded.
func printSummary() {
	fmt.Println()
	fmt.Println(ui.TitleStyle.Render("  CLEANUP COMPLETE"))
	for _, label := range clean.Labels() {
		fmt.Println(ui.SuccessStyle.Render("  "+ui.IconOK) + " " + label)
	}
	fmt.Println()
}
