package clean

import (
	"github.com/steffn/winsweep/internal/config"
	"github.com/steffn/winsweep/internal/ui"
)

// updateService is the Windows Update service stopped around the
// update-cache deletion.
const updateService = "wuauserv"

// Steps returns the ordered cleanup sequence. Order matters only for
// progress narration; every step is independent and idempotent.
func Steps() []Step {
	return []Step{
		{
			Label: "Cleaning temporary files",
			Run: func(r *Runner) error {
				return r.cleanTarget(config.TempTarget())
			},
		},
		{
			Label: "Clearing prefetch data",
			Run: func(r *Runner) error {
				return r.cleanTarget(config.PrefetchTarget())
			},
		},
		{
			Label: "Removing thumbnail cache",
			Run: func(r *Runner) error {
				return r.cleanTarget(config.ThumbnailTarget())
			},
		},
		{
			Label: "Cleaning update cache",
			Run:   runUpdateCacheStep,
		},
		{
			Label: "Flushing DNS cache",
			Run: func(r *Runner) error {
				if r.DryRun {
					return nil
				}
				return FlushDNS()
			},
		},
		{
			Label: "Emptying Recycle Bin",
			Run: func(r *Runner) error {
				if size, err := QueryRecycleBin(); err == nil {
					ui.Debugf("recycle bin holds %d bytes", size)
					r.addFreed(size)
				}
				return EmptyRecycleBin(r.DryRun)
			},
		},
		{
			Label: "Final cleanup",
			Run: func(r *Runner) error {
				return r.cleanTarget(config.FinalTarget())
			},
		},
	}
}

// runUpdateCacheStep stops the update service, empties the download
// cache, and starts the service again. Service control failures are
// ignored; the deletion proceeds regardless of service state.
func runUpdateCacheStep(r *Runner) error {
	if !r.DryRun {
		if state, err := ServiceState(updateService); err == nil {
			ui.Debugf("%s state before stop: %s", updateService, state)
		}
		_ = StopService(updateService)
	}

	err := r.cleanTarget(config.UpdateCacheTarget())

	if !r.DryRun {
		_ = StartService(updateService)
	}
	return err
}

// Labels returns the step labels in order, for the completion summary.
func Labels() []string {
	steps := Steps()
	labels := make([]string, len(steps))
	for i, s := range steps {
		labels[i] = s.Label
	}
	return labels
}
