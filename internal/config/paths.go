// Package config declares the filesystem targets the cleanup steps
// operate on, with all paths resolved through environment variables.
package config

import (
	"os"
	"path/filepath"

	"github.com/steffn/winsweep/internal/envutil"
)

// CleanTarget describes one category of files to clean.
type CleanTarget struct {
	// Name is the unique identifier for this target.
	Name string

	// Dirs are directories whose contents are removed. The directories
	// themselves are kept.
	Dirs []string

	// Globs are file patterns whose matches are removed.
	Globs []string

	// Description is a human-readable description.
	Description string
}

// expand resolves environment variables in a path, supporting both
// Windows %VAR% and Unix $VAR / ${VAR} syntax.
func expand(path string) string {
	return envutil.ExpandWindowsEnv(path)
}

// localAppData returns the local app data directory.
func localAppData() string {
	return os.Getenv("LOCALAPPDATA")
}

// winDir returns the Windows directory (e.g., C:\Windows).
// Falls back to C:\Windows only if %WINDIR% is not set.
func winDir() string {
	if w := os.Getenv("WINDIR"); w != "" {
		return w
	}
	return `C:\Windows`
}

// programData returns the ProgramData directory (e.g., C:\ProgramData).
// Falls back to C:\ProgramData only if %PROGRAMDATA% is not set.
func programData() string {
	if p := os.Getenv("PROGRAMDATA"); p != "" {
		return p
	}
	return `C:\ProgramData`
}

// SystemDrive returns the system drive letter with backslash (e.g., C:\).
// Falls back to C:\ only if %SYSTEMDRIVE% is not set.
func SystemDrive() string {
	if d := os.Getenv("SYSTEMDRIVE"); d != "" {
		return d + `\`
	}
	return `C:\`
}

// TempTarget covers the user and system temporary directories.
func TempTarget() CleanTarget {
	return CleanTarget{
		Name: "Temp",
		Dirs: []string{
			expand("%TEMP%"),
			filepath.Join(winDir(), "Temp"),
		},
		Description: "User and system temporary files",
	}
}

// PrefetchTarget covers the Windows Prefetch directory.
func PrefetchTarget() CleanTarget {
	return CleanTarget{
		Name:        "Prefetch",
		Globs:       []string{filepath.Join(winDir(), "Prefetch", "*")},
		Description: "Application prefetch data",
	}
}

// ThumbnailTarget covers Explorer's thumbnail and icon cache databases.
func ThumbnailTarget() CleanTarget {
	explorer := filepath.Join(localAppData(), "Microsoft", "Windows", "Explorer")
	return CleanTarget{
		Name: "Thumbnails",
		Globs: []string{
			filepath.Join(explorer, "thumbcache_*.db"),
			filepath.Join(explorer, "iconcache_*.db"),
		},
		Description: "Explorer thumbnail and icon caches",
	}
}

// UpdateCacheTarget covers the Windows Update download cache. The
// wuauserv service is stopped around the deletion by the runner.
func UpdateCacheTarget() CleanTarget {
	return CleanTarget{
		Name:        "UpdateCache",
		Dirs:        []string{filepath.Join(winDir(), "SoftwareDistribution", "Download")},
		Description: "Windows Update download cache",
	}
}

// FinalTarget covers crash dumps, Windows Error Reporting queues, and
// component-servicing logs.
func FinalTarget() CleanTarget {
	w := winDir()
	local := localAppData()
	pd := programData()
	return CleanTarget{
		Name: "Final",
		Globs: []string{
			filepath.Join(w, "Minidump", "*"),
			filepath.Join(w, "MEMORY.DMP"),
			filepath.Join(local, "Microsoft", "Windows", "WER", "ReportQueue", "*"),
			filepath.Join(local, "Microsoft", "Windows", "WER", "ReportArchive", "*"),
			filepath.Join(pd, "Microsoft", "Windows", "WER", "ReportQueue", "*"),
			filepath.Join(pd, "Microsoft", "Windows", "WER", "ReportArchive", "*"),
			filepath.Join(w, "Logs", "CBS", "*.log"),
			filepath.Join(w, "Logs", "DISM", "dism.log"),
		},
		Description: "Crash dumps, error reports, and servicing logs",
	}
}
