package core

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// protectedRoots returns paths that must never be deleted, no matter
// what a target list or a caller asks for. Built from environment
// variables so installations on non-C: drives are covered.
func protectedRoots() []string {
	w := os.Getenv("WINDIR")
	if w == "" {
		w = `C:\Windows`
	}
	sd := os.Getenv("SYSTEMDRIVE")
	if sd == "" {
		sd = "C:"
	}
	sd += `\`
	pd := os.Getenv("PROGRAMDATA")
	if pd == "" {
		pd = `C:\ProgramData`
	}
	pf := os.Getenv("PROGRAMFILES")
	if pf == "" {
		pf = `C:\Program Files`
	}
	pf86 := os.Getenv("PROGRAMFILES(X86)")
	if pf86 == "" {
		pf86 = `C:\Program Files (x86)`
	}
	home := os.Getenv("USERPROFILE")

	roots := []string{
		sd,
		w,
		filepath.Join(w, "System32"),
		filepath.Join(w, "SysWOW64"),
		filepath.Join(w, "WinSxS"),
		filepath.Join(w, "System32", "config"),
		filepath.Join(w, "Prefetch"),
		filepath.Join(w, "Temp"),
		filepath.Join(sd, "Boot"),
		filepath.Join(sd, "EFI"),
		filepath.Join(sd, "Users"),
		filepath.Join(sd, "Recovery"),
		pd,
		pf,
		pf86,
	}
	if home != "" {
		roots = append(roots, home)
	}
	return roots
}

// IsProtected reports whether path resolves to one of the roots that
// must never be removed. Children of a protected root are allowed; the
// guard exists so that cleanup empties well-known directories without
// ever taking the directories themselves.
func IsProtected(path string) bool {
	cleaned := strings.ToLower(filepath.Clean(path))
	for _, root := range protectedRoots() {
		if cleaned == strings.ToLower(filepath.Clean(root)) {
			return true
		}
	}
	return false
}

// SafeDelete removes a file or directory tree after checking it against
// the protected-root list. Returns the number of bytes freed. In dryRun
// mode the size is computed but nothing is removed.
func SafeDelete(path string, dryRun bool) (int64, error) {
	if path == "" {
		return 0, fmt.Errorf("empty path")
	}
	if IsProtected(path) {
		return 0, fmt.Errorf("refusing to delete protected path %q", path)
	}

	info, err := os.Lstat(path)
	if err != nil {
		return 0, err
	}

	var size int64
	if info.IsDir() {
		size = treeSize(path)
	} else {
		size = info.Size()
	}

	if dryRun {
		return size, nil
	}

	if err := os.RemoveAll(path); err != nil {
		return 0, err
	}
	return size, nil
}

// treeSize sums file sizes under root, ignoring unreadable entries.
func treeSize(root string) int64 {
	var total int64
	_ = filepath.WalkDir(root, func(_ string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.Type().IsRegular() {
			if info, infoErr := d.Info(); infoErr == nil {
				total += info.Size()
			}
		}
		return nil
	})
	return total
}
