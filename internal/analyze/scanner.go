// Package analyze scans a directory tree and produces a disk-usage
// report: largest files, per-type totals, stale files, and duplicate
// groups.
package analyze

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"syscall"
	"time"
)

// Entry is a file or directory in the scan tree.
type Entry struct {
	Path     string
	Name     string
	Size     int64
	IsDir    bool
	ModTime  time.Time
	Children []*Entry
}

// IsOld reports whether the entry hasn't been modified in 6+ months.
func (e *Entry) IsOld() bool {
	return time.Since(e.ModTime) > 180*24*time.Hour
}

// Ext returns the lowercased extension, or "(none)" for files without
// one. Directories return "".
func (e *Entry) Ext() string {
	if e.IsDir {
		return ""
	}
	ext := strings.ToLower(filepath.Ext(e.Name))
	if ext == "" {
		return "(none)"
	}
	return ext
}

// Scanner performs parallel recursive directory scanning.
type Scanner struct {
	sem     chan struct{}
	exclude map[string]bool

	mu           sync.Mutex
	errs         []string
	scannedCount atomic.Int64
}

// NewScanner creates a scanner with bounded concurrency.
// exclude is a list of directory names (case-insensitive) to skip.
func NewScanner(maxConcurrency int, exclude []string) *Scanner {
	if maxConcurrency <= 0 {
		maxConcurrency = 8
	}
	excMap := make(map[string]bool, len(exclude))
	for _, e := range exclude {
		excMap[strings.ToLower(e)] = true
	}
	return &Scanner{
		sem:     make(chan struct{}, maxConcurrency),
		exclude: excMap,
	}
}

// Errors returns the access problems accumulated during the scan.
// These end up in the report's error section rather than aborting it.
func (s *Scanner) Errors() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.errs...)
}

// ScannedCount returns the number of entries visited so far.
func (s *Scanner) ScannedCount() int64 {
	return s.scannedCount.Load()
}

func (s *Scanner) addError(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.errs) < 500 {
		s.errs = append(s.errs, msg)
	}
}

// isReparsePoint reports whether the path is a Windows junction or
// symlink. Must be checked to avoid infinite recursion.
func isReparsePoint(path string) bool {
	pathp, err := syscall.UTF16PtrFromString(path)
	if err != nil {
		return false
	}
	attrs, err := syscall.GetFileAttributes(pathp)
	if err != nil {
		return false
	}
	const fileAttributeReparsePoint = 0x0400
	return attrs&fileAttributeReparsePoint != 0
}

// longPath adds the \\?\ prefix for paths exceeding MAX_PATH.
func longPath(path string) string {
	if len(path) >= 260 && !strings.HasPrefix(path, `\\?\`) {
		return `\\?\` + filepath.Clean(path)
	}
	return path
}

// Scan performs a parallel recursive scan of the given root path.
func (s *Scanner) Scan(rootPath string) (*Entry, error) {
	rootPath = filepath.Clean(rootPath)

	info, err := os.Lstat(longPath(rootPath))
	if err != nil {
		return nil, err
	}

	root := &Entry{
		Path:    rootPath,
		Name:    info.Name(),
		IsDir:   info.IsDir(),
		ModTime: info.ModTime(),
	}

	if !info.IsDir() {
		root.Size = info.Size()
		return root, nil
	}

	s.scanDir(root)
	s.calculateSizes(root)

	return root, nil
}

// scanDir recursively scans a directory, holding the semaphore only
// during the ReadDir I/O to avoid deadlocks from nested acquisition.
func (s *Scanner) scanDir(entry *Entry) {
	s.sem <- struct{}{}
	entries, err := os.ReadDir(longPath(entry.Path))
	<-s.sem

	if err != nil {
		s.addError("cannot read " + entry.Path + ": " + err.Error())
		return
	}

	var wg sync.WaitGroup
	var mu sync.Mutex

	for _, e := range entries {
		childPath := filepath.Join(entry.Path, e.Name())
		s.scannedCount.Add(1)

		if e.IsDir() && s.exclude[strings.ToLower(e.Name())] {
			continue
		}

		// Never follow junction points: infinite recursion risk.
		if e.IsDir() && isReparsePoint(childPath) {
			s.addError("skipping junction/reparse: " + childPath)
			continue
		}

		info, err := e.Info()
		if err != nil {
			s.addError("cannot stat " + childPath + ": " + err.Error())
			continue
		}

		child := &Entry{
			Path:    childPath,
			Name:    e.Name(),
			IsDir:   e.IsDir(),
			ModTime: info.ModTime(),
		}

		if !e.IsDir() {
			child.Size = info.Size()
		} else {
			wg.Add(1)
			go func(dir *Entry) {
				defer wg.Done()
				s.scanDir(dir)
			}(child)
		}

		mu.Lock()
		entry.Children = append(entry.Children, child)
		mu.Unlock()
	}

	wg.Wait()
}

// calculateSizes walks the tree bottom-up, summing sizes from children,
// then sorts each level by size descending.
func (s *Scanner) calculateSizes(entry *Entry) {
	if !entry.IsDir {
		return
	}

	var total int64
	for _, child := range entry.Children {
		s.calculateSizes(child)
		total += child.Size
	}
	entry.Size = total

	sort.Slice(entry.Children, func(i, j int) bool {
		return entry.Children[i].Size > entry.Children[j].Size
	})
}

// walkFiles applies fn to every regular file in the tree.
func walkFiles(entry *Entry, fn func(*Entry)) {
	if !entry.IsDir {
		fn(entry)
		return
	}
	for _, child := range entry.Children {
		walkFiles(child, fn)
	}
}
