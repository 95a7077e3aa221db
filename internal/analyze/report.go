package analyze

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/host"

	"github.com/steffn/winsweep/internal/core"
)

// quickHashLimit is the number of leading bytes hashed for large
// files. Hashing a 1 MiB prefix is enough to separate non-duplicates;
// small files are hashed whole.
const quickHashLimit = 1 << 20

// TypeStat aggregates files sharing one extension.
type TypeStat struct {
	Ext   string
	Count int
	Size  int64
}

// DuplicateGroup is a set of files with identical content hash.
type DuplicateGroup struct {
	Hash  string
	Size  int64
	Paths []string
}

// Wasted returns the bytes that removing all but one copy would free.
func (g DuplicateGroup) Wasted() int64 {
	return g.Size * int64(len(g.Paths)-1)
}

// Report is the assembled disk-usage report for one scanned root.
type Report struct {
	Root       *Entry
	FileCount  int
	DirCount   int
	TypeStats  []TypeStat
	Largest    []*Entry
	Oldest     []*Entry
	Duplicates []DuplicateGroup
	Errors     []string
}

// ReportOptions controls how much of each table is produced.
type ReportOptions struct {
	// Top caps the largest/oldest tables. Zero means 20.
	Top int

	// SkipDuplicates disables content hashing, which dominates the
	// cost on large trees.
	SkipDuplicates bool
}

// BuildReport derives all report tables from a scanned tree.
func BuildReport(root *Entry, opts ReportOptions) *Report {
	top := opts.Top
	if top <= 0 {
		top = 20
	}

	rep := &Report{Root: root}

	byExt := make(map[string]*TypeStat)
	var files []*Entry

	walkFiles(root, func(e *Entry) {
		files = append(files, e)
		ext := e.Ext()
		st, ok := byExt[ext]
		if !ok {
			st = &TypeStat{Ext: ext}
			byExt[ext] = st
		}
		st.Count++
		st.Size += e.Size
	})
	rep.FileCount = len(files)
	rep.DirCount = countDirs(root) - 1 // exclude the root itself

	for _, st := range byExt {
		rep.TypeStats = append(rep.TypeStats, *st)
	}
	sort.Slice(rep.TypeStats, func(i, j int) bool {
		return rep.TypeStats[i].Size > rep.TypeStats[j].Size
	})

	rep.Largest = topBy(files, top, func(a, b *Entry) bool {
		return a.Size > b.Size
	})
	rep.Oldest = topBy(files, top, func(a, b *Entry) bool {
		return a.ModTime.Before(b.ModTime)
	})

	if !opts.SkipDuplicates {
		rep.Duplicates = findDuplicates(files)
	}

	return rep
}

func countDirs(e *Entry) int {
	if !e.IsDir {
		return 0
	}
	n := 1
	for _, c := range e.Children {
		n += countDirs(c)
	}
	return n
}

// topBy returns the first n files under the given ordering without
// disturbing the input slice.
func topBy(files []*Entry, n int, less func(a, b *Entry) bool) []*Entry {
	sorted := make([]*Entry, len(files))
	copy(sorted, files)
	sort.Slice(sorted, func(i, j int) bool { return less(sorted[i], sorted[j]) })
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// findDuplicates groups files by identical content hash. Files with a
// unique size cannot be duplicates and are never opened.
func findDuplicates(files []*Entry) []DuplicateGroup {
	bySize := make(map[int64][]*Entry)
	for _, f := range files {
		if f.Size == 0 {
			continue
		}
		bySize[f.Size] = append(bySize[f.Size], f)
	}

	byHash := make(map[string][]*Entry)
	for _, group := range bySize {
		if len(group) < 2 {
			continue
		}
		for _, f := range group {
			hash, err := quickHash(f.Path, f.Size)
			if err != nil {
				continue
			}
			byHash[hash] = append(byHash[hash], f)
		}
	}

	var groups []DuplicateGroup
	for hash, group := range byHash {
		if len(group) < 2 {
			continue
		}
		g := DuplicateGroup{Hash: hash, Size: group[0].Size}
		for _, f := range group {
			g.Paths = append(g.Paths, f.Path)
		}
		sort.Strings(g.Paths)
		groups = append(groups, g)
	}

	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Wasted() > groups[j].Wasted()
	})
	return groups
}

// quickHash hashes a file's content: whole file up to quickHashLimit,
// first MiB only beyond that. The size is mixed in so same-prefix
// files of different length never collide.
func quickHash(path string, size int64) (string, error) {
	f, err := os.Open(longPath(path))
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := md5.New()
	if size > quickHashLimit {
		if _, err := io.CopyN(h, f, quickHashLimit); err != nil {
			return "", err
		}
	} else {
		if _, err := io.Copy(h, f); err != nil {
			return "", err
		}
	}
	fmt.Fprintf(h, "|%d", size)
	return hex.EncodeToString(h.Sum(nil)), nil
}

// ─── Rendering ───────────────────────────────────────────────────────────────

// WriteHeader prints the host, OS, and volume context for the report.
// Every probe is best-effort; an unavailable metric is simply omitted.
func WriteHeader(w io.Writer, rootPath string) {
	fmt.Fprintf(w, "  Disk usage report: %s\n", rootPath)
	fmt.Fprintf(w, "  Generated: %s\n", time.Now().Format("2006-01-02 15:04:05"))

	if info, err := host.Info(); err == nil {
		fmt.Fprintf(w, "  Host: %s (%s %s)\n", info.Hostname, info.Platform, info.PlatformVersion)
	}
	if usage, err := disk.Usage(rootPath); err == nil {
		fmt.Fprintf(w, "  Volume: %s free of %s (%.1f%% used)\n",
			core.FormatSize(int64(usage.Free)),
			core.FormatSize(int64(usage.Total)),
			usage.UsedPercent)
	}
	fmt.Fprintln(w)
}

// Write renders the full text report.
func (rep *Report) Write(w io.Writer) {
	rule := "  " + strings.Repeat("-", 58)

	fmt.Fprintf(w, "  Total size: %s in %d files, %d directories\n",
		core.FormatSize(rep.Root.Size), rep.FileCount, rep.DirCount)

	if len(rep.Largest) > 0 {
		fmt.Fprintln(w, rule)
		fmt.Fprintln(w, "  Largest files")
		for _, e := range rep.Largest {
			fmt.Fprintf(w, "  %10s  %s\n", core.FormatSize(e.Size), e.Path)
		}
	}

	if len(rep.TypeStats) > 0 {
		fmt.Fprintln(w, rule)
		fmt.Fprintln(w, "  By file type")
		for _, st := range rep.TypeStats {
			fmt.Fprintf(w, "  %10s  %6d  %s\n", core.FormatSize(st.Size), st.Count, st.Ext)
		}
	}

	if len(rep.Oldest) > 0 {
		fmt.Fprintln(w, rule)
		fmt.Fprintln(w, "  Oldest files")
		for _, e := range rep.Oldest {
			marker := ""
			if e.IsOld() {
				marker = "  (6+ months)"
			}
			fmt.Fprintf(w, "  %s  %10s  %s%s\n",
				e.ModTime.Format("2006-01-02"), core.FormatSize(e.Size), e.Path, marker)
		}
	}

	if len(rep.Duplicates) > 0 {
		fmt.Fprintln(w, rule)
		fmt.Fprintln(w, "  Duplicate files")
		for _, g := range rep.Duplicates {
			fmt.Fprintf(w, "  %d copies × %s (%s wasted)\n",
				len(g.Paths), core.FormatSize(g.Size), core.FormatSize(g.Wasted()))
			for _, p := range g.Paths {
				fmt.Fprintf(w, "      %s\n", p)
			}
		}
	}

	if len(rep.Errors) > 0 {
		fmt.Fprintln(w, rule)
		fmt.Fprintf(w, "  %d paths could not be read\n", len(rep.Errors))
	}
}
