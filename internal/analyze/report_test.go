package analyze

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// scanFixture builds and scans a small tree:
//
//	root/
//	  big.bin      (4096 bytes)
//	  a.txt        ("duplicate content")
//	  docs/
//	    b.txt      ("duplicate content")
//	    c.log      ("unrelated")
func scanFixture(t *testing.T) *Entry {
	t.Helper()

	dir := t.TempDir()
	docs := filepath.Join(dir, "docs")
	if err := os.MkdirAll(docs, 0o755); err != nil {
		t.Fatal(err)
	}

	files := map[string][]byte{
		filepath.Join(dir, "big.bin"): bytes.Repeat([]byte{0xAB}, 4096),
		filepath.Join(dir, "a.txt"):   []byte("duplicate content"),
		filepath.Join(docs, "b.txt"):  []byte("duplicate content"),
		filepath.Join(docs, "c.log"):  []byte("unrelated"),
	}
	for path, data := range files {
		if err := os.WriteFile(path, data, 0o644); err != nil {
			t.Fatal(err)
		}
	}

	// Make a.txt visibly old for the stale-file table.
	old := time.Now().Add(-400 * 24 * time.Hour)
	if err := os.Chtimes(filepath.Join(dir, "a.txt"), old, old); err != nil {
		t.Fatal(err)
	}

	root, err := NewScanner(4, nil).Scan(dir)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	return root
}

func TestScanSizesAndCounts(t *testing.T) {
	root := scanFixture(t)

	want := int64(4096 + 17 + 17 + 9)
	if root.Size != want {
		t.Errorf("root size = %d, want %d", root.Size, want)
	}

	rep := BuildReport(root, ReportOptions{SkipDuplicates: true})
	if rep.FileCount != 4 {
		t.Errorf("FileCount = %d, want 4", rep.FileCount)
	}
	if rep.DirCount != 1 {
		t.Errorf("DirCount = %d, want 1", rep.DirCount)
	}
}

func TestReportLargestSortedDescending(t *testing.T) {
	rep := BuildReport(scanFixture(t), ReportOptions{Top: 3, SkipDuplicates: true})

	if len(rep.Largest) != 3 {
		t.Fatalf("Largest has %d entries, want 3", len(rep.Largest))
	}
	if rep.Largest[0].Name != "big.bin" {
		t.Errorf("largest file = %q, want big.bin", rep.Largest[0].Name)
	}
	for i := 1; i < len(rep.Largest); i++ {
		if rep.Largest[i].Size > rep.Largest[i-1].Size {
			t.Error("Largest is not sorted descending")
		}
	}
}

func TestReportTypeSummary(t *testing.T) {
	rep := BuildReport(scanFixture(t), ReportOptions{SkipDuplicates: true})

	byExt := make(map[string]TypeStat)
	for _, st := range rep.TypeStats {
		byExt[st.Ext] = st
	}

	if st := byExt[".txt"]; st.Count != 2 || st.Size != 34 {
		t.Errorf(".txt stat = %+v, want count 2 size 34", st)
	}
	if st := byExt[".bin"]; st.Count != 1 || st.Size != 4096 {
		t.Errorf(".bin stat = %+v, want count 1 size 4096", st)
	}
	if st := byExt[".log"]; st.Count != 1 {
		t.Errorf(".log stat = %+v, want count 1", st)
	}

	// Sorted by total size descending, so .bin leads.
	if rep.TypeStats[0].Ext != ".bin" {
		t.Errorf("first type = %q, want .bin", rep.TypeStats[0].Ext)
	}
}

func TestReportFindsDuplicates(t *testing.T) {
	rep := BuildReport(scanFixture(t), ReportOptions{})

	if len(rep.Duplicates) != 1 {
		t.Fatalf("got %d duplicate groups, want 1", len(rep.Duplicates))
	}
	g := rep.Duplicates[0]
	if len(g.Paths) != 2 {
		t.Fatalf("group has %d paths, want 2", len(g.Paths))
	}
	if g.Size != 17 {
		t.Errorf("group size = %d, want 17", g.Size)
	}
	if g.Wasted() != 17 {
		t.Errorf("wasted = %d, want 17", g.Wasted())
	}
	for _, p := range g.Paths {
		if !strings.HasSuffix(p, ".txt") {
			t.Errorf("unexpected duplicate member %q", p)
		}
	}
}

func TestReportOldest(t *testing.T) {
	rep := BuildReport(scanFixture(t), ReportOptions{Top: 1, SkipDuplicates: true})

	if len(rep.Oldest) != 1 {
		t.Fatalf("Oldest has %d entries, want 1", len(rep.Oldest))
	}
	if rep.Oldest[0].Name != "a.txt" {
		t.Errorf("oldest = %q, want a.txt", rep.Oldest[0].Name)
	}
	if !rep.Oldest[0].IsOld() {
		t.Error("a.txt not flagged as old")
	}
}

func TestWriteReportAndTree(t *testing.T) {
	root := scanFixture(t)
	rep := BuildReport(root, ReportOptions{})

	var out bytes.Buffer
	rep.Write(&out)
	text := out.String()

	for _, want := range []string{"Largest files", "By file type", "Duplicate files", "big.bin"} {
		if !strings.Contains(text, want) {
			t.Errorf("report output missing %q", want)
		}
	}

	out.Reset()
	WriteTree(&out, root, 0, 0)
	tree := out.String()
	if !strings.Contains(tree, "docs/") {
		t.Error("tree output missing docs/ directory")
	}
	if !strings.Contains(tree, "\\--") {
		t.Error("tree output missing ASCII connectors")
	}
}
