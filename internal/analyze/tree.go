package analyze

import (
	"fmt"
	"io"

	"github.com/steffn/winsweep/internal/core"
)

// WriteTree renders a plain-text tree view of the scanned hierarchy,
// largest entries first. ASCII connectors (+-- \-- |) keep it readable
// on every Windows console, including legacy code pages. maxDepth 0
// means unlimited; minSize 0 shows everything.
func WriteTree(w io.Writer, root *Entry, maxDepth int, minSize int64) {
	if root == nil {
		fmt.Fprintln(w, "  No data to display.")
		return
	}

	writeEntry(w, root, "", true, 0, maxDepth, minSize)
}

// maxTreeWidth limits entries shown per directory level.
const maxTreeWidth = 20

func writeEntry(w io.Writer, entry *Entry, prefix string, isLast bool, depth, maxDepth int, minSize int64) {
	if maxDepth > 0 && depth > maxDepth {
		return
	}
	if minSize > 0 && entry.Size < minSize {
		return
	}

	connector := "+-- "
	childPrefix := "|   "
	if isLast {
		connector = "\\-- "
		childPrefix = "    "
	}
	if depth == 0 {
		connector = ""
		childPrefix = ""
	}

	dirMarker := ""
	if entry.IsDir {
		dirMarker = "/"
	}
	fmt.Fprintf(w, "  %s%s%s%s  %s\n",
		prefix, connector, entry.Name, dirMarker, core.FormatSize(entry.Size))

	if !entry.IsDir || len(entry.Children) == 0 {
		return
	}

	// Children are already sorted by size descending after the scan.
	children := entry.Children
	hidden := 0
	if len(children) > maxTreeWidth {
		hidden = len(children) - maxTreeWidth
		children = children[:maxTreeWidth]
	}

	for i, child := range children {
		last := i == len(children)-1 && hidden == 0
		writeEntry(w, child, prefix+childPrefix, last, depth+1, maxDepth, minSize)
	}
	if hidden > 0 {
		fmt.Fprintf(w, "  %s\\-- ... and %d more entries\n", prefix+childPrefix, hidden)
	}
}
