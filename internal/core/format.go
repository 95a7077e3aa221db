package core

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatSize renders a byte count as a human-readable string using
// binary units (1 KB = 1024 B).
func FormatSize(size int64) string {
	const unit = 1024
	if size < 0 {
		size = 0
	}
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}

	div, exp := int64(unit), 0
	for n := size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(size)/float64(div), "KMGTPE"[exp])
}

// ParseSize parses a human size string into bytes. Accepts a bare
// number (bytes) or a number with a binary unit suffix, case
// insensitive, with or without the trailing B: "512", "64K", "10MB",
// "1.5GB".
func ParseSize(s string) (int64, error) {
	s = strings.TrimSpace(strings.ToUpper(s))
	if s == "" {
		return 0, fmt.Errorf("empty size")
	}

	mult := int64(1)
	trimmed := strings.TrimSuffix(s, "B")
	if len(trimmed) > 0 {
		switch trimmed[len(trimmed)-1] {
		case 'K':
			mult = 1 << 10
		case 'M':
			mult = 1 << 20
		case 'G':
			mult = 1 << 30
		case 'T':
			mult = 1 << 40
		}
	}
	if mult > 1 {
		trimmed = trimmed[:len(trimmed)-1]
	} else {
		trimmed = s
		if strings.HasSuffix(trimmed, "B") {
			trimmed = trimmed[:len(trimmed)-1]
		}
	}

	n, err := strconv.ParseFloat(strings.TrimSpace(trimmed), 64)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid size %q", s)
	}
	return int64(n * float64(mult)), nil
}
