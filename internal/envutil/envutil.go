// Package envutil resolves environment variable references in paths.
package envutil

import (
	"os"
	"strings"
)

// ExpandWindowsEnv expands environment variable references in a path,
// supporting both the Windows %VAR% form and the Unix $VAR / ${VAR}
// forms. Unknown variables expand to the empty string, matching
// os.ExpandEnv behavior.
func ExpandWindowsEnv(path string) string {
	expanded := expandPercent(path)
	return os.ExpandEnv(expanded)
}

// expandPercent rewrites %VAR% references. A stray % without a closing
// partner is left untouched.
func expandPercent(s string) string {
	var b strings.Builder
	for {
		start := strings.IndexByte(s, '%')
		if start < 0 {
			b.WriteString(s)
			return b.String()
		}
		end := strings.IndexByte(s[start+1:], '%')
		if end < 0 {
			b.WriteString(s)
			return b.String()
		}
		end += start + 1

		b.WriteString(s[:start])
		name := s[start+1 : end]
		if name == "" {
			// %% is a literal percent sign.
			b.WriteByte('%')
		} else {
			b.WriteString(os.Getenv(name))
		}
		s = s[end+1:]
	}
}
