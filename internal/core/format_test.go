package core

import "testing"

func TestFormatSize(t *testing.T) {
	testCases := []struct {
		size int64
		want string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{1023, "1023 B"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{1048576, "1.0 MB"},
		{5 * 1024 * 1024 * 1024, "5.0 GB"},
		{1099511627776, "1.0 TB"},
		{-1, "0 B"},
	}

	for _, tc := range testCases {
		if got := FormatSize(tc.size); got != tc.want {
			t.Errorf("FormatSize(%d) = %q, want %q", tc.size, got, tc.want)
		}
	}
}

func TestParseSize(t *testing.T) {
	testCases := []struct {
		in   string
		want int64
	}{
		{"0", 0},
		{"512", 512},
		{"512B", 512},
		{"64K", 64 * 1024},
		{"64kb", 64 * 1024},
		{"10MB", 10 * 1024 * 1024},
		{"1.5GB", 1536 * 1024 * 1024},
		{"2T", 2 * 1024 * 1024 * 1024 * 1024},
		{" 10 MB ", 10 * 1024 * 1024},
	}

	for _, tc := range testCases {
		got, err := ParseSize(tc.in)
		if err != nil {
			t.Errorf("ParseSize(%q) error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseSize(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}

	for _, bad := range []string{"", "abc", "-5", "MB", "1..2K"} {
		if _, err := ParseSize(bad); err == nil {
			t.Errorf("ParseSize(%q) succeeded, want error", bad)
		}
	}
}
