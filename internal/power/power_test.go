package power

import (
	"bytes"
	"regexp"
	"strconv"
	"testing"
)

func TestActionArgs(t *testing.T) {
	testCases := []struct {
		action Action
		want   []string
	}{
		{ActionShutdown, []string{"/s", "/f", "/t", "0"}},
		{ActionRestart, []string{"/r", "/f", "/t", "0"}},
	}

	for _, tc := range testCases {
		got := tc.action.Args()
		if len(got) != len(tc.want) {
			t.Fatalf("%s args = %v, want %v", tc.action, got, tc.want)
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Errorf("%s args = %v, want %v", tc.action, got, tc.want)
				break
			}
		}
	}
}

func TestActionString(t *testing.T) {
	if ActionShutdown.String() != "shutdown" || ActionRestart.String() != "restart" {
		t.Error("Action.String mismatch")
	}
}

func TestCountdownTicks(t *testing.T) {
	var out bytes.Buffer
	Countdown{From: 10, Out: &out, Label: "Shutting down in"}.Run()

	ticks := regexp.MustCompile(`(\d+) s`).FindAllStringSubmatch(out.String(), -1)
	if len(ticks) != 10 {
		t.Fatalf("got %d ticks, want 10", len(ticks))
	}
	for i, m := range ticks {
		n, _ := strconv.Atoi(m[1])
		if want := 10 - i; n != want {
			t.Errorf("tick %d = %d, want %d (strictly decreasing 10→1)", i, n, want)
		}
	}

	// Each tick overwrites the last; the line ends with a newline.
	s := out.String()
	if !bytes.ContainsRune(out.Bytes(), '\r') {
		t.Error("ticks are not carriage-return overwritten")
	}
	if s[len(s)-1] != '\n' {
		t.Error("countdown does not end with a newline")
	}
}
