package envutil

import "testing"

func TestExpandWindowsEnv(t *testing.T) {
	t.Setenv("WS_TEST_DIR", `C:\Data`)
	t.Setenv("WS_TEST_NAME", "logs")

	testCases := []struct {
		in   string
		want string
	}{
		{`%WS_TEST_DIR%\Temp`, `C:\Data\Temp`},
		{`$WS_TEST_DIR\Temp`, `C:\Data\Temp`},
		{`${WS_TEST_DIR}\Temp`, `C:\Data\Temp`},
		{`%WS_TEST_DIR%\%WS_TEST_NAME%`, `C:\Data\logs`},
		{`no variables here`, `no variables here`},
		{`%WS_TEST_UNSET%\x`, `\x`},
		{`50%% done`, `50% done`},
		{`trailing % percent`, `trailing % percent`},
		{``, ``},
	}

	for _, tc := range testCases {
		if got := ExpandWindowsEnv(tc.in); got != tc.want {
			t.Errorf("ExpandWindowsEnv(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
