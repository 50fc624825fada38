package hints

// Notes:
// - ForBrowserConnect tests cannot use t.Parallel(): they call t.Setenv and
//   swap the package-level IsInContainer variable.

import (
	"strings"
	"testing"
)

func TestForBrowserConnect(t *testing.T) {
	tests := []struct {
		name          string
		inContainer   bool
		ci            string
		noSandbox     string
		browserBin    string
		wantSandbox   bool
		wantBrowseBin bool
	}{
		{name: "CI suggests both", ci: "true", wantSandbox: true, wantBrowseBin: true},
		{name: "docker suggests sandbox", inContainer: true, wantSandbox: true, wantBrowseBin: true},
		{name: "sandbox already disabled", inContainer: true, noSandbox: "1", wantBrowseBin: true},
		{name: "browser bin already set", browserBin: "/usr/bin/chromium"},
		{name: "all configured", inContainer: true, ci: "true", noSandbox: "1", browserBin: "/usr/bin/chromium"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orig := IsInContainer
			defer func() { IsInContainer = orig }()
			IsInContainer = func() bool { return tt.inContainer }

			t.Setenv("CI", tt.ci)
			t.Setenv("GITHUB_ACTIONS", "")
			t.Setenv("GITLAB_CI", "")
			t.Setenv("ROD_NO_SANDBOX", tt.noSandbox)
			t.Setenv("ROD_BROWSER_BIN", tt.browserBin)

			hint := ForBrowserConnect()

			if got := strings.Contains(hint, "ROD_NO_SANDBOX"); got != tt.wantSandbox {
				t.Errorf("ROD_NO_SANDBOX suggested = %v, want %v (hint %q)", got, tt.wantSandbox, hint)
			}
			if got := strings.Contains(hint, "ROD_BROWSER_BIN"); got != tt.wantBrowseBin {
				t.Errorf("ROD_BROWSER_BIN suggested = %v, want %v (hint %q)", got, tt.wantBrowseBin, hint)
			}
			if !tt.wantSandbox && !tt.wantBrowseBin && hint != "" {
				t.Errorf("expected empty hint, got %q", hint)
			}
		})
	}
}

func TestStaticHints(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"timeout", ForTimeout(), "--timeout"},
		{"return address", ForReturnAddress("return_address.txt"), "create return_address.txt"},
		{"label assets", ForLabelAssets(), "tcglabels init"},
		{"order file", ForOrderFile(), "header row"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if !strings.HasPrefix(tt.got, "\n  hint: ") {
				t.Errorf("hint %q missing prefix", tt.got)
			}
			if !strings.Contains(tt.got, tt.want) {
				t.Errorf("hint %q does not mention %q", tt.got, tt.want)
			}
		})
	}
}

func TestForConfigNotFound(t *testing.T) {
	t.Parallel()

	hint := ForConfigNotFound([]string{"labels.yaml", "/home/u/.config/go-tcglabels/labels.yaml"})
	if !strings.Contains(hint, "--config") {
		t.Errorf("hint %q missing --config", hint)
	}
	if !strings.Contains(hint, "/home/u/.config/go-tcglabels/labels.yaml") {
		t.Errorf("hint %q missing user config path", hint)
	}

	plain := ForConfigNotFound(nil)
	if strings.Contains(plain, " or create ") {
		t.Errorf("hint %q should not suggest a path", plain)
	}
}

func TestFormatHints_Empty(t *testing.T) {
	t.Parallel()

	if got := formatHints(nil); got != "" {
		t.Errorf("formatHints(nil) = %q, want empty", got)
	}
	if got := format(""); got != "" {
		t.Errorf("format(\"\") = %q, want empty", got)
	}
}
