package hints

import (
	"strings"
	"testing"
)

func TestForBrowserConnect(t *testing.T) {
	// Not parallel: manipulates process-wide env and IsInContainer.

	orig := IsInContainer
	defer func() { IsInContainer = orig }()

	t.Run("container without sandbox override suggests ROD_NO_SANDBOX", func(t *testing.T) {
		IsInContainer = func() bool { return true }
		t.Setenv("ROD_NO_SANDBOX", "")
		t.Setenv("CI", "")

		got := ForBrowserConnect()
		if !strings.Contains(got, "ROD_NO_SANDBOX") {
			t.Errorf("ForBrowserConnect() = %q, want ROD_NO_SANDBOX hint", got)
		}
	})

	t.Run("always offers the no-capture escape hatch", func(t *testing.T) {
		IsInContainer = func() bool { return false }

		got := ForBrowserConnect()
		if !strings.Contains(got, "--no-capture") {
			t.Errorf("ForBrowserConnect() = %q, want --no-capture hint", got)
		}
	})

	t.Run("formatting", func(t *testing.T) {
		IsInContainer = func() bool { return false }

		got := ForBrowserConnect()
		if !strings.HasPrefix(got, "\n  hint: ") {
			t.Errorf("ForBrowserConnect() = %q, want \\n  hint: prefix", got)
		}
	})
}

func TestForConfigNotFound(t *testing.T) {
	t.Parallel()

	t.Run("suggests the user config location when searched", func(t *testing.T) {
		t.Parallel()

		got := ForConfigNotFound([]string{
			"default.yaml",
			"/home/user/.config/exdoc/default.yaml",
		})
		if !strings.Contains(got, "/home/user/.config/exdoc/default.yaml") {
			t.Errorf("ForConfigNotFound() = %q, want the user config path", got)
		}
	})

	t.Run("always suggests the --config flag", func(t *testing.T) {
		t.Parallel()

		got := ForConfigNotFound(nil)
		if !strings.Contains(got, "--config") {
			t.Errorf("ForConfigNotFound() = %q, want --config hint", got)
		}
	})
}

func TestForTimeout(t *testing.T) {
	t.Parallel()

	if got := ForTimeout(); !strings.Contains(got, "--timeout") {
		t.Errorf("ForTimeout() = %q, want --timeout hint", got)
	}
}
