package exdoc

import (
	"os"
	"path/filepath"
	"testing"
)

// writeExample writes an example file, creating parent directories.
func writeExample(t *testing.T, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatalf("creating directory: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

const markedSource = "\"\"\" A marked example.\n\n<< autodoc-me >>\n\"\"\"\nenamldef Main(Window): pass\n"
const unmarkedSource = "\"\"\" An unmarked example. \"\"\"\nenamldef Main(Window): pass\n"

func TestDiscover(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	buttons := filepath.Join(root, "widgets", "buttons.enaml")
	sliders := filepath.Join(root, "widgets", "sliders.enaml")
	plain := filepath.Join(root, "tutorial", "plain.enaml")
	writeExample(t, buttons, markedSource)
	writeExample(t, sliders, markedSource)
	writeExample(t, plain, unmarkedSource)

	t.Run("empty allow-list yields all marked files", func(t *testing.T) {
		t.Parallel()

		got, err := Discover(root, ".enaml", MarkerLine, nil)
		if err != nil {
			t.Fatalf("Discover() error = %v", err)
		}
		want := []string{buttons, sliders} // lexical walk order
		if len(got) != len(want) {
			t.Fatalf("Discover() = %v, want %v", got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("Discover()[%d] = %q, want %q", i, got[i], want[i])
			}
		}
	})

	t.Run("allow-list narrows the result", func(t *testing.T) {
		t.Parallel()

		got, err := Discover(root, ".enaml", MarkerLine, []string{"buttons.enaml"})
		if err != nil {
			t.Fatalf("Discover() error = %v", err)
		}
		if len(got) != 1 || got[0] != buttons {
			t.Errorf("Discover() = %v, want [%s]", got, buttons)
		}
	})

	t.Run("allow-list not matching marked files yields nothing", func(t *testing.T) {
		t.Parallel()

		got, err := Discover(root, ".enaml", MarkerLine, []string{"plain.enaml"})
		if err != nil {
			t.Fatalf("Discover() error = %v", err)
		}
		if len(got) != 0 {
			t.Errorf("Discover() = %v, want empty", got)
		}
	})

	t.Run("deterministic order across runs", func(t *testing.T) {
		t.Parallel()

		first, err := Discover(root, ".enaml", MarkerLine, nil)
		if err != nil {
			t.Fatalf("Discover() error = %v", err)
		}
		second, err := Discover(root, ".enaml", MarkerLine, nil)
		if err != nil {
			t.Fatalf("Discover() error = %v", err)
		}
		if len(first) != len(second) {
			t.Fatalf("runs disagree: %v vs %v", first, second)
		}
		for i := range first {
			if first[i] != second[i] {
				t.Errorf("order differs at %d: %q vs %q", i, first[i], second[i])
			}
		}
	})
}

func TestDiscover_IgnoresOtherExtensions(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeExample(t, filepath.Join(root, "notes.txt"), markedSource)
	writeExample(t, filepath.Join(root, "demo.enaml"), markedSource)

	got, err := Discover(root, ".enaml", MarkerLine, nil)
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if len(got) != 1 || filepath.Base(got[0]) != "demo.enaml" {
		t.Errorf("Discover() = %v, want only demo.enaml", got)
	}
}

func TestHasMarkerLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    bool
	}{
		{
			name:    "marker as whole line",
			content: "first\n<< autodoc-me >>\nlast\n",
			want:    true,
		},
		{
			name:    "marker with CRLF line ending",
			content: "first\r\n<< autodoc-me >>\r\nlast\r\n",
			want:    true,
		},
		{
			name:    "marker embedded in a longer line does not count",
			content: "see << autodoc-me >> for details\n",
			want:    false,
		},
		{
			name:    "marker with leading spaces does not count",
			content: "  << autodoc-me >>\n",
			want:    false,
		},
		{
			name:    "no marker",
			content: "nothing here\n",
			want:    false,
		},
		{
			name:    "marker as final line without newline",
			content: "first\n<< autodoc-me >>",
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "sample.enaml")
			writeExample(t, path, tt.content)

			got, err := hasMarkerLine(path, MarkerLine)
			if err != nil {
				t.Fatalf("hasMarkerLine() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("hasMarkerLine() = %v, want %v", got, tt.want)
			}
		})
	}
}
