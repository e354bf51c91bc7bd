package imports

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestExpectedDepth(t *testing.T) {
	root := filepath.Join("home", "elo", "src")
	tests := []struct {
		file   string
		want   int
		prefix string
	}{
		{filepath.Join(root, "page.jsx"), 0, ""},
		{filepath.Join(root, "app", "page.jsx"), 1, "../"},
		{filepath.Join(root, "app", "turmas", "Page.jsx"), 2, "../../"},
		{filepath.Join(root, "app", "a", "b", "c", "X.jsx"), 4, "../../../../"},
	}
	for _, tt := range tests {
		got, err := ExpectedDepth(tt.file, root)
		if err != nil {
			t.Fatalf("ExpectedDepth(%s) error = %v", tt.file, err)
		}
		if got != tt.want {
			t.Errorf("ExpectedDepth(%s) = %d, want %d", tt.file, got, tt.want)
		}
		prefix, err := ExpectedPrefix(tt.file, root)
		if err != nil {
			t.Fatalf("ExpectedPrefix(%s) error = %v", tt.file, err)
		}
		if prefix != tt.prefix {
			t.Errorf("ExpectedPrefix(%s) = %q, want %q", tt.file, prefix, tt.prefix)
		}
	}
}

func TestExpectedDepth_OutsideRoot(t *testing.T) {
	root := filepath.Join("home", "elo", "src")
	for _, file := range []string{
		filepath.Join("home", "elo", "scripts", "x.js"),
		root,
	} {
		if _, err := ExpectedDepth(file, root); !errors.Is(err, ErrOutsideRoot) {
			t.Errorf("ExpectedDepth(%s) error = %v, want ErrOutsideRoot", file, err)
		}
	}
}
