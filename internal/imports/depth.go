package imports

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrOutsideRoot is returned for files that do not live under the depth root.
var ErrOutsideRoot = errors.New("file is outside the source root")

// ExpectedDepth is the number of ../ segments a file needs to reach root:
// its path components relative to root, minus the file name itself.
func ExpectedDepth(file, root string) (int, error) {
	rel, err := filepath.Rel(root, file)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", file, ErrOutsideRoot)
	}
	rel = filepath.ToSlash(rel)
	if rel == "." || rel == ".." || strings.HasPrefix(rel, "../") {
		return 0, fmt.Errorf("%s: %w", file, ErrOutsideRoot)
	}
	return len(strings.Split(rel, "/")) - 1, nil
}

// ExpectedPrefix returns ExpectedDepth repetitions of "../".
func ExpectedPrefix(file, root string) (string, error) {
	depth, err := ExpectedDepth(file, root)
	if err != nil {
		return "", err
	}
	return strings.Repeat("../", depth), nil
}
