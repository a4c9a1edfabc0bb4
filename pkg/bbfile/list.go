package bbfile

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// ErrBadExtension is returned for extensions that would be read as a pattern.
var ErrBadExtension = errors.New("invalid extension")

// documentPattern matches every extension FormatFromPath accepts.
const documentPattern = "*.{json,toml,yaml,yml}"

// ListFiles returns the names of the regular files in dir whose extension is
// ext, sorted ascending. An empty result is not an error.
func ListFiles(dir, ext string) ([]string, error) {
	ext = strings.TrimPrefix(ext, ".")
	if ext == "" || strings.ContainsAny(ext, `*?[]{}\/`) {
		return nil, fmt.Errorf("%w: %q", ErrBadExtension, ext)
	}
	return glob(dir, "*."+ext)
}

// ListDocuments returns the names of the files in dir in any supported
// format, sorted ascending.
func ListDocuments(dir string) ([]string, error) {
	return glob(dir, documentPattern)
}

func glob(dir, pattern string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s: not a directory", dir)
	}

	matches, err := doublestar.Glob(os.DirFS(dir), pattern,
		doublestar.WithFilesOnly(), doublestar.WithFailOnIOErrors())
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", dir, err)
	}

	sort.Strings(matches)
	return matches, nil
}
