package scan

import (
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"path"
	"path/filepath"
	"strings"
)

// ErrNoName is returned when a path has no base name to derive an asset name from.
var ErrNoName = errors.New("path has no file name")

// Entry is one matched file and the asset name derived from it.
type Entry struct {
	Name string
	Path string
}

// Source enumerates and opens asset files.
type Source interface {
	// Scan yields every file in dir whose base name matches pattern.
	// Per-entry failures are yielded with the error set; enumeration goes on.
	Scan(ctx context.Context, dir, pattern string) iter.Seq2[Entry, error]
	// Open returns the contents of a path produced by Scan.
	Open(ctx context.Context, path string) (io.ReadCloser, error)
}

// NameOf returns the file stem of p: no directory, no extension. A base name
// that is only an extension (".png") is its own stem.
func NameOf(p string) (string, error) {
	base := path.Base(filepath.ToSlash(p))
	switch base {
	case ".", "..", "/":
		return "", fmt.Errorf("%w: %q", ErrNoName, p)
	}
	stem := strings.TrimSuffix(base, path.Ext(base))
	if stem == "" {
		stem = base
	}
	return stem, nil
}
