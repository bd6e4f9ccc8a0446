package scan

import (
	"context"
	"fmt"
	"io"
	"iter"
	"os"
	"path/filepath"
)

// FS scans the local filesystem. Directories passed to Scan are joined onto
// Root when it is set.
type FS struct {
	Root string
}

func (f FS) Scan(ctx context.Context, dir, pattern string) iter.Seq2[Entry, error] {
	return func(yield func(Entry, error) bool) {
		matches, err := filepath.Glob(filepath.Join(f.Root, dir, pattern))
		if err != nil {
			yield(Entry{}, fmt.Errorf("invalid pattern %q: %w", pattern, err))
			return
		}

		for _, p := range matches {
			if err := ctx.Err(); err != nil {
				yield(Entry{Path: p}, err)
				return
			}

			info, err := os.Stat(p)
			if err != nil {
				if !yield(Entry{Path: p}, err) {
					return
				}
				continue
			}
			if info.IsDir() {
				continue
			}

			name, err := NameOf(p)
			if !yield(Entry{Name: name, Path: p}, err) {
				return
			}
		}
	}
}

func (f FS) Open(_ context.Context, path string) (io.ReadCloser, error) {
	return os.Open(path)
}
