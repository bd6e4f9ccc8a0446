package assets_test

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"io"
	"iter"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"asset-cache/core/render/software"
	"asset-cache/core/scan"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{R: 200, G: 100, B: 50, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, pngBytes(t, w, h), 0o644))
}

func writeWAV(t *testing.T, path string, frames int) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	enc := wav.NewEncoder(f, 8000, 16, 1, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: 8000},
		Data:           make([]int, frames),
		SourceBitDepth: 16,
	}
	require.NoError(t, enc.Write(buf))
	require.NoError(t, enc.Close())
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func newBackend(t *testing.T) *software.Backend {
	t.Helper()
	b, err := software.New(320, 240)
	require.NoError(t, err)
	return b
}

// memSource serves a fixed list of entries from memory.
type memSource struct {
	entries []scan.Entry
	errs    map[string]error
	files   map[string][]byte
}

func (s *memSource) Scan(_ context.Context, _, _ string) iter.Seq2[scan.Entry, error] {
	return func(yield func(scan.Entry, error) bool) {
		for _, e := range s.entries {
			if !yield(e, s.errs[e.Path]) {
				return
			}
		}
	}
}

func (s *memSource) Open(_ context.Context, path string) (io.ReadCloser, error) {
	data, ok := s.files[path]
	if !ok {
		return nil, os.ErrNotExist
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

// gatedSource holds every scan until release is closed.
type gatedSource struct {
	*memSource
	started chan struct{}
	release chan struct{}
	once    sync.Once
}

func newGatedSource(src *memSource) *gatedSource {
	return &gatedSource{memSource: src, started: make(chan struct{}), release: make(chan struct{})}
}

func (s *gatedSource) Scan(ctx context.Context, dir, pattern string) iter.Seq2[scan.Entry, error] {
	s.once.Do(func() { close(s.started) })
	<-s.release
	return s.memSource.Scan(ctx, dir, pattern)
}
