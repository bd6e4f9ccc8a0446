package assets

import (
	"sort"
	"sync"

	"asset-cache/core/batch"
	"asset-cache/core/render"
	"asset-cache/core/scan"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Manager owns the image, texture and sound caches. Loads fan out, but every
// write to the maps happens under mu on the caller's goroutine.
type Manager struct {
	backend  render.Backend
	source   scan.Source
	logger   *zap.Logger
	policy   batch.Policy
	limit    int
	recorder Recorder
	loads    singleflight.Group

	mu       sync.RWMutex
	images   map[string]render.Image
	textures map[string]render.Texture
	sounds   map[string]render.Sound
}

// Option configures a Manager.
type Option func(*Manager)

// WithPolicy sets the batch policy. The default is batch.Concurrent.
func WithPolicy(p batch.Policy) Option {
	return func(m *Manager) { m.policy = p }
}

// WithConcurrency caps in-flight loads per batch. Zero is unbounded.
func WithConcurrency(n int) Option {
	return func(m *Manager) { m.limit = n }
}

// WithRecorder reports every attempted load to r.
func WithRecorder(r Recorder) Option {
	return func(m *Manager) { m.recorder = r }
}

// New creates an empty manager. It performs no I/O.
func New(backend render.Backend, source scan.Source, logger *zap.Logger, opts ...Option) *Manager {
	m := &Manager{
		backend:  backend,
		source:   source,
		logger:   logger,
		policy:   batch.Concurrent,
		images:   make(map[string]render.Image),
		textures: make(map[string]render.Texture),
		sounds:   make(map[string]render.Sound),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.logger == nil {
		m.logger = zap.NewNop()
	}
	return m
}

// Backend returns the backend the manager converts and renders with.
func (m *Manager) Backend() render.Backend { return m.backend }

// Image returns the cached image for name.
func (m *Manager) Image(name string) (render.Image, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	img, ok := m.images[name]
	if !ok {
		return nil, &NotFoundError{Kind: KindImage, Name: name}
	}
	return img, nil
}

// Texture returns the cached texture for name.
func (m *Manager) Texture(name string) (render.Texture, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	tex, ok := m.textures[name]
	if !ok {
		return nil, &NotFoundError{Kind: KindTexture, Name: name}
	}
	return tex, nil
}

// Sound returns the cached sound for name.
func (m *Manager) Sound(name string) (render.Sound, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	snd, ok := m.sounds[name]
	if !ok {
		return nil, &NotFoundError{Kind: KindSound, Name: name}
	}
	return snd, nil
}

// PutImage stores img under name, replacing any previous entry.
func (m *Manager) PutImage(name string, img render.Image) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.images[name] = img
}

// PutTexture stores tex under name, replacing any previous entry.
func (m *Manager) PutTexture(name string, tex render.Texture) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.textures[name] = tex
}

// PutSound stores snd under name, replacing any previous entry.
func (m *Manager) PutSound(name string, snd render.Sound) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sounds[name] = snd
}

// Names returns the sorted keys of one cache.
func (m *Manager) Names(kind Kind) []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var names []string
	switch kind {
	case KindImage:
		names = keys(m.images)
	case KindTexture:
		names = keys(m.textures)
	case KindSound:
		names = keys(m.sounds)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of entries in one cache.
func (m *Manager) Len(kind Kind) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	switch kind {
	case KindImage:
		return len(m.images)
	case KindTexture:
		return len(m.textures)
	case KindSound:
		return len(m.sounds)
	}
	return 0
}

func keys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
