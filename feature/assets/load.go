package assets

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"time"

	"asset-cache/core/batch"
	"asset-cache/core/render"
	"asset-cache/core/scan"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Fixed locations used by the conventional layout.
const (
	ConventionalImagesDir = "assets"
	ConventionalSoundsDir = "assets/sounds"
)

// Dirs are the optional directories of a configured load. Empty fields are skipped.
type Dirs struct {
	Textures string
	Images   string
	Sounds   string
}

// Report holds the merge summary of each batch a load ran.
type Report map[Kind]batch.Summary

// NewConfigured creates a manager and loads dirs into it.
func NewConfigured(ctx context.Context, backend render.Backend, source scan.Source, logger *zap.Logger, dirs Dirs, opts ...Option) (*Manager, error) {
	m := New(backend, source, logger, opts...)
	if _, err := m.LoadConfigured(ctx, dirs); err != nil {
		return nil, err
	}
	return m, nil
}

// NewConventional creates a manager and loads the conventional layout into it.
func NewConventional(ctx context.Context, backend render.Backend, source scan.Source, logger *zap.Logger, opts ...Option) (*Manager, error) {
	m := New(backend, source, logger, opts...)
	if _, err := m.LoadConventional(ctx); err != nil {
		return nil, err
	}
	return m, nil
}

// LoadConventional loads assets/*.png into textures and assets/sounds/*.wav into sounds.
func (m *Manager) LoadConventional(ctx context.Context) (Report, error) {
	return m.LoadConfigured(ctx, Dirs{Textures: ConventionalImagesDir, Sounds: ConventionalSoundsDir})
}

// LoadConfigured runs one batch per non-empty directory, textures first.
// It stops at the first batch that fails fatally.
func (m *Manager) LoadConfigured(ctx context.Context, dirs Dirs) (Report, error) {
	report := make(Report)
	for _, job := range []struct {
		kind Kind
		dir  string
	}{
		{KindTexture, dirs.Textures},
		{KindImage, dirs.Images},
		{KindSound, dirs.Sounds},
	} {
		if job.dir == "" {
			continue
		}
		sum, err := m.LoadDir(ctx, job.kind, job.dir)
		if err != nil {
			return report, err
		}
		report[job.kind] = sum
	}
	return report, nil
}

// LoadDir loads every file of the kind's pattern in dir into that kind's cache.
// Per-file failures are logged and skipped; a malformed path or a done ctx is
// returned. Concurrent calls for the same kind and dir share one batch. Each
// caller waits on its own ctx, and a caller whose ctx is still live retries when
// the shared batch was cut short by the ctx of the caller that started it.
func (m *Manager) LoadDir(ctx context.Context, kind Kind, dir string) (batch.Summary, error) {
	key := string(kind) + "\x00" + dir
	for {
		ch := m.loads.DoChan(key, func() (any, error) {
			return m.loadDir(ctx, kind, dir)
		})
		select {
		case <-ctx.Done():
			return batch.Summary{}, ctx.Err()
		case r := <-ch:
			if r.Err != nil {
				if isContextErr(r.Err) && ctx.Err() == nil {
					continue
				}
				return batch.Summary{}, r.Err
			}
			return r.Val.(batch.Summary), nil
		}
	}
}

func isContextErr(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

func (m *Manager) loadDir(ctx context.Context, kind Kind, dir string) (batch.Summary, error) {
	if err := ctx.Err(); err != nil {
		return batch.Summary{}, err
	}
	entries, err := m.collect(ctx, kind, dir)
	if err != nil {
		return batch.Summary{}, err
	}

	start := time.Now()
	batchID := uuid.NewString()
	l := m.logger.With(
		zap.String("batch", batchID),
		zap.String("kind", string(kind)),
		zap.String("dir", dir),
	)

	var sum batch.Summary
	switch kind {
	case KindImage:
		sum = loadInto(ctx, m, l, batchID, kind, entries, m.backend.DecodeImage, m.images)
	case KindTexture:
		sum = loadInto(ctx, m, l, batchID, kind, entries, m.backend.LoadTexture, m.textures)
	case KindSound:
		sum = loadInto(ctx, m, l, batchID, kind, entries, m.backend.DecodeSound, m.sounds)
	default:
		return batch.Summary{}, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}

	l.Info("Batch loaded",
		zap.Stringer("policy", m.policy),
		zap.Int("loaded", sum.Loaded),
		zap.Int("failed", sum.Failed),
		zap.Int("duplicates", sum.Duplicates),
		zap.Duration("elapsed", time.Since(start)),
	)
	return sum, ctx.Err()
}

// collect drains the scan before any task starts, so a malformed path aborts
// the batch with nothing loaded.
func (m *Manager) collect(ctx context.Context, kind Kind, dir string) ([]scan.Entry, error) {
	var entries []scan.Entry
	for e, err := range m.source.Scan(ctx, dir, kind.Pattern()) {
		if errors.Is(err, scan.ErrNoName) {
			return nil, fmt.Errorf("%w: %w", ErrMalformedPath, err)
		}
		if err != nil {
			m.logger.Warn("Skipping unreadable entry",
				zap.String("kind", string(kind)),
				zap.String("path", e.Path),
				zap.Error(err),
			)
			continue
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func loadInto[T any](ctx context.Context, m *Manager, l *zap.Logger, batchID string, kind Kind, entries []scan.Entry, decode func(io.Reader) (T, error), dst map[string]T) batch.Summary {
	task := func(ctx context.Context, e scan.Entry) (T, error) {
		var zero T
		rc, err := m.source.Open(ctx, e.Path)
		if err != nil {
			return zero, err
		}
		defer rc.Close()
		return decode(rc)
	}

	results := batch.Run(ctx, slices.Values(entries), m.policy, m.limit, task)

	m.mu.Lock()
	sum, failed := batch.Merge(dst, results, func(name string) {
		l.Warn("Duplicate asset name, last loaded wins", zap.String("name", name))
	})
	m.mu.Unlock()

	for _, f := range failed {
		l.Warn("Failed to load asset",
			zap.String("path", f.Entry.Path),
			zap.Error(f.Err),
		)
	}

	if m.recorder != nil {
		if err := m.recorder.Record(ctx, toRecords(batchID, kind, results)); err != nil {
			l.Warn("Failed to record batch", zap.Error(err))
		}
	}
	return sum
}
