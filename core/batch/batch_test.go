package batch_test

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sort"
	"sync/atomic"
	"testing"
	"time"

	"asset-cache/core/batch"
	"asset-cache/core/scan"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entries(names ...string) []scan.Entry {
	out := make([]scan.Entry, len(names))
	for i, n := range names {
		out[i] = scan.Entry{Name: n, Path: "assets/" + n + ".png"}
	}
	return out
}

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    batch.Policy
		wantErr bool
	}{
		{"", batch.Concurrent, false},
		{"concurrent", batch.Concurrent, false},
		{" Sequential ", batch.Sequential, false},
		{"parallel", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := batch.ParsePolicy(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRun_Sequential(t *testing.T) {
	var running, maxRunning atomic.Int32
	task := func(ctx context.Context, e scan.Entry) (string, error) {
		n := running.Add(1)
		defer running.Add(-1)
		if n > maxRunning.Load() {
			maxRunning.Store(n)
		}
		if e.Name == "bad" {
			return "", errors.New("corrupt")
		}
		return e.Path, nil
	}

	results := batch.Run(context.Background(), slices.Values(entries("a", "bad", "c")), batch.Sequential, 0, task)

	require.Len(t, results, 3)
	assert.Equal(t, "a", results[0].Entry.Name)
	assert.Equal(t, "bad", results[1].Entry.Name)
	assert.Error(t, results[1].Err)
	assert.Equal(t, "assets/c.png", results[2].Value)
	assert.Equal(t, int32(1), maxRunning.Load())
}

func TestRun_Concurrent(t *testing.T) {
	t.Run("AllTasksOverlap", func(t *testing.T) {
		const n = 8
		// Every task blocks until all n have started, so this only finishes
		// if they really run at the same time.
		var started atomic.Int32
		release := make(chan struct{})
		task := func(ctx context.Context, e scan.Entry) (int, error) {
			if started.Add(1) == n {
				close(release)
			}
			select {
			case <-release:
			case <-time.After(5 * time.Second):
				return 0, errors.New("tasks did not overlap")
			}
			return len(e.Name), nil
		}

		names := make([]string, n)
		for i := range names {
			names[i] = fmt.Sprintf("tile%d", i)
		}
		results := batch.Run(context.Background(), slices.Values(entries(names...)), batch.Concurrent, 0, task)

		require.Len(t, results, n)
		for _, r := range results {
			assert.NoError(t, r.Err)
		}
	})

	t.Run("Limit", func(t *testing.T) {
		var running, maxRunning atomic.Int32
		task := func(ctx context.Context, e scan.Entry) (int, error) {
			cur := running.Add(1)
			for {
				old := maxRunning.Load()
				if cur <= old || maxRunning.CompareAndSwap(old, cur) {
					break
				}
			}
			time.Sleep(5 * time.Millisecond)
			running.Add(-1)
			return 0, nil
		}

		results := batch.Run(context.Background(), slices.Values(entries("a", "b", "c", "d", "e", "f")), batch.Concurrent, 2, task)
		assert.Len(t, results, 6)
		assert.LessOrEqual(t, maxRunning.Load(), int32(2))
	})

	t.Run("FailureIsolated", func(t *testing.T) {
		task := func(ctx context.Context, e scan.Entry) (string, error) {
			switch e.Name {
			case "bad":
				return "", errors.New("corrupt")
			case "boom":
				panic("decoder exploded")
			}
			time.Sleep(5 * time.Millisecond)
			return e.Name, nil
		}

		results := batch.Run(context.Background(), slices.Values(entries("a", "bad", "boom", "d")), batch.Concurrent, 0, task)
		require.Len(t, results, 4)

		var ok, failed []string
		for _, r := range results {
			if r.Err != nil {
				failed = append(failed, r.Entry.Name)
				if r.Entry.Name == "boom" {
					assert.ErrorIs(t, r.Err, batch.ErrTaskPanic)
				}
				continue
			}
			ok = append(ok, r.Value)
		}
		sort.Strings(ok)
		sort.Strings(failed)
		assert.Equal(t, []string{"a", "d"}, ok)
		assert.Equal(t, []string{"bad", "boom"}, failed)
	})

	t.Run("Empty", func(t *testing.T) {
		results := batch.Run(context.Background(), slices.Values([]scan.Entry(nil)), batch.Concurrent, 0,
			func(context.Context, scan.Entry) (int, error) { return 0, nil })
		assert.Empty(t, results)
	})

	t.Run("CancelledContext", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		var calls atomic.Int32
		results := batch.Run(ctx, slices.Values(entries("a", "b")), batch.Concurrent, 0,
			func(context.Context, scan.Entry) (int, error) { calls.Add(1); return 0, nil })
		require.Len(t, results, 2)
		for _, r := range results {
			assert.ErrorIs(t, r.Err, context.Canceled)
		}
		assert.Zero(t, calls.Load())
	})
}

func TestMerge(t *testing.T) {
	results := []batch.Result[int]{
		{Entry: scan.Entry{Name: "a"}, Value: 1},
		{Entry: scan.Entry{Name: "b"}, Err: errors.New("corrupt")},
		{Entry: scan.Entry{Name: "a"}, Value: 2},
		{Entry: scan.Entry{Name: "c"}, Value: 3},
	}

	dst := map[string]int{"old": 9}
	var dups []string
	sum, failed := batch.Merge(dst, results, func(name string) { dups = append(dups, name) })

	assert.Equal(t, batch.Summary{Loaded: 3, Failed: 1, Duplicates: 1}, sum)
	require.Len(t, failed, 1)
	assert.Equal(t, "b", failed[0].Entry.Name)
	assert.Equal(t, []string{"a"}, dups)
	assert.Equal(t, map[string]int{"old": 9, "a": 2, "c": 3}, dst)
}

func TestMerge_ConcurrentDuplicateKeepsOne(t *testing.T) {
	task := func(ctx context.Context, e scan.Entry) (string, error) { return e.Path, nil }
	in := []scan.Entry{
		{Name: "hero", Path: "textures/hero.png"},
		{Name: "hero", Path: "textures/hero.webp"},
	}
	for i := 0; i < 20; i++ {
		results := batch.Run(context.Background(), slices.Values(in), batch.Concurrent, 0, task)
		dst := map[string]string{}
		sum, _ := batch.Merge(dst, results, nil)
		assert.Equal(t, 1, sum.Duplicates)
		require.Len(t, dst, 1)
		assert.Contains(t, []string{"textures/hero.png", "textures/hero.webp"}, dst["hero"])
	}
}
