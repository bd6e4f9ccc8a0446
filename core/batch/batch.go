package batch

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"strings"

	"asset-cache/core/scan"

	"golang.org/x/sync/errgroup"
)

// ErrTaskPanic wraps a value recovered from a panicking task.
var ErrTaskPanic = errors.New("task panicked")

// Policy selects how a batch executes.
type Policy int

const (
	Sequential Policy = iota
	Concurrent
)

func (p Policy) String() string {
	switch p {
	case Sequential:
		return "sequential"
	case Concurrent:
		return "concurrent"
	}
	return fmt.Sprintf("Policy(%d)", int(p))
}

// ParsePolicy accepts "sequential" or "concurrent". Empty means concurrent.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "concurrent":
		return Concurrent, nil
	case "sequential":
		return Sequential, nil
	}
	return 0, fmt.Errorf("unknown batch policy %q", s)
}

// Task loads one entry.
type Task[T any] func(ctx context.Context, e scan.Entry) (T, error)

// Result is the outcome of one Task.
type Result[T any] struct {
	Entry scan.Entry
	Value T
	Err   error
}

// Run executes task once per entry and waits for all of them. With the
// concurrent policy at most limit tasks run at once; limit <= 0 is unbounded.
// Result order follows entry order for Sequential and completion order for
// Concurrent.
func Run[T any](ctx context.Context, entries iter.Seq[scan.Entry], policy Policy, limit int, task Task[T]) []Result[T] {
	if policy == Sequential {
		var results []Result[T]
		for e := range entries {
			results = append(results, runOne(ctx, e, task))
		}
		return results
	}

	var g errgroup.Group
	if limit > 0 {
		g.SetLimit(limit)
	}

	out := make(chan Result[T])
	go func() {
		for e := range entries {
			g.Go(func() error {
				out <- runOne(ctx, e, task)
				return nil
			})
		}
		_ = g.Wait()
		close(out)
	}()

	var results []Result[T]
	for r := range out {
		results = append(results, r)
	}
	return results
}

func runOne[T any](ctx context.Context, e scan.Entry, task Task[T]) (r Result[T]) {
	r.Entry = e
	defer func() {
		if p := recover(); p != nil {
			var zero T
			r.Value = zero
			r.Err = fmt.Errorf("%w: %v", ErrTaskPanic, p)
		}
	}()
	if err := ctx.Err(); err != nil {
		r.Err = err
		return r
	}
	r.Value, r.Err = task(ctx, e)
	return r
}

// Summary counts what a Merge did.
type Summary struct {
	Loaded     int
	Failed     int
	Duplicates int
}

// Merge inserts every successful result into dst under its entry name and
// returns the failed results. onDuplicate, if set, is called for each name that
// more than one result in this batch produced.
func Merge[T any](dst map[string]T, results []Result[T], onDuplicate func(name string)) (Summary, []Result[T]) {
	var sum Summary
	var failed []Result[T]
	seen := make(map[string]struct{}, len(results))

	for _, r := range results {
		if r.Err != nil {
			sum.Failed++
			failed = append(failed, r)
			continue
		}
		if _, dup := seen[r.Entry.Name]; dup {
			sum.Duplicates++
			if onDuplicate != nil {
				onDuplicate(r.Entry.Name)
			}
		}
		seen[r.Entry.Name] = struct{}{}
		dst[r.Entry.Name] = r.Value
		sum.Loaded++
	}
	return sum, failed
}
