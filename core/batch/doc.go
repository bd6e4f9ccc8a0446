// Package batch runs one task per scanned entry and collects the results.
//
// It is the fan-out/fan-in half of asset loading: callers hand it a sequence of
// scan.Entry values and a Task, and get back one Result per entry once every
// task has finished. Nothing is returned early; Run is a join barrier.
//
// # Policies
//
//   - Sequential: tasks run one after another on the calling goroutine.
//   - Concurrent: every task gets its own goroutine (bounded by an optional limit)
//     via errgroup, and results are fanned back in over a channel.
//
// # Isolation
//
// A task that fails or panics only fails its own Result. Tasks never return
// errors to the errgroup, so a bad file cannot cancel its siblings.
//
// # Merging
//
// Merge writes successful values into a map on the caller's goroutine. The maps
// themselves are never touched concurrently. When two entries share a name the
// one merged last wins, and with the concurrent policy that order is the order
// of completion.
package batch
