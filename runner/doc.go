// Package runner executes solve runs asynchronously on a bounded pool.
//
// A Pool accepts problems through Submit and returns a Task handle per
// run. Concurrency is capped by a weighted semaphore sized at
// construction; excess submissions queue. At most one task per problem
// name may be in flight, so repeated submissions of the same scenario
// collapse into ErrBusy instead of racing each other.
//
// Each task streams its lifecycle as Events: zero or more EventProgress,
// then on success one EventSolution, then exactly one EventDone, after
// which the channel is closed. The event channel is buffered to hold a
// full lifecycle, so a task finishes even when nobody listens; Wait and
// the Task accessors serve consumers that only care about the outcome.
//
// Cancellation goes through Task.Cancel or the submission context. A
// canceled task ends with an EventDone whose error matches
// solve.ErrCanceled, whether it was still queued or already solving.
//
// With WithMetrics the pool registers a solve duration histogram and a
// per-status counter; with WithLogger it narrates task lifecycles.
package runner
