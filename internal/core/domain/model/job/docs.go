// Package job models the client-side view of long-running backend
// operations: plan generation, plan optimization, picking-sheet generation
// and per-plan schedule fetches.
//
// A job is owned and mutated exclusively by the backend. This package only
// describes the read-only Snapshot the client refreshes by polling, the
// Kind of operation, and the Status lifecycle
// (Pending -> Running -> Completed | Failed).
package job
