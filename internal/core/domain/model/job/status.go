package job

import (
	"fmt"

	"routeadmin/internal/pkg/errs"
)

// Status represents the lifecycle state of a backend job as observed by
// polling.
//
// State transitions:
//
//	Pending ──> Running ──┬──> Completed
//	                      └──> Failed
//
// Pending and Running are observationally equivalent to the client: both
// yield progress and a message. The only client-visible transition is into
// a terminal state, after which the snapshot is discarded.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending means the backend accepted the job but has not started it.
	StatusPending

	// StatusRunning means the backend is executing the job.
	StatusRunning

	// StatusCompleted is the successful terminal state. The result payload,
	// if any, is kind-specific.
	StatusCompleted

	// StatusFailed is the unsuccessful terminal state. The message is
	// surfaced verbatim; there is no automatic retry.
	StatusFailed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "Unknown",
		StatusPending:   "Pending",
		StatusRunning:   "Running",
		StatusCompleted: "Completed",
		StatusFailed:    "Failed",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:   "Pending",
		StatusRunning:   "Running",
		StatusCompleted: "Completed",
		StatusFailed:    "Failed",
	}
}

// StatusFromString parses a backend status string into a Status.
// Returns an error for anything outside the four known states, so malformed
// backend responses are caught at the decoding boundary.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a valid job status", s))
}

// Validate checks if the Status value is valid.
// Valid statuses are Pending, Running, Completed and Failed.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// IsTerminal reports whether the status ends the poll loop.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer; safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
