// Package errs provides standardized error types for the route
// administration service. It implements a consistent pattern for error
// creation, formatting, and unwrapping that is used throughout the
// application.
//
// Two groups of errors live here:
//
//   - Generic validation errors shared by all layers:
//     ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError,
//     ObjectNotFoundError.
//   - The job-orchestration and assignment taxonomy:
//     SubmissionError (job never started), PollError (poll request failed),
//     PollTimeoutError (poll loop exceeded its maximum duration), JobFailedError
//     (backend-reported terminal failure, message verbatim), ParseError
//     (result payload undecodable), IncompleteAssignmentError (commit with
//     unassigned drivers), VersionConflictError (stale commit token).
//
// Each error type follows the same pattern:
//
//   - A sentinel error variable (e.g. ErrJobFailed) for errors.Is checks
//   - A struct type carrying error details
//   - Constructor functions, with and without cause
//   - Error() for formatting and Unwrap() returning the sentinel
//
// All of these are recovered at the boundary of the component that detects
// them and rendered as a scoped, non-fatal message. None of them tears down
// unrelated in-flight jobs and nothing in this package is fatal to the
// process.
package errs
