package errs

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Sentinel errors for classification with errors.Is.
var (
	ErrValueIsRequired      = errors.New("value is required")
	ErrValueIsInvalid       = errors.New("value is invalid")
	ErrValueIsOutOfRange    = errors.New("value is out of range")
	ErrObjectNotFound       = errors.New("object not found")
	ErrSubmissionFailed     = errors.New("job submission failed")
	ErrPollFailed           = errors.New("polling failed")
	ErrPollTimeout          = errors.New("polling timed out")
	ErrJobFailed            = errors.New("job failed")
	ErrParseFailed          = errors.New("result could not be parsed")
	ErrIncompleteAssignment = errors.New("assignment is incomplete")
	ErrVersionConflict      = errors.New("version conflict")
)

// sanitize collapses newlines so error messages stay single-line in logs.
func sanitize(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "\r", " ")
}

// ValueIsRequiredError indicates a required value was missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError indicates a value failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError indicates a value fell outside its allowed bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

func NewValueIsOutOfRangeError(paramName string, value any, minValue any, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

func NewValueIsOutOfRangeErrorWithCause(
	paramName string, value any, minValue any, maxValue any, cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v (cause: %s)",
			ErrValueIsOutOfRange, e.Value, e.ParamName, e.Min, e.Max, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v",
		ErrValueIsOutOfRange, e.Value, e.ParamName, e.Min, e.Max))
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ObjectNotFoundError indicates a lookup by identifier found nothing.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %v (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %v", ErrObjectNotFound, e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// SubmissionError indicates a job could not be started. No job identifier
// was obtained and no polling begins.
type SubmissionError struct {
	Operation string
	Cause     error
}

func NewSubmissionError(operation string) *SubmissionError {
	return &SubmissionError{Operation: operation}
}

func NewSubmissionErrorWithCause(operation string, cause error) *SubmissionError {
	return &SubmissionError{Operation: operation, Cause: cause}
}

func (e *SubmissionError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrSubmissionFailed, e.Operation, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrSubmissionFailed, e.Operation))
}

func (e *SubmissionError) Unwrap() error {
	return ErrSubmissionFailed
}

// PollError indicates a poll request itself failed (transport or server
// error). The underlying job's true status is unknown after this.
type PollError struct {
	JobID string
	Cause error
}

func NewPollError(jobID string) *PollError {
	return &PollError{JobID: jobID}
}

func NewPollErrorWithCause(jobID string, cause error) *PollError {
	return &PollError{JobID: jobID, Cause: cause}
}

func (e *PollError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: job %s (cause: %s)", ErrPollFailed, e.JobID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: job %s", ErrPollFailed, e.JobID))
}

func (e *PollError) Unwrap() error {
	return ErrPollFailed
}

// PollTimeoutError indicates a poll loop exceeded its maximum duration
// without observing a terminal state. Distinct from a backend-reported
// failure: the job may still be running server-side.
type PollTimeoutError struct {
	JobID string
	After time.Duration
}

func NewPollTimeoutError(jobID string, after time.Duration) *PollTimeoutError {
	return &PollTimeoutError{JobID: jobID, After: after}
}

func (e *PollTimeoutError) Error() string {
	return sanitize(fmt.Sprintf("%s: job %s after %s", ErrPollTimeout, e.JobID, e.After))
}

func (e *PollTimeoutError) Unwrap() error {
	return ErrPollTimeout
}

// JobFailedError carries a backend-reported terminal failure. Message is
// surfaced verbatim to the user; this is not a transport error.
type JobFailedError struct {
	JobID   string
	Message string
}

func NewJobFailedError(jobID string, message string) *JobFailedError {
	return &JobFailedError{JobID: jobID, Message: message}
}

func (e *JobFailedError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s", ErrJobFailed, e.Message))
}

func (e *JobFailedError) Unwrap() error {
	return ErrJobFailed
}

// ParseError indicates a job result could not be decoded into its expected
// shape. Scoped to the one result; unrelated jobs are unaffected.
type ParseError struct {
	What  string
	Cause error
}

func NewParseError(what string) *ParseError {
	return &ParseError{What: what}
}

func NewParseErrorWithCause(what string, cause error) *ParseError {
	return &ParseError{What: what, Cause: cause}
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrParseFailed, e.What, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrParseFailed, e.What))
}

func (e *ParseError) Unwrap() error {
	return ErrParseFailed
}

// IncompleteAssignmentError rejects a commit whose segments include
// unassigned drivers. Never reaches the backend.
type IncompleteAssignmentError struct {
	PlanID     string
	Unassigned int
}

func NewIncompleteAssignmentError(planID string, unassigned int) *IncompleteAssignmentError {
	return &IncompleteAssignmentError{PlanID: planID, Unassigned: unassigned}
}

func (e *IncompleteAssignmentError) Error() string {
	return sanitize(fmt.Sprintf("%s: plan %s has %d unassigned segments",
		ErrIncompleteAssignment, e.PlanID, e.Unassigned))
}

func (e *IncompleteAssignmentError) Unwrap() error {
	return ErrIncompleteAssignment
}

// VersionConflictError rejects a commit that named a stale version token.
type VersionConflictError struct {
	PlanID   string
	Expected string
	Actual   string
}

func NewVersionConflictError(planID string, expected string, actual string) *VersionConflictError {
	return &VersionConflictError{PlanID: planID, Expected: expected, Actual: actual}
}

func (e *VersionConflictError) Error() string {
	return sanitize(fmt.Sprintf("%s: plan %s, expected version %s, actual version %s",
		ErrVersionConflict, e.PlanID, e.Expected, e.Actual))
}

func (e *VersionConflictError) Unwrap() error {
	return ErrVersionConflict
}
