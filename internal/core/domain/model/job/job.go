package job

import (
	"encoding/json"
	"errors"

	"routeadmin/internal/pkg/errs"
)

const (
	// MinProgress is the lowest reportable progress value.
	MinProgress = 0
	// MaxProgress is the highest reportable progress value.
	MaxProgress = 100
)

// ErrSnapshotIsNotConstructed is returned when a Snapshot was not created
// through NewSnapshot.
var ErrSnapshotIsNotConstructed = errors.New("Snapshot must be created via NewSnapshot constructor")

// Snapshot is the client's read-only view of one backend job, refreshed by
// polling. The backend owns the job; the client never mutates it and
// discards the snapshot once a terminal state has been observed.
//
// Invariants:
//   - ID is the opaque backend identifier and is never empty
//   - Kind and Status are valid enum values
//   - Progress stays within [MinProgress, MaxProgress]
type Snapshot struct {
	id       string
	kind     Kind
	status   Status
	progress int
	message  string
	result   json.RawMessage

	isConstructed bool
}

// NewSnapshot creates a validated job snapshot from polled backend state.
//
// Parameters:
//   - id: opaque backend job identifier (required)
//   - kind: which operation the job performs
//   - status: current lifecycle state
//   - progress: completion percentage in [0, 100]
//   - message: backend-supplied progress or failure text (may be empty)
//   - result: kind-specific payload, present only on completion (may be nil)
func NewSnapshot(
	id string,
	kind Kind,
	status Status,
	progress int,
	message string,
	result json.RawMessage,
) (Snapshot, error) {
	if id == "" {
		return Snapshot{}, errs.NewValueIsRequiredError("id")
	}
	if err := kind.Validate(); err != nil {
		return Snapshot{}, err
	}
	if err := status.Validate(); err != nil {
		return Snapshot{}, err
	}
	if progress < MinProgress || progress > MaxProgress {
		return Snapshot{}, errs.NewValueIsOutOfRangeError("progress", progress, MinProgress, MaxProgress)
	}

	return Snapshot{
		id:            id,
		kind:          kind,
		status:        status,
		progress:      progress,
		message:       message,
		result:        result,
		isConstructed: true,
	}, nil
}

// Validate ensures the Snapshot was created through NewSnapshot.
func (s Snapshot) Validate() error {
	if !s.isConstructed {
		return ErrSnapshotIsNotConstructed
	}
	return nil
}

// ID returns the opaque backend job identifier.
func (s Snapshot) ID() string {
	return s.id
}

// Kind returns which operation the job performs.
func (s Snapshot) Kind() Kind {
	return s.kind
}

// Status returns the lifecycle state observed at poll time.
func (s Snapshot) Status() Status {
	return s.status
}

// Progress returns the completion percentage in [0, 100].
func (s Snapshot) Progress() int {
	return s.progress
}

// Message returns the backend-supplied progress or failure text.
func (s Snapshot) Message() string {
	return s.message
}

// Result returns the kind-specific completion payload, nil before
// completion and for kinds that carry none.
func (s Snapshot) Result() json.RawMessage {
	return s.result
}

// IsTerminal reports whether this snapshot ends the poll loop.
func (s Snapshot) IsTerminal() bool {
	return s.status.IsTerminal()
}
