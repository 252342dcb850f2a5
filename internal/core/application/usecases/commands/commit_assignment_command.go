package commands

import (
	"errors"

	"routeadmin/internal/core/domain/model/segment"
	"routeadmin/internal/pkg/errs"
	"routeadmin/internal/pkg/guard"
)

var ErrCommitAssignmentCommandIsNotConstructed = errors.New(
	"CommitAssignmentCommand must be created via NewCommitAssignmentCommand constructor",
)

// CommitAssignmentCommand commits one plan's segmentation: the full set of
// segments with their driver choices, plus the version the caller last saw.
// An empty expectedVersion means the caller believes no commit exists yet
// for this plan.
type CommitAssignmentCommand struct {
	planID          string
	segments        []segment.Segment
	expectedVersion string

	guard guard.ConstructorGuard
}

// NewCommitAssignmentCommand creates a validated commit command.
// Completeness of the driver assignment is checked by the handler, not
// here: an unassigned segment is a well-formed command that must be
// rejected with a business error, not a malformed one.
func NewCommitAssignmentCommand(
	planID string,
	segments []segment.Segment,
	expectedVersion string,
) (CommitAssignmentCommand, error) {
	if planID == "" {
		return CommitAssignmentCommand{}, errs.NewValueIsRequiredError("planID")
	}
	if len(segments) == 0 {
		return CommitAssignmentCommand{}, errs.NewValueIsRequiredError("segments")
	}
	for _, seg := range segments {
		if err := seg.Validate(); err != nil {
			return CommitAssignmentCommand{}, err
		}
		if seg.PlanID() != planID {
			return CommitAssignmentCommand{}, errs.NewValueIsInvalidError("segments")
		}
	}

	return CommitAssignmentCommand{
		planID:          planID,
		segments:        segments,
		expectedVersion: expectedVersion,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// PlanID returns the plan being committed.
func (c *CommitAssignmentCommand) PlanID() string {
	return c.planID
}

// Segments returns the segments to commit.
func (c *CommitAssignmentCommand) Segments() []segment.Segment {
	return c.segments
}

// ExpectedVersion returns the version token the caller last observed, or
// the empty string for a first commit.
func (c *CommitAssignmentCommand) ExpectedVersion() string {
	return c.expectedVersion
}

// Validate ensures the command was created through the constructor.
func (c *CommitAssignmentCommand) Validate() error {
	return c.guard.Validate(
		ErrCommitAssignmentCommandIsNotConstructed,
	)
}
