package commands_test

import (
	"testing"

	"routeadmin/internal/core/application/usecases/commands"
	"routeadmin/internal/core/domain/model/segment"
	"routeadmin/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCommitAssignmentCommand(t *testing.T) {
	segments := []segment.Segment{
		mustSegment(t, "plan-1", 5, 3),
		mustSegment(t, "plan-1", 12, 7),
	}

	cmd, err := commands.NewCommitAssignmentCommand("plan-1", segments, "some-version")
	require.NoError(t, err)
	assert.Equal(t, "plan-1", cmd.PlanID())
	assert.Equal(t, "some-version", cmd.ExpectedVersion())
	assert.Len(t, cmd.Segments(), 2)
	assert.NoError(t, cmd.Validate())
}

func TestNewCommitAssignmentCommand_AllowsUnassignedSegments(t *testing.T) {
	// Completeness is a business rule checked by the handler; the command
	// itself accepts segments without a driver.
	segments := []segment.Segment{mustSegment(t, "plan-1", 5, 0)}

	_, err := commands.NewCommitAssignmentCommand("plan-1", segments, "")
	require.NoError(t, err)
}

func TestNewCommitAssignmentCommand_Invalid(t *testing.T) {
	segments := []segment.Segment{mustSegment(t, "plan-1", 5, 3)}

	_, err := commands.NewCommitAssignmentCommand("", segments, "")
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.NewCommitAssignmentCommand("plan-1", nil, "")
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)

	foreign := []segment.Segment{mustSegment(t, "plan-2", 5, 3)}
	_, err = commands.NewCommitAssignmentCommand("plan-1", foreign, "")
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestCommitAssignmentCommand_ValidateNotConstructed(t *testing.T) {
	cmd := commands.CommitAssignmentCommand{}
	assert.ErrorIs(t, cmd.Validate(), commands.ErrCommitAssignmentCommandIsNotConstructed)
}
