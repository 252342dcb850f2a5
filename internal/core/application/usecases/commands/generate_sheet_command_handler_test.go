package commands_test

import (
	"testing"
	"time"

	"routeadmin/internal/core/application/session"
	"routeadmin/internal/core/application/usecases/commands"
	"routeadmin/internal/core/domain/model/job"
	"routeadmin/internal/core/domain/model/kernel"
	"routeadmin/internal/core/domain/model/segment"
	"routeadmin/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGenerateSheetCommandHandler_Handle_BuildsRequestFromSession(t *testing.T) {
	ctx := t.Context()
	date := time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC)

	// plan-1 is committed with two drivers; plan-2 has no commit.
	committedSegments := []segment.Segment{
		mustSegment(t, "plan-1", 5, 3),
		mustSegment(t, "plan-1", 12, 7),
	}
	data, err := segment.NewPlanAssignmentData("plan-1", committedSegments, kernel.NewUUID())
	require.NoError(t, err)

	store := session.NewStore()
	store.Commit(data)

	cmd, err := commands.NewGenerateSheetCommand(date, []string{"plan-1", "plan-2"})
	require.NoError(t, err)

	backend := new(MockJobBackend)
	watcher := new(MockJobWatcher)

	var captured ports.SheetGenerationRequest
	backend.On("SubmitGenerateSheet", ctx, mock.AnythingOfType("ports.SheetGenerationRequest")).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(ports.SheetGenerationRequest)
		}).
		Return("job-55", nil).
		Once()
	watcher.On("Watch", ctx, "job-55", job.KindGenerateSheet, "").Once()

	handler := commands.NewGenerateSheetCommandHandler(backend, store, watcher)
	jobID, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, "job-55", jobID)

	assert.Equal(t, date, captured.Date)
	require.Len(t, captured.Plans, 2)
	assert.Equal(t, "plan-1", captured.Plans[0].PlanID)
	assert.Equal(t, []int{5}, captured.Plans[0].SplitStops)
	// Uncommitted plan falls back to a single uncut sheet.
	assert.Equal(t, "plan-2", captured.Plans[1].PlanID)
	assert.Empty(t, captured.Plans[1].SplitStops)

	require.Len(t, captured.Segments, 2)
	assert.Equal(t, "plan-1", captured.Segments[0].PlanID())

	backend.AssertExpectations(t)
	watcher.AssertExpectations(t)
}

func TestGenerateSheetCommandHandler_Handle_SubmissionError(t *testing.T) {
	ctx := t.Context()
	date := time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC)
	cmd, err := commands.NewGenerateSheetCommand(date, []string{"plan-1"})
	require.NoError(t, err)

	backend := new(MockJobBackend)
	watcher := new(MockJobWatcher)

	backend.On("SubmitGenerateSheet", ctx, mock.AnythingOfType("ports.SheetGenerationRequest")).
		Return("", assert.AnError).
		Once()

	handler := commands.NewGenerateSheetCommandHandler(backend, session.NewStore(), watcher)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	watcher.AssertNotCalled(t, "Watch", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
