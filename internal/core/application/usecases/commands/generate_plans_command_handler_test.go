package commands_test

import (
	"testing"
	"time"

	"routeadmin/internal/core/application/usecases/commands"
	"routeadmin/internal/core/domain/model/job"
	"routeadmin/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGeneratePlansCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	date := time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC)
	cmd, err := commands.NewGeneratePlansCommand(date)
	require.NoError(t, err)

	backend := new(MockJobBackend)
	watcher := new(MockJobWatcher)

	mock.InOrder(
		backend.On("SubmitGeneratePlans", ctx, date).Return("job-77", nil).Once(),
		watcher.On("Watch", ctx, "job-77", job.KindGeneratePlans, "").Once(),
	)

	handler := commands.NewGeneratePlansCommandHandler(backend, watcher)
	jobID, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, "job-77", jobID)
	backend.AssertExpectations(t)
	watcher.AssertExpectations(t)
}

func TestGeneratePlansCommandHandler_Handle_SubmissionError(t *testing.T) {
	ctx := t.Context()
	date := time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC)
	cmd, err := commands.NewGeneratePlansCommand(date)
	require.NoError(t, err)

	backend := new(MockJobBackend)
	watcher := new(MockJobWatcher)

	backend.On("SubmitGeneratePlans", ctx, date).
		Return("", errs.NewSubmissionError("generate plans")).
		Once()

	handler := commands.NewGeneratePlansCommandHandler(backend, watcher)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrSubmissionFailed)
	// A rejected submission creates no job, so nothing gets watched.
	watcher.AssertNotCalled(t, "Watch", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestGeneratePlansCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.GeneratePlansCommand{} // not constructed properly

	backend := new(MockJobBackend)
	watcher := new(MockJobWatcher)

	handler := commands.NewGeneratePlansCommandHandler(backend, watcher)
	_, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrGeneratePlansCommandIsNotConstructed)
	backend.AssertNotCalled(t, "SubmitGeneratePlans", mock.Anything, mock.Anything)
}
