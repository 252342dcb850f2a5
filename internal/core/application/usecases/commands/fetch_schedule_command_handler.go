package commands

import (
	"context"

	"routeadmin/internal/core/domain/model/job"
	"routeadmin/internal/core/ports"
)

// FetchScheduleCommandHandler submits the schedule fetch for one plan and
// registers the job with the monitor under that plan, so the decoded stops
// are retrievable per plan once the job completes.
type FetchScheduleCommandHandler struct {
	backend ports.JobBackend
	watcher JobWatcher
}

// NewFetchScheduleCommandHandler creates a handler for schedule fetches.
func NewFetchScheduleCommandHandler(backend ports.JobBackend, watcher JobWatcher) FetchScheduleCommandHandler {
	return FetchScheduleCommandHandler{
		backend: backend,
		watcher: watcher,
	}
}

// Handle submits the schedule-fetch job and returns its identifier.
func (h FetchScheduleCommandHandler) Handle(ctx context.Context, command FetchScheduleCommand) (string, error) {
	if err := command.Validate(); err != nil {
		return "", err
	}

	jobID, err := h.backend.SubmitFetchSortedSchedules(ctx, command.PlanID(), command.Date())
	if err != nil {
		return "", err
	}

	h.watcher.Watch(ctx, jobID, job.KindFetchSchedule, command.PlanID())
	return jobID, nil
}
