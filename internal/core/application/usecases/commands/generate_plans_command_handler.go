package commands

import (
	"context"

	"routeadmin/internal/core/domain/model/job"
	"routeadmin/internal/core/ports"
)

// GeneratePlansCommandHandler submits plan generation to the job backend
// and registers the returned job with the monitor.
type GeneratePlansCommandHandler struct {
	backend ports.JobBackend
	watcher JobWatcher
}

// NewGeneratePlansCommandHandler creates a handler for plan generation.
func NewGeneratePlansCommandHandler(backend ports.JobBackend, watcher JobWatcher) GeneratePlansCommandHandler {
	return GeneratePlansCommandHandler{
		backend: backend,
		watcher: watcher,
	}
}

// Handle submits the generation job and returns its identifier. A backend
// rejection surfaces as errs.SubmissionError and no job is watched.
func (h GeneratePlansCommandHandler) Handle(ctx context.Context, command GeneratePlansCommand) (string, error) {
	if err := command.Validate(); err != nil {
		return "", err
	}

	jobID, err := h.backend.SubmitGeneratePlans(ctx, command.Date())
	if err != nil {
		return "", err
	}

	h.watcher.Watch(ctx, jobID, job.KindGeneratePlans, "")
	return jobID, nil
}
