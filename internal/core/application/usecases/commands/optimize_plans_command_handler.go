package commands

import (
	"context"

	"routeadmin/internal/core/domain/model/job"
	"routeadmin/internal/core/ports"
)

// OptimizePlansCommandHandler submits plan optimization to the job backend
// and registers the returned job with the monitor.
type OptimizePlansCommandHandler struct {
	backend ports.JobBackend
	watcher JobWatcher
}

// NewOptimizePlansCommandHandler creates a handler for plan optimization.
func NewOptimizePlansCommandHandler(backend ports.JobBackend, watcher JobWatcher) OptimizePlansCommandHandler {
	return OptimizePlansCommandHandler{
		backend: backend,
		watcher: watcher,
	}
}

// Handle submits the optimization job and returns its identifier.
func (h OptimizePlansCommandHandler) Handle(ctx context.Context, command OptimizePlansCommand) (string, error) {
	if err := command.Validate(); err != nil {
		return "", err
	}

	jobID, err := h.backend.SubmitOptimizePlans(ctx, command.PlanIDs())
	if err != nil {
		return "", err
	}

	h.watcher.Watch(ctx, jobID, job.KindOptimizePlans, "")
	return jobID, nil
}
