package commands

import (
	"context"

	"routeadmin/internal/core/application/session"
	"routeadmin/internal/core/ports"
)

// DeletePlansCommandHandler removes plans from the routing provider and
// drops their session state, so stale assignments cannot leak into sheet
// requests for a regenerated plan set.
type DeletePlansCommandHandler struct {
	backend ports.JobBackend
	store   *session.Store
}

// NewDeletePlansCommandHandler creates a handler for plan deletion.
func NewDeletePlansCommandHandler(backend ports.JobBackend, store *session.Store) DeletePlansCommandHandler {
	return DeletePlansCommandHandler{
		backend: backend,
		store:   store,
	}
}

// Handle deletes the plans. Session state is dropped only after the
// backend confirmed the deletion.
func (h DeletePlansCommandHandler) Handle(ctx context.Context, command DeletePlansCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	if err := h.backend.DeletePlans(ctx, command.PlanIDs()); err != nil {
		return err
	}

	for _, planID := range command.PlanIDs() {
		h.store.Delete(planID)
	}
	return nil
}
