package commands

import (
	"context"
	"errors"

	"routeadmin/internal/core/application/session"
	"routeadmin/internal/core/domain/model/kernel"
	"routeadmin/internal/core/domain/model/segment"
	"routeadmin/internal/pkg/errs"
)

// CommitAssignmentCommandHandler runs the commit protocol for one plan:
// completeness check, optimistic version check, durable save through the
// unit of work, then the single session-store write. The check and both
// writes run under the store's per-plan commit lock, so concurrent
// commits naming the same expected version cannot both win. The current
// version is resolved from the session store, falling back to the durable
// repository when the session was pruned or the service restarted.
//
// Example:
//
//	handler := NewCommitAssignmentCommandHandler(store, uowFactory)
//	data, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrIncompleteAssignment):
//	    // some segment has no driver yet
//	case errors.Is(err, errs.ErrVersionConflict):
//	    // another session committed first; reload and retry
//	case err == nil:
//	    // data.Version() is the new token to echo on the next commit
//	}
type CommitAssignmentCommandHandler struct {
	store      *session.Store
	uowFactory AssignmentUoWFactory
}

// NewCommitAssignmentCommandHandler creates a handler for assignment
// commits.
func NewCommitAssignmentCommandHandler(
	store *session.Store,
	uowFactory AssignmentUoWFactory,
) CommitAssignmentCommandHandler {
	return CommitAssignmentCommandHandler{
		store:      store,
		uowFactory: uowFactory,
	}
}

// Handle commits the assignment and returns the committed aggregate with
// its freshly minted version. Nothing is mutated on any error path.
func (h CommitAssignmentCommandHandler) Handle(
	ctx context.Context,
	command CommitAssignmentCommand,
) (segment.PlanAssignmentData, error) {
	if err := command.Validate(); err != nil {
		return segment.PlanAssignmentData{}, err
	}

	unassigned := 0
	for _, seg := range command.Segments() {
		if !seg.IsAssigned() {
			unassigned++
		}
	}
	if unassigned > 0 {
		return segment.PlanAssignmentData{}, errs.NewIncompleteAssignmentError(command.PlanID(), unassigned)
	}

	var data segment.PlanAssignmentData
	err := h.store.WithCommitLock(command.PlanID(), func() error {
		currentVersion, err := h.currentVersion(ctx, command.PlanID())
		if err != nil {
			return err
		}
		if command.ExpectedVersion() != currentVersion {
			return errs.NewVersionConflictError(
				command.PlanID(), command.ExpectedVersion(), currentVersion)
		}

		data, err = segment.NewPlanAssignmentData(command.PlanID(), command.Segments(), kernel.NewUUID())
		if err != nil {
			return err
		}

		uow := h.uowFactory.Create()
		if err = uow.Begin(ctx); err != nil {
			return err
		}

		defer func() {
			_ = uow.Rollback(ctx)
		}()

		if err = uow.AssignmentRepository().Save(ctx, data); err != nil {
			return err
		}

		if err = uow.Commit(ctx); err != nil {
			return err
		}

		// Durable first: the store write happens only once persistence
		// succeeded, so the session never gets ahead of the database.
		h.store.Commit(data)
		return nil
	})
	if err != nil {
		return segment.PlanAssignmentData{}, err
	}

	return data, nil
}

// currentVersion resolves the version token a commit must name to win.
// The session store is authoritative while the session lives; on a miss
// the durable repository decides, since the janitor may have pruned the
// session or the service restarted since the last commit. A durable hit
// rehydrates the session so subsequent reads see it again.
func (h CommitAssignmentCommandHandler) currentVersion(ctx context.Context, planID string) (string, error) {
	if current, ok := h.store.Get(planID); ok {
		return current.Version().String(), nil
	}

	repo := h.uowFactory.Create().AssignmentRepository()
	durable, err := repo.Get(ctx, planID)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return "", nil
		}
		return "", err
	}

	h.store.Commit(durable)
	return durable.Version().String(), nil
}
