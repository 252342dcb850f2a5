// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// collaborator calls, and for commits, transaction management.
package commands

import (
	"context"

	"routeadmin/internal/core/domain/model/job"
	"routeadmin/internal/core/ports"
)

type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// AssignmentRepoFactory provides access to the assignment repository
	// within a transaction.
	AssignmentRepoFactory interface {
		AssignmentRepository() ports.AssignmentRepository
	}

	// AssignmentUoW manages transactions for assignment persistence.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   repo := uow.AssignmentRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	AssignmentUoW interface {
		TxManager
		AssignmentRepoFactory
	}

	// AssignmentUoWFactory creates new assignment unit of work instances.
	AssignmentUoWFactory interface {
		Create() AssignmentUoW
	}

	// JobWatcher starts server-side observation of a freshly submitted job.
	// Submission handlers hand every job id they obtain to the watcher so
	// progress is materialized without the client polling the backend.
	JobWatcher interface {
		Watch(ctx context.Context, jobID string, kind job.Kind, planID string)
	}
)
