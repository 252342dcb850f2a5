package ports

import (
	"context"

	"routeadmin/internal/core/domain/model/segment"
)

// AssignmentRepository persists committed plan assignments so they survive
// session loss. Save replaces any prior assignment for the same plan
// wholesale; there is no partial merge.
type AssignmentRepository interface {
	// Save stores the committed assignment, replacing a previous one.
	Save(ctx context.Context, data segment.PlanAssignmentData) error

	// Get returns the committed assignment for a plan, or
	// errs.ObjectNotFoundError when none was ever committed.
	Get(ctx context.Context, planID string) (segment.PlanAssignmentData, error)

	// GetAll returns every committed assignment.
	GetAll(ctx context.Context) ([]segment.PlanAssignmentData, error)
}
