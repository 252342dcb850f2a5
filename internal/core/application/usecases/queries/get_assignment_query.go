package queries

import (
	"errors"

	"routeadmin/internal/core/domain/model/segment"
	"routeadmin/internal/pkg/errs"
	"routeadmin/internal/pkg/guard"
)

var ErrGetAssignmentQueryIsNotConstructed = errors.New(
	"GetAssignmentQuery must be created via NewGetAssignmentQuery constructor",
)

// GetAssignmentQuery retrieves the committed segmentation of one plan:
// segments with drivers, derived splits and the current version token.
type GetAssignmentQuery struct {
	planID string

	guard guard.ConstructorGuard
}

// NewGetAssignmentQuery creates a validated assignment query.
func NewGetAssignmentQuery(planID string) (GetAssignmentQuery, error) {
	if planID == "" {
		return GetAssignmentQuery{}, errs.NewValueIsRequiredError("planID")
	}

	return GetAssignmentQuery{
		planID: planID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// PlanID returns the plan whose assignment is queried.
func (q GetAssignmentQuery) PlanID() string {
	return q.planID
}

// Validate ensures the query was created through the constructor.
func (q GetAssignmentQuery) Validate() error {
	return q.guard.Validate(ErrGetAssignmentQueryIsNotConstructed)
}

// GetAssignmentQueryResponse is the read model of one committed
// assignment.
type GetAssignmentQueryResponse struct {
	PlanID   string
	Splits   []int
	Segments []segment.Segment
	Version  string
}
