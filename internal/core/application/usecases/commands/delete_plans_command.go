package commands

import (
	"errors"

	"routeadmin/internal/pkg/errs"
	"routeadmin/internal/pkg/guard"
)

var ErrDeletePlansCommandIsNotConstructed = errors.New(
	"DeletePlansCommand must be created via NewDeletePlansCommand constructor",
)

// DeletePlansCommand removes plans from the routing provider. Deletion is
// synchronous on the backend side; no job is created.
type DeletePlansCommand struct {
	planIDs []string

	guard guard.ConstructorGuard
}

// NewDeletePlansCommand creates a validated command for the given plans.
func NewDeletePlansCommand(planIDs []string) (DeletePlansCommand, error) {
	if len(planIDs) == 0 {
		return DeletePlansCommand{}, errs.NewValueIsRequiredError("planIDs")
	}
	for _, planID := range planIDs {
		if planID == "" {
			return DeletePlansCommand{}, errs.NewValueIsInvalidError("planIDs")
		}
	}

	return DeletePlansCommand{
		planIDs: planIDs,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// PlanIDs returns the plans to delete.
func (c *DeletePlansCommand) PlanIDs() []string {
	return c.planIDs
}

// Validate ensures the command was created through the constructor.
func (c *DeletePlansCommand) Validate() error {
	return c.guard.Validate(
		ErrDeletePlansCommandIsNotConstructed,
	)
}
