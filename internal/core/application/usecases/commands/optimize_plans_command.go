package commands

import (
	"errors"

	"routeadmin/internal/pkg/errs"
	"routeadmin/internal/pkg/guard"
)

var ErrOptimizePlansCommandIsNotConstructed = errors.New(
	"OptimizePlansCommand must be created via NewOptimizePlansCommand constructor",
)

// OptimizePlansCommand starts geographic optimization of the given plans.
// Completion carries no payload; the caller re-fetches plans afterwards to
// observe reordered stops.
type OptimizePlansCommand struct {
	planIDs []string

	guard guard.ConstructorGuard
}

// NewOptimizePlansCommand creates a validated command for the given plans.
func NewOptimizePlansCommand(planIDs []string) (OptimizePlansCommand, error) {
	if len(planIDs) == 0 {
		return OptimizePlansCommand{}, errs.NewValueIsRequiredError("planIDs")
	}
	for _, planID := range planIDs {
		if planID == "" {
			return OptimizePlansCommand{}, errs.NewValueIsInvalidError("planIDs")
		}
	}

	return OptimizePlansCommand{
		planIDs: planIDs,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// PlanIDs returns the plans to optimize.
func (c *OptimizePlansCommand) PlanIDs() []string {
	return c.planIDs
}

// Validate ensures the command was created through the constructor.
func (c *OptimizePlansCommand) Validate() error {
	return c.guard.Validate(
		ErrOptimizePlansCommandIsNotConstructed,
	)
}
