package commands

import (
	"errors"
	"time"

	"routeadmin/internal/pkg/errs"
	"routeadmin/internal/pkg/guard"
)

var ErrGeneratePlansCommandIsNotConstructed = errors.New(
	"GeneratePlansCommand must be created via NewGeneratePlansCommand constructor",
)

// GeneratePlansCommand starts delivery-plan generation for one date.
// Plan generation is a long-running backend job; the handler returns the
// job identifier and progress is observed through the job monitor.
type GeneratePlansCommand struct {
	date time.Time

	guard guard.ConstructorGuard
}

// NewGeneratePlansCommand creates a validated command for the given date.
func NewGeneratePlansCommand(date time.Time) (GeneratePlansCommand, error) {
	if date.IsZero() {
		return GeneratePlansCommand{}, errs.NewValueIsRequiredError("date")
	}

	return GeneratePlansCommand{
		date:  date,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Date returns the delivery date plans are generated for.
func (c *GeneratePlansCommand) Date() time.Time {
	return c.date
}

// Validate ensures the command was created through the constructor.
func (c *GeneratePlansCommand) Validate() error {
	return c.guard.Validate(
		ErrGeneratePlansCommandIsNotConstructed,
	)
}
